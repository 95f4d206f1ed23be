package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"
)

// Loader fetches surface documents from different sources. File and bytes
// sources always work; fs.FS and HTTP need configuring.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	maxBytes  int64
}

// LoaderOption mutates loader construction.
type LoaderOption func(*Loader)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fs = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		l.http = client
	}
}

// WithHTTPFallback enables HTTP loading with a default client and an optional
// timeout. HTTP stays off unless a client or the fallback is supplied, which
// keeps loading offline-first.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(l *Loader) {
		l.allowHTTP = true
		l.timeout = timeout
	}
}

// WithMaxBytes caps the size of fetched documents. Zero keeps the default.
func WithMaxBytes(limit int64) LoaderOption {
	return func(l *Loader) {
		if limit > 0 {
			l.maxBytes = limit
		}
	}
}

// defaultMaxBytes bounds remote payloads so a misbehaving endpoint cannot
// exhaust memory.
const defaultMaxBytes = 8 << 20

// NewLoader constructs a loader from the supplied options.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{maxBytes: defaultMaxBytes}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}

	if l.http == nil && l.allowHTTP {
		l.http = &http.Client{Timeout: l.timeout}
	}
	if l.http != nil {
		l.allowHTTP = true
	}
	return l
}

// Load fetches a document from the provided source and parses it.
func (l *Loader) Load(ctx context.Context, src Source) (*Document, error) {
	if src == nil {
		return nil, errors.New("document: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch s := src.(type) {
	case fileSource:
		data, err = loadFile(ctx, s.path)
	case fsSource:
		data, err = loadFromFS(ctx, l.fs, s.name)
	case bytesSource:
		data = s.data
	case urlSource:
		if !l.allowHTTP {
			return nil, errors.New("document: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, s.raw, l.maxBytes)
	default:
		err = fmt.Errorf("document: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return nil, err
	}

	return Parse(src, data)
}

// FromFile loads and parses a document from a file path using a default
// loader.
func FromFile(ctx context.Context, path string) (*Document, error) {
	return NewLoader().Load(ctx, SourceFromFile(path))
}

// FromFS loads and parses a document from an fs.FS entry.
func FromFS(ctx context.Context, files fs.FS, name string) (*Document, error) {
	return NewLoader(WithFileSystem(files)).Load(ctx, SourceFromFS(name))
}

// FromBytes parses an in-memory document.
func FromBytes(label string, data []byte) (*Document, error) {
	return Parse(SourceFromBytes(label, data), data)
}

// FromURL fetches and parses a remote document.
func FromURL(ctx context.Context, rawURL string) (*Document, error) {
	loader := NewLoader(WithHTTPFallback(30 * time.Second))
	return loader.Load(ctx, SourceFromURL(rawURL))
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("document: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}
	return data, nil
}

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("document: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("document: fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(filesystem, name)
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", name, err)
	}
	return data, nil
}

func loadHTTP(ctx context.Context, client *http.Client, rawURL string, maxBytes int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("document: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml, text/yaml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("document: fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("document: fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", rawURL, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("document: %s exceeds %d byte limit", rawURL, maxBytes)
	}
	return data, nil
}
