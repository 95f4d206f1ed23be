package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-surface/pkg/builder"
	"github.com/goliatone/go-surface/pkg/testsupport"
)

func TestMarshalGolden(t *testing.T) {
	surface := testsupport.SampleSurface(t)

	out, err := Marshal(Header{Name: "sample", Version: 1}, surface)
	require.NoError(t, err)

	goldenPath := filepath.Join("testdata", "sample_document.yaml")
	if testsupport.WriteMaybeGolden(t, goldenPath, out) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(out)); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	surface := testsupport.DashboardSurface(t)
	header := Header{Name: "dashboard", Version: 1, Description: "Round trip."}

	out, err := Marshal(header, surface)
	require.NoError(t, err)

	doc, err := FromBytes("dashboard.yaml", out)
	require.NoError(t, err)
	require.Equal(t, header, doc.Header)

	rebuilt, err := doc.Compile(builder.New())
	require.NoError(t, err)

	wireWant, err := surface.Encode()
	require.NoError(t, err)
	wireGot, err := rebuilt.Encode()
	require.NoError(t, err)
	require.Equal(t, string(wireWant), string(wireGot))
}

func TestMarshalIsDeterministic(t *testing.T) {
	t.Parallel()

	surface := testsupport.DashboardSurface(t)
	header := Header{Name: "dashboard", Version: 1}

	first, err := Marshal(header, surface)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		next, err := Marshal(header, surface)
		require.NoError(t, err)
		require.Equal(t, string(first), string(next))
	}
}

func TestMarshalRejectsBadInput(t *testing.T) {
	t.Parallel()

	surface := testsupport.SampleSurface(t)

	_, err := Marshal(Header{Name: "x", Version: 1}, nil)
	require.EqualError(t, err, "document: surface is required")

	_, err = Marshal(Header{Version: 1}, surface)
	require.EqualError(t, err, "document: surface name is required")

	_, err = Marshal(Header{Name: "x", Version: 3}, surface)
	require.EqualError(t, err, "document: unsupported format version 3 (want 1)")
}

func TestSaveWritesFile(t *testing.T) {
	t.Parallel()

	surface := testsupport.SampleSurface(t)
	path := filepath.Join(t.TempDir(), "sample.yaml")

	require.NoError(t, Save(path, Header{Name: "sample", Version: 1}, surface))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	doc, err := Parse(SourceFromFile(path), data)
	require.NoError(t, err)
	require.Equal(t, "sample", doc.Header.Name)

	rebuilt, err := doc.Compile(builder.New())
	require.NoError(t, err)

	wireWant, err := surface.Encode()
	require.NoError(t, err)
	wireGot, err := rebuilt.Encode()
	require.NoError(t, err)
	require.Equal(t, string(wireWant), string(wireGot))
}
