package encode

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-surface/pkg/tree"
)

type stubEncoder struct {
	name string
}

func (s stubEncoder) Name() string        { return s.name }
func (s stubEncoder) ContentType() string { return "text/plain" }

func (s stubEncoder) Encode(_ context.Context, _ *tree.Surface, _ Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(stubEncoder{name: "wire"}))
	require.NoError(t, reg.Register(stubEncoder{name: "term"}))

	enc, err := reg.Get("wire")
	require.NoError(t, err)
	require.Equal(t, "wire", enc.Name())

	require.Equal(t, []string{"term", "wire"}, reg.List())
	require.True(t, reg.Has("term"))
	require.False(t, reg.Has("html"))
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(stubEncoder{name: "wire"}))

	err := reg.Register(stubEncoder{name: "wire"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `encoder "wire" already registered`)
}

func TestRegistryRejectsInvalidEncoders(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.Error(t, reg.Register(nil))
	require.Error(t, reg.Register(stubEncoder{}))
}

func TestRegistryGetNotFound(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	_, err := reg.Get("missing")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotFound)

	var encErr *Error
	require.True(t, errors.As(err, &encErr))
	require.Equal(t, "missing", encErr.Encoder)
	require.Equal(t, `encode: get "missing": encoder not found`, err.Error())
}

func TestRegistryMustGetPanics(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.Panics(t, func() { reg.MustGet("missing") })
}
