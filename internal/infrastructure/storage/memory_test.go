package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_PutGet(t *testing.T) {
	m := NewMemory()
	data := []byte("scan")

	require.NoError(t, m.Put(context.Background(), "id.pdf", "application/pdf", data))
	data[0] = 'X'

	obj, ok := m.Get("id.pdf")
	require.True(t, ok)
	assert.Equal(t, "application/pdf", obj.ContentType)
	assert.Equal(t, []byte("scan"), obj.Data)
	assert.Equal(t, []string{"id.pdf"}, m.Keys())
}

func TestMemory_PutExisting(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Put(context.Background(), "k", "text/plain", []byte("a")))
	assert.ErrorIs(t, m.Put(context.Background(), "k", "text/plain", []byte("b")), ErrObjectStorage)
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, NewMemory().Put(ctx, "k", "text/plain", nil))
}

func TestMemory_GetMissing(t *testing.T) {
	_, ok := NewMemory().Get("nope")
	assert.False(t, ok)
}
