package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCache_WriteThenRead(t *testing.T) {
	c := NewRunCache()
	assert.False(t, c.Exists("/fixtures/"))

	body := []byte(`[{"event":1}]`)
	c.WriteRaw("/fixtures/", body)
	body[0] = 'X' // caller mutation must not leak into the cache

	require.True(t, c.Exists("/fixtures/"))
	got, err := c.ReadRaw("/fixtures/")
	require.NoError(t, err)
	assert.Equal(t, `[{"event":1}]`, string(got))

	entries, hits, misses := c.Stats()
	assert.Equal(t, 1, entries)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 0, misses)
}

func TestRunCache_Miss(t *testing.T) {
	c := NewRunCache()
	_, err := c.ReadRaw("/entry/1/history/")
	assert.True(t, errors.Is(err, ErrNotCached))

	_, _, misses := c.Stats()
	assert.Equal(t, 1, misses)
}

func TestRunCache_NilIsEmpty(t *testing.T) {
	var c *RunCache
	c.WriteRaw("k", []byte("v"))
	assert.False(t, c.Exists("k"))
	_, err := c.ReadRaw("k")
	assert.ErrorIs(t, err, ErrNotCached)
}

func TestRunCache_SeparateRunsDoNotShare(t *testing.T) {
	first := NewRunCache()
	first.WriteRaw("/fixtures/", []byte("[]"))

	second := NewRunCache()
	assert.False(t, second.Exists("/fixtures/"))
}
