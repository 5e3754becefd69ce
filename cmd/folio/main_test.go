// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/folio/internal/sample"
	"github.com/gviegas/folio/loader"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, levelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, levelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, levelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, levelFromFlags(false, false, false))
}

func TestParseDrag(t *testing.T) {
	dx, dy, err := parseDrag("")
	require.NoError(t, err)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	dx, dy, err = parseDrag("40,-15")
	require.NoError(t, err)
	assert.Equal(t, 40, dx)
	assert.Equal(t, -15, dy)
	_, _, err = parseDrag("left")
	assert.Error(t, err)
}

func TestFetcher(t *testing.T) {
	f, err := fetcher("", "/model.glb")
	require.NoError(t, err)
	b, err := f.Fetch(context.Background(), "/model.glb")
	require.NoError(t, err)
	assert.Equal(t, sample.GLB(), b)

	f, err = fetcher("https://example.com/assets/", "/model.glb")
	require.NoError(t, err)
	assert.IsType(t, (*loader.HTTPFetcher)(nil), f)

	f, err = fetcher(t.TempDir(), "/model.glb")
	require.NoError(t, err)
	assert.IsType(t, loader.FSFetcher{}, f)

	_, err = fetcher("/does/not/exist", "/model.glb")
	assert.Error(t, err)
}
