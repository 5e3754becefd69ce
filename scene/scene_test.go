// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/folio/linear"
	"github.com/gviegas/folio/node"
)

func testCamera() node.Camera {
	return node.Camera{
		Position: linear.V3{0, 5, 10},
		Up:       linear.V3{0, 1, 0},
		FOV:      50,
		Near:     0.1,
		Far:      1000,
	}
}

func TestNew(t *testing.T) {
	s := New(testCamera())
	assert.False(t, s.Disposed())
	assert.Equal(t, 1, s.Root().Len(), "New should insert only the camera")
	assert.Equal(t, float32(50), s.Camera().FOV)
	assert.Empty(t, s.Lights())
	assert.Empty(t, s.Anchors())
}

func TestRig(t *testing.T) {
	s := New(testCamera())
	r := DefaultRig()
	s.AddRig(&r)
	require.Len(t, s.Lights(), 4)

	types := map[node.LightType]*node.Node{}
	for _, n := range s.Lights() {
		l, ok := n.Kind.(*node.Light)
		require.True(t, ok, n.Name)
		types[l.Type] = n
	}
	require.Len(t, types, 4)
	key := types[node.DistantLight]
	assert.Equal(t, linear.V3{5, 10, 5}, key.Local.T)
	assert.Equal(t, float32(2), key.Kind.(*node.Light).Intensity)
	assert.True(t, key.Kind.(*node.Light).CastShadow)
	hemi := types[node.HemisphereLight].Kind.(*node.Light)
	assert.Equal(t, [3]float32{1, 1, 1}, hemi.Color)
	assert.InDelta(t, 0x88/255.0, hemi.Ground[0], 1e-6)
	assert.Equal(t, float32(0.5), types[node.AmbientLight].Kind.(*node.Light).Intensity)
	assert.Equal(t, linear.V3{10, 10, 10}, types[node.PointLight].Local.T)
}

func TestAnchor(t *testing.T) {
	s := New(testCamera())
	a := s.NewAnchor("model")
	require.True(t, a.Live())
	assert.Nil(t, a.Asset())
	assert.Same(t, s.Root(), a.Node().Parent())

	asset := node.New("asset", nil)
	require.NoError(t, a.Attach(asset))
	assert.Same(t, asset, a.Asset())
	assert.Equal(t, 1, a.Node().Len())

	err := a.Attach(node.New("second", nil))
	assert.ErrorIs(t, err, ErrOccupied)
	assert.Equal(t, 1, a.Node().Len())
}

func TestDispose(t *testing.T) {
	s := New(testCamera())
	a := s.NewAnchor("model")
	s.Dispose()
	assert.True(t, s.Disposed())
	assert.False(t, a.Live())

	late := node.New("late", nil)
	assert.ErrorIs(t, a.Attach(late), ErrDisposed)
	assert.Equal(t, 0, a.Node().Len())
	assert.Nil(t, late.Parent())

	s.Dispose()
	b := s.NewAnchor("again")
	assert.False(t, b.Live(), "anchors of a disposed scene must not be live")
}
