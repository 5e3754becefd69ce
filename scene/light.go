// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"github.com/gviegas/folio/linear"
	"github.com/gviegas/folio/node"
)

// AmbientLight lights every surface uniformly.
type AmbientLight struct {
	Intensity float32
	R, G, B   float32
}

// Light creates the light source described by t.
func (t *AmbientLight) Light() (node.Light, node.Transform) {
	return node.Light{
		Type:      node.AmbientLight,
		Color:     [3]float32{t.R, t.G, t.B},
		Intensity: max(0, t.Intensity),
	}, identity()
}

// HemisphereLight fades from a sky color above to a
// ground color below.
type HemisphereLight struct {
	Intensity float32
	Sky       [3]float32
	Ground    [3]float32
}

// Light creates the light source described by t.
func (t *HemisphereLight) Light() (node.Light, node.Transform) {
	tf := identity()
	tf.T = linear.V3{0, 1, 0}
	return node.Light{
		Type:      node.HemisphereLight,
		Color:     t.Sky,
		Ground:    t.Ground,
		Intensity: max(0, t.Intensity),
	}, tf
}

// DistantLight is a directional light.
// The light shines from Position towards the origin.
type DistantLight struct {
	Position   linear.V3
	Intensity  float32
	R, G, B    float32
	CastShadow bool
}

// Light creates the light source described by t.
func (t *DistantLight) Light() (node.Light, node.Transform) {
	tf := identity()
	tf.T = t.Position
	return node.Light{
		Type:       node.DistantLight,
		Color:      [3]float32{t.R, t.G, t.B},
		Intensity:  max(0, t.Intensity),
		CastShadow: t.CastShadow,
	}, tf
}

// PointLight is an omnidirectional, positional light.
// Range may be set to 0 to indicate an infinite range.
type PointLight struct {
	Position  linear.V3
	Range     float32
	Intensity float32
	R, G, B   float32
}

// Light creates the light source described by t.
func (t *PointLight) Light() (node.Light, node.Transform) {
	tf := identity()
	tf.T = t.Position
	return node.Light{
		Type:      node.PointLight,
		Color:     [3]float32{t.R, t.G, t.B},
		Intensity: max(0, t.Intensity),
		Range:     max(0, t.Range),
	}, tf
}

func identity() (t node.Transform) {
	t.I()
	return
}

// Rig is a fixed set of lights.
type Rig struct {
	Hemisphere HemisphereLight
	Key        DistantLight
	Ambient    AmbientLight
	Fill       PointLight
}

// hex converts a 0xRRGGBB color to RGB components.
func hex(c uint32) [3]float32 {
	return [3]float32{
		float32(c>>16&0xff) / 255,
		float32(c>>8&0xff) / 255,
		float32(c&0xff) / 255,
	}
}

// DefaultRig returns the rig lighting the viewport:
// a hemisphere light, a shadow-casting key light, an
// ambient term and a point fill light.
func DefaultRig() Rig {
	return Rig{
		Hemisphere: HemisphereLight{0.8, hex(0xffffff), hex(0x888888)},
		Key:        DistantLight{linear.V3{5, 10, 5}, 2, 1, 1, 1, true},
		Ambient:    AmbientLight{0.5, 1, 1, 1},
		Fill:       PointLight{linear.V3{10, 10, 10}, 0, 1, 1, 1, 1},
	}
}

// AddRig inserts the lights of r into s.
func (s *Scene) AddRig(r *Rig) {
	l, t := r.Hemisphere.Light()
	s.AddLight("hemisphere", l, t)
	l, t = r.Key.Light()
	s.AddLight("key", l, t)
	l, t = r.Ambient.Light()
	s.AddLight("ambient", l, t)
	l, t = r.Fill.Light()
	s.AddLight("fill", l, t)
}
