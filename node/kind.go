// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package node

import (
	"github.com/gviegas/folio/linear"
	"github.com/gviegas/folio/material"
)

// Kind is the interface that node payloads implement.
// The set of kinds is closed: Group, Mesh, Light and
// Camera.
type Kind interface {
	kind()
}

// Group is an empty grouping node.
type Group struct{}

// Mesh is a drawable primitive of a decoded asset.
type Mesh struct {
	// Index of the source mesh and of the primitive
	// within it.
	Mesh, Primitive int

	// Number of vertices and indices.
	// Indices is 0 for non-indexed geometry.
	Vertices, Indices int

	// Material must not be nil.
	Material *material.PBR
}

// LightType is the type of light sources.
type LightType int

// Light types.
const (
	AmbientLight LightType = iota
	HemisphereLight
	DistantLight
	PointLight
)

// String implements fmt.Stringer.
func (t LightType) String() string {
	switch t {
	case AmbientLight:
		return "ambient"
	case HemisphereLight:
		return "hemisphere"
	case DistantLight:
		return "distant"
	case PointLight:
		return "point"
	}
	return "unknown"
}

// Light is a light source.
// Positional lights take their position from the
// node's transform. Distant lights shine from the
// node's position towards the world origin.
type Light struct {
	Type      LightType
	Color     [3]float32
	Intensity float32

	// Only applies to hemisphere lights.
	Ground [3]float32

	// Only applies to point lights.
	// 0 means infinite range.
	Range float32

	// Only applies to distant and point lights.
	CastShadow bool
}

// Camera is a perspective camera.
// The camera pose is stored here rather than in the
// node's transform.
type Camera struct {
	Position linear.V3
	Target   linear.V3
	Up       linear.V3

	// Vertical field of view, in degrees.
	FOV       float32
	Near, Far float32
}

func (*Group) kind()  {}
func (*Mesh) kind()   {}
func (*Light) kind()  {}
func (*Camera) kind() {}
