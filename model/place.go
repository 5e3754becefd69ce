// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package model

import (
	"github.com/gviegas/folio/linear"
	"github.com/gviegas/folio/material"
	"github.com/gviegas/folio/node"
)

// Placement is the fixed transform applied to an asset
// after decoding.
type Placement struct {
	// Uniform scale factor.
	// It must be greater than zero.
	Scale float32 `toml:"scale" yaml:"scale"`

	// Position of the asset's origin.
	Offset linear.V3 `toml:"offset" yaml:"offset"`

	// Rotation about +Y, in radians, relative to the
	// decoded orientation.
	Yaw float32 `toml:"yaw" yaml:"yaw"`
}

// DefaultPlacement returns the placement used by the
// viewport when none is configured.
func DefaultPlacement() Placement {
	return Placement{
		Scale:  1.5,
		Offset: linear.V3{0, -1.5, 0},
		Yaw:    0,
	}
}

// Validate checks that p can be applied.
func (p *Placement) Validate() error {
	if p.Scale <= 0 {
		return newModelErr("Placement.Scale must be greater than 0.0")
	}
	return nil
}

var yAxis = linear.V3{0, 1, 0}

// Place sets the root transform of a to p: first the
// uniform scale, then the offset, then the yaw.
// The root's decoded transform (always identity) is
// replaced, so placing twice has the effect of placing
// once.
func (a *Asset) Place(p *Placement) {
	t := &a.Root.Local
	t.I()
	t.S = linear.V3{p.Scale, p.Scale, p.Scale}
	t.T = p.Offset
	t.Rotate(p.Yaw, &yAxis)
}

// ApplyOverride applies o to the material of every
// Mesh node in a.
// It returns the number of meshes visited.
func (a *Asset) ApplyOverride(o *material.Override) int {
	return ApplyOverride(a.Root, o)
}

// ApplyOverride applies o to the material of every
// Mesh node under root.
// Only Mesh nodes are touched; other kinds are skipped.
// It returns the number of meshes visited.
func ApplyOverride(root *node.Node, o *material.Override) (n int) {
	root.ForEach(func(nd *node.Node) {
		switch k := nd.Kind.(type) {
		case *node.Mesh:
			o.Apply(k.Material)
			n++
		case *node.Group, *node.Light, *node.Camera:
		}
	})
	return
}
