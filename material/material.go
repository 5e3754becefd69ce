// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package material defines the material properties
// carried by mesh nodes.
package material

import (
	"errors"
)

const matPrefix = "material: "

func newMatErr(reason string) error { return errors.New(matPrefix + reason) }

// TexRef identifies a texture of the source asset and
// the UV set used to sample it.
// Texture is -1 when there is no texture.
type TexRef struct {
	Texture int
	UVSet   int
}

// NoTexture is the TexRef of an untextured map.
var NoTexture = TexRef{Texture: -1}

// HasTexture returns whether r refers to a texture.
func (r *TexRef) HasTexture() bool { return r.Texture >= 0 }

// UV sets matching TexCoord* semantics.
const (
	// TexCoord0.
	UVSet0 = iota
	// TexCoord1.
	UVSet1
)

// BaseColor is the material's base color.
type BaseColor struct {
	TexRef
	Factor [4]float32
}

// MetalRough is the material's metallic-roughness.
type MetalRough struct {
	TexRef
	Metalness float32
	Roughness float32
}

// NormalMap is the material's normal map.
type NormalMap struct {
	TexRef
	Scale float32
}

// OcclusionMap is the material's occlusion map.
type OcclusionMap struct {
	TexRef
	Strength float32
}

// EmissiveMap is the material's emissive map.
type EmissiveMap struct {
	TexRef
	Factor [3]float32
}

// Off returns whether the map emits no light.
func (m *EmissiveMap) Off() bool {
	return !m.HasTexture() && m.Factor == [3]float32{}
}

// Alpha modes.
const (
	// No transparency.
	// Alpha channel is unconditionally set to 1.0.
	AlphaOpaque = iota
	// Composition with background.
	AlphaBlend
	// Either fully opaque or fully transparent,
	// as determined by a cutoff value.
	AlphaMask
)

// PBR defines properties of the metallic-roughness
// material model.
type PBR struct {
	Name        string
	BaseColor   BaseColor
	MetalRough  MetalRough
	Normal      NormalMap
	Occlusion   OcclusionMap
	Emissive    EmissiveMap
	AlphaMode   int
	AlphaCutoff float32
	DoubleSided bool
}

// Default returns the material glTF assigns to
// primitives that have none.
func Default() PBR {
	return PBR{
		BaseColor:   BaseColor{NoTexture, [4]float32{1, 1, 1, 1}},
		MetalRough:  MetalRough{NoTexture, 1, 1},
		Normal:      NormalMap{NoTexture, 1},
		Occlusion:   OcclusionMap{NoTexture, 1},
		Emissive:    EmissiveMap{TexRef: NoTexture},
		AlphaMode:   AlphaOpaque,
		AlphaCutoff: 0.5,
	}
}

// Validate checks that p is a valid material.
func (p *PBR) Validate() error {
	for _, x := range p.BaseColor.Factor {
		if x < 0 || x > 1 {
			return newMatErr("BaseColor.Factor outside [0.0, 1.0] interval")
		}
	}
	if p.MetalRough.Metalness < 0 || p.MetalRough.Metalness > 1 {
		return newMatErr("MetalRough.Metalness outside [0.0, 1.0] interval")
	}
	if p.MetalRough.Roughness < 0 || p.MetalRough.Roughness > 1 {
		return newMatErr("MetalRough.Roughness outside [0.0, 1.0] interval")
	}
	if p.Normal.Scale < 0 {
		return newMatErr("NormalMap.Scale less than 0.0")
	}
	if p.Occlusion.Strength < 0 || p.Occlusion.Strength > 1 {
		return newMatErr("OcclusionMap.Strength outside [0.0, 1.0] interval")
	}
	for _, x := range p.Emissive.Factor {
		if x < 0 {
			return newMatErr("EmissiveMap.Factor less than 0.0")
		}
	}
	switch p.AlphaMode {
	case AlphaOpaque, AlphaBlend, AlphaMask:
	default:
		return newMatErr("undefined alpha mode constant")
	}
	return nil
}
