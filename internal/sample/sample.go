// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package sample builds a small glTF asset used by the
// demo command and by tests.
package sample

import (
	"bytes"

	"github.com/qmuntal/gltf"
)

// Counts of the sample asset.
const (
	Meshes    = 5
	Materials = 3
	Nodes     = 3
)

// Document returns the sample asset.
// It has two root nodes; the first has one child. The
// "hull" mesh has two primitives and is instanced twice.
// The "paint" material is emissive and textured.
func Document() *gltf.Document {
	trs := func(name string, mesh int, t [3]float64, children ...int) *gltf.Node {
		return &gltf.Node{
			Name:        name,
			Mesh:        gltf.Index(mesh),
			Children:    children,
			Matrix:      gltf.DefaultMatrix,
			Translation: t,
			Rotation:    gltf.DefaultRotation,
			Scale:       gltf.DefaultScale,
		}
	}
	return &gltf.Document{
		Asset: gltf.Asset{Version: "2.0", Generator: "folio sample"},
		Accessors: []*gltf.Accessor{
			{ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 24},
			{ComponentType: gltf.ComponentUshort, Type: gltf.AccessorScalar, Count: 36},
		},
		Textures: []*gltf.Texture{{Name: "decal"}},
		Materials: []*gltf.Material{
			{
				Name: "paint",
				PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
					BaseColorFactor:  &[4]float64{1, 0, 0, 1},
					BaseColorTexture: &gltf.TextureInfo{Index: 0},
					MetallicFactor:   gltf.Float(1),
					RoughnessFactor:  gltf.Float(0.1),
				},
				EmissiveFactor:  [3]float64{1, 0.5, 0},
				EmissiveTexture: &gltf.TextureInfo{Index: 0},
			},
			{
				Name: "trim",
				PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
					BaseColorFactor: &[4]float64{0, 0, 1, 1},
					MetallicFactor:  gltf.Float(0),
					RoughnessFactor: gltf.Float(1),
				},
				AlphaMode: gltf.AlphaBlend,
			},
		},
		Meshes: []*gltf.Mesh{
			{
				Name: "hull",
				Primitives: []*gltf.Primitive{
					{
						Attributes: map[string]int{gltf.POSITION: 0},
						Indices:    gltf.Index(1),
						Material:   gltf.Index(0),
					},
					{
						Attributes: map[string]int{gltf.POSITION: 0},
						Material:   gltf.Index(1),
					},
				},
			},
			{
				Name: "glass",
				Primitives: []*gltf.Primitive{
					{Attributes: map[string]int{gltf.POSITION: 0}},
				},
			},
		},
		Nodes: []*gltf.Node{
			trs("body", 0, [3]float64{0, 1, 0}, 1),
			trs("visor", 1, [3]float64{0, 0.5, 0.5}),
			trs("stand", 0, [3]float64{2, 0, 0}),
		},
		Scene:  gltf.Index(0),
		Scenes: []*gltf.Scene{{Name: "sample", Nodes: []int{0, 2}}},
	}
}

// Encode encodes doc as a binary glTF payload.
func Encode(doc *gltf.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GLB returns the sample asset as a binary payload.
func GLB() []byte {
	b, err := Encode(Document())
	if err != nil {
		panic("sample: " + err.Error())
	}
	return b
}
