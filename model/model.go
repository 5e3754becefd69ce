// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package model decodes glTF 2.0 assets into scene
// graph fragments.
package model

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"

	"github.com/gviegas/folio/linear"
	"github.com/gviegas/folio/material"
	"github.com/gviegas/folio/node"
)

const modelPrefix = "model: "

func newModelErr(reason string) error { return errors.New(modelPrefix + reason) }

var (
	// ErrEmpty means that the payload has no bytes.
	ErrEmpty = newModelErr("empty payload")

	// ErrNoScene means that the asset defines no scene
	// to instantiate.
	ErrNoScene = newModelErr("asset has no scene")
)

// Asset is a decoded model.
// Root is a detached Group whose descendants are the
// nodes of the asset's scene.
type Asset struct {
	Root *node.Node

	// Number of Mesh nodes and of distinct materials
	// in the fragment.
	Meshes    int
	Materials int
}

// Decode decodes a glTF payload (either binary or JSON
// with embedded buffers) into a new Asset.
func Decode(data []byte) (*Asset, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf(modelPrefix+"%w", err)
	}
	return Build(doc)
}

// Build creates the scene graph fragment of doc.
// It uses doc.Scene if set, otherwise the first scene.
func Build(doc *gltf.Document) (*Asset, error) {
	if len(doc.Scenes) == 0 {
		return nil, ErrNoScene
	}
	si := 0
	if doc.Scene != nil {
		si = *doc.Scene
	}
	if si < 0 || si >= len(doc.Scenes) {
		return nil, newModelErr("scene index out of range")
	}
	b := builder{
		doc:     doc,
		visited: make([]bool, len(doc.Nodes)),
		mats:    make([]*material.PBR, len(doc.Materials)),
	}
	sc := doc.Scenes[si]
	name := sc.Name
	if name == "" {
		name = "asset"
	}
	root := node.New(name, nil)
	for _, i := range sc.Nodes {
		n, err := b.node(i)
		if err != nil {
			return nil, err
		}
		root.Insert(n)
	}
	return &Asset{Root: root, Meshes: b.meshes, Materials: b.nmat}, nil
}

type builder struct {
	doc     *gltf.Document
	visited []bool
	mats    []*material.PBR
	dfl     *material.PBR
	meshes  int
	nmat    int
}

// node creates the subtree of doc.Nodes[i].
// glTF requires the node hierarchy to be a forest;
// reaching a node twice is an error.
func (b *builder) node(i int) (*node.Node, error) {
	if i < 0 || i >= len(b.doc.Nodes) {
		return nil, newModelErr("node index out of range")
	}
	if b.visited[i] {
		return nil, newModelErr(fmt.Sprintf("node %d has more than one parent", i))
	}
	b.visited[i] = true
	gn := b.doc.Nodes[i]
	n := node.New(gn.Name, nil)
	n.Local = transform(gn)
	if gn.Mesh != nil {
		if err := b.mesh(n, *gn.Mesh); err != nil {
			return nil, err
		}
	}
	for _, c := range gn.Children {
		sub, err := b.node(c)
		if err != nil {
			return nil, err
		}
		n.Insert(sub)
	}
	return n, nil
}

// mesh inserts one Mesh node per primitive of
// doc.Meshes[i] into n.
func (b *builder) mesh(n *node.Node, i int) error {
	if i < 0 || i >= len(b.doc.Meshes) {
		return newModelErr("mesh index out of range")
	}
	gm := b.doc.Meshes[i]
	for j, p := range gm.Primitives {
		m := &node.Mesh{Mesh: i, Primitive: j}
		if a, ok := p.Attributes[gltf.POSITION]; ok {
			if a < 0 || a >= len(b.doc.Accessors) {
				return newModelErr("accessor index out of range")
			}
			m.Vertices = b.doc.Accessors[a].Count
		}
		if p.Indices != nil {
			if *p.Indices < 0 || *p.Indices >= len(b.doc.Accessors) {
				return newModelErr("accessor index out of range")
			}
			m.Indices = b.doc.Accessors[*p.Indices].Count
		}
		mat, err := b.material(p.Material)
		if err != nil {
			return err
		}
		m.Material = mat
		name := gm.Name
		if len(gm.Primitives) > 1 {
			name = fmt.Sprintf("%s.%d", gm.Name, j)
		}
		n.Insert(node.New(name, m))
		b.meshes++
	}
	return nil
}

// material returns the shared material for index i.
func (b *builder) material(i *int) (*material.PBR, error) {
	if i == nil {
		if b.dfl == nil {
			p := material.Default()
			b.dfl = &p
			b.nmat++
		}
		return b.dfl, nil
	}
	if *i < 0 || *i >= len(b.doc.Materials) {
		return nil, newModelErr("material index out of range")
	}
	if p := b.mats[*i]; p != nil {
		return p, nil
	}
	p := convMaterial(b.doc.Materials[*i])
	b.mats[*i] = p
	b.nmat++
	return p, nil
}

func convMaterial(gm *gltf.Material) *material.PBR {
	p := material.Default()
	p.Name = gm.Name
	if pbr := gm.PBRMetallicRoughness; pbr != nil {
		if f := pbr.BaseColorFactor; f != nil {
			for k := range f {
				p.BaseColor.Factor[k] = float32(f[k])
			}
		}
		if t := pbr.BaseColorTexture; t != nil {
			p.BaseColor.TexRef = material.TexRef{Texture: t.Index, UVSet: t.TexCoord}
		}
		if f := pbr.MetallicFactor; f != nil {
			p.MetalRough.Metalness = float32(*f)
		}
		if f := pbr.RoughnessFactor; f != nil {
			p.MetalRough.Roughness = float32(*f)
		}
		if t := pbr.MetallicRoughnessTexture; t != nil {
			p.MetalRough.TexRef = material.TexRef{Texture: t.Index, UVSet: t.TexCoord}
		}
	}
	for k, f := range gm.EmissiveFactor {
		p.Emissive.Factor[k] = float32(f)
	}
	if t := gm.EmissiveTexture; t != nil {
		p.Emissive.TexRef = material.TexRef{Texture: t.Index, UVSet: t.TexCoord}
	}
	switch gm.AlphaMode {
	case gltf.AlphaBlend:
		p.AlphaMode = material.AlphaBlend
	case gltf.AlphaMask:
		p.AlphaMode = material.AlphaMask
	}
	if gm.AlphaCutoff != nil {
		p.AlphaCutoff = float32(*gm.AlphaCutoff)
	}
	p.DoubleSided = gm.DoubleSided
	return &p
}

// transform returns the local transform of gn.
// A matrix other than identity takes precedence over
// the TRS properties.
func transform(gn *gltf.Node) (t node.Transform) {
	if gn.Matrix != gltf.DefaultMatrix && gn.Matrix != ([16]float64{}) {
		return decompose(&gn.Matrix)
	}
	for k := range t.T {
		t.T[k] = float32(gn.Translation[k])
		t.S[k] = float32(gn.Scale[k])
		t.R.V[k] = float32(gn.Rotation[k])
	}
	t.R.R = float32(gn.Rotation[3])
	return
}

// decompose extracts translation, rotation and scale
// from a column-major affine matrix without shear.
func decompose(m *[16]float64) (t node.Transform) {
	var c [3]linear.V3
	for i := range c {
		for j := range c[i] {
			c[i][j] = float32(m[i*4+j])
		}
		t.S[i] = c[i].Len()
		if t.S[i] != 0 {
			c[i].Scale(1/t.S[i], &c[i])
		}
	}
	t.T = linear.V3{float32(m[12]), float32(m[13]), float32(m[14])}
	t.R = quatFromAxes(&c)
	return
}

// quatFromAxes converts an orthonormal basis (the columns
// of a rotation matrix) into a unit quaternion.
func quatFromAxes(c *[3]linear.V3) (q linear.Q) {
	m00, m11, m22 := c[0][0], c[1][1], c[2][2]
	switch tr := m00 + m11 + m22; {
	case tr > 0:
		s := 0.5 / math32.Sqrt(tr+1)
		q.R = 0.25 / s
		q.V = linear.V3{(c[1][2] - c[2][1]) * s, (c[2][0] - c[0][2]) * s, (c[0][1] - c[1][0]) * s}
	case m00 > m11 && m00 > m22:
		s := 2 * math32.Sqrt(1+m00-m11-m22)
		q.R = (c[1][2] - c[2][1]) / s
		q.V = linear.V3{0.25 * s, (c[1][0] + c[0][1]) / s, (c[2][0] + c[0][2]) / s}
	case m11 > m22:
		s := 2 * math32.Sqrt(1+m11-m00-m22)
		q.R = (c[2][0] - c[0][2]) / s
		q.V = linear.V3{(c[1][0] + c[0][1]) / s, 0.25 * s, (c[2][1] + c[1][2]) / s}
	default:
		s := 2 * math32.Sqrt(1+m22-m00-m11)
		q.R = (c[0][1] - c[1][0]) / s
		q.V = linear.V3{(c[2][0] + c[0][2]) / s, (c[2][1] + c[1][2]) / s, 0.25 * s}
	}
	return
}
