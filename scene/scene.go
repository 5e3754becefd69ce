// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package scene provides functionality for creating and
// tearing down the scene graph of a viewport.
package scene

import (
	"errors"

	"github.com/gviegas/folio/node"
)

const scenePrefix = "scene: "

func newSceneErr(reason string) error { return errors.New(scenePrefix + reason) }

var (
	// ErrDisposed means that the target of a graph
	// mutation has been disposed.
	ErrDisposed = newSceneErr("target disposed")

	// ErrOccupied means that an Anchor already holds
	// an asset.
	ErrOccupied = newSceneErr("anchor occupied")
)

// Scene defines a scene graph.
// It owns a root node, a camera node, the light nodes
// and any number of anchors.
type Scene struct {
	root    *node.Node
	camera  *node.Node
	lights  []*node.Node
	anchors []*Anchor
}

// New creates an initialized scene.
func New(cam node.Camera) *Scene { return new(Scene).Init(cam) }

// Init initializes a scene.
func (s *Scene) Init(cam node.Camera) *Scene {
	s.root = node.New("scene", nil)
	s.camera = node.New("camera", &cam)
	s.root.Insert(s.camera)
	s.lights = s.lights[:0]
	s.anchors = s.anchors[:0]
	return s
}

// Root returns the root node of s.
func (s *Scene) Root() *node.Node { return s.root }

// Camera returns the camera of s.
func (s *Scene) Camera() *node.Camera { return s.camera.Kind.(*node.Camera) }

// AddLight inserts a light node into s.
// It returns the new node.
func (s *Scene) AddLight(name string, light node.Light, t node.Transform) *node.Node {
	n := node.New(name, &light)
	n.Local = t
	s.root.Insert(n)
	s.lights = append(s.lights, n)
	return n
}

// Lights returns the light nodes of s.
func (s *Scene) Lights() []*node.Node { return s.lights }

// NewAnchor creates an empty Anchor as immediate
// descendant of the scene's root.
func (s *Scene) NewAnchor(name string) *Anchor {
	a := &Anchor{n: node.New(name, nil)}
	if s.Disposed() {
		a.n.Dispose()
		return a
	}
	s.root.Insert(a.n)
	s.anchors = append(s.anchors, a)
	return a
}

// Anchors returns the anchors of s.
func (s *Scene) Anchors() []*Anchor { return s.anchors }

// Dispose tears down s.
// Every node becomes disposed, including anchors and
// any assets they hold.
// Calling Dispose more than once has no effect.
func (s *Scene) Dispose() {
	if s.root.Disposed() {
		return
	}
	s.root.Dispose()
}

// Disposed returns whether s was disposed.
func (s *Scene) Disposed() bool { return s.root.Disposed() }
