// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package node provides the elements of the scene graph.
package node

import (
	"github.com/gviegas/folio/linear"
)

// Node represents a single node in a scene graph.
// Nodes have at most one immediate ancestor and
// an arbitrary number of immediate descendants.
type Node struct {
	next *Node
	prev *Node
	sub  *Node

	disposed bool

	// Name for the node.
	// It is not used by node code.
	Name string

	// Kind is the node's payload.
	// It must not be nil.
	Kind Kind

	// Local is the transform relative to the
	// immediate ancestor.
	Local Transform
}

// New creates an initialized node of the given kind.
// If kind is nil, the node is a Group.
func New(name string, kind Kind) *Node {
	return (&Node{Name: name, Kind: kind}).Init()
}

// Init initializes node n.
func (n *Node) Init() *Node {
	if n.Kind == nil {
		n.Kind = &Group{}
	}
	n.Local.I()
	return n
}

// Insert inserts node sub as immediate descendant
// of node n.
// sub must be either a descendant of n or part of
// an unrelated graph - it must not be an ancestor
// of node n.
func (n *Node) Insert(sub *Node) {
	sub.Remove()
	sub.next = n.sub
	sub.prev = n
	if n.sub != nil {
		n.sub.prev = sub
	}
	n.sub = sub
}

// Remove removes node n from its immediate ancestor.
func (n *Node) Remove() {
	// Note that Node.prev is only nil when the node
	// has no ancestors, since the prev field of the
	// first immediate descendant is set to refer to
	// its immediate ancestor.
	if n.prev != nil {
		if n.prev.sub == n {
			n.prev.sub = n.next
		} else {
			n.prev.next = n.next
		}
		if n.next != nil {
			n.next.prev = n.prev
		}
		n.prev = nil
		n.next = nil
	}
}

// Parent returns the immediate ancestor of node n,
// or nil if n has none.
func (n *Node) Parent() *Node {
	for x := n; x.prev != nil; x = x.prev {
		if x.prev.sub == x {
			return x.prev
		}
	}
	return nil
}

// Children returns the immediate descendants of node n.
// The most recently inserted node comes first.
func (n *Node) Children() (s []*Node) {
	for nd := n.sub; nd != nil; nd = nd.next {
		s = append(s, nd)
	}
	return
}

// Len returns the number of immediate descendants of
// node n.
func (n *Node) Len() (c int) {
	for nd := n.sub; nd != nil; nd = nd.next {
		c++
	}
	return
}

// ForEach calls f for each descendant of node n.
// Ancestors are processed first.
// The scene graph must not be changed until this
// method returns.
func (n *Node) ForEach(f func(*Node)) {
	n.Until(func(nd *Node) bool {
		f(nd)
		return true
	})
}

// Until calls f for each descendant of node n.
// Ancestors are processed first. If f returns false,
// Until returns immediately.
// The scene graph must not be changed until this
// method returns.
func (n *Node) Until(f func(*Node) bool) {
	if n.sub == nil {
		return
	}
	que := []*Node{n.sub}
	for len(que) > 0 {
		for nd := que[0]; nd != nil; nd = nd.next {
			if !f(nd) {
				return
			}
			if sub := nd.sub; sub != nil {
				que = append(que, sub)
			}
		}
		que = que[1:]
	}
}

// Meshes calls f for each descendant of node n
// whose kind is Mesh.
func (n *Node) Meshes(f func(*Node, *Mesh)) {
	n.ForEach(func(nd *Node) {
		if m, ok := nd.Kind.(*Mesh); ok {
			f(nd, m)
		}
	})
}

// Dispose removes node n from its ancestor and marks
// it and all of its descendants as disposed.
// Disposed nodes must not be used as insertion targets.
func (n *Node) Dispose() {
	n.Remove()
	n.disposed = true
	n.ForEach(func(nd *Node) { nd.disposed = true })
}

// Disposed returns whether n.Dispose was called on n
// or on one of its former ancestors.
func (n *Node) Disposed() bool { return n.disposed }

// World sets m to contain the world transform of node n.
func (n *Node) World(m *linear.M4) {
	n.Local.Matrix(m)
	var l linear.M4
	for p := n.Parent(); p != nil; p = p.Parent() {
		p.Local.Matrix(&l)
		m.Mul(&l, m)
	}
}
