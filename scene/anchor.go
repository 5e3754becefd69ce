// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"github.com/gviegas/folio/node"
)

// Anchor is a stable, empty grouping node reserved to
// receive a single asset subtree.
type Anchor struct {
	n     *node.Node
	asset *node.Node
}

// Node returns the anchor's node.
func (a *Anchor) Node() *node.Node { return a.n }

// Live returns whether a can still receive an asset.
func (a *Anchor) Live() bool { return !a.n.Disposed() }

// Asset returns the attached subtree, or nil if none.
func (a *Anchor) Asset() *node.Node { return a.asset }

// Attach inserts sub as the asset of a.
// It fails with ErrDisposed if a is no longer live and
// with ErrOccupied if a already holds an asset; in both
// cases the graph is not changed.
func (a *Anchor) Attach(sub *node.Node) error {
	switch {
	case !a.Live():
		return ErrDisposed
	case a.asset != nil:
		return ErrOccupied
	}
	a.n.Insert(sub)
	a.asset = sub
	return nil
}
