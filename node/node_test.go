// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package node

import (
	"fmt"
	"testing"

	"github.com/gviegas/folio/linear"
	"github.com/gviegas/folio/material"
)

// fmt.Stringer for testing only.
// n.Name must have been set in order to produce
// meaningful output.
func (n *Node) String() string {
	const s = `
(%5s) <-> (%5s) <-> (%5s)
               |
               v
            (%5s)
`
	nd := [4]*Node{n.prev, n, n.next, n.sub}
	nm := [4]string{}
	for i := range nd {
		if nd[i] != nil {
			nm[i] = nd[i].Name
		} else {
			nm[i] = "<nil>"
		}
	}
	return fmt.Sprintf(s, nm[0], nm[1], nm[2], nm[3])
}

// logGraph outputs the scene graph whose root is n.
func (n *Node) logGraph(t *testing.T) {
	s := n.String()
	n.ForEach(func(n *Node) {
		s += n.String()
	})
	t.Log(s)
}

// testInsert calls n.Insert and checks that it works
// as expected.
func (n *Node) testInsert(sub *Node, t *testing.T) {
	n.Insert(sub)
	if n.sub != sub {
		t.Fatalf("n.Insert: n.sub\nhave %p\nwant %p\n%v", n.sub, sub, n)
	}
	if sub.prev != n {
		t.Fatalf("n.Insert: sub.prev\nhave %p\nwant %p\n%v", sub.prev, n, sub)
	}
	if p := sub.Parent(); p != n {
		t.Fatalf("n.Insert: sub.Parent()\nhave %p\nwant %p\n%v", p, n, sub)
	}
}

// testRemove calls n.Remove and checks that it works
// as expected.
func (n *Node) testRemove(t *testing.T) {
	var anc, sub *Node
	if x := n.prev; x != nil && n == x.sub {
		anc = x
		sub = n.next
	}
	n.Remove()
	if n.next != nil {
		t.Fatalf("n.Remove: n.next\nhave %p\nwant nil\n%v", n.next, n)
	}
	if n.prev != nil {
		t.Fatalf("n.Remove: n.prev\nhave %p\nwant nil\n%v", n.prev, n)
	}
	if anc != nil && anc.sub != sub {
		t.Fatalf("n.Remove: anc.sub\nhave %p\nwant %p\n%v", anc.sub, sub, anc)
	}
	if p := n.Parent(); p != nil {
		t.Fatalf("n.Remove: n.Parent()\nhave %p\nwant nil\n%v", p, n)
	}
}

func names(n ...string) (s []*Node) {
	for _, x := range n {
		s = append(s, New(x, nil))
	}
	return
}

func TestNode(t *testing.T) {
	s := names("n1", "n2", "n3", "n4", "n5")
	n1, n2, n3, n4, n5 := s[0], s[1], s[2], s[3], s[4]

	n1.testInsert(n2, t)
	n1.testInsert(n3, t)
	n1.testInsert(n4, t)
	n3.testInsert(n5, t)
	n1.logGraph(t)
	if n := n1.Len(); n != 3 {
		t.Fatalf("n1.Len\nhave %d\nwant 3", n)
	}
	if p := n2.Parent(); p != n1 {
		t.Fatalf("n2.Parent\nhave %v\nwant %v", p, n1)
	}
	if p := n5.Parent(); p != n3 {
		t.Fatalf("n5.Parent\nhave %v\nwant %v", p, n3)
	}
	n2.testRemove(t)
	n3.testRemove(t)
	n1.testRemove(t)
	n5.testRemove(t)
	n4.testRemove(t)
	n1.logGraph(t)
	n3.logGraph(t)
	if n := n1.Len(); n != 0 {
		t.Fatalf("n1.Len\nhave %d\nwant 0", n)
	}

	n5.testInsert(n4, t)
	n4.testInsert(n3, t)
	n3.testInsert(n2, t)
	n2.testInsert(n1, t)
	n5.logGraph(t)
	n1.testRemove(t)
	n2.testRemove(t)
	n3.testRemove(t)
	n4.testRemove(t)

	n1.testInsert(n2, t)
	n2.testInsert(n3, t)
	n1.testInsert(n2, t)
	n1.logGraph(t)
	n1.testInsert(n3, t)
	n1.logGraph(t)
	n2.testRemove(t)
	n3.testInsert(n2, t)
	n1.logGraph(t)
}

func TestForEach(t *testing.T) {
	s := names("root", "a", "b", "c", "d")
	s[0].Insert(s[1])
	s[0].Insert(s[2])
	s[2].Insert(s[3])
	s[3].Insert(s[4])

	seen := map[string]int{}
	order := []string{}
	s[0].ForEach(func(n *Node) {
		seen[n.Name]++
		order = append(order, n.Name)
	})
	for _, x := range s[1:] {
		if seen[x.Name] != 1 {
			t.Fatalf("ForEach: %s visited\nhave %d\nwant 1", x.Name, seen[x.Name])
		}
	}
	if seen["root"] != 0 {
		t.Fatal("ForEach: root must not be visited")
	}
	if order[len(order)-1] != "d" {
		t.Fatalf("ForEach: ancestors first\nhave %v", order)
	}

	var n int
	s[0].Until(func(*Node) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Fatalf("Until: calls\nhave %d\nwant 2", n)
	}
}

func TestMeshes(t *testing.T) {
	root := New("root", nil)
	pbr := material.Default()
	for i := 0; i < 3; i++ {
		g := New(fmt.Sprint("g", i), nil)
		g.Insert(New(fmt.Sprint("m", i), &Mesh{Mesh: i, Material: &pbr}))
		root.Insert(g)
	}
	root.Insert(New("sun", &Light{Type: DistantLight}))
	root.Insert(New("cam", &Camera{FOV: 50}))

	var n int
	root.Meshes(func(nd *Node, m *Mesh) {
		if nd.Kind != Kind(m) {
			t.Fatalf("Meshes: kind mismatch for %s", nd.Name)
		}
		n++
	})
	if n != 3 {
		t.Fatalf("Meshes: calls\nhave %d\nwant 3", n)
	}
}

func TestDispose(t *testing.T) {
	s := names("root", "anchor", "child")
	s[0].Insert(s[1])
	s[1].Insert(s[2])
	s[1].Dispose()
	if !s[1].Disposed() || !s[2].Disposed() {
		t.Fatal("Dispose: subtree must be disposed")
	}
	if s[0].Disposed() {
		t.Fatal("Dispose: ancestor must not be disposed")
	}
	if s[0].Len() != 0 {
		t.Fatal("Dispose: node must be removed from its ancestor")
	}
}

func TestWorld(t *testing.T) {
	root := New("root", nil)
	child := New("child", nil)
	root.Insert(child)
	root.Local.T = linear.V3{0, -1, 0}
	root.Local.S = linear.V3{2, 2, 2}
	child.Local.T = linear.V3{1, 0, 0}

	var m linear.M4
	child.World(&m)
	v := linear.V4{0, 0, 0, 1}
	v.Mul(&m, &v)
	if v != (linear.V4{2, -1, 0, 1}) {
		t.Fatalf("World\nhave %v\nwant [2 -1 0 1]", v)
	}
}
