// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package node

import (
	"github.com/gviegas/folio/linear"
)

// Transform is a translation, rotation and scale.
type Transform struct {
	T linear.V3
	R linear.Q
	S linear.V3
}

// I makes t an identity transform.
func (t *Transform) I() {
	t.T = linear.V3{}
	t.R.I()
	t.S = linear.V3{1, 1, 1}
}

// Matrix sets m to contain T ⋅ R ⋅ S.
func (t *Transform) Matrix(m *linear.M4) {
	var r, s linear.M4
	m.Translate(t.T[0], t.T[1], t.T[2])
	r.RotateQ(&t.R)
	s.Scale(t.S[0], t.S[1], t.S[2])
	m.Mul(m, &r)
	m.Mul(m, &s)
}

// Rotate prepends the rotation of angle radians about
// axis to t.R.
// axis must be a unit vector.
func (t *Transform) Rotate(angle float32, axis *linear.V3) {
	var q linear.Q
	q.Rotate(angle, axis)
	t.R.Mul(&q, &t.R)
}
