// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"
)

func BenchmarkM4Mul(b *testing.B) {
	var m, n M4
	var q Q
	m.Translate(1, 2, 3)
	q.Rotate(0.5, &V3{0, 1, 0})
	n.RotateQ(&q)
	for i := 0; i < b.N; i++ {
		m.Mul(&m, &n)
	}
	b.Log(m)
}
