// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/isomap/matrix"
)

func BenchmarkSymmetricEigen(b *testing.B) {
	for _, n := range []int{32, 128} {
		a := RandSymmetric(b, n, 1)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, _, err := matrix.SymmetricEigen(a, matrix.DefaultEigenTolerance, matrix.DefaultEigenSweeps); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDoubleCenter(b *testing.B) {
	a := RandSymmetric(b, 512, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.DoubleCenter(a); err != nil {
			b.Fatal(err)
		}
	}
}
