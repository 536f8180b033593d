// Package testutil provides shared test utilities and fixtures.
//
// This package centralises the matrix and vector comparisons used across the
// convention and coordsys tests.
package testutil

import (
	"testing"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Tolerance is the default absolute tolerance for floating point comparisons.
const Tolerance = 1e-9

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertMatrixNear fails the test if got and want differ in shape or in any
// element by more than tol.
func AssertMatrixNear(t *testing.T, got, want mat.Matrix, tol float64) {
	t.Helper()
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		t.Fatalf("matrix dims = %dx%d, want %dx%d", gr, gc, wr, wc)
	}
	if !mat.EqualApprox(got, want, tol) {
		t.Errorf("matrix mismatch\ngot:\n%v\nwant:\n%v",
			mat.Formatted(got, mat.Squeeze()), mat.Formatted(want, mat.Squeeze()))
	}
}

// AssertVectorNear fails the test if got and want differ in any component by
// more than tol.
func AssertVectorNear(t *testing.T, got, want r3.Vector, tol float64) {
	t.Helper()
	if maxAbs(got.Sub(want)) > tol {
		t.Errorf("vector = %v, want %v", got, want)
	}
}

// NewMatrix builds an N×3 matrix from rows, convenient for literals in tests.
func NewMatrix(rows ...[3]float64) *mat.Dense {
	data := make([]float64, 0, 3*len(rows))
	for _, r := range rows {
		data = append(data, r[:]...)
	}
	return mat.NewDense(len(rows), 3, data)
}

func maxAbs(v r3.Vector) float64 {
	a := v.Abs()
	m := a.X
	if a.Y > m {
		m = a.Y
	}
	if a.Z > m {
		m = a.Z
	}
	return m
}
