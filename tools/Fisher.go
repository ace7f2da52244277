package tools

/*
Accumulates single-event weight vectors into a Fisher-information-like
matrix: the running sum of outer products p (x) p across the events of one
trial. The buffer may be reused across trials, but only through Reset.
*/

import (
	"gonum.org/v1/gonum/mat"
)

type FisherMatrix struct {
	size int
	sym  *mat.SymDense
}

// Constructor
func NewFisherMatrix(size int) *FisherMatrix {
	return &FisherMatrix{
		size: size,
		sym:  mat.NewSymDense(size, nil),
	}
}

func (f *FisherMatrix) Size() int { return f.size }

// Zeroes the matrix; required before reusing the buffer for a new trial
func (f *FisherMatrix) Reset() {
	f.sym.Zero()
}

// Adds one event's outer product p (x) p
func (f *FisherMatrix) Accumulate(p []float64) {
	f.sym.SymRankOne(f.sym, 1, mat.NewVecDense(len(p), p))
}

// The accumulated symmetric matrix
func (f *FisherMatrix) Sym() *mat.SymDense {
	return f.sym
}
