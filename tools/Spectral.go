package tools

/*
Spectral analysis of an accumulated Fisher matrix: numerical rank via SVD
and the eigenvalue spectrum via symmetric eigendecomposition.

Eigenvalue magnitudes are taken with math.Abs rather than clamped at zero:
the matrix is positive semi-definite by construction, so anything beyond a
tiny negative excursion signals an accumulation bug and should stay visible
in the diagnostics instead of being flattened away.
*/

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// IEEE 754 double machine epsilon
const machEps = 1.0 / (1 << 52)

// Numerical rank: the count of singular values above n*eps*sigma_max, the
// conventional dimension-scaled tolerance. Well-defined on singular and
// zero matrices.
func Rank(sym *mat.SymDense) int {
	var svd mat.SVD
	if !svd.Factorize(sym, mat.SVDNone) {
		return 0
	}
	values := svd.Values(nil) //descending order
	if len(values) == 0 {
		return 0
	}
	tol := float64(len(values)) * machEps * values[0]
	rank := 0
	for _, s := range values {
		if s > tol {
			rank++
		}
	}
	return rank
}

// Eigenvalue magnitudes of the accumulated matrix
func Eigenvalues(sym *mat.SymDense) []float64 {
	var eig mat.EigenSym
	if !eig.Factorize(sym, false) {
		return nil
	}
	vals := eig.Values(nil)
	for i, v := range vals {
		vals[i] = math.Abs(v)
	}
	return vals
}

// Largest eigenvalue magnitude; 0 for an empty spectrum
func MaxAbsEigenvalue(eigs []float64) float64 {
	max := 0.0
	for _, v := range eigs {
		if v > max {
			max = v
		}
	}
	return max
}

// Offsets for the scaling diagnostic: log10 of each positive eigenvalue
// magnitude minus log10 of the event count. Non-positive magnitudes are
// dropped here only; Rank uses its own tolerance and is unaffected.
func LogEigOffsets(eigs []float64, nevent int) []float64 {
	out := make([]float64, 0, len(eigs))
	shift := math.Log10(float64(nevent))
	for _, v := range eigs {
		if v > 0 {
			out = append(out, math.Log10(v)-shift)
		}
	}
	return out
}
