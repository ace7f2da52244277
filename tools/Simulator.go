package tools

/*
Runs draw-and-accumulate trials for one generator family.
Each simulator owns its Fisher buffer, so independent simulators can run
trials concurrently without sharing state.
*/

import (
	"math/rand"
)

// Outcome of one fully accumulated trial
type TrialResult struct {
	Rank   int
	MaxEig float64
	Eigs   []float64   //retained only when eigenvalue diagnostics are on
	Grid   []float64   //retained only when single-event plotting is on
	Draws  [][]float64 //retained only when single-event plotting is on
}

type TrialSimulator struct {
	gen       Generator
	fisher    *FisherMatrix
	keepEigs  bool
	keepDraws bool
}

// Constructor
func NewTrialSimulator(gen Generator, keepEigs bool, keepDraws bool) *TrialSimulator {
	return &TrialSimulator{
		gen:       gen,
		fisher:    NewFisherMatrix(gen.Size()),
		keepEigs:  keepEigs,
		keepDraws: keepDraws,
	}
}

// Runs one full trial: reset the buffer, draw nevent independent
// single-event distributions, accumulate each, then analyze the spectrum
func (ts *TrialSimulator) RunTrial(nevent int, rng *rand.Rand) TrialResult {
	ts.fisher.Reset()

	var res TrialResult
	for i := 0; i < nevent; i++ {
		x, p := ts.gen.Generate(rng)
		ts.fisher.Accumulate(p)
		if ts.keepDraws {
			if res.Grid == nil {
				res.Grid = x //the grid is fixed for the family, keep one copy
			}
			res.Draws = append(res.Draws, p)
		}
	}

	eigs := Eigenvalues(ts.fisher.Sym())
	res.Rank = Rank(ts.fisher.Sym())
	res.MaxEig = MaxAbsEigenvalue(eigs)
	if ts.keepEigs {
		res.Eigs = eigs
	}
	return res
}
