// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/kaolagithub/AeroSandbox/inp"
)

// LinSys holds the factorised influence matrix
//  Note: the wake is aligned with the x-axis; thus the matrix does not depend on the
//        operating point and one LU factorisation serves all right-hand sides
type LinSys struct {
	N       int             // dimension
	Cond    float64         // condition number (Frobenius norm); 0 if not computed
	MaxCond float64         // maximum allowed condition number
	Kb      *la.Triplet     // influence matrix in triplet format
	LinSol  la.SparseSolver // linear solver
}

// NewLinSys factorises the influence matrix A
func NewLinSys(A [][]float64, dat *inp.SolverData) (o *LinSys, err error) {

	// check
	n := len(A)
	if n == 0 {
		return nil, chk.Err("influence matrix is empty")
	}
	o = &LinSys{N: n, MaxCond: dat.MaxCond}

	// condition number
	if !dat.NoCond {
		err = protect(func() {
			o.Cond = la.MatCondNum(la.NewMatrixDeep2(A), "F")
		})
		if err != nil {
			return nil, chk.Err("influence matrix is singular; duplicate or degenerate panels?\n%v", err)
		}
		if math.IsNaN(o.Cond) || math.IsInf(o.Cond, 0) || o.Cond > o.MaxCond {
			return nil, chk.Err("influence matrix is ill-conditioned: cond = %g > %g; duplicate or degenerate panels?", o.Cond, o.MaxCond)
		}
	}

	// triplet
	o.Kb = new(la.Triplet)
	o.Kb.Init(n, n, n*n)
	o.Kb.Start()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if A[i][j] != 0 {
				o.Kb.Put(i, j, A[i][j])
			}
		}
	}
	if o.Kb.Len() == 0 {
		return nil, chk.Err("influence matrix has no non-zero entries")
	}

	// initialisation
	err = protect(func() {
		o.LinSol = la.NewSparseSolver(dat.LinSol)
		symmetric, verbose := false, false
		o.LinSol.Init(o.Kb, symmetric, verbose, "", "", nil)
	})
	if err != nil {
		o.LinSol = nil
		return nil, chk.Err("cannot initialise linear solver %q:\n%v", dat.LinSol, err)
	}

	// factorisation
	err = protect(o.LinSol.Fact)
	if err != nil {
		o.Free()
		return nil, chk.Err("factorisation of influence matrix failed (cond = %g):\n%v", o.Cond, err)
	}
	return
}

// Solve solves A・x = b
func (o *LinSys) Solve(b []float64) (x []float64, err error) {
	if len(b) != o.N {
		return nil, chk.Err("right-hand side has wrong dimension: %d != %d", len(b), o.N)
	}
	x = make([]float64, o.N)
	err = protect(func() {
		o.LinSol.Solve(x, b, false)
	})
	if err != nil {
		return nil, chk.Err("solution of linear system failed (cond = %g):\n%v", o.Cond, err)
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, chk.Err("circulation # %d is not finite (cond = %g); influence matrix is singular", i, o.Cond)
		}
	}
	return
}

// Free frees linear solver resources
func (o *LinSys) Free() {
	if o.LinSol != nil {
		o.LinSol.Free()
	}
}

// protect runs fcn and returns its panic, if any, as an error
func protect(fcn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()
	fcn()
	return
}
