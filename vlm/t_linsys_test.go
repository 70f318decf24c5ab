// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/kaolagithub/AeroSandbox/inp"
)

func Test_linsys01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linsys01. factorisation and solution of small systems")

	var dat inp.SolverData
	dat.SetDefault()

	// regular system with x = {1, 2, 3}
	A := [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	}
	sys, err := NewLinSys(A, &dat)
	if err != nil {
		tst.Errorf("NewLinSys failed:\n%v", err)
		return
	}
	defer sys.Free()
	io.Pforan("cond = %v\n", sys.Cond)
	if sys.Cond < 1 {
		tst.Errorf("condition number must be greater than or equal to one: %g", sys.Cond)
	}
	x, err := sys.Solve([]float64{6, 10, 8})
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Array(tst, "x", 1e-13, x, []float64{1, 2, 3})

	// same matrix serves another right-hand side
	x, err = sys.Solve([]float64{4, 1, 0})
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Array(tst, "x", 1e-13, x, []float64{1, 0, 0})

	// right-hand side with wrong size
	_, err = sys.Solve([]float64{1, 2})
	if err == nil {
		tst.Errorf("right-hand side with wrong size must fail")
	}
	io.Pforan("ok: %v\n", err)
}

func Test_linsys02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linsys02. singular and ill-conditioned systems")

	var dat inp.SolverData
	dat.SetDefault()

	// duplicate rows
	sys, err := NewLinSys([][]float64{
		{1, 2, 0},
		{1, 2, 0},
		{0, 0, 1},
	}, &dat)
	if err == nil {
		sys.Free()
		tst.Errorf("singular matrix must fail")
		return
	}
	io.Pforan("ok: %v\n", err)

	// condition number above limit
	dat.MaxCond = 2
	sys, err = NewLinSys([][]float64{
		{1, 0},
		{0, 1e-3},
	}, &dat)
	if err == nil {
		sys.Free()
		tst.Errorf("ill-conditioned matrix must fail")
		return
	}
	io.Pforan("ok: %v\n", err)

	// empty and zero matrices
	dat.SetDefault()
	dat.NoCond = true
	if _, err = NewLinSys(nil, &dat); err == nil {
		tst.Errorf("empty matrix must fail")
	}
	if _, err = NewLinSys([][]float64{{0, 0}, {0, 0}}, &dat); err == nil {
		tst.Errorf("zero matrix must fail")
	}
}
