// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aic

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/kaolagithub/AeroSandbox/pnl"
	"golang.org/x/sync/errgroup"
)

// Assemble computes the aerodynamic influence coefficients matrix
//
//   A[i][j] = v_j(cp_i) ・ n_i
//
//  where v_j is the velocity induced by the unit-strength horseshoe vortex of panel j
//  Input:
//   lat   -- lattice
//   tol   -- relative vortex core size
//   nproc -- number of goroutines; rows are split among them
func Assemble(lat *pnl.Lattice, tol float64, nproc int) (A [][]float64, err error) {
	n := lat.Npanels()
	if n == 0 {
		return nil, chk.Err("cannot assemble influence matrix: lattice has no panels")
	}
	A = utl.Alloc(n, n)
	err = forRows(n, nproc, func(i int) error {
		pi := lat.Panels[i]
		v, d := make([]float64, 3), wakeDir()
		for j, pj := range lat.Panels {
			v[0], v[1], v[2] = 0, 0, 0
			Horseshoe(v, pi.Cp, pj.A, pj.B, d, tol)
			A[i][j] = utl.Dot3d(v, pi.N)
		}
		return nil
	})
	return
}

// Velocities computes the velocities induced at points by all horseshoe vortices
//  Input:
//   lat   -- lattice
//   pts   -- [npts][3] points
//   gamma -- [npanels] circulations
//   tol   -- relative vortex core size
//   nproc -- number of goroutines
//  Output:
//   V -- [npts][3] induced velocities
func Velocities(lat *pnl.Lattice, pts [][]float64, gamma []float64, tol float64, nproc int) (V [][]float64, err error) {
	if len(gamma) != lat.Npanels() {
		return nil, chk.Err("number of circulations (%d) must be equal to the number of panels (%d)", len(gamma), lat.Npanels())
	}
	V = utl.Alloc(len(pts), 3)
	err = forRows(len(pts), nproc, func(i int) error {
		v, d := make([]float64, 3), wakeDir()
		for j, pj := range lat.Panels {
			if gamma[j] == 0 {
				continue
			}
			v[0], v[1], v[2] = 0, 0, 0
			Horseshoe(v, pts[i], pj.A, pj.B, d, tol)
			V[i][0] += gamma[j] * v[0]
			V[i][1] += gamma[j] * v[1]
			V[i][2] += gamma[j] * v[2]
		}
		return nil
	})
	return
}

// forRows runs fcn for rows 0 ≤ i < n using nproc goroutines
//  Note: each goroutine handles a contiguous block of rows
func forRows(n, nproc int, fcn func(i int) error) error {
	if nproc < 2 || n < 2 {
		for i := 0; i < n; i++ {
			if err := fcn(i); err != nil {
				return err
			}
		}
		return nil
	}
	if nproc > n {
		nproc = n
	}
	var g errgroup.Group
	size := (n + nproc - 1) / nproc
	for start := 0; start < n; start += size {
		start, end := start, utl.Imin(start+size, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := fcn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
