// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlm

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"github.com/kaolagithub/AeroSandbox/aic"
	"github.com/kaolagithub/AeroSandbox/inp"
)

// Results holds the solution of one operating point
//  Note: Force and Moment are in body axes; moments are computed about the reference point
type Results struct {

	// input
	Op *inp.OpPoint // operating point

	// solution
	Gamma       []float64   // [npanels] circulations
	Vmid        [][]float64 // [npanels][3] local velocity at the middle of bound vortices
	PanelForces [][]float64 // [npanels][3] Kutta-Joukowski forces on bound vortices
	Cond        float64     // condition number of influence matrix

	// totals
	Force  []float64 // total force
	Moment []float64 // total moment about reference point
	L      float64   // lift
	D      float64   // induced drag
	Y      float64   // side force

	// coefficients
	CL    float64 // lift coefficient
	CDi   float64 // induced drag coefficient
	CY    float64 // side force coefficient
	Cl    float64 // rolling moment coefficient
	Cm    float64 // pitching moment coefficient
	Cn    float64 // yawing moment coefficient
	CLCDi float64 // lift to induced drag ratio; 0 if CDi == 0
}

// postprocess computes forces and coefficients from circulations
//
//   V_i = V∞ + Σ_j Γ_j v_j(mid_i)
//   F_i = ρ Γ_i (V_i × (B_i - A_i))
//   M   = Σ_i (mid_i - ref) × F_i
//
//  Note: neighbouring panels share trailing legs; thus only circulation differences
//        reach the wake and the sum of bound-vortex forces integrates them
func (o *Main) postprocess(op *inp.OpPoint, gamma []float64) (res *Results, err error) {

	// new results
	lat := o.Lat
	n := lat.Npanels()
	res = &Results{Op: op, Gamma: gamma, Cond: o.Sys.Cond}

	// local velocities at bound vortices
	pts := make([][]float64, n)
	for i, p := range lat.Panels {
		pts[i] = p.Mid
	}
	res.Vmid, err = aic.Velocities(lat, pts, gamma, o.Sim.Solver.CoreTol, o.Sim.Solver.Nproc)
	if err != nil {
		return nil, err
	}
	d := op.Freestream()
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			res.Vmid[i][k] += op.Velocity * d[k]
		}
	}

	// Kutta-Joukowski
	ρ := op.Density
	res.PanelForces = make([][]float64, n)
	res.Force = make([]float64, 3)
	res.Moment = make([]float64, 3)
	r := make([]float64, 3)
	m := make([]float64, 3)
	for i, p := range lat.Panels {
		f := make([]float64, 3)
		utl.Cross3d(f, res.Vmid[i], p.Span()) // f := V cross l
		for k := 0; k < 3; k++ {
			f[k] *= ρ * gamma[i]
			res.Force[k] += f[k]
			r[k] = p.Mid[k] - lat.XyzRef[k]
		}
		utl.Cross3d(m, r, f) // m := r cross f
		for k := 0; k < 3; k++ {
			res.Moment[k] += m[k]
		}
		res.PanelForces[i] = f
	}

	// wind axes
	lift := op.LiftDir()
	side := make([]float64, 3)
	utl.Cross3d(side, lift, d) // side := lift cross drag
	res.L = utl.Dot3d(res.Force, lift)
	res.D = utl.Dot3d(res.Force, d)
	res.Y = utl.Dot3d(res.Force, side)

	// coefficients
	qS := op.DynPressure() * lat.Sref
	res.CL = res.L / qS
	res.CDi = res.D / qS
	res.CY = res.Y / qS
	res.Cl = res.Moment[0] / (qS * lat.Bref)
	res.Cm = res.Moment[1] / (qS * lat.Cref)
	res.Cn = res.Moment[2] / (qS * lat.Bref)
	if math.Abs(res.CDi) > 0 {
		res.CLCDi = res.CL / res.CDi
	}
	return
}
