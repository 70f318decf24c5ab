// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vlm implements the vortex lattice method solver
package vlm

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/kaolagithub/AeroSandbox/aic"
	"github.com/kaolagithub/AeroSandbox/inp"
	"github.com/kaolagithub/AeroSandbox/pnl"
)

// Main holds all data for a simulation using the vortex lattice method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Lat     *pnl.Lattice    // panels
	AIC     [][]float64     // [npanels][npanels] aerodynamic influence coefficients
	Sys     *LinSys         // factorised linear system
	Results []*Results      // results for each operating point in Sim.OpPoints (set by Run)
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   sim     -- simulation data; e.g. from inp.ReadSim or inp.NewSimulation
//   verbose -- show messages
//  Note: geometry is validated, discretised and the influence matrix is assembled
//        and factorised here; thus NewMain fails before any solve if the input is invalid
func NewMain(sim *inp.Simulation, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.Sim = sim
	o.ShowMsg = verbose

	// check input
	if sim == nil || sim.Airplane == nil {
		return nil, chk.Err("simulation data and airplane must be given")
	}
	err = sim.Airplane.Validate()
	if err != nil {
		return nil, chk.Err("invalid geometry:\n%v", err)
	}

	// panels
	o.Lat, err = pnl.NewLattice(sim.Airplane)
	if err != nil {
		return nil, chk.Err("invalid geometry:\n%v", err)
	}
	if o.ShowMsg {
		io.Pf("> Lattice with %d panels created\n", o.Lat.Npanels())
	}

	// influence matrix
	o.AIC, err = aic.Assemble(o.Lat, sim.Solver.CoreTol, sim.Solver.Nproc)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Influence matrix assembled using %d goroutines\n", sim.Solver.Nproc)
	}

	// linear system
	o.Sys, err = NewLinSys(o.AIC, &sim.Solver)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Influence matrix factorised. cond = %g\n", o.Sys.Cond)
	}
	return
}

// Run solves all operating points
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Solving %d operating points\n", len(o.Sim.OpPoints))
	}

	// loop over operating points
	o.Results = make([]*Results, 0, len(o.Sim.OpPoints))
	for i, op := range o.Sim.OpPoints {
		res, e := o.Solve(op)
		if e != nil {
			o.Results = nil
			return chk.Err("operating point # %d failed:\n%v", i, e)
		}
		o.Results = append(o.Results, res)
		if o.ShowMsg {
			io.Pforan("  α = %6.2f° β = %6.2f°  CL = %8.5f  CDi = %9.6f  Cm = %8.5f\n", op.Alpha, op.Beta, res.CL, res.CDi, res.Cm)
		}
	}
	return
}

// Solve solves one operating point
func (o *Main) Solve(op *inp.OpPoint) (res *Results, err error) {
	if op == nil {
		return nil, chk.Err("operating point must be given")
	}
	err = op.Validate()
	if err != nil {
		return nil, err
	}

	// right-hand side: -V∞・n
	V := op.Velocity
	d := op.Freestream()
	n := o.Lat.Npanels()
	rhs := make([]float64, n)
	for i, p := range o.Lat.Panels {
		rhs[i] = -V * (d[0]*p.N[0] + d[1]*p.N[1] + d[2]*p.N[2])
	}

	// circulations
	gamma, err := o.Sys.Solve(rhs)
	if err != nil {
		return nil, err
	}

	// forces and coefficients
	return o.postprocess(op, gamma)
}

// Clean frees linear solver resources
func (o *Main) Clean() {
	if o.Sys != nil {
		o.Sys.Free()
	}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
