// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/kaolagithub/AeroSandbox/inp"
	"github.com/kaolagithub/AeroSandbox/out"
	"github.com/kaolagithub/AeroSandbox/vlm"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	save := io.ArgToBool(2, false)
	strips := io.ArgToBool(3, false)
	doprof := io.ArgToInt(4, 0)

	// message
	if verbose {
		io.PfWhite("\nGoVLM -- Go Vortex Lattice Method\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"airplane and operating points file", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save results", "save", save,
			"show spanwise loading", "strips", strips,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.Prof(doprof == 2, false)()
	}

	// simulation data
	sim := inp.ReadSim(fnamepath)

	// lattice and influence matrix
	analysis, err := vlm.NewMain(sim, verbose)
	if err != nil {
		chk.Panic("NewMain failed:\n%v", err)
	}
	defer analysis.Clean()

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	for _, res := range analysis.Results {
		io.Pf("\n%v", out.Summary(res))
		if strips {
			for i := range sim.Airplane.Wings {
				s, err := out.StripLoads(analysis.Lat, res, i)
				if err != nil {
					chk.Panic("StripLoads failed:\n%v", err)
				}
				io.Pf("\nwing %q\n%v", sim.Airplane.Wings[i].Name, out.StripTable(s))
			}
		}
	}
	if len(analysis.Results) > 1 {
		io.Pf("\n%v", out.SweepTable(analysis.Results))
	}

	// save
	if save || sim.Data.Save {
		fnpath, err := out.SaveResults(sim.DirOut, sim.Key, analysis.Results)
		if err != nil {
			chk.Panic("SaveResults failed:\n%v", err)
		}
		io.Pf("\nfile <%s> written\n", fnpath)
	}
}
