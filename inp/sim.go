// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.json or .yaml) airplane file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`       // description of simulation
	DirOut  string `json:"dirout" yaml:"dirout"`   // directory for output; e.g. /tmp/govlm
	RefWing int    `json:"refwing" yaml:"refwing"` // index of wing used to set reference dimensions when Sref == 0
	Save    bool   `json:"save" yaml:"save"`       // save results to DirOut
}

// SolverData holds VLM solver data
type SolverData struct {
	LinSol  string  `json:"linsol" yaml:"linsol"`   // linear solver name; e.g. "umfpack"
	Nproc   int     `json:"nproc" yaml:"nproc"`     // number of goroutines to assemble influence matrix; 0 => NumCPU
	MaxCond float64 `json:"maxcond" yaml:"maxcond"` // maximum condition number of influence matrix
	CoreTol float64 `json:"coretol" yaml:"coretol"` // relative vortex core size; points closer to a filament get no induced velocity
	NoCond  bool    `json:"nocond" yaml:"nocond"`   // skip computation of condition number
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data     Data       `json:"data" yaml:"data"`         // global data
	Airplane *Airplane  `json:"airplane" yaml:"airplane"` // geometry
	OpPoints []*OpPoint `json:"oppoints" yaml:"oppoints"` // operating points; e.g. alpha sweep
	Solver   SolverData `json:"solver" yaml:"solver"`     // solver data

	// derived
	DirOut string // directory to save results
	Key    string // simulation key; e.g. mysim01.json => mysim01
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// ReadSim reads all simulation data from a .json or .yaml file
func ReadSim(simfilepath string) *Simulation {

	// new sim
	var o Simulation
	o.Solver.SetDefault()

	// read file; panics on failure
	b := io.ReadFile(simfilepath)

	// decode
	var err error
	ext := strings.ToLower(filepath.Ext(simfilepath))
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &o)
	default:
		err = json.Unmarshal(b, &o)
	}
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// filename key
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/govlm/" + o.Key
	}

	// derived values
	err = o.PostProcess()
	if err != nil {
		chk.Panic("ReadSim: simulation file %q is inconsistent:\n%v", simfilepath, err)
	}
	return &o
}

// NewSimulation returns a simulation built in memory; e.g. by scripts or tests
func NewSimulation(key string, airplane *Airplane, oppoints ...*OpPoint) (o *Simulation, err error) {
	o = &Simulation{Airplane: airplane, OpPoints: oppoints, Key: key}
	o.Solver.SetDefault()
	o.DirOut = "/tmp/govlm/" + key
	err = o.PostProcess()
	return
}

// PostProcess sets default values and reference dimensions
func (o *Simulation) PostProcess() (err error) {
	if o.Airplane == nil {
		return chk.Err("airplane data is missing")
	}
	for _, w := range o.Airplane.Wings {
		if w != nil {
			w.SetDefault()
		}
	}
	for _, op := range o.OpPoints {
		if op != nil {
			op.SetDefault()
		}
	}
	if o.Airplane.Sref == 0 {
		err = o.Airplane.SetRefDimsFromWing(o.Data.RefWing)
		if err != nil {
			return
		}
	}
	o.Solver.PostProcess()
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets defaults values
func (o *SolverData) SetDefault() {
	o.LinSol = "umfpack"
	o.MaxCond = 1e12
	o.CoreTol = 1e-8
}

// PostProcess fixes values after the file has been read
func (o *SolverData) PostProcess() {
	if o.LinSol == "" {
		o.LinSol = "umfpack"
	}
	if o.Nproc < 1 {
		o.Nproc = runtime.NumCPU()
	}
	if o.MaxCond <= 0 {
		o.MaxCond = 1e12
	}
	if o.CoreTol <= 0 {
		o.CoreTol = 1e-8
	}
}
