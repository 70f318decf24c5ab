// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of vortex lattice results; e.g. tables and files
package out

import (
	"bytes"
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/kaolagithub/AeroSandbox/vlm"
)

// Record holds the results of one operating point as saved to files
type Record struct {
	Velocity float64   `json:"velocity"` // freestream speed
	Alpha    float64   `json:"alpha"`    // angle of attack [deg]
	Beta     float64   `json:"beta"`     // sideslip angle [deg]
	Density  float64   `json:"density"`  // air density
	CL       float64   `json:"cl"`       // lift coefficient
	CDi      float64   `json:"cdi"`      // induced drag coefficient
	CY       float64   `json:"cy"`       // side force coefficient
	Cl       float64   `json:"croll"`    // rolling moment coefficient
	Cm       float64   `json:"cm"`       // pitching moment coefficient
	Cn       float64   `json:"cn"`       // yawing moment coefficient
	CLCDi    float64   `json:"clcdi"`    // lift to induced drag ratio
	Cond     float64   `json:"cond"`     // condition number of influence matrix
	Force    []float64 `json:"force"`    // total force (body axes)
	Moment   []float64 `json:"moment"`   // total moment about reference point (body axes)
	Gamma    []float64 `json:"gamma"`    // circulations
}

// NewRecord returns a new record from results
func NewRecord(res *vlm.Results) *Record {
	return &Record{
		Velocity: res.Op.Velocity,
		Alpha:    res.Op.Alpha,
		Beta:     res.Op.Beta,
		Density:  res.Op.Density,
		CL:       res.CL,
		CDi:      res.CDi,
		CY:       res.CY,
		Cl:       res.Cl,
		Cm:       res.Cm,
		Cn:       res.Cn,
		CLCDi:    res.CLCDi,
		Cond:     res.Cond,
		Force:    res.Force,
		Moment:   res.Moment,
		Gamma:    res.Gamma,
	}
}

// Summary returns a table with the coefficients of one operating point
func Summary(res *vlm.Results) string {
	l := io.Sf("%s\n", line(40))
	l += io.Sf("%-24s%16g\n", "velocity", res.Op.Velocity)
	l += io.Sf("%-24s%16g\n", "alpha [deg]", res.Op.Alpha)
	l += io.Sf("%-24s%16g\n", "beta [deg]", res.Op.Beta)
	l += io.Sf("%-24s%16g\n", "density", res.Op.Density)
	l += io.Sf("%s\n", line(40))
	l += io.Sf("%-24s%16.6f\n", "CL", res.CL)
	l += io.Sf("%-24s%16.6f\n", "CDi", res.CDi)
	l += io.Sf("%-24s%16.4f\n", "CL/CDi", res.CLCDi)
	l += io.Sf("%-24s%16.6f\n", "CY", res.CY)
	l += io.Sf("%-24s%16.6f\n", "Cl (roll)", res.Cl)
	l += io.Sf("%-24s%16.6f\n", "Cm (pitch)", res.Cm)
	l += io.Sf("%-24s%16.6f\n", "Cn (yaw)", res.Cn)
	l += io.Sf("%s\n", line(40))
	l += io.Sf("%-24s%16d\n", "panels", len(res.Gamma))
	l += io.Sf("%-24s%16.4e\n", "condition number", res.Cond)
	l += io.Sf("%s\n", line(40))
	return l
}

// SweepTable returns a table with the main coefficients of many operating points; e.g. alpha sweep
func SweepTable(results []*vlm.Results) string {
	l := io.Sf("%s\n", line(80))
	l += io.Sf("%8s%8s%12s%12s%12s%12s%16s\n", "alpha", "beta", "CL", "CDi", "Cm", "CY", "CL/CDi")
	l += io.Sf("%s\n", line(80))
	for _, r := range results {
		l += io.Sf("%8.2f%8.2f%12.6f%12.6f%12.6f%12.6f%16.4f\n", r.Op.Alpha, r.Op.Beta, r.CL, r.CDi, r.Cm, r.CY, r.CLCDi)
	}
	l += io.Sf("%s\n", line(80))
	return l
}

// SaveResults saves the results of all operating points to a JSON file
//  Output:
//   fnpath -- path of file; e.g. dirout/fnkey-results.json
func SaveResults(dirout, fnkey string, results []*vlm.Results) (fnpath string, err error) {
	if len(results) == 0 {
		return "", chk.Err("there are no results to save")
	}
	records := make([]*Record, len(results))
	for i, r := range results {
		records[i] = NewRecord(r)
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", chk.Err("cannot encode results:\n%v", err)
	}
	fn := fnkey + "-results.json"
	io.WriteBytesToFileD(dirout, fn, b)
	return filepath.Join(dirout, fn), nil
}

// ReadResults reads results saved by SaveResults
//  Note: it panics if the file cannot be read
func ReadResults(fnpath string) (records []*Record, err error) {
	b := io.ReadFile(fnpath)
	err = json.Unmarshal(b, &records)
	if err != nil {
		return nil, chk.Err("cannot decode results file %q:\n%v", fnpath, err)
	}
	return
}

// line returns a line of dashes
func line(n int) string {
	return string(bytes.Repeat([]byte{'-'}, n))
}
