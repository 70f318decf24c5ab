// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/kaolagithub/AeroSandbox/inp"
	"github.com/kaolagithub/AeroSandbox/vlm"
)

// run solves an alpha sweep of a symmetric rectangular wing with unit chord and span 6
func run(tst *testing.T) (m *vlm.Main) {
	a := &inp.Airplane{
		Name: "rect",
		Wings: []*inp.Wing{{
			Name:      "wing",
			Symmetric: true,
			Nchord:    4,
			Sections: []*inp.WingSection{
				{Chord: 1, Airfoil: "naca0012", Nspan: 6},
				{XyzLe: [3]float64{0, 3, 0}, Chord: 1, Airfoil: "naca0012"},
			},
		}},
	}
	sim, err := inp.NewSimulation("outtest", a,
		&inp.OpPoint{Velocity: 10, Alpha: 2},
		&inp.OpPoint{Velocity: 10, Alpha: 4},
	)
	if err != nil {
		tst.Errorf("NewSimulation failed:\n%v", err)
		return nil
	}
	m, err = vlm.NewMain(sim, false)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return nil
	}
	err = m.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return nil
	}
	return
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. summary and sweep tables")

	m := run(tst)
	if m == nil {
		return
	}
	defer m.Clean()

	l := Summary(m.Results[1])
	io.Pf("%v", l)
	for _, key := range []string{"CL", "CDi", "CL/CDi", "panels", "condition number"} {
		if !strings.Contains(l, key) {
			tst.Errorf("summary must contain %q", key)
			return
		}
	}
	if !strings.Contains(l, io.Sf("%16.6f", m.Results[1].CL)) {
		tst.Errorf("summary must contain CL value")
		return
	}
	if !strings.Contains(l, io.Sf("%16d", 48)) {
		tst.Errorf("summary must contain the number of panels")
		return
	}

	l = SweepTable(m.Results)
	io.Pf("%v", l)
	lines := strings.Split(strings.TrimSpace(l), "\n")
	chk.IntAssert(len(lines), 4+len(m.Results))
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. spanwise loading")

	m := run(tst)
	if m == nil {
		return
	}
	defer m.Clean()
	res := m.Results[0]

	strips, err := StripLoads(m.Lat, res, 0)
	if err != nil {
		tst.Errorf("StripLoads failed:\n%v", err)
		return
	}
	io.Pf("%v", StripTable(strips))
	chk.IntAssert(len(strips), 12)

	// totals
	var lift, width float64
	for _, s := range strips {
		lift += s.Lift
		width += s.Width
		chk.Float64(tst, "chord", 1e-14, s.Chord, 1)
		chk.Float64(tst, "cl", 1e-14, s.Cl, s.ClCref)
		if s.Cl <= 0 {
			tst.Errorf("strip %d must be lifting. cl = %v", s.Id, s.Cl)
			return
		}
	}
	chk.Float64(tst, "lift", 1e-10, lift, res.L)
	chk.Float64(tst, "span", 1e-13, width, 6)

	// symmetry: strips of the mirrored half follow the strips of the right half
	n := len(strips) / 2
	for i := 0; i < n; i++ {
		r, l := strips[i], strips[n+i]
		chk.Float64(tst, "y", 1e-14, r.Y, -l.Y)
		chk.Float64(tst, "cl", 1e-10, r.Cl, l.Cl)
	}

	// tip loading is smaller than root loading
	if strips[n-1].Cl >= strips[0].Cl {
		tst.Errorf("tip must be less loaded than root")
	}

	// wrong index
	_, err = StripLoads(m.Lat, res, 1)
	if err == nil {
		tst.Errorf("wrong wing index must fail")
	}
}

func Test_out03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out03. save results")

	m := run(tst)
	if m == nil {
		return
	}
	defer m.Clean()

	fnpath, err := SaveResults(m.Sim.DirOut, m.Sim.Key, m.Results)
	if err != nil {
		tst.Errorf("SaveResults failed:\n%v", err)
		return
	}
	io.Pforan("file <%s> written\n", fnpath)

	records, err := ReadResults(fnpath)
	if err != nil {
		tst.Errorf("ReadResults failed:\n%v", err)
		return
	}
	chk.IntAssert(len(records), 2)
	for i, r := range records {
		chk.Float64(tst, "alpha", 1e-15, r.Alpha, m.Results[i].Op.Alpha)
		chk.Float64(tst, "CL", 1e-15, r.CL, m.Results[i].CL)
		chk.Array(tst, "gamma", 1e-15, r.Gamma, m.Results[i].Gamma)
	}

	_, err = SaveResults(m.Sim.DirOut, m.Sim.Key, nil)
	if err == nil {
		tst.Errorf("empty results must fail")
	}
}
