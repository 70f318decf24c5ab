// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package afl

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

func Test_naca01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("naca01. parse NACA 4-digit names")

	a, err := New("NACA2412")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.String(tst, a.Name, "naca2412")
	chk.Float64(tst, "M", 1e-15, a.M, 0.02)
	chk.Float64(tst, "P", 1e-15, a.P, 0.4)
	chk.Float64(tst, "T", 1e-15, a.T, 0.12)
	if a.Symmetric() {
		tst.Errorf("naca2412 must be cambered")
		return
	}

	s, err := New("naca0012")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if !s.Symmetric() {
		tst.Errorf("naca0012 must be symmetric")
		return
	}
	for _, x := range []float64{0, 0.25, 0.5, 1} {
		chk.Float64(tst, "camber", 1e-17, s.Camber(x), 0)
		chk.Float64(tst, "slope", 1e-17, s.Slope(x), 0)
	}

	f, err := New("")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.String(tst, f.Name, "flat")
	chk.Float64(tst, "T", 1e-17, f.Thickness(0.3), 0)

	for _, name := range []string{"naca24", "clarky", "naca2a12", "naca2012"} {
		if _, err = New(name); err == nil {
			tst.Errorf("%q should have failed", name)
			return
		}
		io.Pforan("%v\n", err)
	}
}

func Test_naca02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("naca02. camber line, slope and thickness")

	a, _ := New("naca2412")

	// maximum camber at x = p
	chk.Float64(tst, "z(p)", 1e-15, a.Camber(0.4), 0.02)
	chk.Float64(tst, "dzdx(p)", 1e-15, a.Slope(0.4), 0)
	chk.Float64(tst, "z(0)", 1e-15, a.Camber(0), 0)
	chk.Float64(tst, "z(1)", 1e-15, a.Camber(1), 0)

	// slope against numerical derivative
	for _, x := range []float64{0.1, 0.3, 0.55, 0.8} {
		dnum := num.DerivCen5(x, 1e-3, func(t float64) float64 {
			return a.Camber(t)
		})
		chk.AnaNum(tst, io.Sf("dz/dx @ %g", x), 1e-9, a.Slope(x), dnum, chk.Verbose)
	}

	// maximum thickness near 30% chord
	t := a.Thickness(0.3)
	chk.Float64(tst, "t(0.3)", 1e-3, 2*t, 0.12)
	chk.Float64(tst, "t(1)", 1e-3, a.Thickness(1), 0)

	// upper and lower surfaces enclose the camber line
	xu, zu := a.Upper(0.3)
	xl, zl := a.Lower(0.3)
	chk.Float64(tst, "xmid", 1e-15, (xu+xl)/2, 0.3)
	chk.Float64(tst, "zmid", 1e-15, (zu+zl)/2, a.Camber(0.3))
}
