// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"github.com/kaolagithub/AeroSandbox/afl"
	"github.com/kaolagithub/AeroSandbox/inp"
)

// Discretize converts a wing into panels
//
//  Each section becomes a chord line. With s being the spanwise axis (y-z projection of the
//  direction between neighbouring leading edges) and θ the twist:
//
//    c = cos(θ)・x + sin(θ)・(s × x)      chord direction
//    u = c × s                          'up' direction
//    X(ξ) = LE + chord・(ξ・c + z(ξ)・u)  point at chord fraction ξ; z is the camber line
//
//  Points with the same ξ are linearly interpolated between consecutive sections. Panels
//  are numbered strip by strip, from the leading edge to the trailing edge. Symmetric wings
//  get the mirrored panels appended after the panels of the right half.
//
//  Note: Id and Strip are local to the wing; NewLattice renumbers them
func Discretize(w *inp.Wing, wingIdx int) (panels []*Panel, err error) {

	// check
	nsec := len(w.Sections)
	if nsec < 2 {
		return nil, chk.Err("wing %q must have at least 2 sections; %d given", w.Name, nsec)
	}
	if w.Nchord < 1 {
		return nil, chk.Err("wing %q: number of chordwise panels must be positive; %d given", w.Name, w.Nchord)
	}
	for i := 0; i < nsec-1; i++ {
		if w.Sections[i].Nspan < 1 {
			return nil, chk.Err("wing %q: number of spanwise panels of section # %d must be positive; %d given", w.Name, i, w.Sections[i].Nspan)
		}
	}

	// chordwise stations
	ξ, err := Spacing(w.ChordSpacing, w.Nchord)
	if err != nil {
		return nil, chk.Err("wing %q: chordwise spacing:\n%v", w.Name, err)
	}

	// absolute leading edges
	les := make([][]float64, nsec)
	for i, s := range w.Sections {
		les[i] = []float64{w.XyzLe[0] + s.XyzLe[0], w.XyzLe[1] + s.XyzLe[1], w.XyzLe[2] + s.XyzLe[2]}
	}

	// chord lines
	lines := make([][][]float64, nsec)
	for i, s := range w.Sections {
		axis, e := spanAxis(les, i)
		if e != nil {
			return nil, chk.Err("wing %q: section # %d:\n%v", w.Name, i, e)
		}
		foil := s.Afl
		if foil == nil {
			foil, err = afl.New(s.Airfoil)
			if err != nil {
				return nil, chk.Err("wing %q: section # %d:\n%v", w.Name, i, err)
			}
		}
		if s.Chord <= 0 {
			return nil, chk.Err("wing %q: chord of section # %d must be positive; %g given", w.Name, i, s.Chord)
		}
		lines[i] = chordLine(les[i], axis, s.Chord, s.Twist, foil, ξ)
	}

	// panels of the right half
	strip := 0
	for i := 0; i < nsec-1; i++ {
		η, e := Spacing(w.SpanSpacing, w.Sections[i].Nspan)
		if e != nil {
			return nil, chk.Err("wing %q: spanwise spacing of section # %d:\n%v", w.Name, i, e)
		}
		for j := 0; j < len(η)-1; j++ {
			for k := 0; k < w.Nchord; k++ {
				p := &Panel{
					Id:     len(panels),
					Wing:   wingIdx,
					Strip:  strip,
					Ichord: k,
					FL:     lerp(lines[i][k], lines[i+1][k], η[j]),
					FR:     lerp(lines[i][k], lines[i+1][k], η[j+1]),
					BL:     lerp(lines[i][k+1], lines[i+1][k+1], η[j]),
					BR:     lerp(lines[i][k+1], lines[i+1][k+1], η[j+1]),
				}
				p.Init()
				panels = append(panels, p)
			}
			strip++
		}
	}

	// mirrored half
	if w.Symmetric {
		nright := len(panels)
		for i := 0; i < nright; i++ {
			p := panels[i].mirrored()
			p.Id = len(panels)
			p.Strip = strip + panels[i].Strip
			panels = append(panels, p)
		}
	}
	return
}

// spanAxis returns the unit spanwise axis at section i, projected onto the y-z plane
func spanAxis(les [][]float64, i int) (axis []float64, err error) {
	n := len(les)
	switch {
	case i == 0:
		axis = yzDir(les[0], les[1])
	case i == n-1:
		axis = yzDir(les[n-2], les[n-1])
	default:
		a := yzDir(les[i-1], les[i])
		b := yzDir(les[i], les[i+1])
		axis = []float64{0, a[1] + b[1], a[2] + b[2]}
		nrm := la.Vector(axis).Norm()
		if nrm > 0 {
			axis[1] /= nrm
			axis[2] /= nrm
		}
	}
	if la.Vector(axis).Norm() == 0 {
		return nil, chk.Err("consecutive sections have coincident leading edges in the y-z plane")
	}
	return
}

// yzDir returns the unit vector from a to b after removing the x component
func yzDir(a, b []float64) []float64 {
	d := []float64{0, b[1] - a[1], b[2] - a[2]}
	nrm := la.Vector(d).Norm()
	if nrm > 0 {
		d[1] /= nrm
		d[2] /= nrm
	}
	return d
}

// chordLine returns the points on the camber line of a section at chord fractions ξ
func chordLine(le, axis []float64, chord, twist float64, foil *afl.Airfoil, ξ []float64) (pts [][]float64) {
	θ := twist * math.Pi / 180.0
	ex := []float64{1, 0, 0}
	sx := make([]float64, 3)
	utl.Cross3d(sx, axis, ex) // sx := s cross x
	c := []float64{
		math.Cos(θ)*ex[0] + math.Sin(θ)*sx[0],
		math.Cos(θ)*ex[1] + math.Sin(θ)*sx[1],
		math.Cos(θ)*ex[2] + math.Sin(θ)*sx[2],
	}
	u := make([]float64, 3)
	utl.Cross3d(u, c, axis) // u := c cross s
	pts = make([][]float64, len(ξ))
	for k, x := range ξ {
		z := foil.Camber(x)
		pts[k] = make([]float64, 3)
		for d := 0; d < 3; d++ {
			pts[k][d] = le[d] + chord*(x*c[d]+z*u[d])
		}
	}
	return
}
