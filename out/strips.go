// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/kaolagithub/AeroSandbox/pnl"
	"github.com/kaolagithub/AeroSandbox/vlm"
)

// Strip holds the spanwise loading of one strip of panels
//
//   cl・c / cref = L' / (q cref)     L' : lift per unit span
//
type Strip struct {
	Id     int     // global strip index
	Y, Z   float64 // spanwise station (middle of leading bound vortex)
	Width  float64 // spanwise width (y-z projection of leading bound vortex)
	Chord  float64 // local chord
	Gamma  float64 // sum of circulations
	Lift   float64 // force normal to the freestream along the lift direction
	ClCref float64 // cl・c / cref
	Cl     float64 // local lift coefficient
}

// StripLoads computes the spanwise loading of wing idx
func StripLoads(lat *pnl.Lattice, res *vlm.Results, idx int) (strips []*Strip, err error) {
	if idx < 0 || idx >= len(lat.Wings) {
		return nil, chk.Err("wing index %d is out of range [0, %d)", idx, len(lat.Wings))
	}
	q := res.Op.DynPressure()
	lift := res.Op.LiftDir()
	for _, sid := range lat.WingStrips(idx) {
		ids := lat.Strips[sid]
		le := lat.Panels[ids[0]]
		te := lat.Panels[ids[len(ids)-1]]
		o := &Strip{Id: sid, Y: le.Mid[1], Z: le.Mid[2]}
		s := le.Span()
		o.Width = math.Sqrt(s[1]*s[1] + s[2]*s[2])
		front := []float64{(le.FL[0] + le.FR[0]) / 2, (le.FL[1] + le.FR[1]) / 2, (le.FL[2] + le.FR[2]) / 2}
		back := []float64{(te.BL[0] + te.BR[0]) / 2, (te.BL[1] + te.BR[1]) / 2, (te.BL[2] + te.BR[2]) / 2}
		o.Chord = math.Sqrt(utl.Dot3d(diff(back, front), diff(back, front)))
		for _, id := range ids {
			o.Gamma += res.Gamma[id]
			o.Lift += utl.Dot3d(res.PanelForces[id], lift)
		}
		if o.Width > 0 {
			o.ClCref = o.Lift / (o.Width * q * lat.Cref)
			if o.Chord > 0 {
				o.Cl = o.Lift / (o.Width * q * o.Chord)
			}
		}
		strips = append(strips, o)
	}
	return
}

// StripTable returns a table with the spanwise loading
func StripTable(strips []*Strip) string {
	l := io.Sf("%s\n", line(72))
	l += io.Sf("%12s%12s%12s%12s%12s%12s\n", "y", "z", "chord", "gamma", "cl.c/cref", "cl")
	l += io.Sf("%s\n", line(72))
	for _, s := range strips {
		l += io.Sf("%12.5f%12.5f%12.5f%12.6f%12.6f%12.6f\n", s.Y, s.Z, s.Chord, s.Gamma, s.ClCref, s.Cl)
	}
	l += io.Sf("%s\n", line(72))
	return l
}

// diff returns a - b
func diff(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}
