// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/kaolagithub/AeroSandbox/inp"
)

// Lattice holds all panels of an airplane
type Lattice struct {
	Panels []*Panel  // all panels. Panels[i].Id == i
	Wings  [][2]int  // [nwings] range of panel ids {start, end} for each wing
	Strips [][]int   // [nstrips] panel ids in each strip, from leading edge to trailing edge
	Sref   float64   // reference area
	Cref   float64   // reference chord
	Bref   float64   // reference span
	XyzRef []float64 // reference point
}

// NewLattice discretises all wings of an airplane
func NewLattice(a *inp.Airplane) (o *Lattice, err error) {
	if len(a.Wings) == 0 {
		return nil, chk.Err("airplane %q has no wings", a.Name)
	}
	o = &Lattice{
		Wings:  make([][2]int, len(a.Wings)),
		Sref:   a.Sref,
		Cref:   a.Cref,
		Bref:   a.Bref,
		XyzRef: []float64{a.XyzRef[0], a.XyzRef[1], a.XyzRef[2]},
	}
	for i, w := range a.Wings {
		panels, e := Discretize(w, i)
		if e != nil {
			return nil, chk.Err("cannot discretise wing # %d:\n%v", i, e)
		}
		start := len(o.Panels)
		soffset := len(o.Strips)
		for _, p := range panels {
			p.Id = len(o.Panels)
			p.Strip += soffset
			for p.Strip >= len(o.Strips) {
				o.Strips = append(o.Strips, nil)
			}
			o.Strips[p.Strip] = append(o.Strips[p.Strip], p.Id)
			o.Panels = append(o.Panels, p)
		}
		o.Wings[i] = [2]int{start, len(o.Panels)}
	}
	return
}

// Npanels returns the number of panels
func (o *Lattice) Npanels() int {
	return len(o.Panels)
}

// WingPanels returns the panels of wing idx
func (o *Lattice) WingPanels(idx int) []*Panel {
	r := o.Wings[idx]
	return o.Panels[r[0]:r[1]]
}

// WingStrips returns the strip ids of wing idx
func (o *Lattice) WingStrips(idx int) (strips []int) {
	seen := make(map[int]bool)
	for _, p := range o.WingPanels(idx) {
		if !seen[p.Strip] {
			seen[p.Strip] = true
			strips = append(strips, p.Strip)
		}
	}
	return
}
