// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pnl implements the discretisation of wings into vortex lattice panels
package pnl

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Panel holds a quadrilateral panel and its horseshoe vortex
//
//        y (span)
//        ^
//        |   FR ----B------- BR        A, B : bound vortex @ ¼ chord
//        |    |     |    x    |        x    : control point @ ¾ chord, mid span
//        |   FL ----A------- BL
//        +-------------------------> x (chord)
//
//   "left" (FL, BL, A) is the side with the smaller spanwise coordinate on the
//   right half of a wing; the bound vortex always runs from A to B
//
type Panel struct {
	Id     int // global index in lattice
	Wing   int // index of wing in airplane
	Strip  int // global index of spanwise strip
	Ichord int // chordwise index in strip; 0 is at the leading edge

	// corners
	FL, FR, BL, BR []float64 // front-left, front-right, back-left, back-right

	// derived
	A, B   []float64 // bound vortex endpoints
	Mid    []float64 // middle of bound vortex
	Cp     []float64 // control point
	N      []float64 // unit normal
	Area   float64   // area
	Mirror bool      // panel belongs to the mirrored half of a symmetric wing
}

// Init computes derived quantities from corners
func (o *Panel) Init() {
	o.A = lerp(o.FL, o.BL, 0.25)
	o.B = lerp(o.FR, o.BR, 0.25)
	o.Mid = lerp(o.A, o.B, 0.5)
	o.Cp = lerp(lerp(o.FL, o.BL, 0.75), lerp(o.FR, o.BR, 0.75), 0.5)
	d1 := sub(o.BR, o.FL)
	d2 := sub(o.FR, o.BL)
	o.N = make([]float64, 3)
	utl.Cross3d(o.N, d1, d2) // n := d1 cross d2
	nrm := la.Vector(o.N).Norm()
	o.Area = nrm / 2.0
	if nrm > 0 {
		for i := 0; i < 3; i++ {
			o.N[i] /= nrm
		}
	}
}

// Span returns the bound vortex vector B - A
func (o *Panel) Span() []float64 {
	return sub(o.B, o.A)
}

// mirrored returns a copy of this panel reflected across the y=0 plane
//  Note: left and right corners are swapped to keep A→B along increasing y
func (o *Panel) mirrored() *Panel {
	p := &Panel{
		Wing:   o.Wing,
		Ichord: o.Ichord,
		FL:     reflect(o.FR),
		FR:     reflect(o.FL),
		BL:     reflect(o.BR),
		BR:     reflect(o.BL),
		Mirror: true,
	}
	p.Init()
	return p
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func lerp(a, b []float64, t float64) []float64 {
	return []float64{a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1]), a[2] + t*(b[2]-a[2])}
}

func sub(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func reflect(a []float64) []float64 {
	return []float64{a[0], -a[1], a[2]}
}
