// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package aic implements the Biot-Savart law for vortex filaments and the assembly
// of aerodynamic influence coefficients
package aic

import "math"

// fourπ is 4π
const fourπ = 4.0 * math.Pi

// wakeDir returns the unit direction of the trailing legs of horseshoe vortices
func wakeDir() []float64 {
	return []float64{1, 0, 0}
}

// Segment adds to v the velocity induced at p by a unit-strength vortex filament a→b
//
//   v = (r1 × r2) / (4π |r1 × r2|²) ・ r0・(r1/|r1| - r2/|r2|)
//
//   r0 = b - a,  r1 = p - a,  r2 = p - b
//
//  Note: no velocity is induced if p is inside the core: |r1 × r2|² < tol²|r0|⁴
func Segment(v, p, a, b []float64, tol float64) {
	r0x, r0y, r0z := b[0]-a[0], b[1]-a[1], b[2]-a[2]
	r1x, r1y, r1z := p[0]-a[0], p[1]-a[1], p[2]-a[2]
	r2x, r2y, r2z := p[0]-b[0], p[1]-b[1], p[2]-b[2]
	cx := r1y*r2z - r1z*r2y
	cy := r1z*r2x - r1x*r2z
	cz := r1x*r2y - r1y*r2x
	c2 := cx*cx + cy*cy + cz*cz
	l2 := r0x*r0x + r0y*r0y + r0z*r0z
	if c2 <= tol*tol*l2*l2 {
		return
	}
	n1 := math.Sqrt(r1x*r1x + r1y*r1y + r1z*r1z)
	n2 := math.Sqrt(r2x*r2x + r2y*r2y + r2z*r2z)
	if n1 == 0 || n2 == 0 {
		return
	}
	k := (r0x*(r1x/n1-r2x/n2) + r0y*(r1y/n1-r2y/n2) + r0z*(r1z/n1-r2z/n2)) / (fourπ * c2)
	v[0] += k * cx
	v[1] += k * cy
	v[2] += k * cz
}

// SemiInfinite adds to v the velocity induced at p by a unit-strength vortex filament
// starting at a and running to infinity along the unit vector d
//
//   v = (d × r) / (4π |d × r|²) ・ (1 + d・r/|r|)      r = p - a
//
//  Note: no velocity is induced if p is inside the core: |d × r|² < tol²|r|²
func SemiInfinite(v, p, a, d []float64, tol float64) {
	rx, ry, rz := p[0]-a[0], p[1]-a[1], p[2]-a[2]
	cx := d[1]*rz - d[2]*ry
	cy := d[2]*rx - d[0]*rz
	cz := d[0]*ry - d[1]*rx
	c2 := cx*cx + cy*cy + cz*cz
	r2 := rx*rx + ry*ry + rz*rz
	if r2 == 0 || c2 <= tol*tol*r2 {
		return
	}
	k := (1.0 + (d[0]*rx+d[1]*ry+d[2]*rz)/math.Sqrt(r2)) / (fourπ * c2)
	v[0] += k * cx
	v[1] += k * cy
	v[2] += k * cz
}

// Horseshoe adds to v the velocity induced at p by a unit-strength horseshoe vortex
//
//      ∞ ------------- a          trailing leg ∞ → a
//                      |          bound vortex a → b
//      ∞ ------------- b          trailing leg b → ∞
//
//  d is the unit direction of the trailing legs
func Horseshoe(v, p, a, b, d []float64, tol float64) {
	var w [3]float64
	SemiInfinite(w[:], p, a, d, tol)
	v[0] -= w[0]
	v[1] -= w[1]
	v[2] -= w[2]
	Segment(v, p, a, b, tol)
	SemiInfinite(v, p, b, d, tol)
}
