// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package afl implements airfoil mean camber lines and thickness distributions
package afl

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Airfoil holds the parameters of a NACA 4-digit airfoil
//
//   naca MPTT
//     M  -- maximum camber in percent of chord
//     P  -- location of maximum camber in tenths of chord
//     TT -- maximum thickness in percent of chord
//
//   z ^    camber line
//     |     .-'''''-.
//     |  .-'    |    '-._
//     o----------------------> x
//     0         p            1
//
type Airfoil struct {
	Name string  // name; e.g. "naca2412"
	M    float64 // maximum camber (fraction of chord)
	P    float64 // location of maximum camber (fraction of chord)
	T    float64 // maximum thickness (fraction of chord)
}

// New returns a new airfoil given its name
//  Note: "flat" and "" correspond to a flat plate
func New(name string) (o *Airfoil, err error) {
	key := strings.ToLower(strings.TrimSpace(name))
	o = &Airfoil{Name: key}
	if key == "" || key == "flat" {
		o.Name = "flat"
		return
	}
	if !strings.HasPrefix(key, "naca") {
		return nil, chk.Err("airfoil %q is unavailable; only NACA 4-digit airfoils and \"flat\" are implemented", name)
	}
	digits := key[4:]
	if len(digits) != 4 {
		return nil, chk.Err("cannot parse airfoil %q: NACA designation must have 4 digits", name)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return nil, chk.Err("cannot parse airfoil %q: %q is not a digit", name, c)
		}
	}
	m, _ := strconv.Atoi(digits[0:1])
	p, _ := strconv.Atoi(digits[1:2])
	t, _ := strconv.Atoi(digits[2:4])
	if m > 0 && p == 0 {
		return nil, chk.Err("airfoil %q is invalid: cambered airfoils need a non-zero camber location", name)
	}
	o.M = float64(m) / 100.0
	o.P = float64(p) / 10.0
	o.T = float64(t) / 100.0
	return
}

// Symmetric tells whether the camber line is straight
func (o *Airfoil) Symmetric() bool {
	return o.M == 0
}

// Camber returns the height of the mean camber line at x ∈ [0,1]
func (o *Airfoil) Camber(x float64) float64 {
	if o.M == 0 {
		return 0
	}
	x = clip(x)
	m, p := o.M, o.P
	if x < p {
		return m / (p * p) * (2.0*p*x - x*x)
	}
	q := 1.0 - p
	return m / (q * q) * (1.0 - 2.0*p + 2.0*p*x - x*x)
}

// Slope returns dz/dx of the mean camber line at x ∈ [0,1]
func (o *Airfoil) Slope(x float64) float64 {
	if o.M == 0 {
		return 0
	}
	x = clip(x)
	m, p := o.M, o.P
	if x < p {
		return 2.0 * m / (p * p) * (p - x)
	}
	q := 1.0 - p
	return 2.0 * m / (q * q) * (p - x)
}

// Thickness returns the half-thickness at x ∈ [0,1] (closed trailing edge)
func (o *Airfoil) Thickness(x float64) float64 {
	if o.T == 0 {
		return 0
	}
	x = clip(x)
	return 5.0 * o.T * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x - 0.1036*x*x*x*x)
}

// Upper returns the coordinates of the upper surface at x ∈ [0,1]
func (o *Airfoil) Upper(x float64) (xu, zu float64) {
	θ := math.Atan(o.Slope(x))
	yt := o.Thickness(x)
	return x - yt*math.Sin(θ), o.Camber(x) + yt*math.Cos(θ)
}

// Lower returns the coordinates of the lower surface at x ∈ [0,1]
func (o *Airfoil) Lower(x float64) (xl, zl float64) {
	θ := math.Atan(o.Slope(x))
	yt := o.Thickness(x)
	return x + yt*math.Sin(θ), o.Camber(x) - yt*math.Cos(θ)
}

func clip(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
