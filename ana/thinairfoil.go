// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/num"
	"github.com/kaolagithub/AeroSandbox/afl"
)

// ThinAirfoil implements the thin airfoil theory for a camber line
//
//   x = (1 - cos θ) / 2
//
//   α_L0 = -(1/π) ∫ dz/dx (cos θ - 1) dθ
//   A_n  =  (2/π) ∫ dz/dx cos(nθ) dθ      θ ∈ [0, π]
//
//   cl     = 2π (α - α_L0)
//   cm_c/4 = π/4 (A2 - A1)
//
//  Note: dz/dx has a kink at the location of maximum camber p; thus the integrals are split
//        at θp = acos(1 - 2p)
type ThinAirfoil struct {
	Camber *afl.Airfoil // camber line
}

// ZeroLiftAlpha returns the zero-lift angle of attack [deg]
func (o ThinAirfoil) ZeroLiftAlpha() float64 {
	res := o.integrate(func(θ float64) float64 { return math.Cos(θ) - 1.0 })
	return -res / math.Pi * 180.0 / math.Pi
}

// Cl returns the section lift coefficient at alpha [deg]
func (o ThinAirfoil) Cl(alpha float64) float64 {
	return 2.0 * math.Pi * (alpha - o.ZeroLiftAlpha()) * math.Pi / 180.0
}

// CmQuarter returns the pitching moment coefficient about the quarter chord
func (o ThinAirfoil) CmQuarter() float64 {
	A1 := 2.0 / math.Pi * o.integrate(math.Cos)
	A2 := 2.0 / math.Pi * o.integrate(func(θ float64) float64 { return math.Cos(2.0 * θ) })
	return math.Pi / 4.0 * (A2 - A1)
}

// integrate computes ∫ dz/dx w(θ) dθ over [0, π]
func (o ThinAirfoil) integrate(w func(θ float64) float64) float64 {
	if o.Camber == nil || o.Camber.Symmetric() {
		return 0
	}
	f := func(θ float64) float64 {
		x := 0.5 * (1.0 - math.Cos(θ))
		return o.Camber.Slope(x) * w(θ)
	}
	θp := math.Acos(1.0 - 2.0*o.Camber.P)
	return num.QuadGen(0, θp, 0, f) + num.QuadGen(θp, math.Pi, 0, f)
}
