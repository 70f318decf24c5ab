// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the vortex lattice solver
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Helmbold implements Helmbold's lift slope of a straight finite wing
//
//                  2π A
//   CLα = ──────────────────
//          2 + sqrt(A² + 4)
//
//  Note: the formula assumes a section lift slope of 2π and is accurate for
//        unswept wings of any aspect ratio
type Helmbold struct {
	AR float64 // aspect ratio
}

// CLalpha returns the lift slope [1/rad]
func (o Helmbold) CLalpha() float64 {
	return 2.0 * math.Pi * o.AR / (2.0 + math.Sqrt(o.AR*o.AR+4.0))
}

// CL returns the lift coefficient at alpha [deg] given the zero-lift angle alphaL0 [deg]
func (o Helmbold) CL(alpha, alphaL0 float64) float64 {
	return o.CLalpha() * (alpha - alphaL0) * math.Pi / 180.0
}

// InducedDragFactor returns the span efficiency factor
//
//   e = CL² / (π AR CDi)
//
func InducedDragFactor(CL, CDi, AR float64) (e float64, err error) {
	if CDi <= 0 || AR <= 0 {
		return 0, chk.Err("cannot compute span efficiency with CDi = %g and AR = %g", CDi, AR)
	}
	return CL * CL / (math.Pi * AR * CDi), nil
}

// EllipticCDi returns the induced drag coefficient of a wing with span efficiency e
func EllipticCDi(CL, AR, e float64) float64 {
	return CL * CL / (math.Pi * AR * e)
}
