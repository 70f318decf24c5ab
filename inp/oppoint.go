// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// OpPoint holds the operating point (freestream conditions)
type OpPoint struct {
	Velocity float64 `json:"velocity" yaml:"velocity" validate:"gt=0"` // freestream speed
	Alpha    float64 `json:"alpha" yaml:"alpha"`                       // angle of attack [deg]
	Beta     float64 `json:"beta" yaml:"beta"`                         // sideslip angle [deg]
	Density  float64 `json:"density" yaml:"density" validate:"gte=0"`  // air density; 0 => DefaultDensity
}

// SetDefault sets default density
func (o *OpPoint) SetDefault() {
	if o.Density == 0 {
		o.Density = DefaultDensity
	}
}

// Validate checks operating point data
func (o *OpPoint) Validate() (err error) {
	err = checkStruct(o)
	if err != nil {
		return chk.Err("operating point is invalid:\n%v", err)
	}
	o.SetDefault()
	return
}

// Freestream returns the unit vector along the freestream
//
//   d = [cosα cosβ, -sinβ, sinα cosβ]
//
func (o *OpPoint) Freestream() []float64 {
	α := o.Alpha * math.Pi / 180.0
	β := o.Beta * math.Pi / 180.0
	return []float64{math.Cos(α) * math.Cos(β), -math.Sin(β), math.Sin(α) * math.Cos(β)}
}

// LiftDir returns the unit vector normal to the freestream in the x-z plane
func (o *OpPoint) LiftDir() []float64 {
	α := o.Alpha * math.Pi / 180.0
	return []float64{-math.Sin(α), 0, math.Cos(α)}
}

// DynPressure returns ½ρV²
func (o *OpPoint) DynPressure() float64 {
	ρ := o.Density
	if ρ == 0 {
		ρ = DefaultDensity
	}
	return 0.5 * ρ * o.Velocity * o.Velocity
}
