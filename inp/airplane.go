// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/kaolagithub/AeroSandbox/afl"
)

// spacing keys
const (
	CosineSpacing  = "cosine"
	UniformSpacing = "uniform"
)

// DefaultDensity is the sea-level air density [kg/m³]
const DefaultDensity = 1.225

// WingSection holds the data of one cross-section of a wing
//  Note: Nspan is the number of spanwise panels between this section and the next one;
//        it is ignored on the tip section
type WingSection struct {
	XyzLe   [3]float64 `json:"xyzle" yaml:"xyzle"`                  // leading edge position relative to the wing leading edge
	Chord   float64    `json:"chord" yaml:"chord" validate:"gt=0"`  // chord length
	Twist   float64    `json:"twist" yaml:"twist"`                  // twist angle [deg]; positive means nose up
	Airfoil string     `json:"airfoil" yaml:"airfoil"`              // airfoil name; e.g. "naca0012"
	Nspan   int        `json:"nspan" yaml:"nspan" validate:"gte=0"` // number of spanwise panels to the next section

	// derived
	Afl *afl.Airfoil `json:"-" yaml:"-"` // airfoil corresponding to Airfoil
}

// Wing holds the data of a lifting surface
type Wing struct {
	Name         string         `json:"name" yaml:"name"`
	XyzLe        [3]float64     `json:"xyzle" yaml:"xyzle"`                                                         // position of the root leading edge
	Symmetric    bool           `json:"symmetric" yaml:"symmetric"`                                                 // mirror the wing across the y=0 plane
	Nchord       int            `json:"nchord" yaml:"nchord" validate:"gte=1"`                                      // number of chordwise panels
	ChordSpacing string         `json:"chordspacing" yaml:"chordspacing" validate:"omitempty,oneof=cosine uniform"` // chordwise spacing
	SpanSpacing  string         `json:"spanspacing" yaml:"spanspacing" validate:"omitempty,oneof=cosine uniform"`   // spanwise spacing
	Sections     []*WingSection `json:"sections" yaml:"sections" validate:"min=2,dive,required"`                    // root to tip
}

// Airplane holds all lifting surfaces and reference values
type Airplane struct {
	Name   string     `json:"name" yaml:"name"`
	XyzRef [3]float64 `json:"xyzref" yaml:"xyzref"`                              // reference point for moments
	Sref   float64    `json:"sref" yaml:"sref" validate:"gte=0"`                 // reference area
	Cref   float64    `json:"cref" yaml:"cref" validate:"gte=0"`                 // reference chord
	Bref   float64    `json:"bref" yaml:"bref" validate:"gte=0"`                 // reference span
	Wings  []*Wing    `json:"wings" yaml:"wings" validate:"min=1,dive,required"` // all wings
}

// Airplane ////////////////////////////////////////////////////////////////////////////////////////

// SetRefDimsFromWing sets the reference area, chord and span from the wing with index idx
func (o *Airplane) SetRefDimsFromWing(idx int) (err error) {
	if idx < 0 || idx >= len(o.Wings) {
		return chk.Err("cannot set reference dimensions: wing index %d is out of range [0,%d)", idx, len(o.Wings))
	}
	w := o.Wings[idx]
	if w == nil {
		return chk.Err("cannot set reference dimensions: wing # %d is missing", idx)
	}
	for i, s := range w.Sections {
		if s == nil {
			return chk.Err("cannot set reference dimensions: wing %q: section # %d is missing", w.Name, i)
		}
	}
	o.Sref = w.Area()
	o.Bref = w.Span()
	o.Cref = w.MeanAeroChord()
	return
}

// Validate checks the airplane geometry and initialises the airfoils
func (o *Airplane) Validate() (err error) {
	err = checkStruct(o)
	if err != nil {
		return chk.Err("airplane %q is invalid:\n%v", o.Name, err)
	}
	for i, w := range o.Wings {
		err = w.Validate()
		if err != nil {
			return chk.Err("airplane %q: wing # %d is invalid:\n%v", o.Name, i, err)
		}
	}
	if o.Sref <= 0 || o.Cref <= 0 || o.Bref <= 0 {
		return chk.Err("airplane %q: reference dimensions must be positive. Sref=%g, Cref=%g, Bref=%g", o.Name, o.Sref, o.Cref, o.Bref)
	}
	return
}

// Wing ////////////////////////////////////////////////////////////////////////////////////////////

// Validate checks wing data and sets airfoils and default spacings
func (o *Wing) Validate() (err error) {
	if len(o.Sections) < 2 {
		return chk.Err("wing %q must have at least 2 sections; %d given", o.Name, len(o.Sections))
	}
	if o.Nchord < 1 {
		return chk.Err("wing %q: number of chordwise panels must be positive; %d given", o.Name, o.Nchord)
	}
	err = checkStruct(o)
	if err != nil {
		return chk.Err("wing %q:\n%v", o.Name, err)
	}
	o.SetDefault()
	err = o.checkOrder()
	if err != nil {
		return
	}
	last := len(o.Sections) - 1
	for i, s := range o.Sections {
		if i < last && s.Nspan < 1 {
			return chk.Err("wing %q: number of spanwise panels of section # %d must be positive; %d given", o.Name, i, s.Nspan)
		}
		s.Afl, err = afl.New(s.Airfoil)
		if err != nil {
			return chk.Err("wing %q: section # %d:\n%v", o.Name, i, err)
		}
	}
	return
}

// checkOrder checks that sections run from root to tip
//  Note: segments may bend (e.g. winglets) but must not turn back against the first one;
//        the root of a symmetric wing is the section closest to the y=0 plane
func (o *Wing) checkOrder() error {
	a, b := o.Sections[0], o.Sections[1]
	ry, rz := b.XyzLe[1]-a.XyzLe[1], b.XyzLe[2]-a.XyzLe[2]
	for i := 1; i < len(o.Sections); i++ {
		a, b = o.Sections[i-1], o.Sections[i]
		dy, dz := b.XyzLe[1]-a.XyzLe[1], b.XyzLe[2]-a.XyzLe[2]
		if dy == 0 && dz == 0 {
			return chk.Err("wing %q: sections # %d and # %d have coincident leading edges in the y-z plane", o.Name, i-1, i)
		}
		if dy*ry+dz*rz < 0 {
			return chk.Err("wing %q: section # %d turns back against the first segment; sections must be given from root to tip", o.Name, i)
		}
		if o.Symmetric && math.Abs(o.XyzLe[1]+b.XyzLe[1]) < math.Abs(o.XyzLe[1]+a.XyzLe[1]) {
			return chk.Err("wing %q: |y| of section # %d decreases; sections of symmetric wings must be given from root to tip", o.Name, i)
		}
	}
	return nil
}

// SetDefault sets default spacings
func (o *Wing) SetDefault() {
	if o.ChordSpacing == "" {
		o.ChordSpacing = CosineSpacing
	}
	if o.SpanSpacing == "" {
		o.SpanSpacing = CosineSpacing
	}
}

// Area returns the planform area, including the mirrored part if symmetric
func (o *Wing) Area() (area float64) {
	for i := 1; i < len(o.Sections); i++ {
		a, b := o.Sections[i-1], o.Sections[i]
		area += segLength(a, b) * (a.Chord + b.Chord) / 2.0
	}
	if o.Symmetric {
		area *= 2
	}
	return
}

// Span returns the y-z distance from root to tip; if symmetric, tip to tip
func (o *Wing) Span() (span float64) {
	for i := 1; i < len(o.Sections); i++ {
		span += segLength(o.Sections[i-1], o.Sections[i])
	}
	if o.Symmetric {
		root := o.Sections[0]
		span = 2.0 * (span + math.Abs(o.XyzLe[1]+root.XyzLe[1]))
	}
	return
}

// MeanAeroChord returns the mean aerodynamic chord: ∫c² ds / ∫c ds
func (o *Wing) MeanAeroChord() float64 {
	var num, den float64
	for i := 1; i < len(o.Sections); i++ {
		a, b := o.Sections[i-1], o.Sections[i]
		l := segLength(a, b)
		num += l * (a.Chord*a.Chord + a.Chord*b.Chord + b.Chord*b.Chord) / 3.0
		den += l * (a.Chord + b.Chord) / 2.0
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// AspectRatio returns b²/S
func (o *Wing) AspectRatio() float64 {
	s := o.Area()
	if s == 0 {
		return 0
	}
	b := o.Span()
	return b * b / s
}

// segLength returns the y-z distance between the leading edges of two sections
func segLength(a, b *WingSection) float64 {
	dy := b.XyzLe[1] - a.XyzLe[1]
	dz := b.XyzLe[2] - a.XyzLe[2]
	return math.Sqrt(dy*dy + dz*dz)
}
