// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/kaolagithub/AeroSandbox/afl"
)

func Test_helmbold01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("helmbold01. finite wing lift slope")

	h := Helmbold{AR: 8}
	io.Pforan("CLα(AR=8) = %v\n", h.CLalpha())
	chk.Float64(tst, "CLα(8)", 1e-6, h.CLalpha(), 4.905763)

	// limits: slender wing and very large aspect ratio
	chk.Float64(tst, "CLα(small)", 1e-6, Helmbold{AR: 1e-4}.CLalpha()/1e-4, math.Pi/2.0)
	chk.Float64(tst, "CLα(large)", 1e-3, Helmbold{AR: 1e5}.CLalpha(), 2.0*math.Pi)

	chk.Float64(tst, "CL", 1e-15, h.CL(-2, -2), 0)
	chk.Float64(tst, "CL", 1e-14, h.CL(5, 0), h.CLalpha()*5*math.Pi/180)
}

func Test_spaneff01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spaneff01. span efficiency")

	AR, CL := 6.0, 0.4
	CDi := EllipticCDi(CL, AR, 0.95)
	e, err := InducedDragFactor(CL, CDi, AR)
	if err != nil {
		tst.Errorf("InducedDragFactor failed:\n%v", err)
		return
	}
	chk.Float64(tst, "e", 1e-15, e, 0.95)

	_, err = InducedDragFactor(CL, 0, AR)
	if err == nil {
		tst.Errorf("zero induced drag must fail")
		return
	}
	io.Pforan("%v\n", err)
}

func Test_thin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thin01. zero-lift angle of NACA camber lines")

	for _, c := range []struct {
		name      string
		alphaL0   float64
		cmQuarter float64
	}{
		{"naca0012", 0, 0},
		{"naca2412", -2.07724, -0.053120},
		{"naca4412", -4.15448, -0.106239},
		{"naca2212", -1.79877, -0.036961},
	} {
		foil, err := afl.New(c.name)
		if err != nil {
			tst.Errorf("afl.New failed:\n%v", err)
			return
		}
		o := ThinAirfoil{Camber: foil}
		io.Pforan("%s: α_L0 = %.5f°  cm_c/4 = %.6f\n", c.name, o.ZeroLiftAlpha(), o.CmQuarter())
		chk.Float64(tst, c.name+": α_L0", 1e-3, o.ZeroLiftAlpha(), c.alphaL0)
		chk.Float64(tst, c.name+": cm", 1e-4, o.CmQuarter(), c.cmQuarter)
		chk.Float64(tst, c.name+": cl(α_L0)", 1e-14, o.Cl(o.ZeroLiftAlpha()), 0)
	}

	// flat plate
	flat := ThinAirfoil{}
	chk.Float64(tst, "flat: cl(5°)", 1e-15, flat.Cl(5), 2*math.Pi*5*math.Pi/180)
}
