// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/kaolagithub/AeroSandbox/inp"
)

// Spacing returns n+1 stations in [0,1]
//  kind -- "cosine": ½(1 - cos(πk/n)), clustered at both ends
//          "uniform": k/n
func Spacing(kind string, n int) (ξ []float64, err error) {
	if n < 1 {
		return nil, chk.Err("number of divisions must be positive; %d given", n)
	}
	switch kind {
	case inp.CosineSpacing, "":
		ξ = make([]float64, n+1)
		for k := 0; k <= n; k++ {
			ξ[k] = 0.5 * (1.0 - math.Cos(math.Pi*float64(k)/float64(n)))
		}
		ξ[0], ξ[n] = 0, 1
	case inp.UniformSpacing:
		ξ = utl.LinSpace(0, 1, n+1)
	default:
		return nil, chk.Err("spacing %q is unavailable", kind)
	}
	return
}
