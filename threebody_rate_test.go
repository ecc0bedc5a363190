/*
Copyright © 2024 the kinrate authors.
This file is part of kinrate.

kinrate is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

kinrate is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with kinrate.  If not, see <http://www.gnu.org/licenses/>.
*/

package kinrate

import (
	"math"
	"testing"

	"github.com/spatialmodel/kinrate/node"
	"github.com/spatialmodel/kinrate/unit"
)

// TestThreeBodyRateEval reproduces A=1.2e11, b=-1, Ea=0, efficiencies
// {AR:0.83, H2:2.4, H2O:15.4}, with [AR]=[H2]=[H2O]=1 mol/m^3.
func TestThreeBodyRateEval(t *testing.T) {
	const tolerance = 1e-9

	r := NewThreeBodyRate()
	n := node.Node{
		"rate-constant": node.Node{"A": 1.2e11, "b": -1.0, "Ea": 0.0},
		"efficiencies":  node.Node{"AR": 0.83, "H2": 2.4, "H2O": 15.4},
	}
	if err := r.SetParameters(n, unit.SI(2)); err != nil {
		t.Fatalf("SetParameters: %v", err)
	}

	sd := NewSharedData(1000, 0, map[string]float64{"AR": 1, "H2": 1, "H2O": 1})
	got := r.Eval(sd)
	want := 1.2e11 * math.Pow(1000, -1) * 18.63
	if math.Abs(got-want)/want > tolerance {
		t.Errorf("Eval() = %v, want %v", got, want)
	}
}

func TestThreeBodyRateUnlistedSpeciesDefaultEfficiency(t *testing.T) {
	r := NewThreeBodyRate()
	n := node.Node{
		"rate-constant": node.Node{"A": 1.0, "b": 0.0, "Ea": 0.0},
		"efficiencies":  node.Node{"AR": 2.0},
	}
	if err := r.SetParameters(n, unit.SI(2)); err != nil {
		t.Fatalf("SetParameters: %v", err)
	}
	sd := NewSharedData(1000, 0, map[string]float64{"AR": 1, "N2": 1})
	got := r.Eval(sd)
	want := 1.0 * (2.0*1 + 1.0*1) // AR gets its listed efficiency, N2 defaults to 1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Eval() = %v, want %v", got, want)
	}
}

func TestThreeBodyRateSetEfficienciesForwards(t *testing.T) {
	eval := NewMultiRate[ThreeBodyRate]()
	r := NewThreeBodyRate()
	r.arr = NewArrhenius(1, 0, 0)
	idx := eval.Add(*r)
	r.LinkEvaluator(idx, eval)

	r.SetEfficiencies(map[string]float64{"X": 5})
	linked := eval.Rate(idx)
	sd := NewSharedData(1000, 0, map[string]float64{"X": 1})
	if got, want := linked.Eval(sd), 5.0; got != want {
		t.Errorf("evaluator's copy Eval() = %v, want %v", got, want)
	}
}
