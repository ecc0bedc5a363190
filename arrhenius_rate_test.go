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

// TestArrheniusRateEval reproduces O + H2 <=> H + OH, A=38.7, b=2.7,
// Ea=6260 cal/mol, at T=1000 K, with A taken in SI rate units
// (m^3/(mol s)).
func TestArrheniusRateEval(t *testing.T) {
	const tolerance = 1e-6

	r := NewArrheniusRate()
	n := node.Node{
		"rate-constant": node.Node{"A": 38.7, "b": 2.7, "Ea": "6260 cal/mol"},
	}
	rateUnits := unit.SI(2)
	if err := r.SetParameters(n, rateUnits); err != nil {
		t.Fatalf("SetParameters: %v", err)
	}
	if err := r.Validate("O + H2 <=> H + OH"); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	sd := NewSharedData(1000, 0, nil)
	got := r.Eval(sd)
	want := 38.7 * math.Pow(1000, 2.7) * math.Exp(-6260*4.184/(unit.GasConstant*1000))
	if math.Abs(got-want)/want > tolerance {
		t.Errorf("Eval() = %v, want %v", got, want)
	}
}

func TestArrheniusRateUnsetWhenRateConstantAbsent(t *testing.T) {
	r := NewArrheniusRate()
	if err := r.SetParameters(node.Node{}, unit.SI(1)); err != nil {
		t.Fatalf("SetParameters: %v", err)
	}
	sd := NewSharedData(1000, 0, nil)
	if got := r.Eval(sd); !math.IsNaN(got) {
		t.Errorf("Eval() of unset rate = %v, want NaN", got)
	}
}

func TestArrheniusRateNegativeAValidation(t *testing.T) {
	r := NewArrheniusRate()
	n := node.Node{"rate-constant": node.Node{"A": -1.0, "b": 0.0, "Ea": 0.0}}
	if err := r.SetParameters(n, unit.SI(1)); err != nil {
		t.Fatalf("SetParameters: %v", err)
	}
	if err := r.Validate("R1"); err == nil {
		t.Fatal("Validate() = nil, want an error for undeclared negative A")
	}

	n["negative-A"] = true
	if err := r.SetParameters(n, unit.SI(1)); err != nil {
		t.Fatalf("SetParameters: %v", err)
	}
	if err := r.Validate("R1"); err != nil {
		t.Errorf("Validate() = %v, want nil once negative-A is declared", err)
	}
}

func TestArrheniusRateGetParametersRoundTrip(t *testing.T) {
	const tolerance = 1e-9

	r := NewArrheniusRate()
	n := node.Node{"rate-constant": node.Node{"A": 38.7, "b": 2.7, "Ea": "6260 cal/mol"}}
	rateUnits := unit.SI(2)
	if err := r.SetParameters(n, rateUnits); err != nil {
		t.Fatalf("SetParameters: %v", err)
	}
	out, err := r.GetParameters(rateUnits)
	if err != nil {
		t.Fatalf("GetParameters: %v", err)
	}
	sub, ok := out.Map("rate-constant")
	if !ok {
		t.Fatal("GetParameters() did not emit rate-constant")
	}
	A, err := sub.Float64("A")
	if err != nil {
		t.Fatalf("A: %v", err)
	}
	if math.Abs(A-38.7) > tolerance {
		t.Errorf("round-tripped A = %v, want 38.7", A)
	}
}

func TestArrheniusRateQuantityUnitConversion(t *testing.T) {
	const tolerance = 1e-9

	r := NewArrheniusRate()
	n := node.Node{"rate-constant": node.Node{"A": 38.7, "b": 0.0, "Ea": 0.0}}
	rateUnits := unit.RateUnits{System: unit.System{Quantity: "kmol"}, Order: 2}
	if err := r.SetParameters(n, rateUnits); err != nil {
		t.Fatalf("SetParameters: %v", err)
	}
	// A configured in m^3/(kmol*s) converts to SI m^3/(mol*s) by dividing
	// by 1000, since RateDim(2) has Quantity exponent -1.
	want := 38.7 / 1000
	if math.Abs(r.arr.A-want) > tolerance {
		t.Errorf("A (SI) = %v, want %v", r.arr.A, want)
	}

	out, err := r.GetParameters(rateUnits)
	if err != nil {
		t.Fatalf("GetParameters: %v", err)
	}
	sub, _ := out.Map("rate-constant")
	A, err := sub.Float64("A")
	if err != nil {
		t.Fatalf("A: %v", err)
	}
	if math.Abs(A-38.7) > tolerance {
		t.Errorf("round-tripped A = %v, want 38.7", A)
	}
}

func TestArrheniusRateLinkPropagation(t *testing.T) {
	eval := NewMultiRate[ArrheniusRate]()
	r := NewArrheniusRate()
	r.arr = NewArrhenius(1, 0, 0)
	idx := eval.Add(*r)
	r.LinkEvaluator(idx, eval)

	eval.Update(NewSharedData(1000, 0, nil))
	out := make([]float64, eval.Len())
	eval.Eval(out)
	if out[0] != 1 {
		t.Fatalf("initial k = %v, want 1", out[0])
	}

	r.SetPreExponentialFactor(2)
	eval.Eval(out)
	if out[0] != 2 {
		t.Errorf("after doubling A, k = %v, want 2", out[0])
	}

	gotIdx, err := r.Index()
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if gotIdx != idx {
		t.Errorf("Index() = %d, want %d", gotIdx, idx)
	}

	r.ReleaseEvaluator()
	if _, err := r.Index(); err == nil {
		t.Error("Index() after ReleaseEvaluator = nil error, want invalid-state")
	}
}
