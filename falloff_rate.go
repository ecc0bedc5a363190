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

	"github.com/spatialmodel/kinrate/node"
	"github.com/spatialmodel/kinrate/unit"
)

// TroeParams are the four coefficients of the Troe falloff blending
// function. T2 is optional: a Troe table with no third exponential term
// leaves T2 as NaN.
type TroeParams struct {
	A, T3, T1, T2 float64
}

func unsetTroeParams() TroeParams {
	return TroeParams{A: math.NaN(), T3: math.NaN(), T1: math.NaN(), T2: math.NaN()}
}

func (t TroeParams) isSet() bool {
	return !math.IsNaN(t.A)
}

// fcent evaluates the Troe center broadening factor at temperature T.
func (t TroeParams) fcent(T float64) float64 {
	fc := (1-t.A)*math.Exp(-T/t.T3) + t.A*math.Exp(-T/t.T1)
	if !math.IsNaN(t.T2) {
		fc += math.Exp(-t.T2 / T)
	}
	return fc
}

// FalloffRate is a pressure-dependent falloff rate between a low-pressure
// limit k0 and a high-pressure limit k∞, blended by the Troe function (or
// the trivial F=1 Lindemann form when no Troe parameters are given).
type FalloffRate struct {
	k0, kInf     Arrhenius
	efficiencies map[string]float64
	troe         TroeParams
	hasTroe      bool
	link         link[FalloffRate]
}

// NewFalloffRate returns a default-constructed FalloffRate with NaN
// coefficients, pending SetParameters.
func NewFalloffRate() *FalloffRate {
	return &FalloffRate{k0: unsetArrhenius, kInf: unsetArrhenius, troe: unsetTroeParams()}
}

// SetParameters configures r from "low-P-rate-constant",
// "high-P-rate-constant", an optional "efficiencies" map, and an
// optional "Troe" table of {A, T3, T1, T2}.
func (r *FalloffRate) SetParameters(n node.Node, rateUnits unit.RateUnits) error {
	ctx := n.Units()
	if sub, ok := n.Map("low-P-rate-constant"); ok {
		arr, err := arrheniusFromNode(sub, ctx, rateUnits)
		if err != nil {
			return err
		}
		r.k0 = arr
	} else {
		logUnsetFallback("Falloff", "low-P-rate-constant")
		r.k0 = unsetArrhenius
	}
	// The high-pressure limit is converted with the same rateUnits as the
	// low-pressure limit: no separate order is applied to k∞ (or k0), so
	// both A values are scaled by the same factor.
	if sub, ok := n.Map("high-P-rate-constant"); ok {
		arr, err := arrheniusFromNode(sub, ctx, rateUnits)
		if err != nil {
			return err
		}
		r.kInf = arr
	} else {
		logUnsetFallback("Falloff", "high-P-rate-constant")
		r.kInf = unsetArrhenius
	}
	if n.Has("efficiencies") {
		eff, err := n.StringMapFloat("efficiencies")
		if err != nil {
			return err
		}
		r.efficiencies = eff
	} else {
		r.efficiencies = nil
	}
	if troeNode, ok := n.Map("Troe"); ok {
		a, err := troeNode.Float64("A")
		if err != nil {
			return err
		}
		t3, err := troeNode.Float64("T3")
		if err != nil {
			return err
		}
		t1, err := troeNode.Float64("T1")
		if err != nil {
			return err
		}
		t2 := math.NaN()
		if troeNode.Has("T2") {
			t2, err = troeNode.Float64("T2")
			if err != nil {
				return err
			}
		}
		r.troe = TroeParams{A: a, T3: t3, T1: t1, T2: t2}
		r.hasTroe = true
	} else {
		r.troe = unsetTroeParams()
		r.hasTroe = false
	}
	return nil
}

// GetParameters serializes r back to a node.
func (r *FalloffRate) GetParameters(rateUnits unit.RateUnits) (node.Node, error) {
	out := node.Node{}
	if r.k0.IsSet() {
		sub, err := r.k0.toNode(node.Context{}, rateUnits)
		if err != nil {
			return nil, err
		}
		out["low-P-rate-constant"] = sub
	}
	if r.kInf.IsSet() {
		sub, err := r.kInf.toNode(node.Context{}, rateUnits)
		if err != nil {
			return nil, err
		}
		out["high-P-rate-constant"] = sub
	}
	if len(r.efficiencies) > 0 {
		eff := make(node.Node, len(r.efficiencies))
		for k, v := range r.efficiencies {
			eff[k] = v
		}
		out["efficiencies"] = eff
	}
	if r.hasTroe {
		troeOut := node.Node{"A": r.troe.A, "T3": r.troe.T3, "T1": r.troe.T1}
		if !math.IsNaN(r.troe.T2) {
			troeOut["T2"] = r.troe.T2
		}
		out["Troe"] = troeOut
	}
	return out, nil
}

// Validate is a no-op for FalloffRate: a falloff rate's limits are not
// subject to the negative-pre-exponential-factor convention the way a
// plain Arrhenius rate constant is, since Cantera treats them the same
// way Chebyshev is treated (no sign convention to police here).
func (r FalloffRate) Validate(equation string) error {
	return nil
}

// Eval returns k∞ * (Pr/(1+Pr)) * F, where Pr = k0*[M]/k∞ and F is the
// Troe blending factor (or 1 for the Lindemann form).
func (r FalloffRate) Eval(sd *SharedData) float64 {
	concM := sd.ThirdBodyConcentration(r.efficiencies)
	k0 := r.k0.Eval(sd)
	kInf := r.kInf.Eval(sd)
	Pr := k0 * concM / kInf
	F := 1.0
	if r.hasTroe {
		Fcent := r.troe.fcent(sd.T)
		logFcent := math.Log10(Fcent)
		logPr := math.Log10(Pr)
		c := -0.4 - 0.67*logFcent
		n := 0.75 - 1.27*logFcent
		f1 := (logPr + c) / (n - 0.14*(logPr+c))
		F = math.Pow(10, logFcent/(1+f1*f1))
	}
	return kInf * (Pr / (1 + Pr)) * F
}

// LinkEvaluator attaches r to eval at the given index.
func (r *FalloffRate) LinkEvaluator(index int, eval *MultiRate[FalloffRate]) {
	r.link.set(index, eval)
}

// ReleaseEvaluator detaches r from its evaluator, idempotently.
func (r *FalloffRate) ReleaseEvaluator() {
	r.link.release()
}

// Index returns r's index in its evaluator, or an InvalidState error if
// r is not linked.
func (r *FalloffRate) Index() (int, error) {
	return r.link.index()
}

// SetLowPressureRateConstant replaces k0 and forwards the change when
// linked.
func (r *FalloffRate) SetLowPressureRateConstant(A, b, EJPerMol float64) {
	r.k0 = NewArrheniusFromEnergy(A, b, EJPerMol)
	forward(&r.link, func(cp *FalloffRate) { cp.SetLowPressureRateConstant(A, b, EJPerMol) })
}

// SetHighPressureRateConstant replaces k∞ and forwards the change when
// linked.
func (r *FalloffRate) SetHighPressureRateConstant(A, b, EJPerMol float64) {
	r.kInf = NewArrheniusFromEnergy(A, b, EJPerMol)
	forward(&r.link, func(cp *FalloffRate) { cp.SetHighPressureRateConstant(A, b, EJPerMol) })
}

// SetEfficiencies replaces the third-body efficiency table and forwards
// the change when linked.
func (r *FalloffRate) SetEfficiencies(efficiencies map[string]float64) {
	r.efficiencies = efficiencies
	forward(&r.link, func(cp *FalloffRate) { cp.SetEfficiencies(efficiencies) })
}

// SetTroeParams replaces the Troe blending parameters and forwards the
// change when linked.
func (r *FalloffRate) SetTroeParams(p TroeParams) {
	r.troe = p
	r.hasTroe = true
	forward(&r.link, func(cp *FalloffRate) { cp.SetTroeParams(p) })
}
