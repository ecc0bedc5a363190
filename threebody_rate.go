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
	"github.com/spatialmodel/kinrate/node"
	"github.com/spatialmodel/kinrate/unit"
)

// ThreeBodyRate is k_eff(T,[X]) = k(T) * [M]_eff, where [M]_eff is the
// efficiency-weighted sum of third-body species concentrations.
type ThreeBodyRate struct {
	arr            Arrhenius
	allowNegativeA bool
	efficiencies   map[string]float64
	link           link[ThreeBodyRate]
}

// NewThreeBodyRate returns a default-constructed ThreeBodyRate with NaN
// coefficients, pending SetParameters.
func NewThreeBodyRate() *ThreeBodyRate {
	return &ThreeBodyRate{arr: unsetArrhenius}
}

// SetParameters configures r the same way ArrheniusRate.SetParameters
// does, plus an optional "efficiencies" map of species name to
// third-body efficiency; unlisted species default to an efficiency of 1.
func (r *ThreeBodyRate) SetParameters(n node.Node, rateUnits unit.RateUnits) error {
	r.allowNegativeA = n.Bool("negative-A", false)
	if n.Has("rate-constant") {
		sub, ok := n.Map("rate-constant")
		if !ok {
			return invalidParameter("", "rate-constant is not a table")
		}
		arr, err := arrheniusFromNode(sub, n.Units(), rateUnits)
		if err != nil {
			return err
		}
		r.arr = arr
	} else {
		logUnsetFallback("ThreeBody", "rate-constant")
		r.arr = unsetArrhenius
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
	return nil
}

// GetParameters serializes r back to a node.
func (r *ThreeBodyRate) GetParameters(rateUnits unit.RateUnits) (node.Node, error) {
	out := node.Node{}
	if r.allowNegativeA {
		out["negative-A"] = true
	}
	if r.arr.IsSet() {
		sub, err := r.arr.toNode(node.Context{}, rateUnits)
		if err != nil {
			return nil, err
		}
		out["rate-constant"] = sub
	}
	if len(r.efficiencies) > 0 {
		eff := make(node.Node, len(r.efficiencies))
		for k, v := range r.efficiencies {
			eff[k] = v
		}
		out["efficiencies"] = eff
	}
	return out, nil
}

// Validate fails with InvalidParameter if A is negative and negative-A
// was not declared.
func (r ThreeBodyRate) Validate(equation string) error {
	if !r.allowNegativeA && r.arr.IsSet() && r.arr.A < 0 {
		return invalidParameter(equation, "undeclared negative pre-exponential factor")
	}
	return nil
}

// Eval returns k(T) * [M]_eff.
func (r ThreeBodyRate) Eval(sd *SharedData) float64 {
	return r.arr.Eval(sd) * sd.ThirdBodyConcentration(r.efficiencies)
}

// LinkEvaluator attaches r to eval at the given index.
func (r *ThreeBodyRate) LinkEvaluator(index int, eval *MultiRate[ThreeBodyRate]) {
	r.link.set(index, eval)
}

// ReleaseEvaluator detaches r from its evaluator, idempotently.
func (r *ThreeBodyRate) ReleaseEvaluator() {
	r.link.release()
}

// Index returns r's index in its evaluator, or an InvalidState error if
// r is not linked.
func (r *ThreeBodyRate) Index() (int, error) {
	return r.link.index()
}

// SetPreExponentialFactor sets A and forwards the change when linked.
func (r *ThreeBodyRate) SetPreExponentialFactor(A float64) {
	r.arr.A = A
	forward(&r.link, func(cp *ThreeBodyRate) { cp.SetPreExponentialFactor(A) })
}

// SetTemperatureExponent sets b and forwards the change when linked.
func (r *ThreeBodyRate) SetTemperatureExponent(b float64) {
	r.arr.B = b
	forward(&r.link, func(cp *ThreeBodyRate) { cp.SetTemperatureExponent(b) })
}

// SetActivationEnergy sets the activation energy in J/mol and forwards
// the change when linked.
func (r *ThreeBodyRate) SetActivationEnergy(EJPerMol float64) {
	r.arr.ER = EJPerMol / unit.GasConstant
	forward(&r.link, func(cp *ThreeBodyRate) { cp.SetActivationEnergy(EJPerMol) })
}

// SetEfficiencies replaces the third-body efficiency table and forwards
// the change when linked.
func (r *ThreeBodyRate) SetEfficiencies(efficiencies map[string]float64) {
	r.efficiencies = efficiencies
	forward(&r.link, func(cp *ThreeBodyRate) { cp.SetEfficiencies(efficiencies) })
}
