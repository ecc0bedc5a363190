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

// ArrheniusRate is a plain elementary rate law, k(T) = A T^b exp(-E/RT).
type ArrheniusRate struct {
	arr            Arrhenius
	allowNegativeA bool
	link           link[ArrheniusRate]
}

// NewArrheniusRate returns a default-constructed ArrheniusRate with NaN
// coefficients, pending SetParameters.
func NewArrheniusRate() *ArrheniusRate {
	return &ArrheniusRate{arr: unsetArrhenius}
}

// NewArrheniusRateFromCoeffs returns an ArrheniusRate configured directly
// from SI-normalized coefficients, bypassing the parameter tree.
func NewArrheniusRateFromCoeffs(A, b, ER float64) *ArrheniusRate {
	return &ArrheniusRate{arr: NewArrhenius(A, b, ER)}
}

// SetParameters configures r from a node whose "rate-constant" key holds
// {A, b, Ea}. A node with no "rate-constant" key leaves r unset rather
// than erroring, so that a reaction can be assembled before a rate
// constant is known. An optional "negative-A" boolean governs whether
// Validate accepts a negative pre-exponential factor.
func (r *ArrheniusRate) SetParameters(n node.Node, rateUnits unit.RateUnits) error {
	r.allowNegativeA = n.Bool("negative-A", false)
	if !n.Has("rate-constant") {
		logUnsetFallback("Arrhenius", "rate-constant")
		r.arr = unsetArrhenius
		return nil
	}
	sub, ok := n.Map("rate-constant")
	if !ok {
		return invalidParameter("", "rate-constant is not a table")
	}
	ctx := n.Units()
	arr, err := arrheniusFromNode(sub, ctx, rateUnits)
	if err != nil {
		return err
	}
	r.arr = arr
	return nil
}

// GetParameters serializes r back to a node. "rate-constant" is emitted
// only when r has been configured; "negative-A" is emitted only when
// true.
func (r *ArrheniusRate) GetParameters(rateUnits unit.RateUnits) (node.Node, error) {
	out := node.Node{}
	if r.allowNegativeA {
		out["negative-A"] = true
	}
	if !r.arr.IsSet() {
		return out, nil
	}
	sub, err := r.arr.toNode(node.Context{}, rateUnits)
	if err != nil {
		return nil, err
	}
	out["rate-constant"] = sub
	return out, nil
}

// Validate fails with InvalidParameter if A is negative and negative-A
// was not declared.
func (r ArrheniusRate) Validate(equation string) error {
	if !r.allowNegativeA && r.arr.IsSet() && r.arr.A < 0 {
		return invalidParameter(equation, "undeclared negative pre-exponential factor")
	}
	return nil
}

// Eval returns k(T), or NaN if r has not been configured.
func (r ArrheniusRate) Eval(sd *SharedData) float64 {
	return r.arr.Eval(sd)
}

// LinkEvaluator attaches r to eval at the given index. Mutators on r will
// subsequently also update eval's copy at that index.
func (r *ArrheniusRate) LinkEvaluator(index int, eval *MultiRate[ArrheniusRate]) {
	r.link.set(index, eval)
}

// ReleaseEvaluator detaches r from its evaluator, idempotently.
func (r *ArrheniusRate) ReleaseEvaluator() {
	r.link.release()
}

// Index returns r's index in its evaluator, or an InvalidState error if
// r is not linked.
func (r *ArrheniusRate) Index() (int, error) {
	return r.link.index()
}

// SetPreExponentialFactor sets A (in SI rate units) and, if r is linked,
// forwards the same change to the evaluator's copy of r.
func (r *ArrheniusRate) SetPreExponentialFactor(A float64) {
	r.arr.A = A
	forward(&r.link, func(cp *ArrheniusRate) { cp.SetPreExponentialFactor(A) })
}

// SetTemperatureExponent sets b and forwards the change when linked.
func (r *ArrheniusRate) SetTemperatureExponent(b float64) {
	r.arr.B = b
	forward(&r.link, func(cp *ArrheniusRate) { cp.SetTemperatureExponent(b) })
}

// SetActivationEnergy sets the activation energy in J/mol (dividing by
// the gas constant to store E/R) and forwards the change when linked.
func (r *ArrheniusRate) SetActivationEnergy(EJPerMol float64) {
	r.arr.ER = EJPerMol / unit.GasConstant
	forward(&r.link, func(cp *ArrheniusRate) { cp.SetActivationEnergy(EJPerMol) })
}
