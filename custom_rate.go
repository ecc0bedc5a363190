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

// FunctionOfTemperature is a scalar function of temperature. CustomRate
// holds one of these rather than a bare func value so that both a plain
// Go closure and an expression-backed implementation (see the rateexpr
// package) can sit behind the same field.
type FunctionOfTemperature interface {
	Eval(T float64) float64
}

// GoFunc adapts a plain Go function to FunctionOfTemperature, for
// mechanisms assembled programmatically rather than from a configuration
// document.
type GoFunc func(T float64) float64

// Eval calls f.
func (f GoFunc) Eval(T float64) float64 {
	return f(T)
}

// CustomRate evaluates a caller-supplied function of temperature. It has
// no parameter-tree representation: configuring or round-tripping it
// through a node is a no-op, since the function object itself cannot be
// reconstructed from the tree.
type CustomRate struct {
	f    FunctionOfTemperature
	link link[CustomRate]
}

// NewCustomRate returns a default-constructed CustomRate with no
// function set.
func NewCustomRate() *CustomRate {
	return &CustomRate{}
}

// SetParameters is a no-op: CustomRate's function object is never
// configured from a parameter node, only from SetRateFunction.
func (r *CustomRate) SetParameters(n node.Node, rateUnits unit.RateUnits) error {
	return nil
}

// GetParameters always returns an empty node, since the underlying
// function object has no parameter-tree representation.
func (r *CustomRate) GetParameters(rateUnits unit.RateUnits) (node.Node, error) {
	return node.Node{}, nil
}

// Validate is always a no-op.
func (r CustomRate) Validate(equation string) error {
	return nil
}

// Eval returns f(T), or NaN if no function has been set.
func (r CustomRate) Eval(sd *SharedData) float64 {
	if r.f == nil {
		return math.NaN()
	}
	return r.f.Eval(sd.T)
}

// LinkEvaluator attaches r to eval at the given index.
func (r *CustomRate) LinkEvaluator(index int, eval *MultiRate[CustomRate]) {
	r.link.set(index, eval)
}

// ReleaseEvaluator detaches r from its evaluator, idempotently.
func (r *CustomRate) ReleaseEvaluator() {
	r.link.release()
}

// Index returns r's index in its evaluator, or an InvalidState error if
// r is not linked.
func (r *CustomRate) Index() (int, error) {
	return r.link.index()
}

// SetRateFunction replaces the function object and forwards the change
// when linked.
func (r *CustomRate) SetRateFunction(f FunctionOfTemperature) {
	r.f = f
	forward(&r.link, func(cp *CustomRate) { cp.SetRateFunction(f) })
}
