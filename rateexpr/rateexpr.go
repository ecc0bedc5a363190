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

// Package rateexpr implements kinrate.FunctionOfTemperature with a
// string-formula expression compiled once at construction time and
// re-evaluated on every call, so that a mechanism can author a custom
// rate law's f(T) in a configuration document instead of Go code.
package rateexpr

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// defaultFunctions are the expression functions available to every
// Expression without the caller having to supply them, covering the
// handful of transcendental functions a rate-law formula commonly needs.
var defaultFunctions = map[string]govaluate.ExpressionFunction{
	"exp": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("rateexpr: exp takes 1 argument, got %d", len(args))
		}
		return math.Exp(args[0].(float64)), nil
	},
	"log": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("rateexpr: log takes 1 argument, got %d", len(args))
		}
		return math.Log(args[0].(float64)), nil
	},
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("rateexpr: pow takes 2 arguments, got %d", len(args))
		}
		return math.Pow(args[0].(float64), args[1].(float64)), nil
	},
	"sqrt": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("rateexpr: sqrt takes 1 argument, got %d", len(args))
		}
		return math.Sqrt(args[0].(float64)), nil
	},
}

// Expression is a compiled arithmetic formula in the variable "T". It
// satisfies kinrate.FunctionOfTemperature without importing the kinrate
// package, since Go interfaces are satisfied structurally.
type Expression struct {
	src      string
	compiled *govaluate.EvaluableExpression
}

// New compiles formula once. formula may reference the variable T and
// call exp, log, pow, and sqrt; e.g. "2.1e10 * exp(-4200/T)".
func New(formula string) (*Expression, error) {
	compiled, err := govaluate.NewEvaluableExpressionWithFunctions(formula, defaultFunctions)
	if err != nil {
		return nil, fmt.Errorf("rateexpr: %q: %w", formula, err)
	}
	return &Expression{src: formula, compiled: compiled}, nil
}

// String returns the original formula text.
func (e *Expression) String() string {
	return e.src
}

// Eval evaluates the compiled formula at the given temperature. A
// runtime evaluation failure (e.g. a malformed operand type) is reported
// as NaN rather than propagated, matching kinrate's convention that
// evaluation never throws.
func (e *Expression) Eval(T float64) float64 {
	result, err := e.compiled.Evaluate(map[string]interface{}{"T": T})
	if err != nil {
		return math.NaN()
	}
	f, ok := result.(float64)
	if !ok {
		return math.NaN()
	}
	return f
}
