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

// Arrhenius is the (A, b, E/R) triple shared by every rate law that has
// an Arrhenius-shaped piece: A is stored in SI rate units, b is
// dimensionless, and E/R is in Kelvin regardless of what energy unit the
// activation energy was originally configured in.
type Arrhenius struct {
	A  float64
	B  float64
	ER float64 // E/R, Kelvin
}

// NewArrhenius builds an Arrhenius triple directly from already
// SI-normalized coefficients (A in SI rate units, E/R in Kelvin).
func NewArrhenius(A, b, ER float64) Arrhenius {
	return Arrhenius{A: A, B: b, ER: ER}
}

// NewArrheniusFromEnergy builds an Arrhenius triple from an activation
// energy expressed in J/mol, dividing by the universal gas constant at
// ingest as this module's rates always do.
func NewArrheniusFromEnergy(A, b, activationEnergyJPerMol float64) Arrhenius {
	return Arrhenius{A: A, B: b, ER: activationEnergyJPerMol / unit.GasConstant}
}

// unsetArrhenius is the value of a default-constructed, not-yet-configured
// Arrhenius triple.
var unsetArrhenius = Arrhenius{A: math.NaN(), B: math.NaN(), ER: math.NaN()}

// IsSet reports whether a has been configured with real coefficients, as
// opposed to being a default-constructed placeholder pending
// SetParameters.
func (a Arrhenius) IsSet() bool {
	return !math.IsNaN(a.A)
}

// Eval returns k(T) = A * T^b * exp(-(E/R)/T) using the shared
// temperature terms already computed in sd.
func (a Arrhenius) Eval(sd *SharedData) float64 {
	return a.A * math.Exp(a.B*sd.LogT-a.ER*sd.RecipT)
}

// LogEval returns log(k(T)) computed directly from the coefficients,
// without evaluating k first. PlogRate does not use it: it sums linear k
// values at each tabulated pressure and takes the log of the sum.
func (a Arrhenius) LogEval(sd *SharedData) float64 {
	return math.Log(a.A) + a.B*sd.LogT - a.ER*sd.RecipT
}

// arrheniusFromNode builds an Arrhenius triple from a node of the form
// {A, b, Ea}, where A is interpreted in rateUnits and Ea is interpreted
// under ctx's default activation-energy unit unless it carries its own
// inline unit suffix. A totally absent node (nil) yields an unset triple
// rather than an error, per this module's convention of allowing
// partially configured rates.
func arrheniusFromNode(n node.Node, ctx node.Context, rateUnits unit.RateUnits) (Arrhenius, error) {
	if n == nil {
		return unsetArrhenius, nil
	}
	Acfg, err := n.Float64("A")
	if err != nil {
		return unsetArrhenius, err
	}
	b, err := n.Float64("b")
	if err != nil {
		return unsetArrhenius, err
	}
	EaVal, EaUnit, err := n.Quantity("Ea")
	if err != nil {
		return unsetArrhenius, err
	}
	EaSI, err := unit.EnergyPerMoleToSI(EaVal, ctx.EnergyUnit(EaUnit))
	if err != nil {
		return unsetArrhenius, err
	}
	factor, err := rateUnits.Factor()
	if err != nil {
		return unsetArrhenius, err
	}
	return NewArrheniusFromEnergy(Acfg*factor, b, EaSI), nil
}

// toNode serializes a back to a node with A expressed in rateUnits and Ea
// expressed in ctx's default activation-energy unit.
func (a Arrhenius) toNode(ctx node.Context, rateUnits unit.RateUnits) (node.Node, error) {
	factor, err := rateUnits.Factor()
	if err != nil {
		return nil, err
	}
	EaSI := a.ER * unit.GasConstant
	Ea, err := unit.EnergyPerMoleFromSI(EaSI, ctx.ActivationEnergy)
	if err != nil {
		return nil, err
	}
	return node.Node{
		"A":  a.A / factor,
		"b":  a.B,
		"Ea": Ea,
	}, nil
}
