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

import "math"

// SharedData is the immutable, per-evaluation bundle of temperature-,
// pressure-, and composition-derived scalars broadcast to every rate in a
// batch. Building it once per (T, P, composition) and reusing it across
// every MultiRate.Update call is what keeps a simulation step's rate
// evaluation free of repeated log/exp calls on the hot path.
type SharedData struct {
	T      float64 // temperature, K
	LogT   float64
	RecipT float64 // 1/T

	P    float64 // pressure, Pa
	LogP float64

	// Concentrations holds the molar concentration of each species, in
	// mol/m^3, keyed by species name. It is only consulted by the
	// ThreeBody and Falloff variants, and may be nil for mechanisms that
	// use neither.
	Concentrations map[string]float64
}

// NewSharedData builds a SharedData for the given temperature (K),
// pressure (Pa), and species concentrations (mol/m^3).
func NewSharedData(T, P float64, concentrations map[string]float64) *SharedData {
	return &SharedData{
		T:              T,
		LogT:           math.Log(T),
		RecipT:         1 / T,
		P:              P,
		LogP:           math.Log(P),
		Concentrations: concentrations,
	}
}

// ThirdBodyConcentration returns [M]_eff = Σ ε_s [X_s] for the given
// efficiency table, where a species present in d.Concentrations but
// absent from efficiencies gets the default efficiency of 1.
func (d *SharedData) ThirdBodyConcentration(efficiencies map[string]float64) float64 {
	var m float64
	for species, conc := range d.Concentrations {
		eff := 1.0
		if e, ok := efficiencies[species]; ok {
			eff = e
		}
		m += eff * conc
	}
	return m
}
