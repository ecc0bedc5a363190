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

package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// GasConstant is the universal gas constant, in J/(mol*K). Every
// activation energy this module stores as "E/R" is in Kelvin and was
// divided by this value at ingest.
const GasConstant = 8.314462618

// energyFactors gives the number of joules in one of each energy unit.
var energyFactors = map[string]float64{
	"J":    1,
	"kJ":   1e3,
	"cal":  4.184,
	"kcal": 4184,
}

// quantityFactors gives the number of moles in one of each amount unit.
var quantityFactors = map[string]float64{
	"mol":  1,
	"kmol": 1e3,
}

// lengthFactors gives the number of meters in one of each length unit.
var lengthFactors = map[string]float64{
	"m":  1,
	"cm": 1e-2,
}

// timeFactors gives the number of seconds in one of each time unit.
var timeFactors = map[string]float64{
	"s":   1,
	"min": 60,
}

// pressureFactors gives the number of pascals in one of each pressure
// unit.
var pressureFactors = map[string]float64{
	"Pa":   1,
	"kPa":  1e3,
	"bar":  1e5,
	"atm":  101325,
	"torr": 101325.0 / 760.0,
}

// A Mismatch is returned when a quantity's unit does not describe the
// dimension the caller expected it to.
type Mismatch struct {
	Unit     string
	Expected string
}

func (e *Mismatch) Error() string {
	return fmt.Sprintf("unit: %q is not a valid %s unit", e.Unit, e.Expected)
}

// ParseQuantity splits a literal such as "0.01 atm" into its numeric
// value and unit suffix. A literal with no unit suffix returns an empty
// unit string. The numeric value is parsed at full float64 precision, so
// re-emitting it reproduces the original literal to within one ulp.
func ParseQuantity(s string) (value float64, unit string, err error) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool {
		return r == ' '
	})
	if i < 0 {
		v, err := strconv.ParseFloat(s, 64)
		return v, "", err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
	if err != nil {
		return 0, "", err
	}
	return v, strings.TrimSpace(s[i+1:]), nil
}

// PressureToSI converts a pressure value in the given unit to pascals.
// An empty unit is assumed to already be in pascals.
func PressureToSI(value float64, unit string) (float64, error) {
	if unit == "" {
		return value, nil
	}
	f, ok := pressureFactors[unit]
	if !ok {
		return 0, &Mismatch{Unit: unit, Expected: "pressure"}
	}
	return value * f, nil
}

// PressureFromSI converts a pressure value in pascals to the given unit.
func PressureFromSI(valueSI float64, unit string) (float64, error) {
	if unit == "" {
		return valueSI, nil
	}
	f, ok := pressureFactors[unit]
	if !ok {
		return 0, &Mismatch{Unit: unit, Expected: "pressure"}
	}
	return valueSI / f, nil
}

// EnergyPerMoleToSI converts an activation energy expressed in a compound
// energy/quantity unit (e.g. "cal/mol", "kJ/kmol") to J/mol. An empty unit
// is assumed to already be J/mol.
func EnergyPerMoleToSI(value float64, compoundUnit string) (float64, error) {
	if compoundUnit == "" {
		return value, nil
	}
	num, den, err := splitCompound(compoundUnit)
	if err != nil {
		return 0, err
	}
	ef, ok := energyFactors[num]
	if !ok {
		return 0, &Mismatch{Unit: compoundUnit, Expected: "energy/quantity"}
	}
	qf, ok := quantityFactors[den]
	if !ok {
		return 0, &Mismatch{Unit: compoundUnit, Expected: "energy/quantity"}
	}
	return value * ef / qf, nil
}

// EnergyPerMoleFromSI converts a J/mol activation energy to the given
// compound energy/quantity unit.
func EnergyPerMoleFromSI(valueSI float64, compoundUnit string) (float64, error) {
	if compoundUnit == "" {
		return valueSI, nil
	}
	num, den, err := splitCompound(compoundUnit)
	if err != nil {
		return 0, err
	}
	ef, ok := energyFactors[num]
	if !ok {
		return 0, &Mismatch{Unit: compoundUnit, Expected: "energy/quantity"}
	}
	qf, ok := quantityFactors[den]
	if !ok {
		return 0, &Mismatch{Unit: compoundUnit, Expected: "energy/quantity"}
	}
	return valueSI * qf / ef, nil
}

func splitCompound(s string) (num, den string, err error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return "", "", &Mismatch{Unit: s, Expected: "energy/quantity"}
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// System describes the length, time, and amount-of-substance bases that a
// configuration document's numeric literals are expressed in. The zero
// value is the SI system (meters, seconds, moles).
type System struct {
	Length   string // "m" (default) or "cm"
	Time     string // "s" (default) or "min"
	Quantity string // "mol" (default) or "kmol"
}

func (s System) lengthFactor() (float64, error) {
	return lookup(s.Length, "m", lengthFactors, "length")
}

func (s System) timeFactor() (float64, error) {
	return lookup(s.Time, "s", timeFactors, "time")
}

func (s System) quantityFactor() (float64, error) {
	return lookup(s.Quantity, "mol", quantityFactors, "quantity")
}

func lookup(unit, deflt string, table map[string]float64, dim string) (float64, error) {
	if unit == "" {
		unit = deflt
	}
	f, ok := table[unit]
	if !ok {
		return 0, &Mismatch{Unit: unit, Expected: dim}
	}
	return f, nil
}

// RateFactor returns the factor f such that, for a reaction of the given
// order (the number of reactant concentration factors in the rate law),
// a pre-exponential factor expressed in SI rate units (mol, m, s) equals
// f times the same pre-exponential factor expressed in this System's rate
// units.
//
// A first-order rate constant has units of 1/time and does not depend on
// the quantity or length bases; a zeroth-order one has units of
// quantity/(length^3 time), and each order above one introduces one more
// factor of (length^3/quantity).
func (s System) RateFactor(order int) (float64, error) {
	lf, err := s.lengthFactor()
	if err != nil {
		return 0, err
	}
	tf, err := s.timeFactor()
	if err != nil {
		return 0, err
	}
	qf, err := s.quantityFactor()
	if err != nil {
		return 0, err
	}
	d := RateDim(order)
	factor := 1.0
	if e, ok := d[Time]; ok {
		factor *= pow(tf, e)
	}
	if e, ok := d[Length]; ok {
		factor *= pow(lf, e)
	}
	if e, ok := d[Quantity]; ok {
		factor *= pow(qf, e)
	}
	return factor, nil
}

// RateUnits bundles a System with the reaction order that a particular
// rate coefficient's units are derived from, matching the way this
// module's callers (which own reaction stoichiometry) describe a
// pre-exponential factor's units to the rate-law layer without the
// rate-law layer needing to know anything about stoichiometry itself.
type RateUnits struct {
	System System
	Order  int
}

// SI is the rate-unit context for a rate constant already expressed in
// SI units (mol, m, s) for a reaction of the given order.
func SI(order int) RateUnits {
	return RateUnits{Order: order}
}

// Factor returns the factor f such that A_SI = A_configured * f.
func (u RateUnits) Factor() (float64, error) {
	return u.System.RateFactor(u.Order)
}

func pow(base float64, exp int) float64 {
	if exp == 0 {
		return 1
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	v := 1.0
	for i := 0; i < exp; i++ {
		v *= base
	}
	if neg {
		return 1 / v
	}
	return v
}
