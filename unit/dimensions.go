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

// Package unit represents physical dimensions and performs the unit
// conversions needed to move reaction-rate parameters between a
// self-describing configuration document and SI-normalized numerics.
package unit

import "fmt"

// Dimension is one of the base physical dimensions that a Quantity may
// be expressed in terms of.
type Dimension int

// Base dimensions used by the rate-law parameter tree.
const (
	Dimensionless Dimension = iota
	Mass
	Length
	Time
	Quantity // amount of substance, e.g. mole or kilomole
	Temperature
	Current
)

var dimensionNames = map[Dimension]string{
	Dimensionless: "",
	Mass:          "kg",
	Length:        "m",
	Time:          "s",
	Quantity:      "mol",
	Temperature:   "K",
	Current:       "A",
}

// Dimensions is an exponent vector over the base Dimensions. A key absent
// from the map is taken to have exponent zero.
type Dimensions map[Dimension]int

// Matches reports whether two exponent vectors describe the same physical
// dimension.
func (d Dimensions) Matches(o Dimensions) bool {
	if len(d) != len(o) {
		return false
	}
	for k, v := range d {
		if o[k] != v {
			return false
		}
	}
	return true
}

// Pow returns the dimensions of a quantity formed by raising d to the
// given integer power.
func (d Dimensions) Pow(p int) Dimensions {
	o := make(Dimensions, len(d))
	for k, v := range d {
		if v*p != 0 {
			o[k] = v * p
		}
	}
	return o
}

// Combine returns the dimensions of a product of quantities with
// dimensions d and o.
func (d Dimensions) Combine(o Dimensions) Dimensions {
	out := make(Dimensions, len(d)+len(o))
	for k, v := range d {
		out[k] += v
	}
	for k, v := range o {
		out[k] += v
		if out[k] == 0 {
			delete(out, k)
		}
	}
	return out
}

func (d Dimensions) String() string {
	if len(d) == 0 {
		return "dimensionless"
	}
	s := ""
	for k, v := range d {
		if v == 0 {
			continue
		}
		if s != "" {
			s += " "
		}
		if v == 1 {
			s += dimensionNames[k]
		} else {
			s += fmt.Sprintf("%s^%d", dimensionNames[k], v)
		}
	}
	return s
}

// Common derived dimensions used by rate-law quantities.
var (
	Dimless     = Dimensions{}
	Kelvin      = Dimensions{Temperature: 1}
	Joule       = Dimensions{Mass: 1, Length: 2, Time: -2}
	JoulePerMol = Dimensions{Mass: 1, Length: 2, Time: -2, Quantity: -1}
	Pascal      = Dimensions{Mass: 1, Length: -1, Time: -2}
	MolPerM3    = Dimensions{Quantity: 1, Length: -3}
)

// ConcentrationDim returns the dimension of a concentration, i.e. amount
// of substance per unit volume.
func ConcentrationDim() Dimensions {
	return MolPerM3
}

// RateDim returns the dimension of a rate constant for a reaction of the
// given order (the number of concentration factors consumed on the way to
// forming a rate of reaction per unit volume per unit time). A
// zeroth-order rate constant has the dimension of a concentration rate;
// each additional order removes one power of concentration from the
// numerator.
//
//	order 1 (unimolecular): 1/s
//	order 2 (bimolecular):  m^3/(mol s)
//	order 3 (termolecular): m^6/(mol^2 s)
func RateDim(order int) Dimensions {
	d := Dimensions{Time: -1}
	if order == 1 {
		return d
	}
	return d.Combine(MolPerM3.Pow(-(order - 1)))
}
