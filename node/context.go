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

package node

import "github.com/spatialmodel/kinrate/unit"

// Context is the unit system attached to a node: the default activation
// energy unit for any Ea entries below it that don't carry their own
// inline unit suffix, plus the length/time/quantity bases that A
// coefficients are expressed in.
type Context struct {
	ActivationEnergy string // e.g. "cal/mol"; empty means J/mol.
	System           unit.System
}

// Units reads the "units" sub-tree of n (as found at the root of a
// mechanism document) into a Context. A zero Context (SI throughout) is
// returned if n has no "units" entry.
func (n Node) Units() Context {
	u, ok := n.Map("units")
	if !ok {
		return Context{}
	}
	ctx := Context{}
	if s, err := u.String("activation-energy"); err == nil {
		ctx.ActivationEnergy = s
	}
	if s, err := u.String("length"); err == nil {
		ctx.System.Length = s
	}
	if s, err := u.String("time"); err == nil {
		ctx.System.Time = s
	}
	if s, err := u.String("quantity"); err == nil {
		ctx.System.Quantity = s
	}
	return ctx
}

// EnergyUnit returns unit, if non-empty, otherwise the Context's default
// activation-energy unit.
func (c Context) EnergyUnit(unit string) string {
	if unit != "" {
		return unit
	}
	return c.ActivationEnergy
}
