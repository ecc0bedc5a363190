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

// Rate is the contract every rate-law variant satisfies: given the
// shared per-evaluation data for a batch, return this rate's forward
// rate coefficient k, and separately allow a final configuration pass to
// check the rate is physically sane. Eval never errors; an unset rate
// evaluates to NaN so that a caller iterating a batch doesn't have to
// special-case incompletely configured reactions mid-loop.
type Rate interface {
	Eval(sd *SharedData) float64
	Validate(equation string) error
}
