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

import "testing"

func TestErrorMessageIncludesEquationWhenPresent(t *testing.T) {
	err := invalidParameter("O + H2 <=> H + OH", "undeclared negative pre-exponential factor")
	got := err.Error()
	want := `invalid-parameter: undeclared negative pre-exponential factor (reaction "O + H2 <=> H + OH")`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorMessageOmitsEquationWhenAbsent(t *testing.T) {
	err := invalidState("rate is not linked to an evaluator")
	got := err.Error()
	want := "invalid-state: rate is not linked to an evaluator"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		InvalidParameter: "invalid-parameter",
		UnitMismatch:     "unit-mismatch",
		InvalidState:     "invalid-state",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(k), got, want)
		}
	}
}
