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
	"math"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	v, u, err := ParseQuantity("0.01 atm")
	if err != nil {
		t.Fatal(err)
	}
	if u != "atm" {
		t.Errorf("unit = %q, want atm", u)
	}
	if v != 0.01 {
		t.Errorf("value = %v, want 0.01", v)
	}

	v, u, err = ParseQuantity("1000")
	if err != nil {
		t.Fatal(err)
	}
	if u != "" {
		t.Errorf("unit = %q, want empty", u)
	}
	if v != 1000 {
		t.Errorf("value = %v, want 1000", v)
	}
}

func TestPressureToSI(t *testing.T) {
	got, err := PressureToSI(0.01, "atm")
	if err != nil {
		t.Fatal(err)
	}
	want := 0.01 * 101325.0
	if math.Abs(got-want)/want > 1e-12 {
		t.Errorf("PressureToSI = %v, want %v", got, want)
	}
	back, err := PressureFromSI(got, "atm")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back-0.01) > 1e-12 {
		t.Errorf("PressureFromSI round trip = %v, want 0.01", back)
	}
}

func TestEnergyPerMoleToSI(t *testing.T) {
	got, err := EnergyPerMoleToSI(6260, "cal/mol")
	if err != nil {
		t.Fatal(err)
	}
	want := 6260 * 4.184
	if math.Abs(got-want)/want > 1e-12 {
		t.Errorf("EnergyPerMoleToSI = %v, want %v", got, want)
	}
	back, err := EnergyPerMoleFromSI(got, "cal/mol")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back-6260)/6260 > 1e-12 {
		t.Errorf("round trip = %v, want 6260", back)
	}
}

func TestRateFactorOrders(t *testing.T) {
	sys := System{Length: "cm", Time: "s", Quantity: "mol"}
	// Order 2 (bimolecular): SI units are m^3/(mol s); this system's units
	// are cm^3/(mol s). 1 cm^3 = 1e-6 m^3, so multiplying a value in
	// cm^3/(mol s) by 1e-6 gives the same physical rate in m^3/(mol s).
	f, err := sys.RateFactor(2)
	if err != nil {
		t.Fatal(err)
	}
	want := 1e-6
	if math.Abs(f-want)/want > 1e-12 {
		t.Errorf("RateFactor(2) = %v, want %v", f, want)
	}

	f1, err := sys.RateFactor(1)
	if err != nil {
		t.Fatal(err)
	}
	if f1 != 1 {
		t.Errorf("RateFactor(1) = %v, want 1 (unimolecular rates don't depend on concentration units)", f1)
	}
}

func TestUnknownUnit(t *testing.T) {
	if _, err := PressureToSI(1, "furlongs"); err == nil {
		t.Error("expected error for unknown pressure unit")
	}
	if _, err := EnergyPerMoleToSI(1, "erg/mol"); err == nil {
		t.Error("expected error for unknown energy unit")
	}
}
