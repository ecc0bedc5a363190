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
	"testing"
)

func TestNewSharedDataDerivedFields(t *testing.T) {
	d := NewSharedData(1000, 101325, nil)
	if d.T != 1000 || d.P != 101325 {
		t.Fatalf("T=%v P=%v, want 1000, 101325", d.T, d.P)
	}
	if math.Abs(d.LogT-math.Log(1000)) > 1e-12 {
		t.Errorf("LogT = %v, want log(1000)", d.LogT)
	}
	if d.RecipT != 0.001 {
		t.Errorf("RecipT = %v, want 0.001", d.RecipT)
	}
	if math.Abs(d.LogP-math.Log(101325)) > 1e-12 {
		t.Errorf("LogP = %v, want log(101325)", d.LogP)
	}
}

func TestThirdBodyConcentrationDefaultsUnlistedSpeciesToOne(t *testing.T) {
	d := NewSharedData(1000, 0, map[string]float64{"AR": 2, "N2": 3})
	got := d.ThirdBodyConcentration(map[string]float64{"AR": 0.5})
	want := 0.5*2 + 1.0*3
	if got != want {
		t.Errorf("ThirdBodyConcentration() = %v, want %v", got, want)
	}
}

func TestThirdBodyConcentrationNilEfficienciesAllDefaultToOne(t *testing.T) {
	d := NewSharedData(1000, 0, map[string]float64{"AR": 2, "N2": 3})
	got := d.ThirdBodyConcentration(nil)
	if got != 5 {
		t.Errorf("ThirdBodyConcentration(nil) = %v, want 5", got)
	}
}
