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

package tomlconfig

import "testing"

const sampleDoc = `
[units]
activation-energy = "cal/mol"

[rate-constant]
A = 38.7
b = 2.7
Ea = 6260
`

func TestDecode(t *testing.T) {
	n, err := Decode(sampleDoc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	units, ok := n.Map("units")
	if !ok {
		t.Fatal("decoded node has no units table")
	}
	ae, err := units.String("activation-energy")
	if err != nil {
		t.Fatalf("activation-energy: %v", err)
	}
	if ae != "cal/mol" {
		t.Errorf("activation-energy = %q, want cal/mol", ae)
	}

	sub, ok := n.Map("rate-constant")
	if !ok {
		t.Fatal("decoded node has no rate-constant table")
	}
	A, err := sub.Float64("A")
	if err != nil {
		t.Fatalf("A: %v", err)
	}
	if A != 38.7 {
		t.Errorf("A = %v, want 38.7", A)
	}
}

func TestDecodeMalformedDocument(t *testing.T) {
	if _, err := Decode("not = valid = toml = ["); err == nil {
		t.Error("Decode() = nil error, want a parse error")
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile("/nonexistent/kinrate-config.toml"); err == nil {
		t.Error("DecodeFile() = nil error, want an error for a missing file")
	}
}
