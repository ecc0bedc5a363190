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

// Package node implements the self-describing parameter tree that rate
// objects are configured from and serialized back to: a recursive
// mapping from string keys to scalars, nested maps, or homogeneous
// sequences, decoded loosely (as from TOML or JSON) and coerced on
// demand rather than bound to a fixed Go struct shape.
package node

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/spatialmodel/kinrate/unit"
)

// Node is one level of the parameter tree.
type Node map[string]interface{}

// MissingKeyError is returned when a required key is absent from a Node.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("node: missing required key %q", e.Key)
}

// Has reports whether key is present in n.
func (n Node) Has(key string) bool {
	if n == nil {
		return false
	}
	_, ok := n[key]
	return ok
}

// Float64 returns the value at key coerced to a float64. It returns a
// *MissingKeyError if key is absent.
func (n Node) Float64(key string) (float64, error) {
	v, ok := n[key]
	if !ok {
		return 0, &MissingKeyError{Key: key}
	}
	return cast.ToFloat64E(v)
}

// String returns the value at key coerced to a string. It returns a
// *MissingKeyError if key is absent.
func (n Node) String(key string) (string, error) {
	v, ok := n[key]
	if !ok {
		return "", &MissingKeyError{Key: key}
	}
	return cast.ToStringE(v)
}

// Bool returns the value at key coerced to a bool, or deflt if key is
// absent.
func (n Node) Bool(key string, deflt bool) bool {
	v, ok := n[key]
	if !ok {
		return deflt
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return deflt
	}
	return b
}

// Map returns the sub-tree at key.
func (n Node) Map(key string) (Node, bool) {
	v, ok := n[key]
	if !ok {
		return nil, false
	}
	return asNode(v)
}

// Slice returns the homogeneous sequence at key.
func (n Node) Slice(key string) ([]interface{}, error) {
	v, ok := n[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}
	return cast.ToSliceE(v)
}

// MapSlice returns a slice of key at key, coercing each element to a
// sub-tree. It is used for sequences of records such as Plog's
// rate-constants list.
func (n Node) MapSlice(key string) ([]Node, error) {
	raw, err := n.Slice(key)
	if err != nil {
		return nil, err
	}
	out := make([]Node, len(raw))
	for i, v := range raw {
		sub, ok := asNode(v)
		if !ok {
			return nil, fmt.Errorf("node: element %d of %q is not a table", i, key)
		}
		out[i] = sub
	}
	return out, nil
}

// FloatMatrix returns the value at key coerced to a rectangular matrix of
// float64, such as Chebyshev's "data" entry.
func (n Node) FloatMatrix(key string) ([][]float64, error) {
	rows, err := n.Slice(key)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		rs, err := cast.ToSliceE(row)
		if err != nil {
			return nil, fmt.Errorf("node: row %d of %q: %w", i, key, err)
		}
		fr := make([]float64, len(rs))
		for j, v := range rs {
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return nil, fmt.Errorf("node: element [%d][%d] of %q: %w", i, j, key, err)
			}
			fr[j] = f
		}
		out[i] = fr
	}
	return out, nil
}

// FloatSlice returns the value at key coerced to a []float64.
func (n Node) FloatSlice(key string) ([]float64, error) {
	raw, err := n.Slice(key)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("node: element %d of %q: %w", i, key, err)
		}
		out[i] = f
	}
	return out, nil
}

// StringMapFloat returns the value at key coerced to a map of string to
// float64, such as a Troe efficiencies table.
func (n Node) StringMapFloat(key string) (map[string]float64, error) {
	v, ok := n[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}
	sub, ok := asNode(v)
	if !ok {
		return nil, fmt.Errorf("unable to cast %#v of type %T to map[string]interface{}", v, v)
	}
	sm := map[string]interface{}(sub)
	out := make(map[string]float64, len(sm))
	for k, vv := range sm {
		f, err := cast.ToFloat64E(vv)
		if err != nil {
			return nil, fmt.Errorf("node: element %q of %q: %w", k, key, err)
		}
		out[k] = f
	}
	return out, nil
}

// Quantity returns the numeric value and unit suffix at key. The value
// may be a bare number, in which case the unit suffix is empty, or a
// string literal like "0.01 atm", in which case the suffix is split off.
func (n Node) Quantity(key string) (value float64, unitSuffix string, err error) {
	v, ok := n[key]
	if !ok {
		return 0, "", &MissingKeyError{Key: key}
	}
	if s, ok := v.(string); ok {
		return unit.ParseQuantity(s)
	}
	f, err := cast.ToFloat64E(v)
	return f, "", err
}

func asNode(v interface{}) (Node, bool) {
	switch t := v.(type) {
	case Node:
		return t, true
	case map[string]interface{}:
		return Node(t), true
	}
	sm, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, false
	}
	return Node(sm), true
}
