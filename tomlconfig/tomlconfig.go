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

// Package tomlconfig decodes a TOML configuration document into the
// generic parameter tree that kinrate's rate variants are configured
// from. It is the only file-I/O-adjacent package in this module; the
// rate-law numerics never import it.
package tomlconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/spatialmodel/kinrate/node"
)

// Decode parses a TOML document already held in memory.
func Decode(data string) (node.Node, error) {
	var raw map[string]interface{}
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("tomlconfig: %w", err)
	}
	return node.Node(raw), nil
}

// DecodeFile reads and parses a TOML document from disk.
func DecodeFile(path string) (node.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tomlconfig: %w", err)
	}
	return Decode(string(data))
}
