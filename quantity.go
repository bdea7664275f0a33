/*
 * quantity.go, part of gomess.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package mess

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//Energy is an energy (or a temperature, or a frequency) in Hartree. In YAML it can be written as a
//plain number, taken to be in Hartree, or as a number followed by a unit, e.g. "1000 1/cm",
//"12.5 kcal/mol" or "300 K".
type Energy float64

//Length is a length in bohr. In YAML it can carry the unit "angstrom" or "bohr".
type Length float64

//Mass is a mass in electron masses. In YAML it can carry the unit "amu".
type Mass float64

func (e Energy) Float() float64 { return float64(e) }
func (l Length) Float() float64 { return float64(l) }
func (m Mass) Float() float64   { return float64(m) }

//parseQuantity reads "value [unit]" from a YAML scalar node, using units to
//translate the unit name into a conversion factor.
func parseQuantity(n *yaml.Node, what string, units func(string) (float64, bool)) (float64, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, NewConfigError("parseQuantity", "line %d: %s must be a scalar", n.Line, what)
	}
	fields := strings.Fields(n.Value)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, NewConfigError("parseQuantity", "line %d: bad %s %q", n.Line, what, n.Value)
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, NewConfigError("parseQuantity", "line %d: bad %s %q", n.Line, what, n.Value)
	}
	if len(fields) == 1 {
		return v, nil
	}
	f, ok := units(strings.ToLower(fields[1]))
	if !ok {
		return 0, NewConfigError("parseQuantity", "line %d: unknown %s unit %q", n.Line, what, fields[1])
	}
	return v * f, nil
}

//UnmarshalYAML implements yaml.Unmarshaler
func (e *Energy) UnmarshalYAML(n *yaml.Node) error {
	v, err := parseQuantity(n, "energy", EnergyUnit)
	*e = Energy(v)
	return err
}

//UnmarshalYAML implements yaml.Unmarshaler
func (l *Length) UnmarshalYAML(n *yaml.Node) error {
	v, err := parseQuantity(n, "length", LengthUnit)
	*l = Length(v)
	return err
}

//UnmarshalYAML implements yaml.Unmarshaler
func (m *Mass) UnmarshalYAML(n *yaml.Node) error {
	v, err := parseQuantity(n, "mass", func(u string) (float64, bool) {
		switch u {
		case "amu", "da", "dalton":
			return Amu, true
		case "au":
			return 1, true
		}
		return 0, false
	})
	*m = Mass(v)
	return err
}

//LengthUnit returns the factor to convert the named length unit into bohr.
func LengthUnit(name string) (float64, bool) {
	switch strings.ToLower(name) {
	case "angstrom", "a":
		return Angstrom, true
	case "bohr", "au", "":
		return Bohr, true
	}
	return 0, false
}

//Energies converts a slice of Energy into plain floats.
func Energies(e []Energy) []float64 {
	r := make([]float64, len(e))
	for i, v := range e {
		r[i] = float64(v)
	}
	return r
}
