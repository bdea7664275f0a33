/*
 * units.go, part of gomess.
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
	"math"
	"strings"
)

//Conversion factors. Every quantity inside gomess is in atomic units: energies in Hartree,
//lengths in bohr, masses in electron masses, and temperatures as k_B*T in Hartree.
//Multiply a value in the named unit by the constant to get atomic units.
const (
	Kcal     = 1.0 / 627.509474063   //kcal/mol
	Kjoule   = 1.0 / 2625.4996394799 //kJ/mol
	Incm     = 1.0 / 219474.6313705  //1/cm
	Kelvin   = 1.0 / 315775.02480407 //K
	Ev       = 1.0 / 27.211386245988 //eV
	Angstrom = 1.0 / 0.529177210903  //angstrom
	Bohr     = 1.0
	Amu      = 1822.888486209 //atomic mass unit (dalton)
	//Centimeter and second, needed for rate constants and collision frequencies.
	Centimeter = Angstrom * 1.0e8
	Second     = 1.0 / 2.4188843265857e-17
)

//EnergyUnit returns the factor to convert the named energy unit into Hartree.
//Recognized names are "kcal/mol", "kj/mol", "1/cm", "ev", "k" and "au".
//ok is false if the name is not recognized.
func EnergyUnit(name string) (factor float64, ok bool) {
	switch name {
	case "kcal/mol", "kcal":
		return Kcal, true
	case "kj/mol", "kj":
		return Kjoule, true
	case "1/cm", "cm-1", "incm":
		return Incm, true
	case "ev":
		return Ev, true
	case "k", "kelvin":
		return Kelvin, true
	case "au", "hartree":
		return 1, true
	}
	return math.NaN(), false
}

//ParseEnergyUnit is EnergyUnit with a default (used when name is empty) and
//a configuration error for unknown names.
func ParseEnergyUnit(name, def string) (float64, error) {
	if name == "" {
		name = def
	}
	f, ok := EnergyUnit(strings.ToLower(name))
	if !ok {
		return 0, NewConfigError("ParseEnergyUnit", "unknown energy unit %q", name)
	}
	return f, nil
}
