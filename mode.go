/*
 * mode.go, part of gomess.
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

import "fmt"

//Mode is the energy-counting mode of a Core or Species. It is fixed
//at construction: States honors it for the whole life of the object.
type Mode int

const (
	Density  Mode = iota //States returns the density of states
	Number               //States returns the number of states
	NoStates             //only Weight can be used
)

func (m Mode) String() string {
	switch m {
	case Density:
		return "density"
	case Number:
		return "number"
	case NoStates:
		return "nostates"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

//Valid returns true if m is one of the three known modes.
func (m Mode) Valid() bool {
	return m == Density || m == Number || m == NoStates
}

//ParseMode turns "density", "number" or "nostates" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "density", "":
		return Density, nil
	case "number":
		return Number, nil
	case "nostates":
		return NoStates, nil
	}
	return NoStates, NewConfigError("ParseMode", "unknown mode %q", s)
}

//MustMode panics with ErrWrongMode if m is not a valid mode.
func MustMode(m Mode) {
	if !m.Valid() {
		panic(ErrWrongMode)
	}
}
