/*
 * options.go, part of gomess.
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

package rotor

//Options contains the numerical options for the hindered rotors and umbrella modes.
//Zero values mean that the size is estimated from the energy range.
type Options struct {
	hamSizeMin    int
	hamSizeMax    int
	gridSize      int  //points of the potential grid used for the semiclassical quantities
	quantumWeight bool //use the quantum levels, rather than the path integral, for the weight
	thermPowMax   float64
	polySize      int //number of even powers in the umbrella potential fit
}

//DefaultOptions returns reasonable options: estimated Hamiltonian sizes, a 360-point grid, and
//path-integral weights.
func DefaultOptions() *Options {
	r := new(Options)
	r.gridSize = 360
	r.thermPowMax = 50
	r.polySize = 4 //up to x^6, just a reasonable value.
	return r
}

//Returns the smallest Hamiltonian size (largest |m| for rotors, number of basis
//functions for umbrella modes) and sets it to a new value, if given.
func (O *Options) HamSizeMin(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.hamSizeMin = n[0]
	}
	return O.hamSizeMin
}

//Returns the largest Hamiltonian size and sets it to a new value, if given.
func (O *Options) HamSizeMax(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.hamSizeMax = n[0]
	}
	return O.hamSizeMax
}

//Returns the size of the potential grid and sets it to a new value, if given.
func (O *Options) GridSize(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.gridSize = n[0]
	}
	return O.gridSize
}

//Returns whether the weight is obtained from the quantum levels,
//and sets it to a new value, if given.
func (O *Options) QuantumWeight(q ...bool) bool {
	if len(q) > 0 {
		O.quantumWeight = q[0]
	}
	return O.quantumWeight
}

//Returns the thermal cutoff of the level sums, in units of T,
//and sets it to a new value, if given.
func (O *Options) ThermPowMax(p ...float64) float64 {
	if len(p) > 0 && p[0] > 0 {
		O.thermPowMax = p[0]
	}
	return O.thermPowMax
}

//Returns the number of even powers used to fit umbrella potentials,
//and sets it to a new value, if given.
func (O *Options) PolySize(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.polySize = n[0]
	}
	return O.polySize
}
