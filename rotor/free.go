/*
 * free.go, part of gomess.
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

import (
	"math"

	"github.com/rmera/gomess"
)

//Free is a one-dimensional free internal rotor, with levels B (sym*m)^2, m = 0, +-1, +-2...
//Levels with the same |m| are stored once, with degeneracy 2.
type Free struct {
	levels
	rotConst    float64
	symmetry    int
	thermPowMax float64 //the quantum weight sums levels up to thermPowMax*T
}

//NewFree returns a free rotor with rotational constant rotConst and symmetry number sym.
//A non-positive thermPowMax selects the default of 50.
func NewFree(rotConst float64, sym int, thermPowMax float64) (*Free, error) {
	if rotConst <= 0 {
		return nil, mess.NewConfigError("NewFree", "rotational constant must be positive, got %g", rotConst)
	}
	if sym < 1 {
		return nil, mess.NewConfigError("NewFree", "symmetry number must be positive, got %d", sym)
	}
	if thermPowMax <= 0 {
		thermPowMax = 50
	}
	return &Free{rotConst: rotConst, symmetry: sym, thermPowMax: thermPowMax}, nil
}

//RotationalConstant returns B.
func (r *Free) RotationalConstant() float64 { return r.rotConst }

func (r *Free) level(m int) float64 {
	x := float64(r.symmetry * m)
	return r.rotConst * x * x
}

//Set computes the levels up to emax.
func (r *Free) Set(emax float64) error {
	if r.set {
		panic(mess.ErrAlreadySet)
	}
	if emax <= 0 {
		return mess.NewConfigError("Free.Set", "non-positive energy limit %g", emax)
	}
	n := int(math.Floor(math.Sqrt(emax/r.rotConst)/float64(r.symmetry))) + 1
	r.energy = make([]float64, n)
	r.degs = make([]int, n)
	for m := 0; m < n; m++ {
		r.energy[m] = r.level(m)
		r.degs[m] = 2
	}
	r.degs[0] = 1
	r.set = true
	return nil
}

//Weight returns the quantum partition function, summing the levels up to thermPowMax*T.
//It does not depend on the energy given to Set.
func (r *Free) Weight(t float64) float64 {
	r.mustSet()
	s := 1.0
	for m := 1; ; m++ {
		e := r.level(m)
		if e > r.thermPowMax*t {
			break
		}
		s += 2 * math.Exp(-e/t)
	}
	return s
}

//ClassicalWeight returns sqrt(pi T/B)/sym, the high temperature limit of Weight.
func (r *Free) ClassicalWeight(t float64) float64 {
	return math.Sqrt(math.Pi*t/r.rotConst) / float64(r.symmetry)
}
