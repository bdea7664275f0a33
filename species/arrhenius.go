/*
 * arrhenius.go, part of gomess.
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

package species

import (
	"math"

	"github.com/rmera/gomess"
)

//Arrhenius is a transition state whose weight reproduces a given rate constant
//k(T) = A (T/K)^n exp(-Ea/T) out of its reactant, through the transition state theory
//formula k = T/(2 pi) Q_ts/Q_r exp(-Ea/T).
//
//Without a reactant it is just a power law partition function, Q(T) = A (T/K)^n,
//whose states can be counted.
type Arrhenius struct {
	base
	factor   float64
	power    float64
	ground   float64
	reactant Species
}

//NewArrhenius builds the transition state. With a reactant, factor is the rate
//prefactor in 1/s, the ground is the reactant ground plus ea, and the mode must be NoStates.
//Without one, ea is the absolute ground energy.
func NewArrhenius(name string, factor, power, ea float64, reactant Species, mode mess.Mode) (*Arrhenius, error) {
	if factor <= 0 {
		return nil, mess.NewConfigError("NewArrhenius", "%s: the prefactor must be positive", name)
	}
	a := &Arrhenius{factor: factor, power: power, ground: ea, reactant: reactant}
	mass := 0.0
	if reactant != nil {
		if mode != mess.NoStates {
			return nil, mess.NewConfigError("NewArrhenius", "%s: states can't be counted when a reactant is given", name)
		}
		a.ground += reactant.Ground()
		a.factor = factor / mess.Second
		mass = reactant.Mass()
	}
	a.base = newBase(name, mode, mass, nil)
	return a, nil
}

func (a *Arrhenius) Ground() float64        { return a.ground }
func (a *Arrhenius) RealGround() float64    { return a.ground }
func (a *Arrhenius) ShiftGround(de float64) { a.ground += de }

//Reactant returns the reactant species, or nil.
func (a *Arrhenius) Reactant() Species { return a.reactant }

func (a *Arrhenius) States(e float64) float64 {
	f := a.factor * math.Pow(mess.Kelvin, -a.power)
	switch a.mode {
	case mess.Number:
		return mess.PowerNumber(f, a.power, e-a.ground)
	case mess.Density:
		return mess.PowerDensity(f, a.power, e-a.ground)
	}
	panic(mess.ErrNoStates)
}

func (a *Arrhenius) Weight(t float64) float64 {
	w := a.factor * math.Pow(t/mess.Kelvin, a.power)
	if a.reactant == nil {
		return w
	}
	return 2 * math.Pi * w / t * a.reactant.Weight(t)
}
