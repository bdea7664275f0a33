/*
 * species.go, part of gomess.
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

//Package species composes cores, rotors, tunnels and electronic levels into the
//state-counting functions of whole species and barriers, and collects them in
//a reaction network.
//
//Energies given to and returned by a Species are absolute, that is, measured from
//the common zero of the network. Weights are relative to the ground of the species
//that returns them.
package species

import (
	"math"

	"github.com/rmera/gomess"
)

//Species is the interface for everything that can count states: molecules,
//transition states, barriers and their combinations.
type Species interface {
	Name() string

	//Mode returns the energy-counting mode of States. It never changes.
	Mode() mess.Mode

	//Ground returns the lowest energy at which States is not zero.
	//For species with tunneling it lies below RealGround.
	Ground() float64

	//RealGround returns the ground energy without the tunneling extension.
	RealGround() float64

	//ShiftGround moves all the energies of the species by de.
	ShiftGround(de float64)

	//States returns the number or the density of states at the absolute energy e.
	//It panics for species in NoStates mode.
	States(e float64) float64

	//Weight returns the partition function, relative to Ground, at temperature t.
	Weight(t float64) float64

	//Mass returns the total mass, or 0 if the species has no defined mass.
	Mass() float64
}

//base carries what all species have in common.
type base struct {
	name string
	mode mess.Mode
	mass float64
	geom *mess.Geometry
}

func newBase(name string, mode mess.Mode, mass float64, geom *mess.Geometry) base {
	mess.MustMode(mode)
	if mass == 0 && geom != nil {
		mass = geom.Mass()
	}
	return base{name: name, mode: mode, mass: mass, geom: geom}
}

func (b *base) Name() string    { return b.name }
func (b *base) Mode() mess.Mode { return b.mode }
func (b *base) Mass() float64   { return b.mass }

//Geometry returns the structure of the species, or nil if it was not given.
func (b *base) Geometry() *mess.Geometry { return b.geom }

//grid is a species whose states are tabulated on an energy grid.
type grid struct {
	realGround float64
	ss         *mess.StatesSpline
}

//newGrid splines the number of states nos, tabulated from ground with step step.
func newGrid(realGround, ground, step float64, nos []float64) (grid, error) {
	ss, err := mess.NewStatesSpline(ground, step, nos)
	if err != nil {
		return grid{}, mess.ErrDecorate(err, "newGrid")
	}
	return grid{realGround: realGround, ss: ss}, nil
}

func (g *grid) Ground() float64     { return g.ss.Ground() }
func (g *grid) RealGround() float64 { return g.realGround }

func (g *grid) shift(de float64) {
	g.realGround += de
	g.ss.ShiftGround(de)
}

func (g *grid) states(e float64, mode mess.Mode) float64 { return g.ss.States(e, mode) }

//boltzmann is the weight of the tabulated states, relative to the ground.
func (g *grid) boltzmann(t float64) float64 {
	gr := g.ss.Ground()
	return mess.Boltzmann(func(e float64) float64 { return g.ss.Number(e + gr) }, t)
}

//Tabulate returns the number of states of s on the energy grid that starts at s.Ground()
//and has n points of step step. s must be in Number mode.
func Tabulate(s Species, step float64, n int) []float64 {
	if s.Mode() != mess.Number {
		panic(mess.ErrWrongMode)
	}
	r := make([]float64, n)
	g := s.Ground()
	for i := range r {
		r[i] = s.States(g + float64(i)*step)
	}
	return r
}

//harmonicWeight returns the partition function of the oscillators, relative to their zero-point energy.
func harmonicWeight(freqs []float64, degs []int, t float64) float64 {
	w := 1.0
	for i, f := range freqs {
		w *= math.Pow(-1/math.Expm1(-f/t), float64(degs[i]))
	}
	return w
}

//levelWeight returns the partition function of the electronic levels, measured from the first one.
func levelWeight(levels []float64, degs []int, t float64) float64 {
	var w float64
	for i, e := range levels {
		w += float64(degs[i]) * math.Exp(-e/t)
	}
	return w
}
