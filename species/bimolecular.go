/*
 * bimolecular.go, part of gomess.
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

//Bimolecular is a set of separated fragments, reactants or products of the network.
//Its weight is per unit volume (bohr^-3). Dummy bimoleculars are sinks without a weight.
type Bimolecular struct {
	name      string
	fragments []Species
	dummy     bool
	ground    float64
	offset    float64 //sum of the fragment grounds minus ground
}

//NewBimolecular joins the fragments. The ground is the sum of the fragment grounds,
//unless ground is not nil. The fragments of a non-dummy bimolecular need masses.
func NewBimolecular(name string, fragments []Species, dummy bool, ground *float64) (*Bimolecular, error) {
	b := &Bimolecular{name: name, fragments: fragments, dummy: dummy}
	if !dummy && len(fragments) < 2 {
		return nil, mess.NewConfigError("NewBimolecular", "%s: at least two fragments are needed", name)
	}
	for _, f := range fragments {
		if !dummy && f.Mass() <= 0 {
			return nil, mess.NewConfigError("NewBimolecular", "%s: fragment %s has no mass", name, f.Name())
		}
		b.ground += f.Ground()
	}
	if ground != nil {
		b.offset = b.ground - *ground
		b.ground = *ground
	}
	return b, nil
}

func (b *Bimolecular) Name() string { return b.name }

//Dummy returns true for sinks.
func (b *Bimolecular) Dummy() bool { return b.dummy }

//Fragments returns the fragment species.
func (b *Bimolecular) Fragments() []Species { return b.fragments }

func (b *Bimolecular) Ground() float64        { return b.ground }
func (b *Bimolecular) ShiftGround(de float64) { b.ground += de }

//Weight returns the product of the fragment weights times the partition function of
//their relative translation, per unit volume, relative to the ground.
func (b *Bimolecular) Weight(t float64) float64 {
	if b.dummy {
		return 0
	}
	w := math.Exp(-b.offset / t)
	var total float64
	for _, f := range b.fragments {
		m := f.Mass()
		total += m
		w *= f.Weight(t) * math.Pow(m*t/(2*math.Pi), 1.5)
	}
	return w / math.Pow(total*t/(2*math.Pi), 1.5)
}
