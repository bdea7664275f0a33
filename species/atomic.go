/*
 * atomic.go, part of gomess.
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
	"github.com/rmera/gomess"
)

//Atomic is a single atom: only electronic levels. Its density of states is a sum of
//delta functions, so in Density mode States is zero everywhere.
type Atomic struct {
	base
	ground float64
	levels []float64
	degs   []int
}

//NewAtomic returns the atom of the given element. levels are relative to the lowest one,
//which lies at ground.
func NewAtomic(name, symbol string, ground float64, levels []float64, degs []int, mode mess.Mode) (*Atomic, error) {
	m, ok := mess.AtomicMass(symbol)
	if !ok {
		return nil, mess.NewConfigError("NewAtomic", "%s: unknown element %q", name, symbol)
	}
	if len(levels) == 0 {
		levels, degs = []float64{0}, []int{1}
	}
	if len(degs) != len(levels) {
		return nil, mess.NewConfigError("NewAtomic", "%s: %d electronic levels but %d degeneracies", name, len(levels), len(degs))
	}
	for i, l := range levels {
		if l < 0 || degs[i] < 1 {
			return nil, mess.NewConfigError("NewAtomic", "%s: electronic level %d has a negative energy or a non-positive degeneracy", name, i)
		}
	}
	return &Atomic{base: newBase(name, mode, m, nil), ground: ground, levels: levels, degs: degs}, nil
}

func (a *Atomic) Ground() float64        { return a.ground }
func (a *Atomic) RealGround() float64    { return a.ground }
func (a *Atomic) ShiftGround(de float64) { a.ground += de }

func (a *Atomic) States(e float64) float64 {
	switch a.mode {
	case mess.Density:
		return 0
	case mess.Number:
		var n float64
		for i, l := range a.levels {
			if e >= a.ground+l {
				n += float64(a.degs[i])
			}
		}
		return n
	}
	panic(mess.ErrNoStates)
}

func (a *Atomic) Weight(t float64) float64 { return levelWeight(a.levels, a.degs, t) }
