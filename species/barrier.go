/*
 * barrier.go, part of gomess.
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
	"strings"

	"github.com/rmera/gomess"
)

//Method selects how a VarBarrier combines its inner and outer transition states.
type Method int

const (
	Statistical Method = iota //the smallest number of states wins
	Dynamical                 //1/N = 1/N_inner + 1/N_outer
)

//ParseMethod turns "statistical" or "dynamical" into a Method. The empty string is Statistical.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "statistical", "":
		return Statistical, nil
	case "dynamical":
		return Dynamical, nil
	}
	return Statistical, mess.NewConfigError("ParseMethod", "unknown barrier method %q", s)
}

//VarBarrier is a two transition state barrier: a tight inner region, described by
//several configurations from which the one with the fewest states is taken at each
//energy, and a loose outer transition state.
type VarBarrier struct {
	base
	grid
	inner  []Species
	outer  Species
	tunnel mess.Tunnel
	method Method
}

//NewVarBarrier combines the inner and outer species, all in Number mode. outer and tunnel can be nil.
func NewVarBarrier(name string, inner []Species, outer Species, tunnel mess.Tunnel, method Method, mode mess.Mode, set *mess.Settings) (*VarBarrier, error) {
	if len(inner) == 0 {
		return nil, mess.NewConfigError("NewVarBarrier", "%s: no inner transition states", name)
	}
	all := append([]Species(nil), inner...)
	if outer != nil {
		all = append(all, outer)
	}
	real := math.Inf(-1)
	for _, s := range all {
		if s.Mode() != mess.Number {
			return nil, mess.NewConfigError("NewVarBarrier", "%s: %s must count states in number mode", name, s.Name())
		}
		real = math.Max(real, s.Ground())
	}
	b := &VarBarrier{
		base:   newBase(name, mode, inner[0].Mass(), nil),
		inner:  inner,
		outer:  outer,
		tunnel: tunnel,
		method: method,
	}
	cut := 0.0
	if tunnel != nil {
		cut = tunnel.Cutoff()
	}
	step := set.EnergyStep()
	nos := make([]float64, mess.EnergyGrid(set.EnergyLimit()+cut, step))
	for i := range nos {
		nos[i] = b.number(real + float64(i)*step)
	}
	if tunnel != nil {
		tunnel.Convolute(nos, step)
	}
	var err error
	if b.grid, err = newGrid(real, real-cut, step, nos); err != nil {
		return nil, mess.ErrDecorate(err, "NewVarBarrier "+name)
	}
	return b, nil
}

//number is the combined number of states at e, before tunneling.
func (b *VarBarrier) number(e float64) float64 {
	n := math.Inf(1)
	for _, s := range b.inner {
		n = math.Min(n, s.States(e))
	}
	if b.outer == nil {
		return n
	}
	o := b.outer.States(e)
	if b.method == Statistical {
		return math.Min(n, o)
	}
	if n <= 0 || o <= 0 {
		return 0
	}
	return n * o / (n + o)
}

func (b *VarBarrier) ShiftGround(de float64) {
	b.shift(de)
	for _, s := range b.inner {
		s.ShiftGround(de)
	}
	if b.outer != nil {
		b.outer.ShiftGround(de)
	}
}

func (b *VarBarrier) States(e float64) float64 {
	if b.mode == mess.NoStates {
		panic(mess.ErrNoStates)
	}
	return b.states(e, b.mode)
}

func (b *VarBarrier) Weight(t float64) float64 { return b.boltzmann(t) }

//Method returns the way inner and outer states are combined.
func (b *VarBarrier) Method() Method { return b.method }
