/*
 * tunnel.go, part of gomess.
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

//Package tunnel implements the barrier-crossing corrections of gomess: the transmission probability
//through a one-dimensional barrier, obtained from a semiclassical action, and the quantities
//derived from it. All energies handled by a tunnel are measured from its cutoff, which lies
//below the barrier top, so the barrier top is at E = Cutoff().
package tunnel

import (
	"math"

	"github.com/rmera/gomess"
)

//base contains what all the tunnels have in common. Each variant sets act to its
//own Action method, and base derives the rest from it.
type base struct {
	cutoff    float64
	freq      float64
	actionMax float64
	act       func(e float64, der int) float64
}

func newBase(freq, cutoff float64, set *mess.Settings) (base, error) {
	if freq <= 0 {
		return base{}, mess.NewConfigError("tunnel.newBase", "imaginary frequency must be positive, got %g", freq)
	}
	if cutoff <= 0 {
		return base{}, mess.NewConfigError("tunnel.newBase", "cutoff energy must be positive, got %g", cutoff)
	}
	return base{cutoff: cutoff, freq: freq, actionMax: set.ActionMax()}, nil
}

//Cutoff returns the cutoff energy, measured down from the barrier top.
func (b *base) Cutoff() float64 { return b.cutoff }

//Frequency returns the magnitude of the imaginary frequency.
func (b *base) Frequency() float64 { return b.freq }

//Factor returns the transmission probability, 1/(1+exp(action)), at the energy e measured from
//the cutoff. It is zero below the cutoff and for actions larger than the action ceiling.
func (b *base) Factor(e float64) float64 {
	if e < 0 {
		return 0
	}
	a := b.act(e, 0)
	if a > b.actionMax {
		return 0
	}
	if a > 0 {
		x := math.Exp(-a)
		return x / (1 + x)
	}
	return 1 / (1 + math.Exp(a))
}

//Density returns the energy derivative of the transmission probability at e.
func (b *base) Density(e float64) float64 {
	if e < 0 {
		return 0
	}
	a := b.act(e, 0)
	if a > b.actionMax {
		return 0
	}
	c := math.Cosh(a / 2)
	return -b.act(e, 1) / (4 * c * c)
}

//Weight returns the tunneling partition function relative to the cutoff,
// 1/T Int_0^inf Factor(e) exp(-e/T) de.
func (b *base) Weight(t float64) float64 {
	return mess.Boltzmann(b.Factor, t)
}

//Convolute folds the tunneling correction into the states array nos, whose element i
//corresponds to the energy i*step above the cutoff. Each bin j of the correction gets
//the transmission probability gained between (j-1/2)*step and (j+1/2)*step.
func (b *base) Convolute(nos []float64, step float64) {
	w := make([]float64, len(nos))
	prev := 0.0
	for j := range w {
		cur := b.Factor((float64(j) + 0.5) * step)
		w[j] = cur - prev
		prev = cur
	}
	res := make([]float64, len(nos))
	for i := range nos {
		var s float64
		for j := 0; j <= i; j++ {
			s += nos[i-j] * w[j]
		}
		res[i] = s
	}
	copy(nos, res)
}

//checkDer panics if der is not 0 or 1.
func checkDer(der int) {
	if der != 0 && der != 1 {
		panic(mess.PanicMsg("gomess/tunnel: action derivative must be 0 or 1"))
	}
}
