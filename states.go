/*
 * states.go, part of gomess.
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

	"gonum.org/v1/gonum/integrate/quad"
)

//This file contains the direct-count machinery shared by all the models
//that tabulate states on an energy grid. A grid is a slice where the element i
//corresponds to the energy i*step above the grid origin.

//BeyerSwinehart folds the harmonic oscillator of frequency freq (with degeneracy deg)
//into the states array nos, in place. It works for numbers and densities alike.
func BeyerSwinehart(nos []float64, step, freq float64, deg int) {
	k := int(math.Round(freq / step))
	if k <= 0 {
		panic(PanicMsg("gomess: frequency smaller than the energy step"))
	}
	for d := 0; d < deg; d++ {
		for i := k; i < len(nos); i++ {
			nos[i] += nos[i-k]
		}
	}
}

//ConvoluteLevels folds a discrete spectrum into nos, in place. The level i has energy
//levels[i] (measured from the lowest level, which must be non-negative) and degeneracy
//degs[i]. A nil degs means all levels are non-degenerate.
func ConvoluteLevels(nos []float64, step float64, levels []float64, degs []int) {
	old := make([]float64, len(nos))
	copy(old, nos)
	for i := range nos {
		nos[i] = 0
	}
	for l, e := range levels {
		shift := int(math.Round(e / step))
		if shift < 0 || shift >= len(nos) {
			continue
		}
		d := 1.0
		if degs != nil {
			d = float64(degs[l])
		}
		for i := shift; i < len(nos); i++ {
			nos[i] += d * old[i-shift]
		}
	}
}

//EnergyGrid returns the number of points of a grid of step step needed to reach emax.
func EnergyGrid(emax, step float64) int {
	return int(emax/step) + 2
}

//Boltzmann returns the partition function that corresponds to the number of states
//number, which is measured from its own ground energy (number(e) = 0 for e <= 0):
// Q(T) = 1/T Int_0^inf number(e) exp(-e/T) de.
//The integral is carried out piecewise over 60 T, which leaves out
//a fraction of about exp(-60) for any polynomial growth of number.
func Boltzmann(number func(e float64) float64, t float64) float64 {
	if t <= 0 {
		panic(PanicMsg("gomess: non-positive temperature"))
	}
	const (
		pieces = 60
		order  = 16
	)
	f := func(x float64) float64 { return number(x*t) * math.Exp(-x) }
	var sum float64
	for i := 0; i < pieces; i++ {
		sum += quad.Fixed(f, float64(i), float64(i+1), order, quad.Legendre{}, 0)
	}
	return sum
}

//BoltzmannDensity is Boltzmann for a density of states:
// Q(T) = Int_0^inf density(e) exp(-e/T) de.
func BoltzmannDensity(density func(e float64) float64, t float64) float64 {
	return Boltzmann(density, t) * t
}

//PowerNumber returns factor*e^power/Gamma(power+1), the number of states that
//corresponds to the partition function factor*T^power.
func PowerNumber(factor, power, e float64) float64 {
	if e <= 0 {
		return 0
	}
	return factor * math.Exp(power*math.Log(e)-lgamma(power+1))
}

//PowerDensity returns the energy derivative of PowerNumber.
func PowerDensity(factor, power, e float64) float64 {
	if e <= 0 {
		return 0
	}
	return factor * math.Exp((power-1)*math.Log(e)-lgamma(power))
}

func lgamma(x float64) float64 {
	l, _ := math.Lgamma(x)
	return l
}
