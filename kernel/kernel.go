/*
 * kernel.go, part of gomess.
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

//Package kernel contains the collisional energy transfer models consumed by the
//master equation: the energy transfer kernels and the collision frequencies.
//These are pure functions of their construction parameters.
package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/rmera/gomess"
)

// Kernel is the interface for the collisional energy transfer models.
type Kernel interface {

	//Probability returns the unnormalized probability density of a downward
	//transition of energy e at temperature t.
	Probability(e, t float64) float64

	//CutoffEnergy returns the energy above which transitions are neglected, at temperature t.
	CutoffEnergy(t float64) float64

	//Flags returns the kernel flags (mess.KernelUp, mess.KernelDensity, mess.KernelNoTrunc)
	//the kernel was built with.
	Flags() uint
}

//Exponential is a sum of exponential-down kernels,
// P(e) = sum_i fraction_i exp(-e/de_i(T)), with de_i(T) = factor_i (T/300 K)^power_i.
type Exponential struct {
	factors   []float64
	powers    []float64
	fractions []float64
	cutoff    float64 //in units of the largest energy transfer
	flags     uint
}

//NewExponential returns an exponential-down kernel. If fractions is nil, all the exponentials
//have the same weight. cutoff is given in units of the largest average energy transfer, and
//a non-positive cutoff selects the default of 10.
func NewExponential(factors, powers, fractions []float64, cutoff float64, set *mess.Settings) (*Exponential, error) {
	n := len(factors)
	if n == 0 {
		return nil, mess.NewConfigError("NewExponential", "no energy transfer factors given")
	}
	if len(powers) != n {
		return nil, mess.NewConfigError("NewExponential", "%d factors but %d powers", n, len(powers))
	}
	if fractions == nil {
		fractions = make([]float64, n)
		for i := range fractions {
			fractions[i] = 1 / float64(n)
		}
	}
	if len(fractions) != n {
		return nil, mess.NewConfigError("NewExponential", "%d factors but %d fractions", n, len(fractions))
	}
	for i, f := range factors {
		if f <= 0 || fractions[i] < 0 {
			return nil, mess.NewConfigError("NewExponential", "factors must be positive and fractions non-negative")
		}
	}
	if s := floats.Sum(fractions); math.Abs(s-1) > 1e-6 {
		return nil, mess.NewConfigError("NewExponential", "fractions add up to %g, not 1", s)
	}
	if cutoff <= 0 {
		cutoff = 10
	}
	k := &Exponential{cutoff: cutoff, flags: set.KernelFlags()}
	k.factors = append(k.factors, factors...)
	k.powers = append(k.powers, powers...)
	k.fractions = append(k.fractions, fractions...)
	return k, nil
}

//EnergyTransfer returns the average downward energy transfer of the i-th exponential at t.
func (k *Exponential) EnergyTransfer(i int, t float64) float64 {
	return k.factors[i] * math.Pow(t/(300*mess.Kelvin), k.powers[i])
}

func (k *Exponential) Probability(e, t float64) float64 {
	var p float64
	for i := range k.factors {
		p += k.fractions[i] * math.Exp(-e/k.EnergyTransfer(i, t))
	}
	return p
}

func (k *Exponential) CutoffEnergy(t float64) float64 {
	var m float64
	for i := range k.factors {
		m = math.Max(m, k.EnergyTransfer(i, t))
	}
	return k.cutoff * m
}

func (k *Exponential) Flags() uint { return k.flags }

//New builds the kernel described by c.
func New(c *mess.KernelConfig, set *mess.Settings) (Kernel, error) {
	switch c.Type {
	case "exponential", "":
		k, err := NewExponential(mess.Energies(c.Factors), c.Powers, c.Fractions, c.Cutoff, set)
		if err != nil {
			return nil, mess.ErrDecorate(err, "kernel.New")
		}
		return k, nil
	}
	return nil, mess.NewConfigError("kernel.New", "unknown kernel type %q", c.Type)
}
