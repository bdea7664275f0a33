/*
 * well.go, part of gomess.
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
	"github.com/rmera/gomess/kernel"
)

//Well is a stable species of the network together with its collisional
//energy transfer model and, optionally, an escape channel.
type Well struct {
	species   Species
	kernels   []kernel.Kernel
	collision kernel.Collision
	escape    Escape
}

//NewWell builds the well. s must count states (Density or Number mode), and
//at least one kernel is needed. escape can be nil.
func NewWell(s Species, kernels []kernel.Kernel, collision kernel.Collision, escape Escape) (*Well, error) {
	if s == nil {
		return nil, mess.NewConfigError("NewWell", "no species given for the well")
	}
	if collision == nil {
		return nil, mess.NewConfigError("NewWell", "well %s: no collision model", s.Name())
	}
	if s.Mode() == mess.NoStates {
		return nil, mess.NewConfigError("NewWell", "well %s: the species must count states", s.Name())
	}
	if len(kernels) == 0 {
		return nil, mess.NewConfigError("NewWell", "well %s: no energy transfer kernel", s.Name())
	}
	return &Well{species: s, kernels: kernels, collision: collision, escape: escape}, nil
}

func (w *Well) Name() string                { return w.species.Name() }
func (w *Well) Species() Species            { return w.species }
func (w *Well) Kernels() []kernel.Kernel    { return w.kernels }
func (w *Well) Collision() kernel.Collision { return w.collision }

//Escape returns the escape channel, or nil.
func (w *Well) Escape() Escape { return w.escape }

//EscapeRate returns the escape rate at the absolute energy e, 0 if the well has no escape channel.
func (w *Well) EscapeRate(e float64) float64 {
	if w.escape == nil {
		return 0
	}
	return w.escape.Rate(e - w.species.Ground())
}

//TransferProbability returns the total probability density of a downward collisional
//transition of energy e at temperature t, summed over the kernels.
func (w *Well) TransferProbability(e, t float64) float64 {
	var p float64
	for _, k := range w.kernels {
		if e <= k.CutoffEnergy(t) || k.Flags()&mess.KernelNoTrunc != 0 {
			p += k.Probability(e, t)
		}
	}
	return p
}

//Radiator is a species with infrared active oscillators.
type Radiator interface {
	OscillatorSize() int
	OscillatorFrequency(i int) float64
	InfraredIntensity(e float64, i int) float64
}

//OscillatorSize returns the number of radiating oscillators of the well species, 0 if
//it has none.
func (w *Well) OscillatorSize() int {
	r, ok := w.species.(Radiator)
	if !ok {
		return 0
	}
	return r.OscillatorSize()
}

//OscillatorFrequency returns the frequency of the i-th oscillator. It panics if the
//species has no oscillators.
func (w *Well) OscillatorFrequency(i int) float64 {
	r, ok := w.species.(Radiator)
	if !ok {
		panic(mess.ErrWrongMode)
	}
	return r.OscillatorFrequency(i)
}

//TransitionProbability returns the rate of the radiative down-transition through the
//i-th oscillator at the absolute energy e: the spontaneous emission rate enhanced by the
//stimulated emission at the temperature t.
func (w *Well) TransitionProbability(e, t float64, i int) float64 {
	r, ok := w.species.(Radiator)
	if !ok {
		return 0
	}
	x := r.OscillatorFrequency(i) / t
	f := 1.0
	if x < 50 {
		f = 1 / (1 - math.Exp(-x))
	}
	return r.InfraredIntensity(e, i) * f
}
