/*
 * rrho.go, part of gomess.
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

//RRHOParts are the components of a rigid-rotor harmonic-oscillator species.
//Only Core is required.
type RRHOParts struct {
	ZeroEnergy   float64   //energy of the potential minimum
	Core         mess.Core //in Number mode, unless the species is NoStates
	Rotors       []mess.Rotor
	Tunnel       mess.Tunnel
	Frequencies  []float64
	Degeneracies []int //nil means all ones
	Levels       []float64
	LevelDegs    []int
	Graph        *Graph
	Infrared     []float64 //emission rate of the first excited state of each oscillator
	Geometry     *mess.Geometry
	Mass         float64
}

//RRHO is a species made of a core, separable rotors, harmonic oscillators,
//electronic levels and, for transition states, a tunneling correction.
type RRHO struct {
	base
	grid
	core      mess.Core
	rotors    []mess.Rotor
	tunnel    mess.Tunnel
	freqs     []float64
	degs      []int
	levels    []float64
	leveldegs []int
	graph     *Graph
	infrared  []float64
}

//NewRRHO sets the rotors (which must not have been set) and tabulates the states.
//In NoStates mode nothing is tabulated, and States can't be used.
func NewRRHO(name string, p *RRHOParts, mode mess.Mode, set *mess.Settings) (*RRHO, error) {
	if p.Core == nil {
		return nil, mess.NewConfigError("NewRRHO", "%s: no core", name)
	}
	r := &RRHO{
		base:   newBase(name, mode, p.Mass, p.Geometry),
		core:   p.Core,
		rotors: p.Rotors,
		tunnel: p.Tunnel,
		graph:  p.Graph,
	}
	if mode != mess.NoStates && p.Core.Mode() != mess.Number {
		return nil, mess.NewConfigError("NewRRHO", "%s: the core must count states in number mode", name)
	}
	r.freqs = p.Frequencies
	r.degs = p.Degeneracies
	if r.degs == nil {
		r.degs = make([]int, len(r.freqs))
		for i := range r.degs {
			r.degs[i] = 1
		}
	}
	if len(r.degs) != len(r.freqs) {
		return nil, mess.NewConfigError("NewRRHO", "%s: %d frequencies but %d degeneracies", name, len(r.freqs), len(r.degs))
	}
	zpe := 0.0
	for i, f := range r.freqs {
		if f <= 0 {
			return nil, mess.NewConfigError("NewRRHO", "%s: frequency %d is not positive", name, i)
		}
		if r.degs[i] < 1 {
			return nil, mess.NewConfigError("NewRRHO", "%s: degeneracy %d is not positive", name, i)
		}
		zpe += float64(r.degs[i]) * f / 2
	}
	r.levels, r.leveldegs = p.Levels, p.LevelDegs
	if len(r.levels) == 0 {
		r.levels, r.leveldegs = []float64{0}, []int{1}
	}
	if p.Infrared != nil {
		if len(p.Infrared) != len(r.freqs) {
			return nil, mess.NewConfigError("NewRRHO", "%s: %d infrared intensities for %d frequencies", name, len(p.Infrared), len(r.freqs))
		}
		r.infrared = p.Infrared
	}
	emax := set.EnergyLimit()
	cut := 0.0
	if r.tunnel != nil {
		cut = r.tunnel.Cutoff()
	}
	real := p.ZeroEnergy + r.core.Ground() + zpe
	for i, rot := range r.rotors {
		if err := rot.Set(emax + cut); err != nil {
			return nil, mess.ErrDecorate(err, "NewRRHO "+name)
		}
		if rot.LevelSize() == 0 {
			return nil, mess.NewComputeError("NewRRHO", "%s: rotor %d has no levels in range", name, i)
		}
		real += rot.Ground()
	}
	if r.graph != nil {
		real += r.graph.ZeroPoint()
	}
	r.grid.realGround = real
	if mode == mess.NoStates {
		return r, nil
	}
	step := set.EnergyStep()
	for i, f := range r.freqs {
		if f < step {
			return nil, mess.NewConfigError("NewRRHO", "%s: frequency %d (%g) smaller than the energy step", name, i, f)
		}
	}
	nos := make([]float64, mess.EnergyGrid(emax+cut, step))
	cg := r.core.Ground()
	for i := range nos {
		nos[i] = r.core.States(cg + float64(i)*step)
	}
	for i, f := range r.freqs {
		mess.BeyerSwinehart(nos, step, f, r.degs[i])
	}
	for _, rot := range r.rotors {
		rot.Convolute(nos, step)
	}
	mess.ConvoluteLevels(nos, step, r.levels, r.leveldegs)
	if r.tunnel != nil {
		r.tunnel.Convolute(nos, step)
	}
	g, err := newGrid(real, real-cut, step, nos)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewRRHO "+name)
	}
	r.grid = g
	return r, nil
}

//Ground is the real ground for species without tunneling, and the real ground
//minus the tunneling cutoff otherwise.
func (r *RRHO) Ground() float64 {
	if r.tunnel == nil {
		return r.realGround
	}
	return r.realGround - r.tunnel.Cutoff()
}

func (r *RRHO) ShiftGround(de float64) {
	if r.ss == nil {
		r.realGround += de
		return
	}
	r.shift(de)
}

func (r *RRHO) States(e float64) float64 {
	if r.mode == mess.NoStates {
		panic(mess.ErrNoStates)
	}
	return r.states(e, r.mode)
}

//Weight is the product of the weights of all the components.
func (r *RRHO) Weight(t float64) float64 {
	w := r.core.Weight(t) * harmonicWeight(r.freqs, r.degs, t) * levelWeight(r.levels, r.leveldegs, t)
	for _, rot := range r.rotors {
		w *= rot.Weight(t)
	}
	if r.graph != nil {
		w *= r.graph.Factor(t)
	}
	return w * r.TunnelWeight(t)
}

//TunnelWeight returns the tunneling factor of the weight, relative to the cutoff,
//or 1 if the species has no tunneling.
func (r *RRHO) TunnelWeight(t float64) float64 {
	if r.tunnel == nil {
		return 1
	}
	return r.tunnel.Weight(t)
}

//OscillatorSize returns the number of harmonic oscillators.
func (r *RRHO) OscillatorSize() int { return len(r.freqs) }

//OscillatorFrequency returns the frequency of the i-th oscillator.
func (r *RRHO) OscillatorFrequency(i int) float64 { return r.freqs[i] }

//InfraredIntensity returns the spontaneous emission rate from the i-th oscillator at
//the absolute energy e, that is, the rate of its first excited state times its microcanonical
//occupation number, sum_v rho(e - v w)/rho(e).
func (r *RRHO) InfraredIntensity(e float64, i int) float64 {
	if r.infrared == nil {
		return 0
	}
	if r.ss == nil {
		panic(mess.ErrNoStates)
	}
	rho := r.ss.Density(e)
	if rho <= 0 {
		return 0
	}
	var occ float64
	for v := 1.0; ; v++ {
		x := e - v*r.freqs[i]
		if x <= r.ss.Ground() {
			break
		}
		occ += float64(r.degs[i]) * r.ss.Density(x)
	}
	return r.infrared[i] * occ / rho
}
