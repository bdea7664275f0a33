/*
 * rigid.go, part of gomess.
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

package core

import (
	"log"
	"math"

	"github.com/rmera/gomess"
)

//Vibrations describes the vibrational modes of a RigidRotor.
type Vibrations struct {
	Frequencies  []float64
	Degeneracies []int //nil means all non-degenerate
	//Anharmonicities is the lower triangle of the second order expansion matrix x_ij,
	//E = sum w_i(v_i+1/2) + sum_{i<=j} x_ij (v_i+1/2)(v_j+1/2). It can be nil.
	Anharmonicities [][]float64
	//RovibCouplings are the relative changes of the mean rotational constant per
	//quantum of each mode. They can be nil.
	RovibCouplings []float64
}

//RigidRotor is a rigid rotor with harmonic or anharmonic vibrations and electronic levels.
//Its ground is the vibrational zero-point energy.
type RigidRotor struct {
	rotFactor, rotPower float64
	freqs               []float64 //one entry per degenerate copy
	parent              []int     //index of each copy in the input frequencies
	anharm              [][]float64
	rovib               []float64
	elevels             []float64
	edegs               []int
	zpe                 float64
	states              *mess.StatesSpline //nil for the closed form cases
	mode                mess.Mode
}

//NewRigidRotor builds a rigid rotor core. The rotational partition function is rotFactor*T^rotPower
//(see mess.Geometry.RotationalFactor), vib can be nil, and elevels/edegs are the electronic levels,
//relative to the lowest one (nil means a single non-degenerate level).
func NewRigidRotor(rotFactor, rotPower float64, vib *Vibrations, elevels []float64, edegs []int, mode mess.Mode, set *mess.Settings) (*RigidRotor, error) {
	mess.MustMode(mode)
	if rotFactor <= 0 || rotPower < 0 {
		return nil, mess.NewConfigError("NewRigidRotor", "wrong rotational factor %g or power %g", rotFactor, rotPower)
	}
	r := &RigidRotor{rotFactor: rotFactor, rotPower: rotPower, mode: mode}
	if len(elevels) == 0 {
		elevels, edegs = []float64{0}, []int{1}
	}
	if len(edegs) != len(elevels) {
		return nil, mess.NewConfigError("NewRigidRotor", "%d electronic levels but %d degeneracies", len(elevels), len(edegs))
	}
	r.elevels, r.edegs = elevels, edegs
	if vib == nil {
		vib = new(Vibrations)
	}
	if err := r.setVibrations(vib, set.EnergyStep()); err != nil {
		return nil, mess.ErrDecorate(err, "NewRigidRotor")
	}
	if r.closedForm() {
		return r, nil
	}
	step := set.EnergyStep()
	nos := make([]float64, mess.EnergyGrid(set.EnergyLimit(), step))
	if r.harmonic() {
		for i := range nos {
			nos[i] = powerNumber(r.rotFactor, r.rotPower, float64(i)*step)
		}
		for _, f := range r.freqs {
			mess.BeyerSwinehart(nos, step, f, 1)
		}
		mess.ConvoluteLevels(nos, step, r.elevels, r.edegs)
	} else {
		hist := r.vibrationalLevels(set.EnergyLimit(), step, len(nos))
		mess.ConvoluteLevels(hist, step, r.elevels, r.edegs)
		rot := make([]float64, len(nos))
		for i := range rot {
			rot[i] = powerNumber(r.rotFactor, r.rotPower, float64(i)*step)
		}
		for i := range nos {
			for j := 0; j <= i; j++ {
				nos[i] += hist[j] * rot[i-j]
			}
		}
	}
	var err error
	r.states, err = mess.NewStatesSpline(r.zpe, step, nos)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewRigidRotor")
	}
	return r, nil
}

func (r *RigidRotor) setVibrations(vib *Vibrations, step float64) error {
	n := len(vib.Frequencies)
	if vib.Degeneracies != nil && len(vib.Degeneracies) != n {
		return mess.NewConfigError("setVibrations", "%d frequencies but %d degeneracies", n, len(vib.Degeneracies))
	}
	for i, f := range vib.Frequencies {
		if f < step {
			return mess.NewConfigError("setVibrations", "frequency %d (%g) smaller than the energy step", i, f)
		}
		d := 1
		if vib.Degeneracies != nil {
			d = vib.Degeneracies[i]
		}
		for j := 0; j < d; j++ {
			r.freqs = append(r.freqs, f)
			r.parent = append(r.parent, i)
		}
	}
	if vib.Anharmonicities != nil {
		if len(vib.Anharmonicities) != n {
			return mess.NewConfigError("setVibrations", "anharmonicity matrix has %d rows, %d expected", len(vib.Anharmonicities), n)
		}
		for i, row := range vib.Anharmonicities {
			if len(row) != i+1 {
				return mess.NewConfigError("setVibrations", "row %d of the anharmonicity matrix has %d elements, %d expected", i, len(row), i+1)
			}
		}
		r.anharm = vib.Anharmonicities
	}
	if vib.RovibCouplings != nil {
		if len(vib.RovibCouplings) != n {
			return mess.NewConfigError("setVibrations", "%d rovibrational couplings, %d expected", len(vib.RovibCouplings), n)
		}
		r.rovib = vib.RovibCouplings
	}
	r.zpe = r.energy(make([]int, len(r.freqs)), false)
	return nil
}

func (r *RigidRotor) harmonic() bool { return r.anharm == nil && r.rovib == nil }

//closedForm is true when no grid is needed: a bare rotor.
func (r *RigidRotor) closedForm() bool {
	return len(r.freqs) == 0 && len(r.elevels) == 1
}

func (r *RigidRotor) x(a, b int) float64 {
	i, j := r.parent[a], r.parent[b]
	if i < j {
		i, j = j, i
	}
	return r.anharm[i][j]
}

//energy returns the vibrational energy of the state with quanta v, relative to the
//zero point energy if relative is true, otherwise relative to the potential minimum.
func (r *RigidRotor) energy(v []int, relative bool) float64 {
	var e float64
	for a, f := range r.freqs {
		e += f * (float64(v[a]) + 0.5)
	}
	if r.anharm != nil {
		for a := range r.freqs {
			for b := 0; b <= a; b++ {
				e += r.x(a, b) * (float64(v[a]) + 0.5) * (float64(v[b]) + 0.5)
			}
		}
	}
	if relative {
		e -= r.zpe
	}
	return e
}

//rovibFactor returns the factor that multiplies the rotational weight in the state v.
func (r *RigidRotor) rovibFactor(v []int) float64 {
	if r.rovib == nil || r.rotPower == 0 {
		return 1
	}
	s := 1.0
	for a := range r.freqs {
		s -= r.rovib[r.parent[a]] * (float64(v[a]) + 0.5)
	}
	if s <= 0 {
		return 0
	}
	return math.Pow(s, -r.rotPower)
}

//vibrationalLevels enumerates the anharmonic vibrational states below emax and
//returns their histogram on the energy grid, each state weighted by its rovibrational factor.
func (r *RigidRotor) vibrationalLevels(emax, step float64, size int) []float64 {
	hist := make([]float64, size)
	v := make([]int, len(r.freqs))
	dissociated := false
	var rec func(a int)
	rec = func(a int) {
		if a == len(v) {
			e := r.energy(v, true)
			if i := int(math.Round(e / step)); i >= 0 && i < size {
				hist[i] += r.rovibFactor(v)
			}
			return
		}
		prev := math.Inf(-1)
		for v[a] = 0; ; v[a]++ {
			e := r.energy(v, true)
			if e > emax {
				break
			}
			if e <= prev {
				dissociated = true
				break
			}
			prev = e
			rec(a + 1)
		}
		v[a] = 0
	}
	rec(0)
	if dissociated {
		log.Printf("gomess/core: the anharmonic levels stop increasing below the energy limit, the level list was truncated")
	}
	return hist
}

//Ground returns the vibrational zero-point energy.
func (r *RigidRotor) Ground() float64 { return r.zpe }

func (r *RigidRotor) Mode() mess.Mode { return r.mode }

//Weight returns the partition function relative to the ground. It is exact for
//harmonic vibrations and obtained from the states otherwise.
func (r *RigidRotor) Weight(t float64) float64 {
	if !r.harmonic() {
		return mess.Boltzmann(func(e float64) float64 { return r.states.Number(e + r.zpe) }, t)
	}
	w := r.rotFactor * math.Pow(t, r.rotPower) * levelWeight(r.elevels, r.edegs, t)
	for _, f := range r.freqs {
		w /= 1 - math.Exp(-f/t)
	}
	return w
}

//States returns the number or density of states at e, measured from the potential minimum.
func (r *RigidRotor) States(e float64) float64 {
	if r.closedForm() {
		g := float64(r.edegs[0])
		return statesFromNumber(r.mode, e,
			func(e float64) float64 { return g * powerNumber(r.rotFactor, r.rotPower, e) },
			func(e float64) float64 { return g * mess.PowerDensity(r.rotFactor, r.rotPower, e) })
	}
	return r.states.States(e, r.mode)
}
