/*
 * mrclassical.go, part of gomess.
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
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/rmera/gomess"
)

//classicalGrid holds, on a uniform angular grid, the potential and the phase space
//prefactor of each point: the classical states of a point are a (E-V)^d/Gamma(d+1).
type classicalGrid struct {
	dims   []int
	v      []float64
	a      []float64
	local  []float64 //path integral correction frequencies, flattened k per point
	dimens float64
}

func (m *MultiRotor) classicalDims() []int {
	dims := make([]int, len(m.rots))
	for j := range dims {
		s := m.pot.Size()[j]
		if ms := m.mobility[j][j].Size()[j]; ms > s {
			s = ms
		}
		dims[j] = 4*s + 8
	}
	return dims
}

//setClassical fills the classical grid and tabulates the classical number of states.
func (m *MultiRotor) setClassical() error {
	k := len(m.rots)
	dims := m.classicalDims()
	v, err := m.pot.Grid(dims)
	if err != nil {
		return mess.ErrDecorate(err, "setClassical")
	}
	n := len(v)
	mob := make([][]float64, k*(k+1)/2)
	l := 0
	for a := 0; a < k; a++ {
		for b := 0; b <= a; b++ {
			if mob[l], err = m.mobility[a][b].Grid(dims); err != nil {
				return mess.ErrDecorate(err, "setClassical")
			}
			l++
		}
	}
	var erf []float64
	if m.erf != nil {
		if erf, err = m.erf.Grid(dims); err != nil {
			return mess.ErrDecorate(err, "setClassical")
		}
	}
	cg := classicalGrid{dims: dims, v: v, a: make([]float64, n), local: make([]float64, n*k), dimens: float64(k) / 2}
	pref := math.Pow(2*math.Pi, float64(k)/2)
	for _, s := range m.sym {
		pref /= s
	}
	if m.erf != nil {
		cg.dimens += 1.5
	}
	idx := NewMultiIndex(dims)
	errs := make([]error, n)
	parallel(n, m.cpus, func(i int) {
		g := mat.NewSymDense(k, nil)
		l := 0
		for a := 0; a < k; a++ {
			for b := 0; b <= a; b++ {
				g.SetSym(a, b, mob[l][i])
				l++
			}
		}
		det := mat.Det(g)
		if det <= 0 {
			errs[i] = mess.NewComputeError("setClassical", "non-positive mobility determinant at grid point %d", i)
			return
		}
		cg.a[i] = pref / math.Sqrt(det)
		if erf != nil {
			cg.a[i] *= m.externalFactor(erf[i])
		}
		gv := idx.Vector(i, nil)
		phi := make([]float64, k)
		for j := range phi {
			phi[j] = 2 * math.Pi * float64(gv[j]) / float64(dims[j]) / m.sym[j]
		}
		f, err := localFrequencies(g, m.ForceConstantMatrix(phi))
		if err != nil {
			errs[i] = err
			return
		}
		copy(cg.local[i*k:(i+1)*k], f)
	})
	for _, err := range errs {
		if err != nil {
			return mess.ErrDecorate(err, "setClassical")
		}
	}
	m.cgrid = cg
	ne := m.opts.energyGridSize
	en := make([]float64, ne)
	num := make([]float64, ne)
	parallel(ne, m.cpus, func(i int) {
		en[i] = m.opts.extraEnergy * float64(i+1) / float64(ne)
		num[i] = m.classicalNumber(en[i])
	})
	if m.cstates, err = mess.NewSpline(en, num); err != nil {
		return mess.ErrDecorate(err, "setClassical")
	}
	m.cstates.PowerBelow()
	return nil
}

//classicalNumber integrates the classical phase space volume below e over the angular grid.
func (m *MultiRotor) classicalNumber(e float64) float64 {
	var s float64
	d := m.cgrid.dimens
	for i, v := range m.cgrid.v {
		if v < e {
			s += m.cgrid.a[i] * math.Pow(e-v, d)
		}
	}
	return s / float64(len(m.cgrid.v)) / math.Gamma(d+1)
}

//ClassicalStates returns the classical number of states at e, relative to the potential minimum.
func (m *MultiRotor) ClassicalStates(e float64) float64 {
	if e <= 0 {
		return 0
	}
	return m.cstates.Value(e)
}

//setQFactor tabulates the ratio between the quantum and the classical number of states
//from the ground to the highest quantum level.
func (m *MultiRotor) setQFactor() error {
	m.qmax = m.opts.levelEnergyMax
	n := 4 * len(m.levels)
	if n < 10 {
		n = 10
	}
	x := mess.Grid(m.ground, m.qmax, n)
	y := make([]float64, n)
	for i, e := range x {
		c := m.ClassicalStates(e)
		if c <= 0 {
			return mess.NewComputeError("setQFactor", "no classical states at %g, above the ground", e)
		}
		y[i] = m.QuantumStates(e) / c
	}
	var err error
	if m.qfactor, err = mess.NewSpline(x, y); err != nil {
		return mess.ErrDecorate(err, "setQFactor")
	}
	m.qfactor.PowerBelow()
	m.qend = y[n-1]
	return nil
}

//correction returns the quantum correction factor at e. Above the highest level it decays
//to one as (qmax/e)^2.
func (m *MultiRotor) correction(e float64) float64 {
	if e <= m.qmax {
		return m.qfactor.Value(e)
	}
	r := m.qmax / e
	return 1 + (m.qend-1)*r*r
}

//setNumber tabulates the corrected number of states from the ground to the end of the classical
//table. Decreases in the table are flattened before it is splined, so the count is non-decreasing.
func (m *MultiRotor) setNumber() error {
	fine := 4 * len(m.levels)
	if fine < 100 {
		fine = 100
	}
	x := mess.Grid(m.ground, m.qmax, fine)
	coarse := mess.Grid(m.qmax, m.opts.extraEnergy, m.opts.energyGridSize+1)
	x = append(x, coarse[1:]...)
	y := make([]float64, len(x))
	for i, e := range x {
		q := m.correction(e)
		y[i] = math.Max(q*m.ClassicalStates(e), 0)
		if i > 0 && y[i] < y[i-1] {
			y[i] = y[i-1]
		}
	}
	var err error
	if m.nstates, err = mess.NewSpline(x, y); err != nil {
		return mess.ErrDecorate(err, "setNumber")
	}
	m.nend = y[len(y)-1] / m.ClassicalStates(x[len(x)-1])
	return nil
}

//number returns the corrected number of states. Above the table the classical count is scaled
//by the correction reached at the end of the table.
func (m *MultiRotor) number(e float64) float64 {
	switch {
	case e < m.ground:
		return 0
	case e > m.nstates.Max():
		return m.nend * m.ClassicalStates(e)
	}
	return math.Max(m.nstates.Value(e), 0)
}

func (m *MultiRotor) density(e float64) float64 {
	switch {
	case e < m.ground:
		return 0
	case e > m.nstates.Max():
		return math.Max(m.nend*m.cstates.Derivative(e), 0)
	}
	return math.Max(m.nstates.Derivative(e), 0)
}

//States returns the number or the density of states at e, relative to the potential minimum.
func (m *MultiRotor) States(e float64) float64 {
	return statesFromNumber(m.mode, e, m.number, m.density)
}

//Weight returns the partition function relative to the ground.
func (m *MultiRotor) Weight(t float64) float64 {
	return mess.Boltzmann(func(e float64) float64 { return m.number(e + m.ground) }, t)
}

//SemiclassicalWeight returns the classical partition function and the one with the local harmonic
//path integral correction, relative to the ground. The correction fails if a local imaginary frequency
//is too large for the temperature.
func (m *MultiRotor) SemiclassicalWeight(t float64) (float64, float64, error) {
	k := len(m.rots)
	var cl, pi float64
	for i, v := range m.cgrid.v {
		w := m.cgrid.a[i] * math.Exp(-v/t)
		cl += w
		for _, f := range m.cgrid.local[i*k : (i+1)*k] {
			u := math.Abs(f) / t
			switch {
			case u < 1e-6:
			case f > 0:
				w *= u / 2 / math.Sinh(u/2)
			case u < 2*math.Pi:
				w *= u / 2 / math.Sin(u/2)
			default:
				return 0, 0, mess.NewComputeError("MultiRotor.SemiclassicalWeight", "imaginary local frequency too large at grid point %d", i)
			}
		}
		pi += w
	}
	f := math.Pow(t, m.cgrid.dimens) * math.Exp(m.ground/t) / float64(len(m.cgrid.v))
	return cl * f, pi * f, nil
}
