/*
 * hindered.go, part of gomess.
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

package rotor

import (
	"log"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"

	"github.com/rmera/gomess"
)

//Hindered is a one-dimensional internal rotation in a periodic potential,
// V(phi) = sum_k c_k cos(k sym phi) + s_k sin(k sym phi) - Vmin,
//so the potential minimum is zero.
type Hindered struct {
	levels
	rotConst float64
	symmetry int
	cos, sin []float64
	vmin     float64
	vmax     float64 //relative to vmin
	opts     Options
	all      []float64 //converged levels, relative to the potential minimum
}

//NewHindered returns a hindered rotor with rotational constant rotConst and symmetry number sym,
//and the potential given by its cosine and sine Fourier coefficients (of cos(k sym phi), k = 1, 2...).
//sin can be nil. If o is nil, default options are used.
func NewHindered(rotConst float64, sym int, cos, sin []float64, o *Options) (*Hindered, error) {
	if rotConst <= 0 {
		return nil, mess.NewConfigError("NewHindered", "rotational constant must be positive, got %g", rotConst)
	}
	if sym < 1 {
		return nil, mess.NewConfigError("NewHindered", "symmetry number must be positive, got %d", sym)
	}
	if len(cos) == 0 && len(sin) == 0 {
		return nil, mess.NewConfigError("NewHindered", "no potential given, use a free rotor")
	}
	if o == nil {
		o = DefaultOptions()
	}
	n := len(cos)
	if len(sin) > n {
		n = len(sin)
	}
	r := &Hindered{rotConst: rotConst, symmetry: sym, opts: *o}
	r.cos = make([]float64, n)
	r.sin = make([]float64, n)
	copy(r.cos, cos)
	copy(r.sin, sin)
	r.findMinimum()
	return r, nil
}

//NewHinderedSampled fits the potential from a uniform sampling on [0, 2 pi/sym), with the first
//sample at phi = 0. At most maxHarmonics harmonics are kept (all of them if maxHarmonics <= 0).
func NewHinderedSampled(rotConst float64, sym int, samples []float64, maxHarmonics int, o *Options) (*Hindered, error) {
	n := len(samples)
	if n < 3 {
		return nil, mess.NewConfigError("NewHinderedSampled", "at least 3 potential samples needed, got %d", n)
	}
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, samples)
	k := (n - 1) / 2
	if maxHarmonics > 0 && maxHarmonics < k {
		k = maxHarmonics
	}
	cos := make([]float64, k)
	sin := make([]float64, k)
	for i := 1; i <= k; i++ {
		cos[i-1] = 2 * real(coeffs[i]) / float64(n)
		sin[i-1] = -2 * imag(coeffs[i]) / float64(n)
	}
	h, err := NewHindered(rotConst, sym, cos, sin, o)
	return h, mess.ErrDecorate(err, "NewHinderedSampled")
}

//rawPotential returns the der-th derivative, with respect to psi = sym*phi, of the unshifted potential.
func (r *Hindered) rawPotential(psi float64, der int) float64 {
	var v float64
	for i := range r.cos {
		k := float64(i + 1)
		c, s := math.Cos(k*psi), math.Sin(k*psi)
		switch der {
		case 0:
			v += r.cos[i]*c + r.sin[i]*s
		case 1:
			v += k * (-r.cos[i]*s + r.sin[i]*c)
		case 2:
			v -= k * k * (r.cos[i]*c + r.sin[i]*s)
		default:
			panic(mess.PanicMsg("gomess/rotor: only up to second potential derivatives"))
		}
	}
	return v
}

//findMinimum locates the potential minimum on a grid and polishes it with Newton steps.
func (r *Hindered) findMinimum() {
	n := 64 * len(r.cos)
	best, bestv := 0.0, math.Inf(1)
	max := math.Inf(-1)
	for i := 0; i < n; i++ {
		psi := 2 * math.Pi * float64(i) / float64(n)
		v := r.rawPotential(psi, 0)
		if v < bestv {
			best, bestv = psi, v
		}
		max = math.Max(max, v)
	}
	for i := 0; i < 20; i++ {
		d2 := r.rawPotential(best, 2)
		if d2 <= 0 {
			break
		}
		best -= r.rawPotential(best, 1) / d2
	}
	r.vmin = math.Min(bestv, r.rawPotential(best, 0))
	r.vmax = max - r.vmin
}

//Potential returns the der-th derivative (0, 1 or 2) of the potential at the angle phi.
func (r *Hindered) Potential(phi float64, der int) float64 {
	v := r.rawPotential(float64(r.symmetry)*phi, der)
	switch der {
	case 0:
		return v - r.vmin
	case 1:
		return v * float64(r.symmetry)
	}
	return v * float64(r.symmetry*r.symmetry)
}

//PotentialMinimum returns the value of the Fourier series at its minimum, which is
//the energy origin of the rotor.
func (r *Hindered) PotentialMinimum() float64 { return r.vmin }

//spectrum returns the eigenvalues of the Hamiltonian in the basis 1, sqrt(2)cos(m psi), sqrt(2)sin(m psi),
//m = 1..msize, relative to the potential minimum.
func (r *Hindered) spectrum(msize int) ([]float64, error) {
	dim := 2*msize + 1
	ngrid := 2*msize + len(r.cos) + 1
	pot := make([]float64, ngrid)
	basis := make([][]float64, dim)
	for i := range basis {
		basis[i] = make([]float64, ngrid)
	}
	for g := 0; g < ngrid; g++ {
		psi := 2 * math.Pi * float64(g) / float64(ngrid)
		pot[g] = r.rawPotential(psi, 0) - r.vmin
		basis[0][g] = 1
		for m := 1; m <= msize; m++ {
			basis[2*m-1][g] = math.Sqrt2 * math.Cos(float64(m)*psi)
			basis[2*m][g] = math.Sqrt2 * math.Sin(float64(m)*psi)
		}
	}
	h := mat.NewSymDense(dim, nil)
	sym2 := float64(r.symmetry * r.symmetry)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			var v float64
			for g := 0; g < ngrid; g++ {
				v += basis[i][g] * pot[g] * basis[j][g]
			}
			v /= float64(ngrid)
			if i == j {
				m := float64((i + 1) / 2)
				v += r.rotConst * sym2 * m * m
			}
			h.SetSym(i, j, v)
		}
	}
	return eigenvalues(h)
}

//Set diagonalizes the Hamiltonian, increasing its size until the levels up to emax
//above the ground converge.
func (r *Hindered) Set(emax float64) error {
	if r.set {
		panic(mess.ErrAlreadySet)
	}
	if emax <= 0 {
		return mess.NewConfigError("Hindered.Set", "non-positive energy limit %g", emax)
	}
	min := r.opts.hamSizeMin
	if min <= 0 {
		min = int(math.Sqrt((emax+r.vmax)/r.rotConst)/float64(r.symmetry)) + 5
	}
	max := r.opts.hamSizeMax
	if max <= 0 {
		max = 4*min + 50
	}
	if max < min {
		return mess.NewConfigError("Hindered.Set", "ham_size_max %d smaller than ham_size_min %d", max, min)
	}
	step := min / 5
	if step < 2 {
		step = 2
	}
	tol := 1e-6*r.rotConst + 1e-9*emax
	all, err := converge("hindered rotor", r.spectrum, min, max, step, emax, tol)
	if err != nil {
		return mess.ErrDecorate(err, "Hindered.Set")
	}
	r.all = all
	r.ground = all[0]
	for _, e := range all {
		if e-r.ground > emax {
			break
		}
		r.energy = append(r.energy, e-r.ground)
	}
	r.set = true
	return nil
}

//QuantumWeight sums the converged levels and, above them, the free rotor levels
//shifted by the average potential.
func (r *Hindered) QuantumWeight(t float64) float64 {
	r.mustSet()
	s := r.levelSum(t)
	last := r.energy[len(r.energy)-1]
	shift := -r.vmin - r.ground //average potential relative to the ground
	for m := 1; ; m++ {
		x := float64(r.symmetry * m)
		e := r.rotConst*x*x + shift
		if e > r.opts.thermPowMax*t+last {
			break
		}
		if e > last {
			s += 2 * math.Exp(-e/t)
		}
	}
	return s
}

//SemiclassicalWeight returns the classical partition function and the one corrected with the
//local harmonic path-integral factor, both relative to the ground. If the correction does not
//exist at t, the classical value is still returned, together with the error.
func (r *Hindered) SemiclassicalWeight(t float64) (float64, float64, error) {
	r.mustSet()
	n := r.opts.gridSize
	mass := 1 / (2 * r.rotConst)
	var cl, pi float64
	var ferr error
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n*r.symmetry)
		b := math.Exp(-r.Potential(phi, 0) / t)
		cl += b
		if ferr != nil {
			continue
		}
		f, err := localFactor(r.Potential(phi, 2), mass, t)
		if err != nil {
			ferr = mess.ErrDecorate(err, "Hindered.SemiclassicalWeight")
			continue
		}
		pi += b * f
	}
	pref := math.Sqrt(math.Pi*t/r.rotConst) / float64(r.symmetry) / float64(n) * math.Exp(r.ground/t)
	if ferr != nil {
		return cl * pref, 0, ferr
	}
	return cl * pref, pi * pref, nil
}

//Weight returns the partition function relative to the ground, from the quantum levels or from
//the path integral, depending on the options. If the path integral correction does not exist,
//the quantum weight is returned.
func (r *Hindered) Weight(t float64) float64 {
	if r.opts.quantumWeight {
		return r.QuantumWeight(t)
	}
	_, pi, err := r.SemiclassicalWeight(t)
	if err != nil {
		log.Printf("gomess/rotor: %s, using the quantum weight", err)
		return r.QuantumWeight(t)
	}
	return pi
}

//SemiclassicalStatesNumber returns the classical number of states at the energy e, measured
//from the potential minimum.
func (r *Hindered) SemiclassicalStatesNumber(e float64) float64 {
	n := r.opts.gridSize
	var s float64
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n*r.symmetry)
		if v := r.Potential(phi, 0); v < e {
			s += math.Sqrt((e - v) / r.rotConst)
		}
	}
	return 2 * s / float64(n) / float64(r.symmetry)
}
