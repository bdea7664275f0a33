/*
 * umbrella.go, part of gomess.
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

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"

	"github.com/rmera/gomess"
)

//Umbrella is a one-dimensional symmetric anharmonic mode, such as the umbrella inversion of NH3.
//The potential is an even polynomial fitted to sampled energies, with its minimum set to zero.
type Umbrella struct {
	levels
	mass  float64
	poly  []float64 //coefficients of x^0, x^2, x^4...
	vmin  float64
	width float64 //half width of the box used as basis
	opts  Options
}

//NewUmbrella fits an even polynomial with o.PolySize() terms (besides the constant) to the energies
//sampled at the coordinates x. The mode has the reduced mass mass. Sampling at negative
//coordinates is allowed but redundant.
func NewUmbrella(mass float64, x, energies []float64, o *Options) (*Umbrella, error) {
	if mass <= 0 {
		return nil, mess.NewConfigError("NewUmbrella", "reduced mass must be positive, got %g", mass)
	}
	if len(x) != len(energies) {
		return nil, mess.NewConfigError("NewUmbrella", "%d coordinates but %d energies", len(x), len(energies))
	}
	if o == nil {
		o = DefaultOptions()
	}
	np := o.polySize + 1
	if len(x) < np {
		return nil, mess.NewConfigError("NewUmbrella", "%d samples are not enough to fit %d coefficients", len(x), np)
	}
	a := mat.NewDense(len(x), np, nil)
	b := mat.NewVecDense(len(x), energies)
	var xmax float64
	for i, v := range x {
		x2 := v * v
		p := 1.0
		for j := 0; j < np; j++ {
			a.Set(i, j, p)
			p *= x2
		}
		xmax = math.Max(xmax, math.Abs(v))
	}
	var coef mat.VecDense
	if err := coef.SolveVec(a, b); err != nil {
		return nil, mess.WrapError(err, mess.ComputeError, "NewUmbrella", "least squares fit of the potential failed")
	}
	r := &Umbrella{mass: mass, opts: *o, poly: make([]float64, np)}
	for i := range r.poly {
		r.poly[i] = coef.AtVec(i)
	}
	if r.poly[np-1] <= 0 {
		return nil, mess.NewConfigError("NewUmbrella", "the fitted potential is not bound, highest coefficient %g", r.poly[np-1])
	}
	r.width = xmax
	r.vmin = 0
	r.vmin = r.minimum()
	return r, nil
}

func (r *Umbrella) minimum() float64 {
	n := r.opts.gridSize
	min := math.Inf(1)
	for i := 0; i <= n; i++ {
		min = math.Min(min, r.Potential(r.width*float64(i)/float64(n), 0))
	}
	return min
}

//Potential returns the der-th derivative (0, 1 or 2) of the potential at x.
func (r *Umbrella) Potential(x float64, der int) float64 {
	var v float64
	for i, c := range r.poly {
		k := float64(2 * i)
		switch der {
		case 0:
			v += c * math.Pow(x, k)
		case 1:
			if i > 0 {
				v += c * k * math.Pow(x, k-1)
			}
		case 2:
			if i > 0 {
				v += c * k * (k - 1) * math.Pow(x, k-2)
			}
		default:
			panic(mess.PanicMsg("gomess/rotor: only up to second potential derivatives"))
		}
	}
	if der == 0 {
		v -= r.vmin
	}
	return v
}

//spectrum diagonalizes the Hamiltonian in a particle-in-a-box basis of the given size on [-width, width].
func (r *Umbrella) spectrum(size int) ([]float64, error) {
	l := r.width
	nq := 4*size + 40
	xs := make([]float64, nq)
	ws := make([]float64, nq)
	quad.Legendre{}.FixedLocations(xs, ws, -l, l)
	pot := make([]float64, nq)
	for q, x := range xs {
		pot[q] = r.Potential(x, 0)
	}
	phi := func(n int, x float64) float64 {
		return math.Sin(float64(n)*math.Pi*(x+l)/(2*l)) / math.Sqrt(l)
	}
	h := mat.NewSymDense(size, nil)
	for i := 0; i < size; i++ {
		for j := i; j < size; j++ {
			var v float64
			for q, x := range xs {
				v += ws[q] * phi(i+1, x) * pot[q] * phi(j+1, x)
			}
			if i == j {
				k := float64(i+1) * math.Pi / (2 * l)
				v += k * k / (2 * r.mass)
			}
			h.SetSym(i, j, v)
		}
	}
	return eigenvalues(h)
}

//Set widens the box until the potential at its walls exceeds the energy limit and computes the
//levels up to emax above the ground.
func (r *Umbrella) Set(emax float64) error {
	if r.set {
		panic(mess.ErrAlreadySet)
	}
	if emax <= 0 {
		return mess.NewConfigError("Umbrella.Set", "non-positive energy limit %g", emax)
	}
	for i := 0; r.Potential(r.width, 0) < 4*emax; i++ {
		if i > 50 {
			return mess.NewComputeError("Umbrella.Set", "the potential does not reach the energy limit")
		}
		r.width *= 1.2
	}
	//a box state of energy emax has n = 2L sqrt(2 m emax)/pi
	min := r.opts.hamSizeMin
	if min <= 0 {
		min = int(2*r.width*math.Sqrt(2*r.mass*2*emax)/math.Pi) + 10
	}
	max := r.opts.hamSizeMax
	if max <= 0 {
		max = 4*min + 50
	}
	if max < min {
		return mess.NewConfigError("Umbrella.Set", "ham_size_max %d smaller than ham_size_min %d", max, min)
	}
	step := min / 5
	if step < 2 {
		step = 2
	}
	all, err := converge("umbrella mode", r.spectrum, min, max, step, emax, 1e-6*emax/float64(min))
	if err != nil {
		return mess.ErrDecorate(err, "Umbrella.Set")
	}
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

//QuantumWeight sums the levels below the energy limit.
func (r *Umbrella) QuantumWeight(t float64) float64 {
	r.mustSet()
	return r.levelSum(t)
}

//SemiclassicalWeight returns the classical partition function and the one with the local
//harmonic path-integral correction, both relative to the ground. The classical value is
//returned even when the correction fails.
func (r *Umbrella) SemiclassicalWeight(t float64) (float64, float64, error) {
	r.mustSet()
	n := r.opts.gridSize
	xs := make([]float64, n)
	ws := make([]float64, n)
	quad.Legendre{}.FixedLocations(xs, ws, -r.width, r.width)
	var cl, pi float64
	var ferr error
	for i, x := range xs {
		b := ws[i] * math.Exp(-r.Potential(x, 0)/t)
		cl += b
		if ferr != nil {
			continue
		}
		f, err := localFactor(r.Potential(x, 2), r.mass, t)
		if err != nil {
			ferr = mess.ErrDecorate(err, "Umbrella.SemiclassicalWeight")
			continue
		}
		pi += b * f
	}
	pref := math.Sqrt(r.mass*t/(2*math.Pi)) * math.Exp(r.ground/t)
	if ferr != nil {
		return cl * pref, 0, ferr
	}
	return cl * pref, pi * pref, nil
}

func (r *Umbrella) Weight(t float64) float64 {
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
