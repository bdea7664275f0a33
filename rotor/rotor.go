/*
 * rotor.go, part of gomess.
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

//Package rotor implements the internal degrees of freedom that are treated separately from the rigid
//core of a species: free and hindered internal rotations, and umbrella (inversion) modes.
//
//A rotor goes through three states: built, set and queryable. Set must be called exactly once,
//with the highest energy that the rotor needs to describe, before any other method.
//Querying a rotor before Set, or calling Set twice, is a programming error and panics.
package rotor

import (
	"log"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/gomess"
)

//levels holds the spectrum of a rotor once it has been set. Energies are relative to the ground.
type levels struct {
	set    bool
	ground float64
	energy []float64
	degs   []int
}

func (l *levels) mustSet() {
	if !l.set {
		panic(mess.ErrNotSet)
	}
}

//Ground returns the ground level energy, relative to the potential minimum.
func (l *levels) Ground() float64 {
	l.mustSet()
	return l.ground
}

//EnergyLevel returns the energy of the i-th level, relative to the ground.
func (l *levels) EnergyLevel(i int) float64 {
	l.mustSet()
	return l.energy[i]
}

//Degeneracy returns the degeneracy of the i-th level.
func (l *levels) Degeneracy(i int) int {
	l.mustSet()
	if l.degs == nil {
		return 1
	}
	return l.degs[i]
}

//LevelSize returns the number of levels below the energy given to Set.
func (l *levels) LevelSize() int {
	l.mustSet()
	return len(l.energy)
}

//Convolute folds the levels into the states array nos, in place.
func (l *levels) Convolute(nos []float64, step float64) {
	l.mustSet()
	mess.ConvoluteLevels(nos, step, l.energy, l.degs)
}

//levelSum returns the Boltzmann sum over the stored levels.
func (l *levels) levelSum(t float64) float64 {
	var s float64
	for i, e := range l.energy {
		s += float64(l.Degeneracy(i)) * math.Exp(-e/t)
	}
	return s
}

//eigenvalues returns the eigenvalues of the symmetric matrix h, in increasing order.
func eigenvalues(h *mat.SymDense) ([]float64, error) {
	var es mat.EigenSym
	if ok := es.Factorize(h, false); !ok {
		return nil, mess.NewComputeError("rotor.eigenvalues", "Hamiltonian diagonalization failed")
	}
	return es.Values(nil), nil
}

//converge increases the basis size from min to max, in steps of step, until the eigenvalues below
//emax (above the lowest one) stop changing by more than tol, and the basis reaches above emax.
//spectrum returns the eigenvalues for a given basis size. It returns the converged eigenvalues.
func converge(name string, spectrum func(size int) ([]float64, error), min, max, step int, emax, tol float64) ([]float64, error) {
	prev, err := spectrum(min)
	if err != nil {
		return nil, err
	}
	for size := min + step; size <= max; size += step {
		cur, err := spectrum(size)
		if err != nil {
			return nil, err
		}
		n := 0
		for n < len(prev) && prev[n]-prev[0] <= emax {
			n++
		}
		if n < len(prev) {
			rel := make([]float64, n)
			var maxdiff float64
			for i := 0; i < n; i++ {
				d := math.Abs(cur[i] - prev[i])
				maxdiff = math.Max(maxdiff, d)
				rel[i] = d
			}
			if maxdiff <= tol {
				return cur, nil
			}
			log.Printf("gomess/rotor: %s: basis size %d not converged, mean level change %g, increasing", name, size-step, stat.Mean(rel, nil))
		}
		prev = cur
	}
	return nil, mess.NewComputeError("rotor.converge", "%s: levels not converged with the maximum basis size %d", name, max)
}

//localFactor returns the path-integral correction (u/2)/sinh(u/2) for a local harmonic
//frequency u*T, or (u/2)/sin(u/2) if the curvature is negative. It fails if the negative
//curvature is too large for the correction to exist.
func localFactor(curvature, mass, t float64) (float64, error) {
	u := math.Sqrt(math.Abs(curvature)/mass) / t
	if u < 1e-6 {
		return 1, nil
	}
	if curvature > 0 {
		return u / 2 / math.Sinh(u/2), nil
	}
	if u >= 2*math.Pi {
		return 0, mess.NewComputeError("localFactor", "negative potential curvature too large for the path-integral correction")
	}
	return u / 2 / math.Sin(u/2), nil
}
