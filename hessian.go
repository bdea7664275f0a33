/*
 * hessian.go, part of gomess.
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
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func sqrt(x float64) float64 { return math.Sqrt(x) }

//gramSchmidt orthonormalizes the vectors in basis, in order. Vectors that are linearly dependent
//on the previous ones are returned as nil.
func gramSchmidt(basis [][]float64) [][]float64 {
	const tol = 1e-8
	ret := make([][]float64, len(basis))
	for i, b := range basis {
		v := make([]float64, len(b))
		copy(v, b)
		norm0 := floats.Norm(v, 2)
		if norm0 == 0 {
			continue
		}
		for j := 0; j < i; j++ {
			if ret[j] == nil {
				continue
			}
			floats.AddScaled(v, -floats.Dot(v, ret[j]), ret[j])
		}
		n := floats.Norm(v, 2)
		if n < tol*norm0 {
			continue
		}
		floats.Scale(1/n, v)
		ret[i] = v
	}
	return ret
}

//ProjectedFrequencies returns the harmonic frequencies, in increasing order, of the cartesian
//Hessian hess (in atomic units) at the geometry g, once the overall translations and rotations,
//and the internal rotations rots, are projected out. Imaginary frequencies are returned as
//negative numbers.
func ProjectedFrequencies(g *Geometry, hess mat.Symmetric, rots []*InternalRotation) ([]float64, error) {
	n := 3 * g.Len()
	if r := hess.SymmetricDim(); r != n {
		return nil, NewConfigError("ProjectedFrequencies", "Hessian dimension %d, %d expected", r, n)
	}
	masses := g.Masses()
	sq := make([]float64, n)
	for i, m := range masses {
		for j := 0; j < 3; j++ {
			sq[3*i+j] = math.Sqrt(m)
		}
	}
	var basis [][]float64
	for k := 0; k < 3; k++ {
		t := make([]float64, n)
		for i := range masses {
			t[3*i+k] = sq[3*i+k]
		}
		basis = append(basis, t)
	}
	rd, err := rotationDisplacements(g)
	if err != nil {
		return nil, ErrDecorate(err, "ProjectedFrequencies")
	}
	for _, v := range rd {
		floats.Mul(v, sq)
		basis = append(basis, v)
	}
	for _, r := range rots {
		d := r.displacement(g)
		floats.Mul(d, sq)
		basis = append(basis, d)
	}
	proj := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		proj.Set(i, i, 1)
	}
	nproj := 0
	for _, v := range gramSchmidt(basis) {
		if v == nil {
			continue
		}
		nproj++
		vec := mat.NewVecDense(n, v)
		proj.RankOne(proj, -1, vec, vec)
	}
	mw := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			mw.Set(i, j, hess.At(i, j)/(sq[i]*sq[j]))
		}
	}
	var tmp, ph mat.Dense
	tmp.Mul(mw, proj)
	ph.Mul(proj, &tmp)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(ph.At(i, j)+ph.At(j, i)))
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, NewComputeError("ProjectedFrequencies", "Hessian diagonalization failed")
	}
	vals := es.Values(nil)
	sort.Slice(vals, func(i, j int) bool { return math.Abs(vals[i]) < math.Abs(vals[j]) })
	vals = vals[nproj:]
	freqs := make([]float64, len(vals))
	for i, v := range vals {
		freqs[i] = math.Copysign(math.Sqrt(math.Abs(v)), v)
	}
	sort.Float64s(freqs)
	return freqs, nil
}

//ZeroPointEnergy returns half the sum of the real frequencies in freqs.
func ZeroPointEnergy(freqs []float64) float64 {
	var z float64
	for _, f := range freqs {
		if f > 0 {
			z += f / 2
		}
	}
	return z
}
