/*
 * mrquantum.go, part of gomess.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/gomess"
)

//basis returns the harmonic vectors m, with |m_j| <= q[j] and, if amomMax > 0,
//sum_j |m_j| <= amomMax, of the plane wave basis exp(i m.psi).
func (m *MultiRotor) basis(q []int) [][]int {
	dims := make([]int, len(q))
	for j, v := range q {
		dims[j] = 2*v + 1
	}
	idx := NewMultiIndex(dims)
	var r [][]int
	for i := 0; i < idx.Len(); i++ {
		v := idx.Vector(i, nil)
		amom := 0
		for j := range v {
			v[j] -= q[j]
			if v[j] < 0 {
				amom -= v[j]
			} else {
				amom += v[j]
			}
		}
		if m.opts.amomMax > 0 && amom > m.opts.amomMax {
			continue
		}
		r = append(r, v)
	}
	return r
}

//embed returns the real symmetric matrix [[A, -B], [B, A]] for the hermitian matrix A + iB,
//whose elements are given by elem. Its spectrum is that of A + iB, with every level twice.
func embed(n int, elem func(a, b int) complex128) *mat.SymDense {
	s := mat.NewSymDense(2*n, nil)
	for a := 0; a < n; a++ {
		for b := 0; b <= a; b++ {
			h := elem(a, b)
			s.SetSym(a, b, real(h))
			s.SetSym(n+a, n+b, real(h))
			s.SetSym(n+a, b, imag(h))
			s.SetSym(n+b, a, -imag(h))
		}
	}
	return s
}

//hamiltonian returns the element <a|H|b> of the internal rotation Hamiltonian,
//H = 1/2 sum p_j G_jk p_k + V with p_j = -i d/dphi_j.
func (m *MultiRotor) hamiltonian(basis [][]int) func(a, b int) complex128 {
	k := len(m.rots)
	diff := make([]int, k)
	return func(a, b int) complex128 {
		va, vb := basis[a], basis[b]
		for j := range diff {
			diff[j] = va[j] - vb[j]
		}
		h := m.pot.Coefficient(diff)
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				g := m.mob(i, j).Coefficient(diff)
				if g == 0 {
					continue
				}
				h += complex(0.5*m.sym[i]*float64(va[i])*m.sym[j]*float64(vb[j]), 0) * g
			}
		}
		return h
	}
}

//spectrum diagonalizes the Hamiltonian in the basis with maximum harmonics q. It returns the levels,
//each once, and, if vectors is true and the overall rotation is included, their mean external rotation factors.
func (m *MultiRotor) spectrum(q []int, vectors bool) ([]float64, []float64, error) {
	basis := m.basis(q)
	n := len(basis)
	s := embed(n, m.hamiltonian(basis))
	var es mat.EigenSym
	if ok := es.Factorize(s, vectors); !ok {
		return nil, nil, mess.NewComputeError("MultiRotor.spectrum", "Hamiltonian diagonalization failed, basis size %d", n)
	}
	vals := es.Values(nil)
	levels := make([]float64, n)
	for i := range levels {
		levels[i] = vals[2*i]
	}
	if !vectors || m.erf == nil {
		return levels, nil, nil
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	diff := make([]int, len(q))
	e := embed(n, func(a, b int) complex128 {
		for j := range diff {
			diff[j] = basis[a][j] - basis[b][j]
		}
		return m.erf.Coefficient(diff)
	})
	mean := make([]float64, n)
	col := make([]float64, 2*n)
	tmp := mat.NewVecDense(2*n, nil)
	for i := 0; i < 2*n; i++ {
		mat.Col(col, i, &vecs)
		x := mat.NewVecDense(2*n, col)
		tmp.MulVec(e, x)
		mean[i/2] += floats.Dot(col, tmp.RawVector().Data) / 2
	}
	return levels, mean, nil
}

//defaultQ estimates the basis needed for the levels below emax, from the
//free rotor with the mean mobility.
func (m *MultiRotor) defaultQ(emax float64) []int {
	vmax := 0.0
	dims := make([]int, len(m.rots))
	for j, s := range m.pot.Size() {
		dims[j] = 2*s + 1
	}
	if grid, err := m.pot.Grid(dims); err == nil {
		vmax = floats.Max(grid)
	}
	q := make([]int, len(m.rots))
	for j := range q {
		b := 0.5 * real(m.mob(j, j).Coefficient(make([]int, len(q)))) * m.sym[j] * m.sym[j]
		q[j] = int(math.Sqrt((emax+vmax)/b)) + 2
		if m.rots[j].HamSizeMin > 0 {
			q[j] = m.rots[j].HamSizeMin
		}
	}
	return q
}

//setLevels increases the basis until the levels below levelEnergyMax converge.
func (m *MultiRotor) setLevels() error {
	emax := m.opts.levelEnergyMax
	q := m.defaultQ(emax)
	qmax := make([]int, len(q))
	for j := range q {
		qmax[j] = m.rots[j].HamSizeMax
		if qmax[j] <= 0 {
			qmax[j] = 2*q[j] + 4
		}
		if qmax[j] < q[j] {
			return mess.NewConfigError("setLevels", "ham_size_max %d smaller than ham_size_min %d for rotation %d", qmax[j], q[j], j)
		}
	}
	tol := 1e-5 * emax
	prev, _, err := m.spectrum(q, false)
	if err != nil {
		return mess.ErrDecorate(err, "setLevels")
	}
	converged := false
	for {
		grown := false
		for j := range q {
			if q[j] < qmax[j] {
				q[j]++
				grown = true
			}
		}
		if !grown {
			break
		}
		cur, _, err := m.spectrum(q, false)
		if err != nil {
			return mess.ErrDecorate(err, "setLevels")
		}
		var diff []float64
		for i := 0; i < len(prev) && prev[i] <= emax; i++ {
			diff = append(diff, math.Abs(cur[i]-prev[i]))
		}
		if len(diff) > 0 && floats.Max(diff) <= tol {
			converged = true
			break
		}
		if len(diff) > 0 {
			log.Printf("gomess/core: multirotor levels not converged, mean change %g, basis %v", stat.Mean(diff, nil), q)
		}
		prev = cur
	}
	if !converged {
		return mess.NewComputeError("setLevels", "multirotor levels not converged with the maximum basis %v", q)
	}
	levels, mean, err := m.spectrum(q, true)
	if err != nil {
		return mess.ErrDecorate(err, "setLevels")
	}
	for i, e := range levels {
		if e > emax {
			break
		}
		m.levels = append(m.levels, e)
		if mean != nil {
			m.meanErf = append(m.meanErf, mean[i])
		}
	}
	if len(m.levels) < 2 {
		return mess.NewConfigError("setLevels", "less than two quantum levels below %g, increase level_energy_max", emax)
	}
	m.ground = m.levels[0]
	return nil
}

//externalFactor returns the weight prefactor of the overall rotation for the
//external rotation factor erf.
func (m *MultiRotor) externalFactor(erf float64) float64 {
	return math.Sqrt(8*math.Pi) * erf / m.opts.externalSymmetry
}

//QuantumStates returns the number of states at e, relative to the potential minimum, from the quantum
//levels alone. It is only complete below the maximum level energy.
func (m *MultiRotor) QuantumStates(e float64) float64 {
	var s float64
	for i, l := range m.levels {
		if l > e {
			break
		}
		if m.erf == nil {
			s++
			continue
		}
		s += mess.PowerNumber(m.externalFactor(m.meanErf[i]), 1.5, e-l)
	}
	return s
}

//QuantumWeight returns the partition function from the quantum levels, relative to the ground.
func (m *MultiRotor) QuantumWeight(t float64) float64 {
	var s float64
	for i, l := range m.levels {
		w := math.Exp(-(l - m.ground) / t)
		if m.erf != nil {
			w *= m.externalFactor(m.meanErf[i]) * math.Pow(t, 1.5)
		}
		s += w
	}
	return s
}
