/*
 * graph.go, part of gomess.
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
	"sort"

	"github.com/rmera/gomess"
)

//forceConstant is one term of the expansion, with its modes in a fixed order.
type forceConstant struct {
	modes []int
	value float64
}

//Graph is the low-order perturbative correction to the harmonic free energy from cubic
//and quartic normal mode force constants, given in dimensionless normal coordinates:
// V = sum_i w_i q_i^2/2 + 1/6 sum_ijk f_ijk q_i q_j q_k + 1/24 sum_ijkl f_ijkl q_i q_j q_k q_l.
//It contains the first order quartic term and the second order cubic terms, with
//thermal propagators in closed form.
type Graph struct {
	freqs   []float64
	cubic   []forceConstant //all the distinct orderings of each given constant
	quartic []forceConstant //as given, one per set of modes
	zero    float64         //the correction at T=0
}

//NewGraph builds the correction for the non-degenerate normal modes of frequencies freqs.
//Each force constant is given once, for any ordering of its modes.
func NewGraph(freqs []float64, cubic, quartic []mess.ForceConstant) (*Graph, error) {
	g := &Graph{freqs: append([]float64(nil), freqs...)}
	check := func(c mess.ForceConstant, order int) error {
		if len(c.Modes) != order {
			return mess.NewConfigError("NewGraph", "force constant %v: %d modes expected", c.Modes, order)
		}
		for _, m := range c.Modes {
			if m < 0 || m >= len(freqs) {
				return mess.NewConfigError("NewGraph", "force constant %v: mode %d out of range", c.Modes, m)
			}
		}
		return nil
	}
	seen := make(map[[3]int]bool)
	for _, c := range cubic {
		if err := check(c, 3); err != nil {
			return nil, err
		}
		for _, p := range permutations(c.Modes) {
			k := [3]int{p[0], p[1], p[2]}
			if seen[k] {
				return nil, mess.NewConfigError("NewGraph", "cubic force constant %v given twice", c.Modes)
			}
			seen[k] = true
			g.cubic = append(g.cubic, forceConstant{modes: p, value: c.Value.Float()})
		}
	}
	for _, c := range quartic {
		if err := check(c, 4); err != nil {
			return nil, err
		}
		m := append([]int(nil), c.Modes...)
		sort.Ints(m)
		g.quartic = append(g.quartic, forceConstant{modes: m, value: c.Value.Float()})
	}
	for _, f := range freqs {
		if f <= 0 {
			return nil, mess.NewConfigError("NewGraph", "non-positive frequency %g", f)
		}
	}
	g.zero = g.FreeEnergy(0)
	return g, nil
}

//permutations returns the distinct orderings of m.
func permutations(m []int) [][]int {
	s := append([]int(nil), m...)
	sort.Ints(s)
	var r [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == len(s) {
			r = append(r, append([]int(nil), s...))
			return
		}
		used := make(map[int]bool)
		for i := k; i < len(s); i++ {
			if used[s[i]] {
				continue
			}
			used[s[i]] = true
			s[k], s[i] = s[i], s[k]
			rec(k + 1)
			s[k], s[i] = s[i], s[k]
		}
	}
	rec(0)
	return r
}

//occupations returns the mean occupation numbers and the mean square coordinates of the modes.
func (g *Graph) occupations(t float64) ([]float64, []float64) {
	n := make([]float64, len(g.freqs))
	q2 := make([]float64, len(g.freqs))
	for i, f := range g.freqs {
		if t > 0 {
			n[i] = 1 / math.Expm1(f/t)
		}
		q2[i] = n[i] + 0.5
	}
	return n, q2
}

//FreeEnergy returns the anharmonic correction to the free energy at temperature t. t=0
//gives the correction to the zero-point energy.
func (g *Graph) FreeEnergy(t float64) float64 {
	n, q2 := g.occupations(t)
	var df float64
	for _, c := range g.quartic {
		m := c.modes
		switch {
		case m[0] == m[3]:
			df += c.value * q2[m[0]] * q2[m[0]] / 8
		case m[0] == m[1] && m[2] == m[3]:
			df += c.value * q2[m[0]] * q2[m[2]] / 4
		}
	}
	//tadpoles: the static shift of each mode in the mean field of the others
	force := make([]float64, len(g.freqs))
	for _, c := range g.cubic {
		m := c.modes
		if m[0] == m[1] {
			force[m[2]] += c.value * q2[m[0]] / 2
		}
	}
	for k, f := range force {
		df -= f * f / (2 * g.freqs[k])
	}
	//sunsets
	for _, c := range g.cubic {
		a, b, k := c.modes[0], c.modes[1], c.modes[2]
		wa, wb, wk := g.freqs[a], g.freqs[b], g.freqs[k]
		na, nb, nk := n[a], n[b], n[k]
		s := ((1+na)*(1+nb)*(1+nk) - na*nb*nk) / (wa + wb + wk)
		if d := wa + wb - wk; math.Abs(d) > 1e-8*wk {
			s += 3 * ((1+na)*(1+nb)*nk - na*nb*(1+nk)) / d
		}
		df -= c.value * c.value * s / 48
	}
	return df
}

//ZeroPoint returns the correction to the zero-point energy.
func (g *Graph) ZeroPoint() float64 { return g.zero }

//Factor returns the multiplicative correction to the partition function at t, relative
//to the corrected zero-point energy.
func (g *Graph) Factor(t float64) float64 {
	return math.Exp(-(g.FreeEnergy(t) - g.zero) / t)
}
