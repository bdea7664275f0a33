/*
 * core_test.go, part of gomess.
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
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gomess"
)

func TestPhaseSpaceTheory(Te *testing.T) {
	p, err := NewPhaseSpaceTheory(2, 1.5, mess.Number)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, p.States(-1))
	for _, t := range []float64{100 * mess.Kelvin, 300 * mess.Kelvin, 1000 * mess.Kelvin} {
		assert.InEpsilon(Te, p.Weight(t), mess.Boltzmann(p.States, t), 1e-8)
	}
	_, err = NewPhaseSpaceTheory(-1, 1, mess.Number)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))
	assert.Panics(Te, func() { NewPhaseSpaceTheory(1, 1, mess.Mode(7)) })
}

func TestBareRigidRotorIsPST(Te *testing.T) {
	set := mess.DefaultSettings()
	w, p := 1234.5, 1.5
	r, err := NewRigidRotor(w, p, nil, nil, nil, mess.Number, set)
	require.NoError(Te, err)
	pst, err := NewPhaseSpaceTheory(w, p, mess.Number)
	require.NoError(Te, err)
	for _, e := range []float64{-1 * mess.Kcal, 0.1 * mess.Kcal, 3 * mess.Kcal, 70 * mess.Kcal} {
		assert.Equal(Te, pst.States(e), r.States(e))
	}
	t := 500 * mess.Kelvin
	assert.InEpsilon(Te, pst.Weight(t), r.Weight(t), 1e-12)
}

func harmonicRotor(Te *testing.T, anharmonic bool, mode mess.Mode) *RigidRotor {
	set := mess.DefaultSettings()
	vib := &Vibrations{
		Frequencies:  []float64{1000 * mess.Incm, 1500 * mess.Incm},
		Degeneracies: []int{1, 2},
	}
	if anharmonic {
		vib.Anharmonicities = [][]float64{{0}, {0, 0}}
	}
	r, err := NewRigidRotor(100, 1.5, vib, []float64{0, 500 * mess.Incm}, []int{2, 1}, mode, set)
	require.NoError(Te, err)
	return r
}

func TestRigidRotor(Te *testing.T) {
	r := harmonicRotor(Te, false, mess.Number)
	assert.InEpsilon(Te, 2000*mess.Incm, r.Ground(), 1e-12)
	assert.Equal(Te, 0.0, r.States(r.Ground()-mess.Incm))
	prev := 0.0
	for e := r.Ground(); e < r.Ground()+50*mess.Kcal; e += 37 * mess.Incm {
		n := r.States(e)
		assert.GreaterOrEqual(Te, n, prev)
		prev = n
	}
	for _, t := range []float64{300 * mess.Kelvin, 1000 * mess.Kelvin, 2000 * mess.Kelvin} {
		laplace := mess.Boltzmann(func(e float64) float64 { return r.States(e + r.Ground()) }, t)
		assert.InEpsilon(Te, r.Weight(t), laplace, 5e-3)
	}
}

func TestRigidRotorEnumeration(Te *testing.T) {
	h := harmonicRotor(Te, false, mess.Number)
	a := harmonicRotor(Te, true, mess.Number)
	assert.InEpsilon(Te, h.Ground(), a.Ground(), 1e-12)
	for _, e := range []float64{1 * mess.Kcal, 10 * mess.Kcal, 40 * mess.Kcal} {
		assert.InEpsilon(Te, h.States(h.Ground()+e), a.States(a.Ground()+e), 1e-9)
	}
	t := 1000 * mess.Kelvin
	assert.InEpsilon(Te, h.Weight(t), a.Weight(t), 5e-3)
}

func TestRotd(Te *testing.T) {
	c := 3.0
	table := []byte("# energy density\n")
	for i := 1; i <= 50; i++ {
		e := float64(i)
		table = append(table, fmt.Sprintf("%g %g\n", e, c*e*e)...)
	}
	name := filepath.Join(Te.TempDir(), "rotd.dat")
	require.NoError(Te, os.WriteFile(name, table, 0o644))
	r, err := ReadRotd(name, "kcal/mol", mess.Density)
	require.NoError(Te, err)
	//density per hartree
	cau := c / (mess.Kcal * mess.Kcal * mess.Kcal)
	e := 10.5 * mess.Kcal
	assert.InEpsilon(Te, cau*e*e, r.States(e), 1e-3)
	t := 1000 * mess.Kelvin
	assert.InEpsilon(Te, 2*cau*t*t*t, r.Weight(t), 1e-2)
	assert.Equal(Te, 0.0, r.States(-1))
}

//nonDecreasing checks a number of states on a fine grid from e0 to e1.
func nonDecreasing(Te *testing.T, name string, number func(float64) float64, e0, e1, de float64) {
	Te.Helper()
	prev := number(e0)
	drops := 0
	for e := e0 + de; e <= e1; e += de {
		n := number(e)
		if n < prev*(1-1e-12) {
			if drops == 0 {
				Te.Errorf("%s: number of states decreases at %g: %g < %g", name, e, n, prev)
			}
			drops++
		}
		prev = n
	}
	if drops > 0 {
		Te.Errorf("%s: %d decreases", name, drops)
	}
}

func TestNumberMonotone(Te *testing.T) {
	p, err := NewPhaseSpaceTheory(2, 1.5, mess.Number)
	require.NoError(Te, err)
	nonDecreasing(Te, "pst", p.States, 0, 30*mess.Kcal, 3*mess.Incm)
	r := harmonicRotor(Te, true, mess.Number)
	nonDecreasing(Te, "rigid", r.States, r.Ground(), r.Ground()+30*mess.Kcal, 3*mess.Incm)
	en := make([]float64, 40)
	dens := make([]float64, len(en))
	for i := range en {
		en[i] = float64(i+1) * mess.Kcal
		dens[i] = 2 * math.Pow(en[i], 1.5) * (1 + 0.1*math.Sin(float64(i)))
	}
	rd, err := NewRotd(en, dens, mess.Number)
	require.NoError(Te, err)
	nonDecreasing(Te, "rotd", rd.States, 0, 45*mess.Kcal, 3*mess.Incm)
	for _, t := range []float64{1000 * mess.Kelvin, 3000 * mess.Kelvin} {
		assert.InEpsilon(Te, rd.Weight(t), mess.Boltzmann(rd.States, t), 1e-2)
	}
}

func TestFourierRoundTrip(Te *testing.T) {
	size := []int{2, 3}
	f := NewFourier(size)
	f.SetCoefficient([]int{0, 0}, 1.5)
	f.SetCoefficient([]int{1, 0}, complex(0.3, -0.2))
	f.SetCoefficient([]int{2, -3}, complex(-0.05, 0.7))
	f.SetCoefficient([]int{0, 2}, complex(0.11, 0))
	f.SetCoefficient([]int{-1, 1}, complex(0, 0.4))
	dims := []int{7, 9}
	grid, err := f.Grid(dims)
	require.NoError(Te, err)
	idx := NewMultiIndex(dims)
	v := make([]int, 2)
	for i, x := range grid {
		idx.Vector(i, v)
		psi := []float64{2 * math.Pi * float64(v[0]) / 7, 2 * math.Pi * float64(v[1]) / 9}
		assert.InDelta(Te, f.Value(psi), x, 1e-12)
	}
	g, err := FourierFromGrid(grid, dims, size)
	require.NoError(Te, err)
	k := make([]int, 2)
	for k[0] = -2; k[0] <= 2; k[0]++ {
		for k[1] = -3; k[1] <= 3; k[1]++ {
			a, b := f.Coefficient(k), g.Coefficient(k)
			assert.InDelta(Te, real(a), real(b), 1e-12)
			assert.InDelta(Te, imag(a), imag(b), 1e-12)
		}
	}
	assert.Equal(Te, complex128(0), g.Coefficient([]int{3, 0}))
	_, err = FourierFromGrid(grid, []int{7, 9}, []int{4, 3})
	assert.Error(Te, err)
}

func TestMultiIndex(Te *testing.T) {
	idx := NewMultiIndex([]int{3, 4, 5})
	assert.Equal(Te, 60, idx.Len())
	for i := 0; i < idx.Len(); i++ {
		assert.Equal(Te, i, idx.Index(idx.Vector(i, nil)))
	}
}
