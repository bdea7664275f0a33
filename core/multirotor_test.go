/*
 * multirotor_test.go, part of gomess.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gomess"
	"github.com/rmera/gomess/rotor"
)

//ethane returns a staggered ethane, with the C-C bond along z.
func ethane(Te *testing.T) *mess.Geometry {
	symbols := []string{"C", "C", "H", "H", "H", "H", "H", "H"}
	coords := []float64{0, 0, 0.765, 0, 0, -0.765}
	for i, z := range []float64{1.165, -1.165} {
		for k := 0; k < 3; k++ {
			a := float64(2*k+i) * math.Pi / 3
			coords = append(coords, 1.02*math.Cos(a), 1.02*math.Sin(a), z)
		}
	}
	for i := range coords {
		coords[i] *= mess.Angstrom
	}
	g, err := mess.NewGeometry(symbols, coords)
	require.NoError(Te, err)
	return g
}

func TestMultiRotorOneTorsion(Te *testing.T) {
	set := mess.DefaultSettings()
	g := ethane(Te)
	ir, err := mess.NewInternalRotation(g, []int{5, 6, 7}, [2]int{0, 1}, 3)
	require.NoError(Te, err)
	v0 := 1000 * mess.Incm
	pot := func(phi float64) float64 { return v0 / 2 * (1 - math.Cos(3*phi)) }
	var samples []Sample
	hsamples := make([]float64, 12)
	for i := range hsamples {
		phi := float64(i) * 10 * math.Pi / 180
		samples = append(samples, Sample{Angles: []float64{phi}, Energy: pot(phi) + 0.1})
		hsamples[i] = pot(phi)
	}
	m, err := NewMultiRotor(g, []Rotation{{InternalRotation: ir}}, samples, nil, mess.Number, set)
	require.NoError(Te, err)
	assert.Equal(Te, 1, m.InternalSize())
	assert.Equal(Te, 3, m.Symmetry(0))
	assert.InDelta(Te, 0.1, m.PotentialMinimum(), 1e-10)
	for _, phi := range []float64{0, 0.3, 1.1} {
		assert.InDelta(Te, pot(phi), m.Potential([]float64{phi}, nil), 1e-10)
	}
	assert.InDelta(Te, 4.5*v0, m.ForceConstantMatrix([]float64{0}).At(0, 0), 1e-9)

	//a single symmetric top rotation is a hindered rotor with constant inertia
	inertia, err := ir.ReducedInertia(g)
	require.NoError(Te, err)
	mass, err := m.Mass([]float64{0.4})
	require.NoError(Te, err)
	assert.InEpsilon(Te, inertia, mass.At(0, 0), 1e-6)
	h, err := rotor.NewHinderedSampled(1/(2*inertia), 3, hsamples, 0, nil)
	require.NoError(Te, err)
	require.NoError(Te, h.Set(1500*mess.Incm))
	levels := m.Levels()
	assert.InDelta(Te, h.Ground(), m.Ground(), 1e-6)
	for i := 1; i < 5 && i < h.LevelSize(); i++ {
		assert.InDelta(Te, h.EnergyLevel(i), levels[i]-m.Ground(), 1e-6)
	}
	t := 200 * mess.Kelvin
	assert.InEpsilon(Te, h.QuantumWeight(t), m.QuantumWeight(t), 1e-3)

	assert.Equal(Te, 0.0, m.States(m.Ground()-mess.Incm))
	e := 50 * mess.Kcal
	assert.InEpsilon(Te, m.ClassicalStates(e), m.States(e), 1e-2)
	cl, pi, err := m.SemiclassicalWeight(t)
	require.NoError(Te, err)
	assert.Less(Te, pi, cl)
}

//ethaneRotor is the ethane torsion with a 1000 cm-1 barrier.
func ethaneRotor(Te *testing.T, external bool, mode mess.Mode) *MultiRotor {
	set := mess.DefaultSettings()
	g := ethane(Te)
	ir, err := mess.NewInternalRotation(g, []int{5, 6, 7}, [2]int{0, 1}, 3)
	require.NoError(Te, err)
	v0 := 1000 * mess.Incm
	var samples []Sample
	for i := 0; i < 12; i++ {
		phi := float64(i) * 10 * math.Pi / 180
		samples = append(samples, Sample{Angles: []float64{phi}, Energy: v0 / 2 * (1 - math.Cos(3*phi))})
	}
	o := DefaultMultiRotorOptions(set)
	o.ExternalRotation(external)
	m, err := NewMultiRotor(g, []Rotation{{InternalRotation: ir}}, samples, o, mode, set)
	require.NoError(Te, err)
	return m
}

func TestMultiRotorMonotone(Te *testing.T) {
	for _, ext := range []bool{false, true} {
		m := ethaneRotor(Te, ext, mess.Number)
		nonDecreasing(Te, fmt.Sprintf("multirotor, external rotation %t", ext), m.States, m.Ground(), m.Ground()+8*mess.Kcal, 0.5*mess.Incm)
		nonDecreasing(Te, "multirotor, high energy", m.States, 8*mess.Kcal, 150*mess.Kcal, 50*mess.Incm)
	}
}

func TestMultiRotorDensity(Te *testing.T) {
	n := ethaneRotor(Te, false, mess.Number)
	d := ethaneRotor(Te, false, mess.Density)
	g := n.Ground()
	assert.Equal(Te, 0.0, d.States(g-mess.Incm))
	de := 1 * mess.Incm
	for _, e := range []float64{7 * mess.Kcal, 30 * mess.Kcal, 80 * mess.Kcal} {
		numeric := (n.States(e+de) - n.States(e-de)) / (2 * de)
		assert.InEpsilon(Te, numeric, d.States(e), 1e-2)
	}
	//the number of states jumps at the ground, the rest is the transform of the density
	for _, t := range []float64{300 * mess.Kelvin, 1000 * mess.Kelvin} {
		laplace := n.States(g) + mess.BoltzmannDensity(func(e float64) float64 { return d.States(e + g) }, t)
		assert.InEpsilon(Te, n.Weight(t), laplace, 1e-2)
		assert.InEpsilon(Te, n.Weight(t), d.Weight(t), 1e-12)
	}
}

func TestMultiRotorExternal(Te *testing.T) {
	in := ethaneRotor(Te, false, mess.Number)
	ex := ethaneRotor(Te, true, mess.Number)
	g := ethane(Te)
	mom, err := g.PrincipalMoments()
	require.NoError(Te, err)
	erf := math.Sqrt(mom[0] * mom[1] * mom[2])
	assert.Equal(Te, 0.0, in.ExternalRotationFactor([]float64{0.2}))
	//the torsion of a symmetric top doesn't change its moments of inertia
	for _, phi := range []float64{0, 0.3, 0.9} {
		assert.InEpsilon(Te, erf, ex.ExternalRotationFactor([]float64{phi}), 1e-5)
	}
	require.Equal(Te, len(in.Levels()), len(ex.Levels()))
	require.Equal(Te, len(ex.Levels()), len(ex.meanErf))
	for i, l := range ex.Levels() {
		assert.InDelta(Te, in.Levels()[i], l, 1e-9)
		assert.InEpsilon(Te, erf, ex.meanErf[i], 1e-5)
	}
	for _, t := range []float64{200 * mess.Kelvin, 600 * mess.Kelvin} {
		rot := math.Sqrt(8*math.Pi) * erf * math.Pow(t, 1.5)
		assert.InEpsilon(Te, rot*in.QuantumWeight(t), ex.QuantumWeight(t), 1e-5)
	}
	e := in.Ground() + 2*mess.Kcal
	assert.Greater(Te, ex.States(e), in.States(e))
}

//propane returns propane, with the carbons in the xy plane and staggered methyl groups.
//The atoms are C1, C2, C3, the two hydrogens of C2, and the hydrogens of C1 and C3.
func propane(Te *testing.T) *mess.Geometry {
	s56, c56 := math.Sin(56*math.Pi/180), math.Cos(56*math.Pi/180)
	c1 := [3]float64{-1.53 * s56, -1.53 * c56, 0}
	c3 := [3]float64{1.53 * s56, -1.53 * c56, 0}
	s545, c545 := math.Sin(54.5*math.Pi/180), math.Cos(54.5*math.Pi/180)
	coords := append([]float64{}, c1[:]...)
	coords = append(coords, 0, 0, 0)
	coords = append(coords, c3[:]...)
	coords = append(coords, 0, 1.09*c545, 1.09*s545, 0, 1.09*c545, -1.09*s545)
	ct, st := math.Cos(70.5*math.Pi/180), math.Sin(70.5*math.Pi/180)
	for _, c := range [][3]float64{c1, c3} {
		u := [3]float64{c[0] / 1.53, c[1] / 1.53, 0}
		q := [3]float64{u[1], -u[0], 0} //u x z
		for k := 0; k < 3; k++ {
			a := float64(2*k+1) * math.Pi / 3
			for j := 0; j < 3; j++ {
				p := 0.0
				if j == 2 {
					p = 1
				}
				coords = append(coords, c[j]+1.09*(u[j]*ct+st*(p*math.Cos(a)+q[j]*math.Sin(a))))
			}
		}
	}
	for i := range coords {
		coords[i] *= mess.Angstrom
	}
	g, err := mess.NewGeometry([]string{"C", "C", "C", "H", "H", "H", "H", "H", "H", "H", "H"}, coords)
	require.NoError(Te, err)
	return g
}

func TestMultiRotorCoupled(Te *testing.T) {
	set := mess.DefaultSettings()
	g := propane(Te)
	require.NoError(Te, g.CheckInteratomicDistances(1.5))
	ir1, err := mess.NewInternalRotation(g, []int{5, 6, 7}, [2]int{1, 0}, 3)
	require.NoError(Te, err)
	ir2, err := mess.NewInternalRotation(g, []int{8, 9, 10}, [2]int{1, 2}, 3)
	require.NoError(Te, err)
	v0 := 1000 * mess.Incm
	pot := func(phi []float64) float64 {
		return v0/2*(2-math.Cos(3*phi[0])-math.Cos(3*phi[1])) + 0.05*v0*(1-math.Cos(3*phi[0]))*(1-math.Cos(3*phi[1]))
	}
	var samples []Sample
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			phi := []float64{float64(i) * 10 * math.Pi / 180, float64(j) * 10 * math.Pi / 180}
			samples = append(samples, Sample{Angles: phi, Energy: pot(phi)})
		}
	}
	o := DefaultMultiRotorOptions(set)
	o.LevelEnergyMax(2 * mess.Kcal)
	o.AmomMax(12)
	rots := []Rotation{{InternalRotation: ir1, HamSizeMin: 8, HamSizeMax: 12}, {InternalRotation: ir2, HamSizeMin: 8, HamSizeMax: 12}}
	m, err := NewMultiRotor(g, rots, samples, o, mess.Number, set)
	require.NoError(Te, err)
	assert.Equal(Te, 2, m.InternalSize())
	for _, phi := range [][]float64{{0, 0}, {0.3, 1.1}, {0.7, 0.2}} {
		assert.InDelta(Te, pot(phi), m.Potential(phi, nil), 1e-8)
	}

	//the kinetic coupling of the two methyl groups goes through the overall rotation
	mass, err := m.Mass([]float64{0, 0})
	require.NoError(Te, err)
	assert.Greater(Te, math.Abs(mass.At(0, 1)), 1e-6*mass.At(0, 0))
	assert.Less(Te, math.Abs(mass.At(0, 1)), math.Sqrt(mass.At(0, 0)*mass.At(1, 1)))
	for j, ir := range []*mess.InternalRotation{ir1, ir2} {
		inertia, err := ir.ReducedInertia(g)
		require.NoError(Te, err)
		assert.InEpsilon(Te, inertia, mass.At(j, j), 1e-4)
	}
	full, _, err := mess.InternalMassMatrix(g, []*mess.InternalRotation{ir1, ir2})
	require.NoError(Te, err)
	assert.InEpsilon(Te, full.At(0, 1), mass.At(0, 1), 5e-3)

	require.Greater(Te, len(m.Levels()), 2)
	assert.Greater(Te, m.Ground(), 0.0)
	nonDecreasing(Te, "coupled multirotor", m.States, m.Ground(), m.Ground()+4*mess.Kcal, 2*mess.Incm)
	e := 50 * mess.Kcal
	assert.InEpsilon(Te, m.ClassicalStates(e), m.States(e), 1e-2)
	t := 300 * mess.Kelvin
	cl, pi, err := m.SemiclassicalWeight(t)
	require.NoError(Te, err)
	assert.Less(Te, pi, cl)
	assert.InEpsilon(Te, m.Weight(t), pi, 0.15)
}

func TestMultiRotorErrors(Te *testing.T) {
	set := mess.DefaultSettings()
	g := ethane(Te)
	ir, err := mess.NewInternalRotation(g, []int{5, 6, 7}, [2]int{0, 1}, 3)
	require.NoError(Te, err)
	samples := []Sample{{Angles: []float64{0}}, {Angles: []float64{0.5}}, {Angles: []float64{0.7}}}
	_, err = NewMultiRotor(g, []Rotation{{InternalRotation: ir, GridSize: 12}}, samples, nil, mess.Number, set)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))
	_, err = NewMultiRotor(g, nil, samples, nil, mess.Number, set)
	assert.Error(Te, err)
}
