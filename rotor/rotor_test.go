/*
 * rotor_test.go, part of gomess.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gomess"
)

func TestFree(Te *testing.T) {
	r, err := NewFree(1*mess.Incm, 3, 0)
	require.NoError(Te, err)
	assert.Panics(Te, func() { r.Ground() })
	require.NoError(Te, r.Set(100*mess.Incm))
	assert.Panics(Te, func() { r.Set(100 * mess.Incm) })
	//levels 0, 9, 36 and 81 cm-1
	require.Equal(Te, 4, r.LevelSize())
	assert.Equal(Te, 1, r.Degeneracy(0))
	assert.Equal(Te, 2, r.Degeneracy(3))
	assert.InEpsilon(Te, 81*mess.Incm, r.EnergyLevel(3), 1e-12)
	t := 300 * mess.Kelvin
	assert.InEpsilon(Te, r.ClassicalWeight(t), r.Weight(t), 1e-6)
}

func TestHinderedFreeLimit(Te *testing.T) {
	b := 1 * mess.Incm
	h, err := NewHindered(b, 1, []float64{1e-6 * b}, nil, nil)
	require.NoError(Te, err)
	require.NoError(Te, h.Set(30*b))
	//m = 0, +-1 ... +-5
	require.Equal(Te, 11, h.LevelSize())
	assert.InDelta(Te, 25*b, h.EnergyLevel(10), 1e-4*b)
	f, err := NewFree(b, 1, 0)
	require.NoError(Te, err)
	require.NoError(Te, f.Set(30*b))
	t := 300 * mess.Kelvin
	assert.InEpsilon(Te, f.Weight(t), h.QuantumWeight(t), 1e-4)
	cl, _, err := h.SemiclassicalWeight(t)
	require.NoError(Te, err)
	assert.InEpsilon(Te, f.ClassicalWeight(t), cl, 1e-3)
}

func TestHinderedHarmonicLimit(Te *testing.T) {
	b := 1 * mess.Incm
	v0 := 10000 * mess.Incm
	h, err := NewHindered(b, 1, []float64{-v0 / 2}, nil, nil)
	require.NoError(Te, err)
	assert.InDelta(Te, 0, h.Potential(0, 0), 1e-12)
	assert.InEpsilon(Te, v0/2, h.Potential(0, 2), 1e-9)
	require.NoError(Te, h.Set(500*mess.Incm))
	omega := math.Sqrt(v0 * b)
	assert.InEpsilon(Te, omega, h.EnergyLevel(1), 0.03)
	assert.InEpsilon(Te, omega/2, h.Ground(), 0.03)
}

func TestHinderedNotConverged(Te *testing.T) {
	o := DefaultOptions()
	o.HamSizeMin(2)
	o.HamSizeMax(3)
	h, err := NewHindered(1*mess.Incm, 1, []float64{-5000 * mess.Incm}, nil, o)
	require.NoError(Te, err)
	err = h.Set(500 * mess.Incm)
	require.Error(Te, err)
	assert.True(Te, mess.IsKind(err, mess.ComputeError))
}

func TestHinderedColdWeight(Te *testing.T) {
	h, err := NewHindered(5*mess.Incm, 3, []float64{-500 * mess.Incm}, nil, nil)
	require.NoError(Te, err)
	require.NoError(Te, h.Set(20000*mess.Incm))
	t := 300 * mess.Kelvin
	assert.InEpsilon(Te, h.QuantumWeight(t), h.Weight(t), 0.1)
	//the path integral correction does not exist over the barrier tops
	t = 30 * mess.Kelvin
	cl, _, err := h.SemiclassicalWeight(t)
	assert.Error(Te, err)
	assert.Greater(Te, cl, 0.0)
	w := h.Weight(t)
	assert.Greater(Te, w, 0.0)
	assert.InEpsilon(Te, h.QuantumWeight(t), w, 1e-12)
}

func TestHinderedSampled(Te *testing.T) {
	n := 12
	samples := make([]float64, n)
	for i := range samples {
		psi := 2 * math.Pi * float64(i) / float64(n)
		samples[i] = 2*math.Cos(psi) + 0.3*math.Sin(2*psi)
	}
	h, err := NewHinderedSampled(1, 2, samples, 0, nil)
	require.NoError(Te, err)
	assert.InDelta(Te, 2, h.cos[0], 1e-12)
	assert.InDelta(Te, 0.3, h.sin[1], 1e-12)
	assert.InDelta(Te, 0, h.cos[1], 1e-12)
}

func TestUmbrellaHarmonic(Te *testing.T) {
	mass := 1 * mess.Amu
	omega := 1000 * mess.Incm
	x := make([]float64, 10)
	en := make([]float64, len(x))
	xt := math.Sqrt(2 * 3000 * mess.Incm / (mass * omega * omega))
	for i := range x {
		x[i] = xt * float64(i) / float64(len(x)-1)
		en[i] = 0.5*mass*omega*omega*x[i]*x[i] + 0.01
	}
	o := DefaultOptions()
	o.PolySize(1)
	u, err := NewUmbrella(mass, x, en, o)
	require.NoError(Te, err)
	require.NoError(Te, u.Set(3000*mess.Incm))
	assert.InEpsilon(Te, omega/2, u.Ground(), 1e-3)
	assert.InEpsilon(Te, omega, u.EnergyLevel(1), 1e-3)
	assert.InEpsilon(Te, 2*omega, u.EnergyLevel(2), 1e-3)
	t := 300 * mess.Kelvin
	exact := 1 / (1 - math.Exp(-omega/t))
	assert.InEpsilon(Te, exact, u.QuantumWeight(t), 1e-3)
	_, pi, err := u.SemiclassicalWeight(t)
	require.NoError(Te, err)
	assert.InEpsilon(Te, exact, pi, 1e-3)
}

func TestUmbrellaDoubleWell(Te *testing.T) {
	mass := 1 * mess.Amu
	v0 := 500 * mess.Incm
	x0 := 0.5
	x := make([]float64, 12)
	en := make([]float64, len(x))
	for i := range x {
		x[i] = 1.5 * x0 * float64(i) / float64(len(x)-1)
		d := 1 - x[i]*x[i]/(x0*x0)
		en[i] = v0 * d * d
	}
	o := DefaultOptions()
	o.PolySize(2)
	u, err := NewUmbrella(mass, x, en, o)
	require.NoError(Te, err)
	assert.Less(Te, u.Potential(0, 2), 0.0)
	require.NoError(Te, u.Set(3000*mess.Incm))
	t := 100 * mess.Kelvin
	cl, _, err := u.SemiclassicalWeight(t)
	assert.Error(Te, err)
	assert.Greater(Te, cl, 0.0)
	w := u.Weight(t)
	assert.Greater(Te, w, 0.0)
	assert.InEpsilon(Te, u.QuantumWeight(t), w, 1e-12)
}

func TestNew(Te *testing.T) {
	set := mess.DefaultSettings()
	c := &mess.RotorConfig{Type: "free", RotationalConstant: mess.Energy(2 * mess.Incm), Symmetry: 2}
	r, err := New(c, nil, set)
	require.NoError(Te, err)
	_, ok := r.(*Free)
	assert.True(Te, ok)
	c = &mess.RotorConfig{Type: "hindered", RotationalConstant: mess.Energy(2 * mess.Incm)}
	_, err = New(c, nil, set)
	assert.Error(Te, err)
	_, err = New(&mess.RotorConfig{Type: "spinning"}, nil, set)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))
}
