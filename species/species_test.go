/*
 * species_test.go, part of gomess.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gomess"
	"github.com/rmera/gomess/core"
	"github.com/rmera/gomess/tunnel"
)

func testSettings() *mess.Settings {
	set := mess.DefaultSettings()
	set.EnergyLimit(60000 * mess.Incm)
	set.EnergyStep(10 * mess.Incm)
	return set
}

//testRRHO is a non-linear rotor with two oscillators and a low-lying excited electronic state.
func testRRHO(Te *testing.T, name string, zero float64, tun mess.Tunnel) *RRHO {
	set := testSettings()
	c, err := core.NewPhaseSpaceTheory(50, 1.5, mess.Number)
	require.NoError(Te, err)
	p := &RRHOParts{
		ZeroEnergy:  zero,
		Core:        c,
		Tunnel:      tun,
		Frequencies: []float64{500 * mess.Incm, 1000 * mess.Incm},
		Levels:      []float64{0, 300 * mess.Incm},
		LevelDegs:   []int{2, 1},
	}
	r, err := NewRRHO(name, p, mess.Number, set)
	require.NoError(Te, err)
	return r
}

func laplace(s Species, t float64) float64 {
	g := s.Ground()
	return mess.Boltzmann(func(e float64) float64 { return s.States(e + g) }, t)
}

func TestRRHO(Te *testing.T) {
	zero := 10 * mess.Kcal
	r := testRRHO(Te, "rrho", zero, nil)
	assert.InDelta(Te, zero+750*mess.Incm, r.Ground(), 1e-12)
	assert.Equal(Te, r.Ground(), r.RealGround())
	assert.Equal(Te, 0.0, r.States(r.Ground()-mess.Incm))
	prev := 0.0
	for e := r.Ground(); e < r.Ground()+50*mess.Kcal; e += 37 * mess.Incm {
		n := r.States(e)
		if n < prev {
			Te.Errorf("number of states decreases at %g: %g < %g", e, n, prev)
		}
		prev = n
	}
	for _, t := range []float64{300 * mess.Kelvin, 1000 * mess.Kelvin} {
		expected := 50 * math.Pow(t, 1.5) * (2 + math.Exp(-300*mess.Incm/t))
		for _, f := range []float64{500 * mess.Incm, 1000 * mess.Incm} {
			expected /= 1 - math.Exp(-f/t)
		}
		assert.InEpsilon(Te, expected, r.Weight(t), 1e-12)
		assert.InEpsilon(Te, r.Weight(t), laplace(r, t), 1e-2)
	}
	r.ShiftGround(-zero)
	assert.InDelta(Te, 750*mess.Incm, r.Ground(), 1e-12)
	assert.Equal(Te, 0.0, r.States(700*mess.Incm))
	assert.Equal(Te, 0.0, r.InfraredIntensity(10*mess.Kcal, 0))
}

func TestRRHOTunnel(Te *testing.T) {
	set := testSettings()
	tun, err := tunnel.NewHarmonic(1000*mess.Incm, 5*mess.Kcal, set)
	require.NoError(Te, err)
	r := testRRHO(Te, "ts", 0, tun)
	plain := testRRHO(Te, "ts", 0, nil)
	assert.InDelta(Te, r.RealGround()-5*mess.Kcal, r.Ground(), 1e-12)
	assert.Equal(Te, plain.RealGround(), r.RealGround())
	//tunneling gives states below the top of the barrier
	assert.Greater(Te, r.States(r.RealGround()-0.5*mess.Kcal), 0.0)
	assert.Equal(Te, 0.0, plain.States(plain.RealGround()-0.5*mess.Kcal))
	for _, t := range []float64{500 * mess.Kelvin, 1000 * mess.Kelvin} {
		assert.InEpsilon(Te, plain.Weight(t)*tun.Weight(t), r.Weight(t), 1e-12)
		assert.InEpsilon(Te, r.Weight(t), laplace(r, t), 2e-2)
	}
}

func TestRRHOSmallFrequency(Te *testing.T) {
	set := testSettings()
	c, err := core.NewPhaseSpaceTheory(50, 1.5, mess.Number)
	require.NoError(Te, err)
	p := &RRHOParts{Core: c, Frequencies: []float64{4 * mess.Incm, 1000 * mess.Incm}}
	_, err = NewRRHO("soft", p, mess.Number, set)
	require.Error(Te, err)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))
	//without a states grid the frequency is only used in the weight
	c, err = core.NewPhaseSpaceTheory(50, 1.5, mess.NoStates)
	require.NoError(Te, err)
	p.Core = c
	r, err := NewRRHO("soft", p, mess.NoStates, set)
	require.NoError(Te, err)
	t := 300 * mess.Kelvin
	expected := 50 * math.Pow(t, 1.5) / (1 - math.Exp(-4*mess.Incm/t)) / (1 - math.Exp(-1000*mess.Incm/t))
	assert.InEpsilon(Te, expected, r.Weight(t), 1e-12)
}

func TestUnion(Te *testing.T) {
	a := testRRHO(Te, "a", 0, nil)
	b := testRRHO(Te, "b", 0, nil)
	single := testRRHO(Te, "c", 0, nil)
	u, err := NewUnion("u", []Species{a, b}, mess.Number)
	require.NoError(Te, err)
	assert.Equal(Te, single.Ground(), u.Ground())
	for _, e := range []float64{5 * mess.Kcal, 10 * mess.Kcal, 30 * mess.Kcal} {
		assert.InEpsilon(Te, 2*single.States(e), u.States(e), 1e-12)
	}
	assert.InEpsilon(Te, 2*single.Weight(500*mess.Kelvin), u.Weight(500*mess.Kelvin), 1e-12)

	b.ShiftGround(-1 * mess.Kcal)
	assert.InDelta(Te, single.Ground()-mess.Kcal, u.Ground(), 1e-12)
	t := 500 * mess.Kelvin
	assert.InEpsilon(Te, single.Weight(t)*(1+math.Exp(-mess.Kcal/t)), u.Weight(t), 1e-12)

	_, err = NewUnion("bad", []Species{a}, mess.Density)
	assert.Error(Te, err)
}

func TestVarBarrier(Te *testing.T) {
	set := testSettings()
	tight := testRRHO(Te, "tight", 1*mess.Kcal, nil)
	loose := testRRHO(Te, "loose", 0, nil)
	b, err := NewVarBarrier("vb", []Species{tight, loose}, nil, nil, Statistical, mess.Number, set)
	require.NoError(Te, err)
	assert.InDelta(Te, tight.Ground(), b.Ground(), 1e-12)
	for _, e := range []float64{3 * mess.Kcal, 20 * mess.Kcal} {
		assert.InEpsilon(Te, tight.States(e), b.States(e), 1e-6)
	}
	d, err := NewVarBarrier("vb", []Species{tight}, loose, nil, Dynamical, mess.Number, set)
	require.NoError(Te, err)
	e := 20 * mess.Kcal
	n, o := tight.States(e), loose.States(e)
	assert.InEpsilon(Te, n*o/(n+o), d.States(e), 1e-4)
	assert.Less(Te, d.Weight(1000*mess.Kelvin), b.Weight(1000*mess.Kelvin))
}

func TestAtomicArrhenius(Te *testing.T) {
	a, err := NewAtomic("O", "O", 0, []float64{0, 200 * mess.Incm}, []int{5, 3}, mess.Number)
	require.NoError(Te, err)
	assert.Equal(Te, 5.0, a.States(100*mess.Incm))
	assert.Equal(Te, 8.0, a.States(300*mess.Incm))
	assert.InDelta(Te, 16*mess.Amu, a.Mass(), 0.1*mess.Amu)
	_, err = NewAtomic("X", "Xx", 0, nil, nil, mess.Number)
	assert.Error(Te, err)
	_, err = NewAtomic("O", "O", 0, []float64{0, 200 * mess.Incm}, []int{5}, mess.Number)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))
	_, err = NewAtomic("O", "O", 0, []float64{0, 200 * mess.Incm}, []int{5, 0}, mess.Number)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))

	r := testRRHO(Te, "r", 0, nil)
	ea := 20 * mess.Kcal
	ts, err := NewArrhenius("ts", 1e13, 0.5, ea, r, mess.NoStates)
	require.NoError(Te, err)
	assert.InDelta(Te, r.Ground()+ea, ts.Ground(), 1e-12)
	t := 800 * mess.Kelvin
	k := t / (2 * math.Pi) * ts.Weight(t) / r.Weight(t)
	assert.InEpsilon(Te, 1e13/mess.Second*math.Pow(800, 0.5), k, 1e-10)
	assert.Panics(Te, func() { ts.States(ea) })
	_, err = NewArrhenius("ts", 1e13, 0.5, ea, r, mess.Number)
	assert.Error(Te, err)

	free, err := NewArrhenius("free", 3, 1.5, 0, nil, mess.Number)
	require.NoError(Te, err)
	assert.InEpsilon(Te, free.Weight(t), laplace(free, t), 1e-6)
}

func TestGraph(Te *testing.T) {
	w, f := 1000*mess.Incm, 100*mess.Incm
	zero, err := NewGraph([]float64{w}, nil, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, zero.Factor(300*mess.Kelvin))

	g, err := NewGraph([]float64{w}, []mess.ForceConstant{{Modes: []int{0, 0, 0}, Value: mess.Energy(f)}}, nil)
	require.NoError(Te, err)
	//zero-point: -f^2/(32 w) - f^2/(144 w)
	assert.InEpsilon(Te, -f*f/w*(1.0/32+1.0/144), g.ZeroPoint(), 1e-12)
	//classical limit: -5/24 f^2 T^2/w^3
	t := 1000 * w
	assert.InEpsilon(Te, -5.0/24*f*f*t*t/(w*w*w), g.FreeEnergy(t), 1e-2)

	q, err := NewGraph([]float64{w, 2 * w}, nil, []mess.ForceConstant{{Modes: []int{1, 0, 1, 0}, Value: mess.Energy(f)}})
	require.NoError(Te, err)
	assert.InEpsilon(Te, f/16, q.ZeroPoint(), 1e-12)

	_, err = NewGraph([]float64{w}, []mess.ForceConstant{{Modes: []int{0, 0, 1}, Value: 1}}, nil)
	assert.Error(Te, err)
	_, err = NewGraph([]float64{w, w}, []mess.ForceConstant{{Modes: []int{0, 0, 1}, Value: 1}, {Modes: []int{0, 1, 0}, Value: 1}}, nil)
	assert.Error(Te, err)
}
