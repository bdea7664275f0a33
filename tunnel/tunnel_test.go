/*
 * tunnel_test.go, part of gomess.
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

package tunnel

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

func testTunnels(Te *testing.T) []mess.Tunnel {
	set := mess.DefaultSettings()
	freq := 1000 * mess.Incm
	cutoff := 5000 * mess.Incm
	h, err := NewHarmonic(freq, cutoff, set)
	require.NoError(Te, err)
	e, err := NewEckart(freq, cutoff, []float64{10000 * mess.Incm, 20000 * mess.Incm}, set)
	require.NoError(Te, err)
	q, err := NewQuartic(freq, cutoff, []float64{10000 * mess.Incm, 20000 * mess.Incm}, 0, 0, set)
	require.NoError(Te, err)
	en := make([]float64, 21)
	act := make([]float64, len(en))
	for i := range en {
		en[i] = float64(i-10) * cutoff / 10
		act[i] = -2 * math.Pi * en[i] / freq
	}
	r, err := NewRead(en, act, 0, 0, set)
	require.NoError(Te, err)
	return []mess.Tunnel{h, e, q, r}
}

func TestFactorAtTop(Te *testing.T) {
	for i, t := range testTunnels(Te) {
		assert.Equal(Te, 0.5, t.Factor(t.Cutoff()), "tunnel %d", i)
		assert.Equal(Te, 0.0, t.Factor(-1e-3), "tunnel %d", i)
		//transmission grows with energy
		assert.Less(Te, t.Factor(0.5*t.Cutoff()), t.Factor(t.Cutoff()))
		assert.Greater(Te, t.Density(t.Cutoff()), 0.0)
	}
}

func TestHarmonicAction(Te *testing.T) {
	freq := 1000 * mess.Incm
	cutoff := 10000 * mess.Incm
	h, err := NewHarmonic(freq, cutoff, mess.DefaultSettings())
	require.NoError(Te, err)
	for _, e := range []float64{0, 0.3 * cutoff, cutoff, 1.5 * cutoff} {
		assert.Equal(Te, 2*math.Pi*(cutoff-e)/freq, h.Action(e, 0))
	}
	//Wigner-like closed form for the parabolic barrier: (u/2)/sin(u/2), u = freq/T
	t := 600 * mess.Kelvin
	u := freq / t
	exact := (u / 2) / math.Sin(u/2)
	got := h.Weight(t) * math.Exp(cutoff/t)
	fmt.Println("harmonic tunneling correction", got, exact)
	assert.InEpsilon(Te, exact, got, 1e-3)
}

func TestEckartLimit(Te *testing.T) {
	//very deep wells make the Eckart barrier parabolic near the top
	set := mess.DefaultSettings()
	freq := 1000 * mess.Incm
	cutoff := 1000 * mess.Incm
	e, err := NewEckart(freq, cutoff, []float64{1e7 * mess.Incm, 1e7 * mess.Incm}, set)
	require.NoError(Te, err)
	h, _ := NewHarmonic(freq, cutoff, set)
	assert.InEpsilon(Te, h.Action(0, 0), e.Action(0, 0), 1e-3)
	assert.InEpsilon(Te, h.Action(0, 1), e.Action(0, 1), 1e-3)
	q, err := NewQuartic(freq, cutoff, []float64{1e7 * mess.Incm, 1e7 * mess.Incm}, 0, 0, set)
	require.NoError(Te, err)
	assert.InEpsilon(Te, h.Action(0, 0), q.Action(0, 0), 1e-3)
}

func TestWeightVsDensity(Te *testing.T) {
	for i, t := range testTunnels(Te) {
		temp := 800 * mess.Kelvin
		//the weight is also the Laplace transform of the density, plus the jump at the cutoff
		lap := mess.BoltzmannDensity(t.Density, temp) + t.Factor(0)
		assert.InEpsilon(Te, t.Weight(temp), lap, 1e-3, "tunnel %d", i)
	}
}

func TestConvolute(Te *testing.T) {
	set := mess.DefaultSettings()
	h, _ := NewHarmonic(1000*mess.Incm, 5000*mess.Incm, set)
	step := 10 * mess.Incm
	nos := make([]float64, 1500)
	for i := range nos {
		nos[i] = 1 //a single state at the cutoff
	}
	h.Convolute(nos, step)
	//the result is the transmission probability itself
	for _, i := range []int{10, 500, 1000} {
		assert.InDelta(Te, h.Factor((float64(i)+0.5)*step), nos[i], 1e-12)
	}
}

func TestConfig(Te *testing.T) {
	set := mess.DefaultSettings()
	_, err := New(&mess.TunnelConfig{Type: "harmonic", Frequency: 1000 * mess.Incm}, set)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))
	_, err = New(&mess.TunnelConfig{Type: "parabolic"}, set)
	assert.Error(Te, err)
	_, err = New(&mess.TunnelConfig{Type: "eckart", Frequency: 1000 * mess.Incm, Cutoff: 5000 * mess.Incm,
		WellDepths: []mess.Energy{4000 * mess.Incm, 8000 * mess.Incm}}, set)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))
	dir := Te.TempDir()
	name := filepath.Join(dir, "action.dat")
	data := "# energy action\n-10 23.0\n-5 11.5\n0 0\n5 -11.5\n"
	require.NoError(Te, os.WriteFile(name, []byte(data), 0644))
	t, err := New(&mess.TunnelConfig{Type: "read", File: name}, set)
	require.NoError(Te, err)
	assert.InDelta(Te, 10*mess.Kcal, t.Cutoff(), 1e-12)
	assert.Equal(Te, 0.5, t.Factor(t.Cutoff()))
}
