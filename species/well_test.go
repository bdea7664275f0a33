/*
 * well_test.go, part of gomess.
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
	"github.com/rmera/gomess/kernel"
)

func testKernels(Te *testing.T) ([]kernel.Kernel, kernel.Collision) {
	k, err := kernel.NewExponential([]float64{200 * mess.Incm}, []float64{0.85}, nil, 0, testSettings())
	require.NoError(Te, err)
	c, err := kernel.NewLennardJones([2]float64{71.4 * mess.Kelvin, 114 * mess.Kelvin},
		[2]float64{3.8 * mess.Angstrom, 3.47 * mess.Angstrom}, [2]float64{28 * mess.Amu, 40 * mess.Amu})
	require.NoError(Te, err)
	return []kernel.Kernel{k}, c
}

func TestWellErrors(Te *testing.T) {
	ks, col := testKernels(Te)
	r := testRRHO(Te, "r", 0, nil)
	_, err := NewWell(nil, ks, col, nil)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))
	_, err = NewWell(r, ks, nil, nil)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))
	_, err = NewWell(r, nil, col, nil)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))
	w, err := NewWell(r, ks, col, ConstEscape(1e-9))
	require.NoError(Te, err)
	assert.Equal(Te, 1e-9, w.EscapeRate(r.Ground()+mess.Kcal))
}

func TestWellRadiation(Te *testing.T) {
	set := testSettings()
	c, err := core.NewPhaseSpaceTheory(50, 1.5, mess.Number)
	require.NoError(Te, err)
	freqs := []float64{500 * mess.Incm, 1000 * mess.Incm}
	p := &RRHOParts{Core: c, Frequencies: freqs, Infrared: []float64{1e-15, 3e-15}}
	r, err := NewRRHO("r", p, mess.Number, set)
	require.NoError(Te, err)
	ks, col := testKernels(Te)
	w, err := NewWell(r, ks, col, nil)
	require.NoError(Te, err)
	require.Equal(Te, 2, w.OscillatorSize())
	assert.Equal(Te, freqs[1], w.OscillatorFrequency(1))
	t := 300 * mess.Kelvin
	e := r.Ground() + 20*mess.Kcal
	for i, f := range freqs {
		ir := r.InfraredIntensity(e, i)
		assert.Greater(Te, ir, 0.0)
		assert.InEpsilon(Te, ir/(1-math.Exp(-f/t)), w.TransitionProbability(e, t, i), 1e-12)
	}
	//the first excited state of the oscillator is not reachable yet
	assert.Equal(Te, 0.0, w.TransitionProbability(r.Ground()+400*mess.Incm, t, 0))

	a, err := NewAtomic("O", "O", 0, nil, nil, mess.Number)
	require.NoError(Te, err)
	wa, err := NewWell(a, ks, col, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, wa.OscillatorSize())
	assert.Equal(Te, 0.0, wa.TransitionProbability(mess.Kcal, t, 0))
	assert.Panics(Te, func() { wa.OscillatorFrequency(0) })
}
