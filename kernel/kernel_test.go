/*
 * kernel_test.go, part of gomess.
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

package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gomess"
)

func TestExponential(Te *testing.T) {
	set := mess.DefaultSettings()
	set.KernelFlags(mess.KernelUp | mess.KernelDensity)
	k, err := NewExponential([]float64{200 * mess.Incm}, []float64{0.85}, nil, 0, set)
	require.NoError(Te, err)
	t := 300 * mess.Kelvin
	assert.InDelta(Te, 1, k.Probability(0, t), 1e-14)
	assert.InEpsilon(Te, math.Exp(-1), k.Probability(200*mess.Incm, t), 1e-12)
	assert.InEpsilon(Te, 2000*mess.Incm, k.CutoffEnergy(t), 1e-12)
	//energy transfer grows with temperature
	assert.Greater(Te, k.CutoffEnergy(2*t), k.CutoffEnergy(t))
	assert.Equal(Te, mess.KernelUp|mess.KernelDensity, k.Flags())
	_, err = NewExponential([]float64{200 * mess.Incm, 100 * mess.Incm}, []float64{1, 1}, []float64{0.5, 0.6}, 0, set)
	assert.True(Te, mess.IsKind(err, mess.ConfigError))
	_, err = New(&mess.KernelConfig{Type: "gaussian"}, set)
	assert.Error(Te, err)
}

func TestLennardJones(Te *testing.T) {
	//N2 + Ar, roughly
	c, err := NewCollision(&mess.CollisionConfig{
		Epsilons: [2]mess.Energy{71.4 * mess.Kelvin, 114 * mess.Kelvin},
		Sigmas:   [2]mess.Length{3.8 * mess.Angstrom, 3.47 * mess.Angstrom},
		Masses:   [2]mess.Mass{28 * mess.Amu, 40 * mess.Amu},
	})
	require.NoError(Te, err)
	t := 300 * mess.Kelvin
	z := c.Frequency(t)
	//rate coefficients of this kind are a few 1e-10 cm^3/s
	cm3s := z / (mess.Centimeter * mess.Centimeter * mess.Centimeter) * mess.Second
	assert.Greater(Te, cm3s, 1e-10)
	assert.Less(Te, cm3s, 1e-9)
	assert.InDelta(Te, 1.5925, ReducedIntegral(1), 1e-3)
	assert.Greater(Te, ReducedIntegral(0.5), ReducedIntegral(5))
}
