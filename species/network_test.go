/*
 * network_test.go, part of gomess.
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
)

const networkInput = `
settings:
  energy_limit: 40 kcal/mol
  energy_step: 20 1/cm
species:
  - name: R
    core:
      type: phasespace
      weight_factor: 120
      weight_power: 1.5
    frequencies: [800 1/cm, 1200 1/cm, 3000 1/cm]
    zero_energy: -15 kcal/mol
    infrared_intensities: [10, 5, 1]
  - name: TS
    type: arrhenius
    factor: 1.0e13
    power: 0
    activation_energy: 25 kcal/mol
    reactant: R
  - name: H1
    type: atomic
    symbol: H
    electronic_levels:
      - {energy: 0, degeneracy: 2}
  - name: H2
    type: atomic
    symbol: H
    electronic_levels:
      - {energy: 0, degeneracy: 2}
network:
  reference: R
  wells:
    - species: R
      kernels:
        - factors: [200 1/cm]
          powers: [0.85]
      collision:
        epsilons: [100 K, 200 K]
        sigmas: [3.5 angstrom, 4 angstrom]
        masses: [50 amu, 40 amu]
      escape:
        type: constant
        rate: 1.0e5
  bimolecular:
    - name: P
      fragments: [H1, H2]
  barriers:
    - species: TS
      from: R
      to: P
`

func TestNetwork(Te *testing.T) {
	in, err := mess.ParseInput([]byte(networkInput))
	require.NoError(Te, err)
	n, err := Build(in, in.Settings.Settings(), nil)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"R", "H1", "H2", "TS"}, n.Names())

	r := n.Species("R")
	require.NotNil(Te, r)
	assert.InDelta(Te, 0, r.Ground(), 1e-12)
	ts := n.Species("TS")
	assert.InDelta(Te, 25*mess.Kcal, ts.Ground(), 1e-9)
	assert.Equal(Te, mess.NoStates, ts.Mode())
	//the atoms were shifted with everything else
	shift := 15*mess.Kcal - 2500*mess.Incm
	assert.InDelta(Te, shift, n.Species("H1").Ground(), 1e-9)
	p := n.Bimolecular("P")
	require.NotNil(Te, p)
	assert.InDelta(Te, shift, p.Ground(), 1e-9)
	t := 1000 * mess.Kelvin
	mu := mess.Amu * 1.00782503 / 2
	assert.InEpsilon(Te, 4*math.Pow(mu*t/(2*math.Pi), 1.5), p.Weight(t), 1e-6)

	w := n.Well("R")
	require.NotNil(Te, w)
	assert.InEpsilon(Te, 1e5/mess.Second, w.EscapeRate(10*mess.Kcal), 1e-12)
	assert.Greater(Te, w.TransferProbability(100*mess.Incm, t), w.TransferProbability(1000*mess.Incm, t))
	require.Len(Te, n.Barriers(), 1)
	assert.Equal(Te, "P", n.Barriers()[0].To)

	rr := r.(*RRHO)
	assert.Equal(Te, 3, rr.OscillatorSize())
	assert.Equal(Te, 0.0, rr.InfraredIntensity(rr.Ground()+700*mess.Incm, 0))
	assert.Greater(Te, rr.InfraredIntensity(rr.Ground()+10*mess.Kcal, 0), 0.0)
}

func TestNetworkErrors(Te *testing.T) {
	bad := []string{
		//unknown reactant
		"species:\n  - {name: TS, type: arrhenius, factor: 1, reactant: X}\n",
		//duplicated name
		"species:\n  - {name: A, type: atomic, symbol: H}\n  - {name: A, type: atomic, symbol: H}\n",
		//barrier out of nothing
		"species:\n  - {name: A, type: atomic, symbol: H}\nnetwork:\n  barriers:\n    - {species: A, from: B, to: C}\n",
	}
	for i, b := range bad {
		in, err := mess.ParseInput([]byte(b))
		require.NoError(Te, err, "input %d", i)
		_, err = Build(in, in.Settings.Settings(), nil)
		assert.Error(Te, err, "input %d", i)
		assert.True(Te, mess.IsKind(err, mess.ConfigError), "input %d", i)
	}
}
