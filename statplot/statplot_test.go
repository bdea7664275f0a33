/*
 * statplot_test.go, part of gomess.
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

package statplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gomess"
)

type power struct {
	name string
	p    float64
}

func (m power) Name() string             { return m.name }
func (m power) States(e float64) float64 { return mess.PowerNumber(1, m.p, e) }
func (m power) Weight(t float64) float64 { return math.Pow(t, m.p) }

func TestPlots(Te *testing.T) {
	dir := Te.TempDir()
	models := []power{{"p1", 1}, {"p2", 2.5}}
	sc := []StateCounter{models[0], models[1]}
	w := []Weighter{models[0], models[1]}
	f := filepath.Join(dir, "states.png")
	require.NoError(Te, States(sc, 0, 20*mess.Kcal, 50, f))
	info, err := os.Stat(f)
	require.NoError(Te, err)
	assert.Greater(Te, info.Size(), int64(0))
	f = filepath.Join(dir, "weights.png")
	require.NoError(Te, Weights(w, 300*mess.Kelvin, 2000*mess.Kelvin, 30, f))
	_, err = os.Stat(f)
	require.NoError(Te, err)
	assert.Error(Te, Weights(w, 0, 2000*mess.Kelvin, 30, f))
	assert.Error(Te, States(nil, 0, 1, 10, f))
}

func TestColors(Te *testing.T) {
	r, g, b := iHVS2RGB(0, 1, 1)
	assert.Equal(Te, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r, g, b = iHVS2RGB(240, 1, 0)
	assert.Equal(Te, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})
}
