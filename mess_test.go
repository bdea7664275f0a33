/*
 * mess_test.go, part of gomess.
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

package mess

import (
	"bytes"
	"compress/gzip"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectCount(Te *testing.T) {
	nos := make([]float64, 20)
	for i := range nos {
		nos[i] = 1
	}
	BeyerSwinehart(nos, 1, 3, 1)
	for i, v := range nos {
		if v != float64(i/3+1) {
			Te.Errorf("oscillator count at %d: %g, expected %d", i, v, i/3+1)
		}
	}
	lev := []float64{1, 1, 1, 1, 1, 1}
	ConvoluteLevels(lev, 0.5, []float64{0, 1.5}, []int{1, 2})
	assert.Equal(Te, []float64{1, 1, 1, 3, 3, 3}, lev)
	assert.Panics(Te, func() { BeyerSwinehart(nos, 1, 0.2, 1) })
}

func TestBoltzmann(Te *testing.T) {
	for _, t := range []float64{0.001, 0.01} {
		q := Boltzmann(func(e float64) float64 { return PowerNumber(2, 1.5, e) }, t)
		assert.InEpsilon(Te, 2*math.Pow(t, 1.5), q, 1e-5)
		q = BoltzmannDensity(func(e float64) float64 { return PowerDensity(2, 1.5, e) }, t)
		assert.InEpsilon(Te, 2*math.Pow(t, 1.5), q, 1e-3)
	}
	assert.Panics(Te, func() { Boltzmann(math.Sqrt, 0) })
}

func TestSpline(Te *testing.T) {
	x := Grid(1, 10, 10)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = v * v
	}
	s, err := NewSpline(x, y)
	require.NoError(Te, err)
	assert.InDelta(Te, 400, s.Value(20), 1e-9)
	assert.InDelta(Te, 2, s.Exponent(), 1e-12)
	require.True(Te, s.PowerBelow())
	assert.InDelta(Te, 0.25, s.Value(0.5), 1e-12)
	assert.Equal(Te, 0.0, s.Value(-1))
	assert.InDelta(Te, 30.25, s.Value(5.5), 0.1)

	ss, err := NewStatesSpline(1, 0.1, []float64{0, 2, 1, 3})
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, ss.Number(0.5))
	assert.InDelta(Te, 2, ss.Number(1.2), 1e-12)
	assert.Equal(Te, 0.0, ss.States(0.9, Density))
	assert.Panics(Te, func() { ss.States(1.2, NoStates) })
	ss.ShiftGround(1)
	assert.InDelta(Te, 2, ss.Number(2.2), 1e-12)
	_, err = NewStatesSpline(0, 1, []float64{0, 1})
	assert.Error(Te, err)
}

func TestParseInput(Te *testing.T) {
	in, err := ParseInput([]byte("settings:\n  energy_step: 10 1/cm\n  energy_limit: 30 kcal/mol\nspecies:\n  - name: A\n    zero_energy: 300 K\n"))
	require.NoError(Te, err)
	set := in.Settings.Settings()
	assert.InDelta(Te, 10*Incm, set.EnergyStep(), 1e-15)
	assert.InDelta(Te, 30*Kcal, set.EnergyLimit(), 1e-15)
	assert.InDelta(Te, 300*Kelvin, in.Species[0].ZeroEnergy.Float(), 1e-15)

	for _, bad := range []string{"settigns:\n  cpus: 1\n", "species:\n  - zero_energy: 3 furlongs\n"} {
		_, err = ParseInput([]byte(bad))
		assert.True(Te, IsKind(err, ConfigError), bad)
	}
	m, err := ParseMode("number")
	require.NoError(Te, err)
	assert.Equal(Te, Number, m)
	_, err = ParseMode("numbers")
	assert.Error(Te, err)
	assert.Panics(Te, func() { MustMode(Mode(7)) })
}

func TestReadTable(Te *testing.T) {
	dir := Te.TempDir()
	text := []byte("# energy density\n1 2\n\n3 4 5\n")
	var zb, gb bytes.Buffer
	zw, err := zstd.NewWriter(&zb)
	require.NoError(Te, err)
	_, err = zw.Write(text)
	require.NoError(Te, err)
	require.NoError(Te, zw.Close())
	gw := gzip.NewWriter(&gb)
	_, err = gw.Write(text)
	require.NoError(Te, err)
	require.NoError(Te, gw.Close())
	files := map[string][]byte{"t.dat": text, "t.dat.zst": zb.Bytes(), "t.dat.gz": gb.Bytes()}
	for name, data := range files {
		p := filepath.Join(dir, name)
		require.NoError(Te, os.WriteFile(p, data, 0o644))
		cols, err := ReadTable(p, 2)
		require.NoError(Te, err, name)
		assert.Equal(Te, [][]float64{{1, 3}, {2, 4}}, cols, name)
	}
	_, err = ReadTable(filepath.Join(dir, "t.dat"), 3)
	assert.True(Te, IsKind(err, ConfigError))
	_, err = ReadTable(filepath.Join(dir, "missing"), 1)
	assert.Error(Te, err)
}

func TestErrors(Te *testing.T) {
	err := NewComputeError("inner", "no convergence after %d steps", 10)
	err = ErrDecorate(err, "outer")
	var e *Error
	require.ErrorAs(Te, err, &e)
	assert.Equal(Te, []string{"inner", "outer"}, e.Decorate(""))
	assert.True(Te, e.Critical())
	assert.True(Te, IsKind(err, ComputeError))
	assert.Contains(Te, err.Error(), "inner <- outer")
	assert.Nil(Te, ErrDecorate(nil, "x"))
	assert.True(Te, IsKind(ErrDecorate(os.ErrNotExist, "x"), ConfigError))
}

func TestGeometry(Te *testing.T) {
	g, err := NewGeometry([]string{"H", "H"}, []float64{0, 0, 0, 0, 0, 1.4})
	require.NoError(Te, err)
	m, _ := AtomicMass("H")
	assert.InDelta(Te, 2*m, g.Mass(), 1e-9)
	w, p, err := g.RotationalFactor(2)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, p)
	assert.InEpsilon(Te, m/2*1.4*1.4, w, 1e-8)
	assert.Error(Te, g.CheckInteratomicDistances(1.6))
	assert.NoError(Te, g.CheckInteratomicDistances(1.0))
	_, err = NewGeometry([]string{"Qq"}, []float64{0, 0, 0})
	assert.Error(Te, err)
	_, err = NewGeometry([]string{"H"}, []float64{0, 0})
	assert.Error(Te, err)
}

func TestInternalRotation(Te *testing.T) {
	g, err := NewGeometry([]string{"O", "O", "H", "H"}, []float64{0, 0, 0, 0, 0, 2.7, 1.8, 0, -0.5, 0, 1.8, 3.2})
	require.NoError(Te, err)
	ir, err := NewInternalRotation(g, []int{3}, [2]int{0, 1}, 1)
	require.NoError(Te, err)
	r, err := ir.Rotate(g, math.Pi/2)
	require.NoError(Te, err)
	assert.InDelta(Te, 1.8, math.Abs(r.Coords.At(3, 0)), 1e-10)
	assert.InDelta(Te, 0, r.Coords.At(3, 1), 1e-10)
	assert.InDelta(Te, 3.2, r.Coords.At(3, 2), 1e-10)
	assert.Equal(Te, g.Coords.At(2, 0), r.Coords.At(2, 0))
	small, err := NewGeometry([]string{"O", "O"}, []float64{0, 0, 0, 0, 0, 2.7})
	require.NoError(Te, err)
	_, err = ir.Rotate(small, 1)
	assert.True(Te, IsKind(err, ConfigError))

	h2, err := NewGeometry([]string{"H", "H"}, []float64{0, 0, 0, 0, 0, 1.4})
	require.NoError(Te, err)
	m, _ := AtomicMass("H")
	mom, err := h2.PrincipalMoments()
	require.NoError(Te, err)
	require.Len(Te, mom, 3)
	assert.InDelta(Te, 0, mom[0], 1e-9)
	assert.InEpsilon(Te, m/2*1.4*1.4, mom[1], 1e-8)
	assert.InEpsilon(Te, mom[1], mom[2], 1e-12)
}
