/*
 * main_test.go, part of gomess.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `
settings:
  energy_limit: 30 kcal/mol
  energy_step: 20 1/cm
species:
  - name: A
    mode: number
    core:
      type: phasespace
      weight_factor: 40
      weight_power: 1.5
    frequencies: [700 1/cm, 1500 1/cm]
  - name: B
    type: atomic
    symbol: Ar
network:
  reference: A
`

func run(Te *testing.T, args ...string) string {
	name := filepath.Join(Te.TempDir(), "input.yaml")
	require.NoError(Te, os.WriteFile(name, []byte(input), 0o644))
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(append(args, name), "--quiet"))
	require.NoError(Te, cmd.Execute())
	return out.String()
}

func TestCommands(Te *testing.T) {
	cmd := newRootCommand()
	for _, c := range []string{"states", "weights", "plot", "network"} {
		sub, _, err := cmd.Find([]string{c})
		require.NoError(Te, err)
		assert.Equal(Te, c, sub.Name())
	}
	require.NotNil(Te, cmd.PersistentFlags().Lookup("db"))
}

func TestStatesWeights(Te *testing.T) {
	out := run(Te, "states", "--points", "5", "--emax", "20")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(Te, lines, 6)
	assert.Equal(Te, "E(kcal/mol)\tA(number)\tB(density)", lines[0])

	out = run(Te, "weights", "--points", "3")
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(Te, lines, 4)
	assert.True(Te, strings.HasPrefix(lines[1], "300.0\t"))

	out = run(Te, "network")
	assert.Contains(Te, out, "A\t0.000\tnumber")
}

func TestPlotAndStore(Te *testing.T) {
	dir := Te.TempDir()
	png := filepath.Join(dir, "w.png")
	run(Te, "plot", "--kind", "weights", "-o", png, "--db", filepath.Join(dir, "grids.db"))
	_, err := os.Stat(png)
	assert.NoError(Te, err)
	_, err = os.Stat(filepath.Join(dir, "grids.db"))
	assert.NoError(Te, err)
}
