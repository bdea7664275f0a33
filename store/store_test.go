/*
 * store_test.go, part of gomess.
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

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gomess"
)

func TestStoreRoundTrip(Te *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(Te.TempDir(), "grids.db"))
	require.NoError(Te, err)
	defer s.Close()

	g := &Grid{Name: "ts1", Mode: mess.Number, Energies: []float64{0, 0.1, 0.2}, Values: []float64{1, 3.5, 12}}
	require.NoError(Te, s.Save(ctx, g))
	g2 := &Grid{Name: "ts1", Mode: mess.Density, Energies: []float64{0, 0.5}, Values: []float64{2, 4}}
	require.NoError(Te, s.Save(ctx, g2))
	require.NoError(Te, s.Save(ctx, &Grid{Name: "a", Mode: mess.Number, Energies: []float64{1}, Values: []float64{1}}))

	r, ok, err := s.Load(ctx, "ts1")
	require.NoError(Te, err)
	require.True(Te, ok)
	assert.Equal(Te, g2, r)

	_, ok, err = s.Load(ctx, "missing")
	require.NoError(Te, err)
	assert.False(Te, ok)

	names, err := s.List(ctx)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"a", "ts1"}, names)

	assert.Error(Te, s.Save(ctx, &Grid{Name: "bad", Energies: []float64{1}}))
	require.NoError(Te, s.Close())
	_, _, err = s.Load(ctx, "ts1")
	assert.Error(Te, err)
}
