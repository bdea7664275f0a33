/*
 * read.go, part of gomess.
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
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/rmera/gomess"
	"github.com/rmera/gomess/core"
	"github.com/rmera/gomess/store"
)

//Read is a species with tabulated states, read from a file or from a grid store.
type Read struct {
	base
	ground float64
	rotd   *core.Rotd
}

//ReadOptions control the cleaning of a table before it is splined.
//EnergyTolerance drops points closer than it to the previous one. DensityTolerance
//drops points whose density is below that fraction of the largest one.
type ReadOptions struct {
	EnergyTolerance  float64
	DensityTolerance float64
}

//NewRead builds the species from the energies, relative to ground, and the values, which
//are densities of states or, if number is true, numbers of states.
func NewRead(name string, ground float64, energies, values []float64, number bool, o ReadOptions, mode mess.Mode) (*Read, error) {
	if len(energies) != len(values) {
		return nil, mess.NewConfigError("NewRead", "%s: %d energies and %d values", name, len(energies), len(values))
	}
	e, v := energies, values
	if number {
		e, v = numberToDensity(energies, values)
	}
	e, v = cleanTable(e, v, o)
	if len(e) < 3 {
		return nil, mess.NewConfigError("NewRead", "%s: fewer than 3 usable points in the table", name)
	}
	r, err := core.NewRotd(e, v, mode)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewRead "+name)
	}
	return &Read{base: newBase(name, mode, 0, nil), ground: ground, rotd: r}, nil
}

//ReadFile reads a two-column table of energy, relative to ground, and density of states,
//with energies in unit (kcal/mol if empty) and densities per that unit.
func ReadFile(name, file, unit string, ground float64, o ReadOptions, mode mess.Mode) (*Read, error) {
	u, err := mess.ParseEnergyUnit(unit, "kcal/mol")
	if err != nil {
		return nil, mess.ErrDecorate(err, "ReadFile")
	}
	cols, err := mess.ReadTable(file, 2)
	if err != nil {
		return nil, mess.ErrDecorate(err, "ReadFile "+name)
	}
	floats.Scale(u, cols[0])
	floats.Scale(1/u, cols[1])
	return NewRead(name, ground, cols[0], cols[1], false, o, mode)
}

//ReadStore loads the grid table from db. The first grid energy is the ground,
//and shift is added to it.
func ReadStore(ctx context.Context, name string, db *store.Store, table string, shift float64, o ReadOptions, mode mess.Mode) (*Read, error) {
	g, ok, err := db.Load(ctx, table)
	if err != nil {
		return nil, mess.ErrDecorate(err, "ReadStore "+name)
	}
	if !ok {
		return nil, mess.NewConfigError("ReadStore", "%s: no grid %q in the store", name, table)
	}
	if len(g.Energies) == 0 || g.Mode == mess.NoStates {
		return nil, mess.NewConfigError("ReadStore", "%s: grid %q has no states", name, table)
	}
	e0 := g.Energies[0]
	rel := make([]float64, len(g.Energies))
	for i, e := range g.Energies {
		rel[i] = e - e0
	}
	return NewRead(name, e0+shift, rel, g.Values, g.Mode == mess.Number, o, mode)
}

//numberToDensity differentiates a number of states table with centered differences.
func numberToDensity(e, n []float64) ([]float64, []float64) {
	if len(e) < 3 {
		return e, n
	}
	re := make([]float64, 0, len(e))
	rd := make([]float64, 0, len(e))
	for i := 1; i < len(e)-1; i++ {
		re = append(re, e[i])
		rd = append(rd, (n[i+1]-n[i-1])/(e[i+1]-e[i-1]))
	}
	return re, rd
}

//cleanTable drops non-positive energies and densities, and the points the tolerances rule out.
func cleanTable(e, d []float64, o ReadOptions) ([]float64, []float64) {
	dmax := 0.0
	if len(d) > 0 {
		dmax = floats.Max(d)
	}
	var re, rd []float64
	for i := range e {
		if e[i] <= 0 || d[i] <= 0 || d[i] < o.DensityTolerance*dmax {
			continue
		}
		if len(re) > 0 && e[i]-re[len(re)-1] <= o.EnergyTolerance {
			continue
		}
		re = append(re, e[i])
		rd = append(rd, d[i])
	}
	return re, rd
}

func (r *Read) Ground() float64        { return r.ground }
func (r *Read) RealGround() float64    { return r.ground }
func (r *Read) ShiftGround(de float64) { r.ground += de }

func (r *Read) States(e float64) float64 {
	if e <= r.ground {
		if r.mode == mess.NoStates {
			panic(mess.ErrNoStates)
		}
		return 0
	}
	return r.rotd.States(e - r.ground)
}

func (r *Read) Weight(t float64) float64 { return r.rotd.Weight(t) }
