/*
 * rotd.go, part of gomess.
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

package core

import (
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/rmera/gomess"
)

//Rotd is a core given by a tabulated density of states of the transitional modes,
//as obtained from variable reaction coordinate transition state theory. Energies
//are relative to the ground, which is zero.
type Rotd struct {
	density *mess.Spline
	number  *mess.Spline
	mode    mess.Mode
}

//NewRotd builds the core from the density of states density, tabulated at the energies
//energies (positive and increasing). The density is extrapolated with power laws
//fitted to both ends of the table.
func NewRotd(energies, density []float64, mode mess.Mode) (*Rotd, error) {
	mess.MustMode(mode)
	if len(energies) > 0 && energies[0] <= 0 {
		return nil, mess.NewConfigError("NewRotd", "table energies must be positive, the first one is %g", energies[0])
	}
	for i, d := range density {
		if d <= 0 {
			return nil, mess.NewConfigError("NewRotd", "non-positive density of states at point %d", i)
		}
	}
	ds, err := mess.NewSpline(energies, density)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewRotd")
	}
	ds.PowerBelow()
	num := make([]float64, len(energies))
	num[0] = quad.Fixed(ds.Value, 0, energies[0], 16, quad.Legendre{}, 0)
	for i := 1; i < len(energies); i++ {
		num[i] = num[i-1] + quad.Fixed(ds.Value, energies[i-1], energies[i], 16, quad.Legendre{}, 0)
	}
	ns, err := mess.NewSpline(energies, num)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewRotd")
	}
	ns.PowerBelow()
	return &Rotd{density: ds, number: ns, mode: mode}, nil
}

//ReadRotd reads a two-column table of energy and density of states. The energies are
//in the unit unit (kcal/mol if empty), the densities are per that unit.
func ReadRotd(name, unit string, mode mess.Mode) (*Rotd, error) {
	u, err := mess.ParseEnergyUnit(unit, "kcal/mol")
	if err != nil {
		return nil, mess.ErrDecorate(err, "ReadRotd")
	}
	cols, err := mess.ReadTable(name, 2)
	if err != nil {
		return nil, mess.ErrDecorate(err, "ReadRotd")
	}
	for i := range cols[0] {
		cols[0][i] *= u
		cols[1][i] /= u
	}
	r, err := NewRotd(cols[0], cols[1], mode)
	return r, mess.ErrDecorate(err, "ReadRotd "+name)
}

func (r *Rotd) Ground() float64 { return 0 }

func (r *Rotd) Mode() mess.Mode { return r.mode }

func (r *Rotd) num(e float64) float64 {
	if e <= 0 {
		return 0
	}
	return r.number.Value(e)
}

func (r *Rotd) dens(e float64) float64 {
	if e <= 0 {
		return 0
	}
	return r.density.Value(e)
}

func (r *Rotd) States(e float64) float64 {
	return statesFromNumber(r.mode, e, r.num, r.dens)
}

func (r *Rotd) Weight(t float64) float64 {
	return mess.BoltzmannDensity(r.dens, t)
}
