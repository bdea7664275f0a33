/*
 * escape.go, part of gomess.
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
	"strings"

	"github.com/rmera/gomess"
)

//Escape is an irreversible loss channel out of a well.
type Escape interface {
	//Rate returns the escape rate, in atomic units, at the energy e above the well ground.
	Rate(e float64) float64
}

//ConstEscape has the same rate at every energy.
type ConstEscape float64

func (c ConstEscape) Rate(e float64) float64 { return float64(c) }

//FitEscape interpolates a table of rates.
type FitEscape struct {
	sp *mess.Spline
}

//NewFitEscape splines the rates, in atomic units, given at the energies above the well ground.
//Below the table the rate follows a power law to zero, above it, it stays constant.
func NewFitEscape(energies, rates []float64) (*FitEscape, error) {
	for i, r := range rates {
		if r < 0 {
			return nil, mess.NewConfigError("NewFitEscape", "negative rate at point %d", i)
		}
	}
	sp, err := mess.NewSpline(energies, rates)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewFitEscape")
	}
	sp.PowerBelow()
	return &FitEscape{sp: sp}, nil
}

func (f *FitEscape) Rate(e float64) float64 {
	if e <= 0 {
		return 0
	}
	if e > f.sp.Max() {
		e = f.sp.Max()
	}
	return math.Max(f.sp.Value(e), 0)
}

//NewEscape builds the escape channel described by c.
func NewEscape(c *mess.EscapeConfig) (Escape, error) {
	switch strings.ToLower(c.Type) {
	case "constant", "const", "":
		if c.Rate < 0 {
			return nil, mess.NewConfigError("NewEscape", "negative escape rate")
		}
		return ConstEscape(c.Rate / mess.Second), nil
	case "fit":
		u, err := mess.ParseEnergyUnit(c.EnergyUnit, "kcal/mol")
		if err != nil {
			return nil, mess.ErrDecorate(err, "NewEscape")
		}
		cols, err := mess.ReadTable(c.File, 2)
		if err != nil {
			return nil, mess.ErrDecorate(err, "NewEscape")
		}
		for i := range cols[0] {
			cols[0][i] *= u
			cols[1][i] /= mess.Second
		}
		f, err := NewFitEscape(cols[0], cols[1])
		if err != nil {
			return nil, mess.ErrDecorate(err, "NewEscape "+c.File)
		}
		return f, nil
	}
	return nil, mess.NewConfigError("NewEscape", "unknown escape type %q", c.Type)
}
