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

package tunnel

import (
	"math"

	"github.com/rmera/gomess"
)

//Read is a tunnel whose action is read from a table of energies, measured from the barrier top,
//and actions. The table is splined, and extrapolated linearly above its highest energy.
type Read struct {
	base
	action *mess.Spline
	emax   float64 //highest table energy, from the cutoff
}

//NewRead builds the tunnel from the table energies (relative to the barrier top, negative below it)
//and actions. If cutoff is not positive, the depth of the lowest table energy is used, and
//if freq is not positive it is obtained from the action slope at the barrier top.
func NewRead(energies, actions []float64, freq, cutoff float64, set *mess.Settings) (*Read, error) {
	if len(energies) < 3 {
		return nil, mess.NewConfigError("NewRead", "action table too small")
	}
	emin, emax := energies[0], energies[len(energies)-1]
	if emin > 0 || emax < 0 {
		return nil, mess.NewConfigError("NewRead", "action table must include the barrier top")
	}
	if cutoff <= 0 {
		cutoff = -emin
	}
	if cutoff > -emin {
		return nil, mess.NewConfigError("NewRead", "cutoff %g below the action table", cutoff)
	}
	x := make([]float64, len(energies))
	for i, e := range energies {
		x[i] = e + cutoff
	}
	sp, err := mess.NewSpline(x, actions)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewRead")
	}
	if freq <= 0 {
		slope := sp.Derivative(cutoff)
		if slope >= 0 {
			return nil, mess.NewConfigError("NewRead", "action not decreasing at the barrier top")
		}
		freq = -2 * math.Pi / slope
	}
	b, err := newBase(freq, cutoff, set)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewRead")
	}
	t := &Read{base: b, action: sp, emax: emax + cutoff}
	t.act = t.Action
	return t, nil
}

//Action returns the semiclassical action at e, measured from the cutoff, or its derivative.
func (t *Read) Action(e float64, der int) float64 {
	checkDer(der)
	if e > t.emax {
		slope := t.action.Derivative(t.emax)
		if der == 1 {
			return slope
		}
		return t.action.Value(t.emax) + slope*(e-t.emax)
	}
	if der == 1 {
		return t.action.Derivative(e)
	}
	return t.action.Value(e)
}
