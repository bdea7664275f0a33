/*
 * eckart.go, part of gomess.
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

//Eckart is the tunnel through an asymmetric Eckart barrier, in the WKB approximation.
type Eckart struct {
	base
	depth  [2]float64 //barrier height as seen from each side
	factor float64
}

//NewEckart returns the Eckart barrier tunnel. depths are the barrier heights from both sides,
//and the cutoff can not be larger than any of them.
func NewEckart(freq, cutoff float64, depths []float64, set *mess.Settings) (*Eckart, error) {
	b, err := newBase(freq, cutoff, set)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewEckart")
	}
	if len(depths) != 2 {
		return nil, mess.NewConfigError("NewEckart", "two well depths needed, got %d", len(depths))
	}
	t := &Eckart{base: b}
	for i, d := range depths {
		if d <= 0 {
			return nil, mess.NewConfigError("NewEckart", "well depths must be positive")
		}
		if cutoff > d {
			return nil, mess.NewConfigError("NewEckart", "cutoff %g above well depth %g", cutoff, d)
		}
		t.depth[i] = d
	}
	t.factor = 4 * math.Pi / freq / (1/math.Sqrt(t.depth[0]) + 1/math.Sqrt(t.depth[1]))
	t.act = t.Action
	return t, nil
}

//Action returns the semiclassical action at e, measured from the cutoff, or its derivative.
func (t *Eckart) Action(e float64, der int) float64 {
	checkDer(der)
	e -= t.cutoff //now relative to the barrier top
	if der == 1 {
		return -t.factor / 2 * (1/math.Sqrt(t.depth[0]+e) + 1/math.Sqrt(t.depth[1]+e))
	}
	var s float64
	for _, d := range t.depth {
		s -= e / (math.Sqrt(d) + math.Sqrt(d+e)) //sqrt(d)-sqrt(d+e)
	}
	return t.factor * s
}
