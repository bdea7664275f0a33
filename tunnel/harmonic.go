/*
 * harmonic.go, part of gomess.
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

//Harmonic is the tunnel through a parabolic barrier.
type Harmonic struct {
	base
}

//NewHarmonic returns the parabolic barrier tunnel with imaginary frequency freq and cutoff cutoff.
func NewHarmonic(freq, cutoff float64, set *mess.Settings) (*Harmonic, error) {
	b, err := newBase(freq, cutoff, set)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewHarmonic")
	}
	h := &Harmonic{base: b}
	h.act = h.Action
	return h, nil
}

//Action returns 2 pi (cutoff - e)/freq, or its energy derivative.
func (h *Harmonic) Action(e float64, der int) float64 {
	checkDer(der)
	if der == 1 {
		return -2 * math.Pi / h.freq
	}
	return 2 * math.Pi * (h.cutoff - e) / h.freq
}
