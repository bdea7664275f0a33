/*
 * pst.go, part of gomess.
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
	"math"

	"github.com/rmera/gomess"
)

//PhaseSpaceTheory is the transition state of a barrierless association in the
//phase space theory. Its partition function is W T^p, so its number of states is
//W E^p/Gamma(p+1). The ground energy is zero.
type PhaseSpaceTheory struct {
	factor float64
	power  float64
	mode   mess.Mode
}

//NewPhaseSpaceTheory returns a phase space theory core with weight factor*T^power.
func NewPhaseSpaceTheory(factor, power float64, mode mess.Mode) (*PhaseSpaceTheory, error) {
	mess.MustMode(mode)
	if factor <= 0 || power < 0 {
		return nil, mess.NewConfigError("NewPhaseSpaceTheory", "wrong factor %g or power %g", factor, power)
	}
	return &PhaseSpaceTheory{factor: factor, power: power, mode: mode}, nil
}

//NewFragmentsPST builds the phase space theory transition state of the association of two
//fragments interacting through the potential -c/R^n, with symmetry number sym.
//The orbital motion contributes (E/A)^(1-2/n) states, where A is the height factor of the
//centrifugal barrier, and the fragment rotations contribute their classical factors.
func NewFragmentsPST(frag [2]*mess.Geometry, c, n, sym float64, mode mess.Mode) (*PhaseSpaceTheory, error) {
	if c <= 0 || n <= 2 {
		return nil, mess.NewConfigError("NewFragmentsPST", "the potential -C/R^n needs C > 0 and n > 2, got C=%g n=%g", c, n)
	}
	if sym <= 0 {
		sym = 1
	}
	factor, power := 1.0, 0.0
	for _, g := range frag {
		w, p, err := g.RotationalFactor(1)
		if err != nil {
			return nil, mess.ErrDecorate(err, "NewFragmentsPST")
		}
		factor *= w
		power += p
	}
	m1, m2 := frag[0].Mass(), frag[1].Mass()
	mu := m1 * m2 / (m1 + m2)
	a := (n - 2) / 2 * math.Pow(1/(2*mu), n/(n-2)) * math.Pow(n*c, -2/(n-2))
	q := 1 - 2/n
	factor *= math.Pow(a, -q) * math.Gamma(q+1) / sym
	power += q
	return NewPhaseSpaceTheory(factor, power, mode)
}

func (p *PhaseSpaceTheory) Ground() float64 { return 0 }

func (p *PhaseSpaceTheory) Mode() mess.Mode { return p.mode }

//Weight returns factor*T^power.
func (p *PhaseSpaceTheory) Weight(t float64) float64 {
	return p.factor * math.Pow(t, p.power)
}

func (p *PhaseSpaceTheory) States(e float64) float64 {
	return statesFromNumber(p.mode, e,
		func(e float64) float64 { return powerNumber(p.factor, p.power, e) },
		func(e float64) float64 { return mess.PowerDensity(p.factor, p.power, e) })
}

//Factor returns the weight prefactor and Power the exponent.
func (p *PhaseSpaceTheory) Factor() float64 { return p.factor }
func (p *PhaseSpaceTheory) Power() float64  { return p.power }
