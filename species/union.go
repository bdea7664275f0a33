/*
 * union.go, part of gomess.
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

	"github.com/rmera/gomess"
)

//Union is a set of alternative species, such as conformers, that are counted
//together as one.
type Union struct {
	base
	members []Species
}

//NewUnion joins the members, which must all have the given mode.
func NewUnion(name string, members []Species, mode mess.Mode) (*Union, error) {
	if len(members) == 0 {
		return nil, mess.NewConfigError("NewUnion", "%s: no members", name)
	}
	for _, m := range members {
		if m.Mode() != mode {
			return nil, mess.NewConfigError("NewUnion", "%s: member %s is in %s mode, not %s", name, m.Name(), m.Mode(), mode)
		}
	}
	return &Union{base: newBase(name, mode, members[0].Mass(), nil), members: members}, nil
}

//Members returns the species in the union.
func (u *Union) Members() []Species { return u.members }

//Ground returns the lowest ground among the members.
func (u *Union) Ground() float64 {
	g := math.Inf(1)
	for _, m := range u.members {
		g = math.Min(g, m.Ground())
	}
	return g
}

func (u *Union) RealGround() float64 {
	g := math.Inf(1)
	for _, m := range u.members {
		g = math.Min(g, m.RealGround())
	}
	return g
}

func (u *Union) ShiftGround(de float64) {
	for _, m := range u.members {
		m.ShiftGround(de)
	}
}

func (u *Union) States(e float64) float64 {
	if u.mode == mess.NoStates {
		panic(mess.ErrNoStates)
	}
	var s float64
	for _, m := range u.members {
		s += m.States(e)
	}
	return s
}

func (u *Union) Weight(t float64) float64 {
	g := u.Ground()
	var w float64
	for _, m := range u.members {
		w += m.Weight(t) * math.Exp(-(m.Ground()-g)/t)
	}
	return w
}
