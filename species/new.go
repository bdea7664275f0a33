/*
 * new.go, part of gomess.
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
	"strings"

	"github.com/rmera/gomess"
	"github.com/rmera/gomess/core"
	"github.com/rmera/gomess/rotor"
	"github.com/rmera/gomess/store"
	"github.com/rmera/gomess/tunnel"
)

//New builds the species described by c. db is only used by read species that take
//their table from a grid store, and can be nil. Arrhenius species with a reactant
//need the network, and are built by Build.
func New(c *mess.SpeciesConfig, set *mess.Settings, db *store.Store) (Species, error) {
	mode, err := mess.ParseMode(c.Mode)
	if err != nil {
		return nil, mess.ErrDecorate(err, "species.New "+c.Name)
	}
	return newWithMode(c, mode, set, db)
}

func newWithMode(c *mess.SpeciesConfig, mode mess.Mode, set *mess.Settings, db *store.Store) (Species, error) {
	var s Species
	var err error
	switch strings.ToLower(c.Type) {
	case "rrho", "":
		s, err = newRRHO(c, mode, set)
	case "union":
		s, err = newUnion(c, mode, set, db)
	case "barrier", "varbarrier":
		s, err = newVarBarrier(c, mode, set, db)
	case "atomic":
		s, err = newAtomic(c, mode)
	case "arrhenius":
		s, err = newArrhenius(c, nil, mode)
	case "read":
		s, err = newRead(c, mode, db)
	default:
		err = mess.NewConfigError("species.New", "unknown species type %q", c.Type)
	}
	if err != nil {
		return nil, mess.ErrDecorate(err, "species.New "+c.Name)
	}
	return s, nil
}

func newRRHO(c *mess.SpeciesConfig, mode mess.Mode, set *mess.Settings) (*RRHO, error) {
	var g *mess.Geometry
	var err error
	if c.Geometry != nil {
		if g, err = c.Geometry.Geometry(set); err != nil {
			return nil, mess.ErrDecorate(err, "newRRHO")
		}
	}
	cc := c.Core
	if cc == nil {
		cc = &mess.CoreConfig{Type: "rigid"}
	}
	cmode := mess.Number
	if mode == mess.NoStates {
		cmode = mess.NoStates
	}
	p := &RRHOParts{
		ZeroEnergy:   c.ZeroEnergy.Float(),
		Frequencies:  mess.Energies(c.Frequencies),
		Degeneracies: c.Degeneracies,
		Infrared:     infrared(c.InfraredIntensities),
		Geometry:     g,
		Mass:         c.Mass.Float(),
	}
	if p.Core, err = core.New(cc, cmode, g, set); err != nil {
		return nil, mess.ErrDecorate(err, "newRRHO")
	}
	for i := range c.Rotors {
		r, err := rotor.New(&c.Rotors[i], g, set)
		if err != nil {
			return nil, mess.ErrDecorate(err, "newRRHO")
		}
		p.Rotors = append(p.Rotors, r)
	}
	if c.Tunnel != nil {
		if p.Tunnel, err = tunnel.New(c.Tunnel, set); err != nil {
			return nil, mess.ErrDecorate(err, "newRRHO")
		}
	}
	if p.Levels, p.LevelDegs, err = mess.Levels(c.ElectronicLevels); err != nil {
		return nil, mess.ErrDecorate(err, "newRRHO")
	}
	if c.Graph != nil {
		for _, d := range c.Degeneracies {
			if d != 1 {
				return nil, mess.NewConfigError("newRRHO", "the anharmonic expansion needs non-degenerate frequencies")
			}
		}
		if p.Graph, err = NewGraph(p.Frequencies, c.Graph.Cubic, c.Graph.Quartic); err != nil {
			return nil, mess.ErrDecorate(err, "newRRHO")
		}
	}
	return NewRRHO(c.Name, p, mode, set)
}

//members builds the species in cs, in the given mode.
func members(cs []mess.SpeciesConfig, mode mess.Mode, set *mess.Settings, db *store.Store) ([]Species, error) {
	r := make([]Species, 0, len(cs))
	for i := range cs {
		s, err := newWithMode(&cs[i], mode, set, db)
		if err != nil {
			return nil, err
		}
		r = append(r, s)
	}
	return r, nil
}

func newUnion(c *mess.SpeciesConfig, mode mess.Mode, set *mess.Settings, db *store.Store) (*Union, error) {
	m, err := members(c.Members, mode, set, db)
	if err != nil {
		return nil, mess.ErrDecorate(err, "newUnion")
	}
	return NewUnion(c.Name, m, mode)
}

func newVarBarrier(c *mess.SpeciesConfig, mode mess.Mode, set *mess.Settings, db *store.Store) (*VarBarrier, error) {
	method, err := ParseMethod(c.Method)
	if err != nil {
		return nil, mess.ErrDecorate(err, "newVarBarrier")
	}
	inner, err := members(c.Inner, mess.Number, set, db)
	if err != nil {
		return nil, mess.ErrDecorate(err, "newVarBarrier")
	}
	var outer Species
	if c.Outer != nil {
		if outer, err = newWithMode(c.Outer, mess.Number, set, db); err != nil {
			return nil, mess.ErrDecorate(err, "newVarBarrier")
		}
	}
	var t mess.Tunnel
	if c.Tunnel != nil {
		if t, err = tunnel.New(c.Tunnel, set); err != nil {
			return nil, mess.ErrDecorate(err, "newVarBarrier")
		}
	}
	return NewVarBarrier(c.Name, inner, outer, t, method, mode, set)
}

func newAtomic(c *mess.SpeciesConfig, mode mess.Mode) (*Atomic, error) {
	l, d, err := mess.Levels(c.ElectronicLevels)
	if err != nil {
		return nil, mess.ErrDecorate(err, "newAtomic")
	}
	return NewAtomic(c.Name, c.Symbol, c.ZeroEnergy.Float(), l, d, mode)
}

func newArrhenius(c *mess.SpeciesConfig, reactant Species, mode mess.Mode) (*Arrhenius, error) {
	if c.Reactant != "" && reactant == nil {
		return nil, mess.NewConfigError("newArrhenius", "the reactant %s can only be resolved inside a network", c.Reactant)
	}
	ea := c.ActivationEnergy.Float()
	if reactant == nil {
		ea += c.ZeroEnergy.Float()
	}
	return NewArrhenius(c.Name, c.Factor, c.Power, ea, reactant, mode)
}

func newRead(c *mess.SpeciesConfig, mode mess.Mode, db *store.Store) (*Read, error) {
	o := ReadOptions{EnergyTolerance: c.EnergyTolerance.Float(), DensityTolerance: c.DensityTolerance}
	if c.Store != "" {
		if db == nil {
			return nil, mess.NewConfigError("newRead", "grid %q requested, but no grid store is open", c.Store)
		}
		return ReadStore(context.Background(), c.Name, db, c.Store, c.ZeroEnergy.Float(), o, mode)
	}
	if c.File == "" {
		return nil, mess.NewConfigError("newRead", "either file or store must be given")
	}
	return ReadFile(c.Name, c.File, c.EnergyUnit, c.ZeroEnergy.Float(), o, mode)
}

//infrared turns emission rates in 1/s into atomic units.
func infrared(rates []float64) []float64 {
	if rates == nil {
		return nil
	}
	r := make([]float64, len(rates))
	for i, v := range rates {
		r[i] = v / mess.Second
	}
	return r
}
