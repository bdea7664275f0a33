/*
 * network.go, part of gomess.
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
	"log"
	"strings"

	"github.com/rmera/gomess"
	"github.com/rmera/gomess/kernel"
	"github.com/rmera/gomess/store"
)

//Barrier connects a well to another well or to a bimolecular.
type Barrier struct {
	Species Species
	From    string
	To      string
}

//Network holds all the species of a reaction network, which the wells,
//bimoleculars and barriers refer to by name.
type Network struct {
	species map[string]Species
	names   []string
	wells   []*Well
	bimol   []*Bimolecular
	barrs   []*Barrier
}

//Build builds every species in in, then the network that connects them. If the network
//has a reference, all the energies are shifted so that the reference ground is zero.
//db can be nil.
func Build(in *mess.Input, set *mess.Settings, db *store.Store) (*Network, error) {
	n := &Network{species: make(map[string]Species)}
	var pending []*mess.SpeciesConfig
	for i := range in.Species {
		c := &in.Species[i]
		if c.Name == "" {
			return nil, mess.NewConfigError("Build", "species %d has no name", i)
		}
		if _, ok := n.species[c.Name]; ok || n.pendingHas(pending, c.Name) {
			return nil, mess.NewConfigError("Build", "species %s defined twice", c.Name)
		}
		if strings.ToLower(c.Type) == "arrhenius" && c.Reactant != "" {
			pending = append(pending, c)
			continue
		}
		s, err := New(c, set, db)
		if err != nil {
			return nil, mess.ErrDecorate(err, "Build")
		}
		n.add(s)
	}
	//Arrhenius species can depend on each other, so they are resolved until nothing changes.
	for len(pending) > 0 {
		var left []*mess.SpeciesConfig
		for _, c := range pending {
			r, ok := n.species[c.Reactant]
			if !ok {
				left = append(left, c)
				continue
			}
			mode := mess.NoStates
			if c.Mode != "" {
				var err error
				if mode, err = mess.ParseMode(c.Mode); err != nil {
					return nil, mess.ErrDecorate(err, "Build "+c.Name)
				}
			}
			a, err := newArrhenius(c, r, mode)
			if err != nil {
				return nil, mess.ErrDecorate(err, "Build "+c.Name)
			}
			n.add(a)
		}
		if len(left) == len(pending) {
			return nil, mess.NewConfigError("Build", "species %s: unknown reactant %s", left[0].Name, left[0].Reactant)
		}
		pending = left
	}
	if in.Network == nil {
		return n, nil
	}
	if err := n.connect(in.Network, set); err != nil {
		return nil, mess.ErrDecorate(err, "Build")
	}
	if ref := in.Network.Reference; ref != "" {
		g, ok := n.ground(ref)
		if !ok {
			return nil, mess.NewConfigError("Build", "unknown reference %s", ref)
		}
		n.ShiftGround(-g)
	}
	return n, nil
}

func (n *Network) pendingHas(p []*mess.SpeciesConfig, name string) bool {
	for _, c := range p {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (n *Network) add(s Species) {
	n.species[s.Name()] = s
	n.names = append(n.names, s.Name())
}

func (n *Network) connect(c *mess.NetworkConfig, set *mess.Settings) error {
	for i := range c.Wells {
		wc := &c.Wells[i]
		s, ok := n.species[wc.Species]
		if !ok {
			return mess.NewConfigError("connect", "well %d: unknown species %s", i, wc.Species)
		}
		ks := make([]kernel.Kernel, 0, len(wc.Kernels))
		for j := range wc.Kernels {
			k, err := kernel.New(&wc.Kernels[j], set)
			if err != nil {
				return mess.ErrDecorate(err, "connect well "+wc.Species)
			}
			ks = append(ks, k)
		}
		col, err := kernel.NewCollision(&wc.Collision)
		if err != nil {
			return mess.ErrDecorate(err, "connect well "+wc.Species)
		}
		var esc Escape
		if wc.Escape != nil {
			if esc, err = NewEscape(wc.Escape); err != nil {
				return mess.ErrDecorate(err, "connect well "+wc.Species)
			}
		}
		w, err := NewWell(s, ks, col, esc)
		if err != nil {
			return mess.ErrDecorate(err, "connect")
		}
		n.wells = append(n.wells, w)
	}
	for _, bc := range c.Bimolecular {
		if _, ok := n.species[bc.Name]; ok || n.Well(bc.Name) != nil {
			return mess.NewConfigError("connect", "bimolecular %s: the name is already used", bc.Name)
		}
		frags := make([]Species, 0, len(bc.Fragments))
		for _, f := range bc.Fragments {
			s, ok := n.species[f]
			if !ok {
				return mess.NewConfigError("connect", "bimolecular %s: unknown fragment %s", bc.Name, f)
			}
			frags = append(frags, s)
		}
		var ground *float64
		if bc.GroundEnergy != 0 {
			g := bc.GroundEnergy.Float()
			ground = &g
		}
		b, err := NewBimolecular(bc.Name, frags, bc.Dummy, ground)
		if err != nil {
			return mess.ErrDecorate(err, "connect")
		}
		n.bimol = append(n.bimol, b)
	}
	for _, bc := range c.Barriers {
		s, ok := n.species[bc.Species]
		if !ok {
			return mess.NewConfigError("connect", "barrier: unknown species %s", bc.Species)
		}
		if n.Well(bc.From) == nil {
			return mess.NewConfigError("connect", "barrier %s: %s is not a well", bc.Species, bc.From)
		}
		if n.Well(bc.To) == nil && n.Bimolecular(bc.To) == nil {
			return mess.NewConfigError("connect", "barrier %s: %s is neither a well nor a bimolecular", bc.Species, bc.To)
		}
		if g, _ := n.ground(bc.From); s.RealGround() < g {
			log.Printf("gomess/species: barrier %s lies below its well %s", bc.Species, bc.From)
		}
		n.barrs = append(n.barrs, &Barrier{Species: s, From: bc.From, To: bc.To})
	}
	return nil
}

//ground returns the ground energy of the species or bimolecular name.
func (n *Network) ground(name string) (float64, bool) {
	if s, ok := n.species[name]; ok {
		return s.Ground(), true
	}
	if b := n.Bimolecular(name); b != nil {
		return b.Ground(), true
	}
	return 0, false
}

//ShiftGround moves every energy in the network by de.
func (n *Network) ShiftGround(de float64) {
	for _, s := range n.species {
		s.ShiftGround(de)
	}
	for _, b := range n.bimol {
		b.ShiftGround(de)
	}
}

//Species returns the species called name, or nil.
func (n *Network) Species(name string) Species { return n.species[name] }

//Names returns the names of all the species, in input order.
func (n *Network) Names() []string { return n.names }

//Well returns the well of the species name, or nil.
func (n *Network) Well(name string) *Well {
	for _, w := range n.wells {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

//Bimolecular returns the bimolecular called name, or nil.
func (n *Network) Bimolecular(name string) *Bimolecular {
	for _, b := range n.bimol {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

func (n *Network) Wells() []*Well               { return n.wells }
func (n *Network) Bimoleculars() []*Bimolecular { return n.bimol }
func (n *Network) Barriers() []*Barrier         { return n.barrs }
