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

package core

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/rmera/gomess"
)

//New builds the core described by c, in the given mode. The geometry g is the one of
//the species, and is used unless c has its own. It can be nil for cores that don't need it.
func New(c *mess.CoreConfig, mode mess.Mode, g *mess.Geometry, set *mess.Settings) (mess.Core, error) {
	if c == nil {
		return nil, mess.NewConfigError("core.New", "no core definition")
	}
	if c.Geometry != nil {
		var err error
		if g, err = c.Geometry.Geometry(set); err != nil {
			return nil, mess.ErrDecorate(err, "core.New")
		}
	}
	sym := c.Symmetry
	if sym <= 0 {
		sym = 1
	}
	var r mess.Core
	var err error
	switch strings.ToLower(c.Type) {
	case "phasespace", "pst":
		r, err = newPST(c, sym, mode, set)
	case "rigid", "rigidrotor", "":
		r, err = newRigid(c, sym, g, mode, set)
	case "rotd":
		r, err = ReadRotd(c.File, c.EnergyUnit, mode)
	case "multirotor":
		r, err = newMultiRotor(c, g, mode, set)
	default:
		err = mess.NewConfigError("core.New", "unknown core type %q", c.Type)
	}
	if err != nil {
		return nil, mess.ErrDecorate(err, "core.New")
	}
	return r, nil
}

func newPST(c *mess.CoreConfig, sym float64, mode mess.Mode, set *mess.Settings) (*PhaseSpaceTheory, error) {
	if len(c.Fragments) == 0 {
		return NewPhaseSpaceTheory(c.WeightFactor/sym, c.WeightPower, mode)
	}
	if len(c.Fragments) != 2 {
		return nil, mess.NewConfigError("newPST", "%d fragments, 2 expected", len(c.Fragments))
	}
	var frags [2]*mess.Geometry
	for i := range frags {
		var err error
		if frags[i], err = c.Fragments[i].Geometry(set); err != nil {
			return nil, mess.ErrDecorate(err, "newPST")
		}
	}
	return NewFragmentsPST(frags, c.PotentialPrefactor.Float(), c.PotentialPower, sym, mode)
}

func newRigid(c *mess.CoreConfig, sym float64, g *mess.Geometry, mode mess.Mode, set *mess.Settings) (*RigidRotor, error) {
	w, p := 1.0, 0.0
	if g != nil {
		var err error
		if w, p, err = g.RotationalFactor(sym); err != nil {
			return nil, mess.ErrDecorate(err, "newRigid")
		}
	}
	vib := &Vibrations{
		Frequencies:    mess.Energies(c.Frequencies),
		Degeneracies:   c.Degeneracies,
		RovibCouplings: c.RovibCouplings,
	}
	if c.Anharmonicities != nil {
		vib.Anharmonicities = make([][]float64, len(c.Anharmonicities))
		for i, row := range c.Anharmonicities {
			vib.Anharmonicities[i] = mess.Energies(row)
		}
	}
	el, ed, err := mess.Levels(c.ElectronicLevels)
	if err != nil {
		return nil, mess.ErrDecorate(err, "newRigid")
	}
	return NewRigidRotor(w, p, vib, el, ed, mode, set)
}

func newMultiRotor(c *mess.CoreConfig, g *mess.Geometry, mode mess.Mode, set *mess.Settings) (*MultiRotor, error) {
	mc := c.MultiRotor
	if mc == nil {
		return nil, mess.NewConfigError("newMultiRotor", "no multirotor block")
	}
	if g == nil {
		return nil, mess.NewConfigError("newMultiRotor", "a geometry is needed")
	}
	rots := make([]Rotation, len(mc.Rotations))
	for i := range mc.Rotations {
		rc := &mc.Rotations[i]
		ir, err := rc.InternalRotation(g)
		if err != nil {
			return nil, mess.ErrDecorate(err, "newMultiRotor")
		}
		rots[i] = Rotation{
			InternalRotation: ir,
			PotentialSize:    rc.PotentialExpansionSize,
			MassSize:         rc.MassExpansionSize,
			HamSizeMin:       rc.HamSizeMin,
			HamSizeMax:       rc.HamSizeMax,
			GridSize:         rc.GridSize,
		}
	}
	samples := make([]Sample, len(mc.Samples))
	n := 3 * g.Len()
	for i, sc := range mc.Samples {
		s := Sample{Energy: sc.Energy.Float()}
		for _, a := range sc.Angles {
			s.Angles = append(s.Angles, a*math.Pi/180)
		}
		if len(sc.Frequencies) > 0 {
			s.Frequencies = mess.Energies(sc.Frequencies)
		} else if len(sc.Hessian) > 0 {
			if len(sc.Hessian) != n*(n+1)/2 {
				return nil, mess.NewConfigError("newMultiRotor", "sample %d: Hessian lower triangle has %d elements, %d expected", i, len(sc.Hessian), n*(n+1)/2)
			}
			h := mat.NewSymDense(n, nil)
			l := 0
			for a := 0; a < n; a++ {
				for b := 0; b <= a; b++ {
					h.SetSym(a, b, sc.Hessian[l])
					l++
				}
			}
			s.Hessian = h
		}
		samples[i] = s
	}
	o := DefaultMultiRotorOptions(set)
	o.ExternalRotation(mc.ExternalRotation)
	o.ExternalSymmetry(mc.ExternalSymmetry)
	o.AmomMax(mc.AmomMax)
	o.LevelEnergyMax(mc.LevelEnergyMax.Float())
	o.ExtraEnergy(mc.ExtraEnergy.Float())
	o.MassTolerance(mc.MassTolerance)
	o.PotentialTolerance(mc.PotentialTolerance)
	o.EnergyGridSize(mc.EnergyGridSize)
	return NewMultiRotor(g, rots, samples, o, mode, set)
}
