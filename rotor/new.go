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

package rotor

import (
	"strings"

	"github.com/rmera/gomess"
)

//New builds the rotor described by c. The geometry g is only needed when the rotor
//is given as an internal rotation of its atoms, and can otherwise be nil.
func New(c *mess.RotorConfig, g *mess.Geometry, set *mess.Settings) (mess.Rotor, error) {
	if c == nil {
		return nil, mess.NewConfigError("rotor.New", "no rotor definition")
	}
	o := DefaultOptions()
	o.HamSizeMin(c.HamSizeMin)
	o.HamSizeMax(c.HamSizeMax)
	o.GridSize(c.GridSize)
	o.QuantumWeight(c.QuantumWeight)
	o.ThermPowMax(c.ThermPowMax)
	o.PolySize(c.PolynomialSize)
	switch strings.ToLower(c.Type) {
	case "free", "hindered", "":
		b, sym, err := rotationalConstant(c, g)
		if err != nil {
			return nil, mess.ErrDecorate(err, "rotor.New")
		}
		var r mess.Rotor
		switch {
		case len(c.PotentialSampling) > 0:
			r, err = NewHinderedSampled(b, sym, mess.Energies(c.PotentialSampling), 0, o)
		case len(c.FourierCoefficients) > 0 || len(c.FourierSine) > 0:
			r, err = NewHindered(b, sym, mess.Energies(c.FourierCoefficients), mess.Energies(c.FourierSine), o)
		case strings.ToLower(c.Type) == "hindered":
			err = mess.NewConfigError("rotor.New", "hindered rotor without a potential")
		default:
			r, err = NewFree(b, sym, o.ThermPowMax())
		}
		if err != nil {
			return nil, mess.ErrDecorate(err, "rotor.New")
		}
		return r, nil
	case "umbrella":
		if c.BasisSize > 0 {
			o.HamSizeMin(c.BasisSize)
		}
		x := make([]float64, len(c.Coordinates))
		for i, v := range c.Coordinates {
			x[i] = v.Float()
		}
		r, err := NewUmbrella(c.ReducedMass.Float(), x, mess.Energies(c.Energies), o)
		if err != nil {
			return nil, mess.ErrDecorate(err, "rotor.New")
		}
		return r, nil
	}
	return nil, mess.NewConfigError("rotor.New", "unknown rotor type %q", c.Type)
}

//rotationalConstant returns the rotational constant and the symmetry number of the rotor,
//either given directly or from the reduced moment of inertia of an internal rotation.
func rotationalConstant(c *mess.RotorConfig, g *mess.Geometry) (float64, int, error) {
	sym := c.Symmetry
	if c.Rotation == nil {
		if sym == 0 {
			sym = 1
		}
		return c.RotationalConstant.Float(), sym, nil
	}
	if g == nil {
		return 0, 0, mess.NewConfigError("rotationalConstant", "internal rotation given without a geometry")
	}
	ir, err := c.Rotation.InternalRotation(g)
	if err != nil {
		return 0, 0, mess.ErrDecorate(err, "rotationalConstant")
	}
	inertia, err := ir.ReducedInertia(g)
	if err != nil {
		return 0, 0, mess.ErrDecorate(err, "rotationalConstant")
	}
	if sym == 0 {
		sym = ir.Symmetry()
	}
	return 1 / (2 * inertia), sym, nil
}
