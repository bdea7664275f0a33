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

package tunnel

import (
	"github.com/rmera/gomess"
)

//New builds the tunnel described by c.
func New(c *mess.TunnelConfig, set *mess.Settings) (mess.Tunnel, error) {
	freq, cutoff := float64(c.Frequency), float64(c.Cutoff)
	var t mess.Tunnel
	var err error
	switch c.Type {
	case "harmonic":
		t, err = NewHarmonic(freq, cutoff, set)
	case "eckart":
		t, err = NewEckart(freq, cutoff, mess.Energies(c.WellDepths), set)
	case "quartic":
		t, err = NewQuartic(freq, cutoff, mess.Energies(c.WellDepths), c.Tolerance, c.GridSize, set)
	case "read":
		t, err = newReadFromFile(c, set)
	case "":
		return nil, mess.NewConfigError("tunnel.New", "missing tunnel type")
	default:
		return nil, mess.NewConfigError("tunnel.New", "unknown tunnel type %q", c.Type)
	}
	if err != nil {
		return nil, mess.ErrDecorate(err, "tunnel.New")
	}
	return t, nil
}

func newReadFromFile(c *mess.TunnelConfig, set *mess.Settings) (*Read, error) {
	if c.File == "" {
		return nil, mess.NewConfigError("newReadFromFile", "missing action table file")
	}
	unit, err := mess.ParseEnergyUnit(c.EnergyUnit, "kcal/mol")
	if err != nil {
		return nil, err
	}
	table, err := mess.ReadTable(c.File, 2)
	if err != nil {
		return nil, err
	}
	for i := range table[0] {
		table[0][i] *= unit
	}
	return NewRead(table[0], table[1], float64(c.Frequency), float64(c.Cutoff), set)
}
