/*
 * mroptions.go, part of gomess.
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

import "github.com/rmera/gomess"

//MultiRotorOptions contains the numerical controls of a MultiRotor.
type MultiRotorOptions struct {
	externalRotation bool
	externalSymmetry float64
	amomMax          int     //maximum of sum_j |m_j| in the basis, 0 for no limit
	levelEnergyMax   float64 //quantum levels are computed up to this energy over the potential minimum
	extraEnergy      float64 //the classical states are tabulated up to this energy
	massTol          float64
	potTol           float64
	energyGridSize   int
}

//DefaultMultiRotorOptions returns the default options. The classical states are tabulated
//up to the energy limit of set.
func DefaultMultiRotorOptions(set *mess.Settings) *MultiRotorOptions {
	return &MultiRotorOptions{
		externalSymmetry: 1,
		levelEnergyMax:   5 * mess.Kcal,
		extraEnergy:      set.EnergyLimit(),
		massTol:          1e-5,
		potTol:           1e-5,
		energyGridSize:   200,
	}
}

func (O *MultiRotorOptions) ExternalRotation(b ...bool) bool {
	if len(b) > 0 {
		O.externalRotation = b[0]
	}
	return O.externalRotation
}

func (O *MultiRotorOptions) ExternalSymmetry(s ...float64) float64 {
	if len(s) > 0 && s[0] > 0 {
		O.externalSymmetry = s[0]
	}
	return O.externalSymmetry
}

func (O *MultiRotorOptions) AmomMax(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.amomMax = n[0]
	}
	return O.amomMax
}

func (O *MultiRotorOptions) LevelEnergyMax(e ...float64) float64 {
	if len(e) > 0 && e[0] > 0 {
		O.levelEnergyMax = e[0]
	}
	return O.levelEnergyMax
}

func (O *MultiRotorOptions) ExtraEnergy(e ...float64) float64 {
	if len(e) > 0 && e[0] > 0 {
		O.extraEnergy = e[0]
	}
	return O.extraEnergy
}

func (O *MultiRotorOptions) MassTolerance(t ...float64) float64 {
	if len(t) > 0 && t[0] > 0 {
		O.massTol = t[0]
	}
	return O.massTol
}

func (O *MultiRotorOptions) PotentialTolerance(t ...float64) float64 {
	if len(t) > 0 && t[0] > 0 {
		O.potTol = t[0]
	}
	return O.potTol
}

func (O *MultiRotorOptions) EnergyGridSize(n ...int) int {
	if len(n) > 0 && n[0] > 2 {
		O.energyGridSize = n[0]
	}
	return O.energyGridSize
}
