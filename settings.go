/*
 * settings.go, part of gomess.
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

package mess

import "runtime"

//Kernel flags. They select how the collisional transition probabilities
//are consumed by the master equation.
const (
	KernelUp      uint = 1 << iota //up-transitions are derived from detailed balance
	KernelDensity                  //probabilities are weighted by the final-state density
	KernelNoTrunc                  //negative-probability truncation is suppressed
)

//Settings contains the process-wide options used when building models.
//Models copy what they need at construction, so changing a Settings
//after a model is built does not affect the model.
type Settings struct {
	energyLimit float64 //highest energy (relative to the species ground) that needs to be described
	energyStep  float64 //the step of the energy grids
	actionMax   float64 //tunneling factor is zero for actions larger than this
	atomDistMin float64 //minimal interatomic distance allowed in geometries
	kernelFlags uint
	cpus        int
	gridFloor   int //minimal number of points in any energy grid
}

//DefaultSettings returns reasonable settings: a 60 kcal/mol energy limit,
//10 1/cm energy step and all logical CPUs.
func DefaultSettings() *Settings {
	s := new(Settings)
	s.energyLimit = 60 * Kcal
	s.energyStep = 10 * Incm
	s.actionMax = 100
	s.atomDistMin = 1.6
	s.cpus = runtime.NumCPU()
	s.gridFloor = 10 //just a reasonable value.
	return s
}

//Returns the highest energy to be described by the models
//and sets it to a new value, if given.
func (S *Settings) EnergyLimit(e ...float64) float64 {
	if len(e) > 0 && e[0] > 0 {
		S.energyLimit = e[0]
	}
	return S.energyLimit
}

//Returns the energy grid step and sets it to a new value, if given.
func (S *Settings) EnergyStep(e ...float64) float64 {
	if len(e) > 0 && e[0] > 0 {
		S.energyStep = e[0]
	}
	return S.energyStep
}

//Returns the largest semiclassical action for which tunneling is considered,
//and sets it to a new value, if given.
func (S *Settings) ActionMax(a ...float64) float64 {
	if len(a) > 0 && a[0] > 0 {
		S.actionMax = a[0]
	}
	return S.actionMax
}

//Returns the minimal allowed interatomic distance, in bohr,
//and sets it to a new value, if given.
func (S *Settings) AtomDistMin(d ...float64) float64 {
	if len(d) > 0 && d[0] >= 0 {
		S.atomDistMin = d[0]
	}
	return S.atomDistMin
}

//Returns the kernel flags and sets them to a new value, if given.
func (S *Settings) KernelFlags(f ...uint) uint {
	if len(f) > 0 {
		S.kernelFlags = f[0]
	}
	return S.kernelFlags
}

//Returns the number of gorutines to be used,
//and sets it to a new value, if given.
func (S *Settings) CPUs(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		S.cpus = n[0]
	}
	return S.cpus
}

//GridSize returns the number of points needed to cover the energy limit
//with the current step, never less than the grid floor.
func (S *Settings) GridSize() int {
	n := int(S.energyLimit/S.energyStep) + 1
	if n < S.gridFloor {
		n = S.gridFloor
	}
	return n
}

//Copy returns an independent copy of the settings.
func (S *Settings) Copy() *Settings {
	r := *S
	return &r
}
