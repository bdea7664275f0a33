/*
 * interfaces.go, part of gomess.
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

//Energies are always absolute (relative to the common zero of the reaction network),
//while weights are relative to the ground energy of the model that returns them.

// Tunnel is the interface for the barrier-crossing corrections.
type Tunnel interface {

	//Cutoff returns the energy, measured down from the barrier top,
	//below which tunneling is neglected.
	Cutoff() float64

	//Frequency returns the magnitude of the imaginary frequency of the barrier.
	Frequency() float64

	//Action returns the der-th energy derivative (0 or 1) of the semiclassical action at the
	//energy e, measured from the cutoff. Above the barrier top the action is negative.
	Action(e float64, der int) float64

	//Factor returns the transmission probability at the energy e, measured from the cutoff.
	Factor(e float64) float64

	//Density returns the energy derivative of Factor at e.
	Density(e float64) float64

	//Weight returns the tunneling contribution to the partition function,
	//relative to the energy cutoff.
	Weight(t float64) float64

	//Convolute folds the tunneling correction into the states array nos,
	//of energy step step, whose first element corresponds to the cutoff.
	Convolute(nos []float64, step float64)
}

// Rotor is the interface for one internal degree of freedom that is treated separately from the
// rigid core, such as an internal rotation or an umbrella mode.
type Rotor interface {

	//Set prepares the rotor to describe energies up to emax above its ground.
	//It must be called exactly once, before any other method.
	Set(emax float64) error

	//Ground returns the ground level energy, relative to the potential minimum.
	Ground() float64

	//EnergyLevel returns the energy of the i-th level, relative to the ground.
	EnergyLevel(i int) float64

	//Degeneracy returns the degeneracy of the i-th level.
	Degeneracy(i int) int

	//LevelSize returns the number of levels below the energy given to Set.
	LevelSize() int

	//Weight returns the partition function relative to the ground.
	Weight(t float64) float64

	//Convolute folds the rotor levels into the states array nos, in place.
	Convolute(nos []float64, step float64)
}

// Core is the interface for the global, non-separable, part of a species.
type Core interface {

	//Ground returns the ground energy. For most cores it is zero; cores with a
	//potential (MultiRotor) measure it from the potential minimum.
	Ground() float64

	//Weight returns the partition function relative to the ground.
	Weight(t float64) float64

	//States returns the number or the density of states, depending on Mode,
	//at the energy e, measured from the same origin as Ground.
	States(e float64) float64

	Mode() Mode
}

// Masser can return the total mass of a model.
type Masser interface {
	Mass() float64
}
