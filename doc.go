/*
 * doc.go, part of gomess.
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

/*
Package mess is the root package of gomess, a library that counts quantum states for
master-equation kinetics. For a molecule or a reaction barrier it provides the number of states N(E),
or the density of states, and the partition function Q(T), composing independent degrees
of freedom into a single energy-resolved state-counting function.

# Layout

  - mess (this package): errors, units, settings, YAML configuration, geometries and internal
    rotations, splines and the direct-count machinery shared by all models.
  - v3: Nx3 coordinate matrices, centers of mass, moment tensors and Clifford rotations.
  - tunnel: harmonic, Eckart, quartic and tabulated tunneling corrections.
  - rotor: free and hindered internal rotors, and umbrella modes.
  - core: phase space theory, rigid rotor, tabulated transitional modes and the
    coupled multi-dimensional rotor (MultiRotor).
  - kernel: energy-transfer kernels and collision frequencies.
  - species: RRHO species and their alternatives (union, variational barrier,
    atomic, Arrhenius, tabulated), bimolecular products, wells and the reaction network.
  - store: a SQLite cache of computed state grids.
  - statplot: N(E) and Q(T) plots.
  - cmd/gomess: the command line interface.

All energies and temperatures are in Hartree (temperatures as k_B T), lengths in bohr and
masses in electron masses. The unit constants in units.go convert to these units.

Models are built once from their configuration and are immutable afterwards, except for
explicit ground-energy shifts, so they can be queried from several gorutines.
*/
package mess
