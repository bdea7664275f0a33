/*
 * atomicdata.go, part of gomess.
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

//A map for assigning mass to elements, in amu.
//Masses are those of the most abundant isotope, which is what a rovibrational
//analysis needs. Note that just common gas-phase elements are present
var symbolMass = map[string]float64{
	"H":  1.00782503,
	"D":  2.01410178,
	"He": 4.00260325,
	"Li": 7.01600344,
	"B":  11.0093054,
	"C":  12.0,
	"N":  14.0030740,
	"O":  15.9949146,
	"F":  18.9984032,
	"Ne": 19.9924402,
	"Na": 22.9897693,
	"Mg": 23.9850417,
	"Al": 26.9815385,
	"Si": 27.9769265,
	"P":  30.9737620,
	"S":  31.9720707,
	"Cl": 34.9688527,
	"Ar": 39.9623831,
	"K":  38.9637064,
	"Br": 78.9183376,
	"Kr": 83.9114977,
	"I":  126.904473,
	"Xe": 131.904155,
}

//AtomicMass returns the mass of the most abundant isotope of the element symbol,
//in atomic units, and whether the element is known.
func AtomicMass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m * Amu, ok
}
