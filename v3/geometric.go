/*
 * geometric.go, part of gomess.
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

package v3

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//CenterOfMass returns the center of mass the atoms represented by the coordinates in geometry
//and the masses in mass, and an error. If mass is nil, it calculates the geometric center
func CenterOfMass(geometry *Matrix, mass []float64) (*Matrix, error) {
	if geometry == nil {
		return nil, Error{"nil matrix to get the center of mass", []string{"CenterOfMass"}, true}
	}
	gr := geometry.NVecs()
	if mass == nil { //just obtain the geometric center
		mass = ones(gr)
	}
	if len(mass) != gr {
		return nil, Error{"Number of masses and of coordinates differ", []string{"CenterOfMass"}, true}
	}
	total := floats.Sum(mass)
	if total <= 0 {
		return nil, Error{"Non-positive total mass", []string{"CenterOfMass"}, true}
	}
	ref := Zeros(1)
	r := ref.RawRowView(0)
	for i := 0; i < gr; i++ {
		floats.AddScaled(r, mass[i]/total, geometry.RawRowView(i))
	}
	return ref, nil
}

//MassCentrate centers in in the center of mass of oref.
//Returns the centered matrix and the displacement matrix.
func MassCentrate(in, oref *Matrix, mass []float64) (*Matrix, *Matrix, error) {
	ref2, err := CenterOfMass(oref, mass)
	if err != nil {
		return nil, nil, errDecorate(err, "MassCentrate")
	}
	returned := in.Clone()
	returned.SubVec(returned, ref2)
	return returned, ref2, nil
}

//MomentTensor returns the moment tensor, sum_i m_i r_i r_i^T (r_i relative to the center of mass),
//for a matrix A of coordinates and a slice with the respective masses.
func MomentTensor(A *Matrix, massslice []float64) (*mat.SymDense, error) {
	ar := A.NVecs()
	if massslice == nil {
		massslice = ones(ar)
	}
	center, _, err := MassCentrate(A, A, massslice)
	if err != nil {
		return nil, errDecorate(err, "MomentTensor")
	}
	moment := mat.NewSymDense(3, nil)
	for i := 0; i < ar; i++ {
		moment.SymRankOne(moment, massslice[i], center.RowView(i))
	}
	return moment, nil
}

//InertiaTensor returns the inertia tensor of the atoms in A with masses massslice,
//relative to their center of mass.
func InertiaTensor(A *Matrix, massslice []float64) (*mat.SymDense, error) {
	moment, err := MomentTensor(A, massslice)
	if err != nil {
		return nil, errDecorate(err, "InertiaTensor")
	}
	tr := moment.At(0, 0) + moment.At(1, 1) + moment.At(2, 2)
	inertia := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			v := -moment.At(i, j)
			if i == j {
				v += tr
			}
			inertia.SetSym(i, j, v)
		}
	}
	return inertia, nil
}

func ones(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = 1
	}
	return r
}
