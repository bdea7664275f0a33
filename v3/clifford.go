/*
 * clifford.go, part of gomess.
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
	"math"
)

//A paravector is the sum of a scalar, a pseudoscalar, a vector and a bivector
//(the latter given by its dual, Vimag). Rotations of real 3D vectors only need
//the restricted product cliProduct.
type paravector struct {
	Real  float64
	Imag  float64
	Vreal [3]float64
	Vimag [3]float64
}

//paravectorFromVector takes a vector and creates a paravector.
func paravectorFromVector(v []float64) paravector {
	return paravector{Vreal: [3]float64{v[0], v[1], v[2]}}
}

//Reverse returns the reverse of the paravector.
func (P paravector) Reverse() paravector {
	R := P
	R.Imag = -P.Imag
	for i := range R.Vimag {
		R.Vimag[i] = -P.Vimag[i]
	}
	return R
}

//Normalize returns the normalized version of P.
func (P paravector) Normalize() paravector {
	norm := P.Real*P.Real + P.Imag*P.Imag
	for i := 0; i < 3; i++ {
		norm += P.Vreal[i]*P.Vreal[i] + P.Vimag[i]*P.Vimag[i]
	}
	norm = math.Sqrt(norm)
	R := P
	R.Real /= norm
	R.Imag /= norm
	for i := 0; i < 3; i++ {
		R.Vreal[i] /= norm
		R.Vimag[i] /= norm
	}
	return R
}

//Clifford product of 2 paravectors, the imaginary parts are simply set to zero, since this is the case
//when rotating 3D real vectors.
func cliProduct(A, B paravector) paravector {
	var R paravector
	R.Real = A.Real*B.Real - A.Imag*B.Imag
	R.Imag = A.Real*B.Imag + A.Imag*B.Real
	for i := 0; i < 3; i++ {
		R.Real += A.Vreal[i]*B.Vreal[i] - A.Vimag[i]*B.Vimag[i]
		R.Imag += A.Vreal[i]*B.Vimag[i] + A.Vimag[i]*B.Vreal[i]
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		k := (i + 2) % 3
		R.Vreal[i] = A.Real*B.Vreal[i] + B.Real*A.Vreal[i] - A.Imag*B.Vimag[i] - B.Imag*A.Vimag[i] +
			A.Vimag[k]*B.Vreal[j] - A.Vimag[j]*B.Vreal[k] + A.Vreal[k]*B.Vimag[j] - A.Vreal[j]*B.Vimag[k]
	}
	return R
}

//cliRotation uses Clifford algebra to rotate a paravector A by angle radians around axis. Returns the rotated
//paravector. axis must be normalized.
func cliRotation(A, axis paravector, angle float64) paravector {
	var R paravector
	R.Real = math.Cos(angle / 2.0)
	for i := 0; i < 3; i++ {
		R.Vimag[i] = math.Sin(angle/2.0) * axis.Vreal[i]
	}
	tmp := cliProduct(R.Reverse(), A)
	return cliProduct(tmp, R)
}

//CliRotate takes the matrix Target and uses Clifford algebra to rotate each of its vectors
//by angle radians around axis, which passes through the origin. Axis must be a 3D row vector.
//The result is returned in a new Matrix.
func CliRotate(Target, axis *Matrix, angle float64) *Matrix {
	paxis := paravectorFromVector(axis.RawRowView(0)).Normalize()
	rows := Target.NVecs()
	R := Zeros(rows)
	for i := 0; i < rows; i++ {
		tmp := cliRotation(paravectorFromVector(Target.RawRowView(i)), paxis, angle)
		copy(R.RawRowView(i), tmp.Vreal[:])
	}
	return R
}

//RotateAbout rotates the coordinates in coordsorig by angle radians around the axis
//that goes from ax1 to ax2. It returns the rotated coordsorig, since the original is not affected.
//Uses Clifford algebra.
func RotateAbout(coordsorig, ax1, ax2 *Matrix, angle float64) (*Matrix, error) {
	coords := coordsorig.Clone()
	axis := Zeros(1)
	axis.Sub(ax2.Dense, ax1.Dense) //now it became the rotation axis
	if axis.Norm2() <= appzero {
		return nil, Error{"Rotation axis of zero length", []string{"RotateAbout"}, true}
	}
	coords.SubVec(coords, ax1)
	Rot := CliRotate(coords, axis, angle)
	Rot.AddVec(Rot, ax1)
	return Rot, nil
}
