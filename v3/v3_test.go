/*
 * v3_test.go, part of gomess.
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
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	B := Zeros(3)
	cind := []int{1, 3, 5}
	err = B.SomeVecsSafe(A, cind)
	require.NoError(Te, err)
	assert.Equal(Te, 10.0, B.At(1, 0))
	B.Set(1, 1, 55)
	A.SetVecs(B, cind)
	assert.Equal(Te, 55.0, A.At(3, 1))
	fmt.Println(A, "\n", B)
	C := Zeros(2)
	assert.Error(Te, C.SomeVecsSafe(A, cind))
}

func TestVecOps(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	row, _ := NewMatrix([]float64{10, 20, 30})
	A.AddVec(A, row)
	assert.Equal(Te, 36.0, A.At(1, 2))
	A.SubVec(A, row)
	assert.Equal(Te, 6.0, A.At(1, 2))
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	assert.InDelta(Te, 1.0, z.At(0, 2), 1e-12)
	v, _ := NewMatrix([]float64{3, 0, 4})
	v.Unit(v)
	assert.InDelta(Te, 1.0, v.Norm2(), 1e-12)
	_, err = NewMatrix([]float64{1, 2})
	assert.Error(Te, err)
}

func TestEigen(Te *testing.T) {
	a := []float64{1, 2, 0, 2, 1, 0, 0, 0, 1}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	evecs, evals, err := EigenWrap(A, -1)
	require.NoError(Te, err)
	fmt.Println(evecs, "\n", evals)
	assert.InDeltaSlice(Te, []float64{-1, 1, 3}, evals, 1e-10)
	assert.Greater(Te, det(evecs), 0.0)
}

func TestRotate(Te *testing.T) {
	coords, _ := NewMatrix([]float64{1, 0, 0, 2, 0, 1})
	ax1, _ := NewMatrix([]float64{0, 0, 0})
	ax2, _ := NewMatrix([]float64{0, 0, 1})
	rot, err := RotateAbout(coords, ax1, ax2, math.Pi/2)
	require.NoError(Te, err)
	assert.InDelta(Te, 0, rot.At(0, 0), 1e-12)
	assert.InDelta(Te, 1, rot.At(0, 1), 1e-12)
	assert.InDelta(Te, 2, rot.At(1, 1), 1e-12)
	assert.InDelta(Te, 1, rot.At(1, 2), 1e-12)
	_, err = RotateAbout(coords, ax1, ax1, 1)
	assert.Error(Te, err)
}

func TestInertia(Te *testing.T) {
	//two unit masses at +-1 on the x axis
	coords, _ := NewMatrix([]float64{1, 0, 0, -1, 0, 0})
	com, err := CenterOfMass(coords, nil)
	require.NoError(Te, err)
	assert.InDelta(Te, 0, com.Norm2(), 1e-12)
	in, err := InertiaTensor(coords, []float64{1, 1})
	require.NoError(Te, err)
	assert.InDelta(Te, 0, in.At(0, 0), 1e-12)
	assert.InDelta(Te, 2, in.At(1, 1), 1e-12)
	assert.InDelta(Te, 2, in.At(2, 2), 1e-12)
}
