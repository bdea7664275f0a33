/*
 * gonum.go, part of gomess.
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

//gonum.go contains the Matrix type and what is needed to go between it and the gonum types.

//All the *Vec functions will operate/produce row vectors, as the underlying Dense is row-major.

package v3

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space. The name of some funcitions in
//the library reflect this.
type Matrix struct {
	*mat.Dense
}

//Dense2Matrix wraps A, which must have 3 columns, in a Matrix. No data is copied.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice lenght %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//VecView returns a view of the given vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Clone returns an independent copy of F.
func (F *Matrix) Clone() *Matrix {
	r := Zeros(F.NVecs())
	r.Copy(F.Dense)
	return r
}

//Mul wraps mat.Dense.Mul to take care of the case when one of the
//arguments is a Matrix, so gonum sees the underlying Dense.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if a, ok := A.(*Matrix); ok {
		A = a.Dense
	}
	if b, ok := B.(*Matrix); ok {
		B = b.Dense
	}
	F.Dense.Mul(A, B)
}

//det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func det(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return (A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) - A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) + A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2)))
}

//This is a facility to sort Eigenvectors/Eigenvalues pairs
//It satisfies the sort.Interface interface.
type eigenpair struct {
	//evecs must have as many rows as evals has elements.
	evecs *Matrix
	evals sort.Float64Slice
}

func (E eigenpair) Less(i, j int) bool {
	return E.evals[i] < E.evals[j]
}
func (E eigenpair) Swap(i, j int) {
	E.evals.Swap(i, j)
	E.evecs.SwapVecs(i, j)
}
func (E eigenpair) Len() int {
	return len(E.evals)
}

//EigenWrap diagonalizes the symmetric 3x3 matrix in, and returns the eigenvectors as the rows of a
//Matrix, and the eigenvalues, both sorted by increasing eigenvalue. It also checks orthogonality
//and makes the set of eigenvectors right-handed. Only the lower triangle of in is used.
func EigenWrap(in *Matrix, epsilon float64) (*Matrix, []float64, error) {
	if epsilon < 0 {
		epsilon = appzero
	}
	r, _ := in.Dims()
	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j <= i; j++ {
			sym.SetSym(i, j, in.At(i, j))
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, Error{string(ErrEigen), []string{"EigenWrap"}, true}
	}
	evals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	evecs := Zeros(r)
	evecs.Copy(vecs.T()) //now the eigenvectors are rows
	eig := eigenpair{evecs, evals}
	sort.Sort(eig)
	for i := 0; i < r; i++ {
		vectori := eig.evecs.VecView(i)
		for j := i + 1; j < r; j++ {
			vectorj := eig.evecs.VecView(j)
			if math.Abs(vectori.Dot(vectorj)) > epsilon {
				reterr := Error{fmt.Sprintf("Eigenvectors %d and %d not orthogonal. Dot: %g", i, j, math.Abs(vectori.Dot(vectorj))), []string{"EigenWrap"}, true}
				return eig.evecs, evals, reterr
			}
		}
	}
	//Checking and fixing the handness of the matrix.
	if det(eig.evecs) < 0 {
		eig.evecs.Scale(-1, eig.evecs)
	}
	return eig.evecs, eig.evals, nil
}

//Errors

//the same as mess.Error but avoid circular import.
type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ifnored
func (err Error) Critical() bool { return err.critical }

//errDecorate is a helper function that asserts that the error is
//implements errorInt and decorates the error with the caller's name before returning it.
//if used with a non-v3 error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(errorInt)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("gomess/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct  = PanicMsg("gomess/v3: Invalid matrix for cross product")
	ErrEigen           = PanicMsg("gomess/v3: Can't obtain eigenvectors/eigenvalues of given matrix")
	ErrDeterminant     = PanicMsg("gomess/v3: Determinants are only available for 3x3 matrices")
	ErrShape           = PanicMsg("gomess/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("gomess/v3: index out of range")
	ErrZeroVector      = PanicMsg("gomess/v3: zero-length vector")
)
