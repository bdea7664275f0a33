/*
 * fourier.go, part of gomess.
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

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/rmera/gomess"
)

//MultiIndex converts between a multidimensional index, with dims[j] values along
//each dimension, and a linear one. The last index runs fastest.
type MultiIndex struct {
	dims []int
	size int
}

func NewMultiIndex(dims []int) MultiIndex {
	size := 1
	for _, d := range dims {
		if d < 1 {
			panic(mess.ErrShape)
		}
		size *= d
	}
	return MultiIndex{dims: append([]int(nil), dims...), size: size}
}

func (m MultiIndex) Len() int    { return m.size }
func (m MultiIndex) Dims() []int { return m.dims }

//Index returns the linear index of v.
func (m MultiIndex) Index(v []int) int {
	i := 0
	for j, d := range m.dims {
		i = i*d + v[j]
	}
	return i
}

//Vector puts in v, and returns, the multidimensional index of i. If v is nil, it is allocated.
func (m MultiIndex) Vector(i int, v []int) []int {
	if v == nil {
		v = make([]int, len(m.dims))
	}
	for j := len(m.dims) - 1; j >= 0; j-- {
		v[j] = i % m.dims[j]
		i /= m.dims[j]
	}
	return v
}

//fftND transforms data, laid out as described by idx, in place along every dimension.
//The forward transform uses exp(-ikx); neither direction is normalized.
func fftND(data []complex128, idx MultiIndex, inverse bool) {
	stride := 1
	for j := len(idx.dims) - 1; j >= 0; j-- {
		n := idx.dims[j]
		fft := fourier.NewCmplxFFT(n)
		line := make([]complex128, n)
		out := make([]complex128, n)
		for start := 0; start < len(data); start++ {
			//only the first element of each line along j
			if (start/stride)%n != 0 {
				continue
			}
			for k := 0; k < n; k++ {
				line[k] = data[start+k*stride]
			}
			if inverse {
				fft.Sequence(out, line)
			} else {
				fft.Coefficients(out, line)
			}
			for k := 0; k < n; k++ {
				data[start+k*stride] = out[k]
			}
		}
		stride *= n
	}
}

//Fourier is a real multidimensional Fourier series, f(psi) = sum_k c_k exp(i k.psi)
//with c_-k = conj(c_k) and |k_j| <= size[j].
type Fourier struct {
	size  []int
	index MultiIndex //over k_j + size[j]
	coef  []complex128
}

//NewFourier returns a zero series with the given maximum harmonics.
func NewFourier(size []int) *Fourier {
	dims := make([]int, len(size))
	for j, s := range size {
		dims[j] = 2*s + 1
	}
	idx := NewMultiIndex(dims)
	return &Fourier{size: append([]int(nil), size...), index: idx, coef: make([]complex128, idx.Len())}
}

//FourierFromGrid fits the series to values sampled on the uniform grid
//psi_j = 2 pi i_j/dims[j], laid out as in a MultiIndex. The harmonics are truncated at size,
//which needs dims[j] >= 2 size[j] + 1.
func FourierFromGrid(values []float64, dims, size []int) (*Fourier, error) {
	if len(dims) != len(size) {
		return nil, mess.NewConfigError("FourierFromGrid", "%d grid dimensions but %d expansion sizes", len(dims), len(size))
	}
	gi := NewMultiIndex(dims)
	if gi.Len() != len(values) {
		return nil, mess.NewConfigError("FourierFromGrid", "%d values on a grid of %d points", len(values), gi.Len())
	}
	for j := range dims {
		if dims[j] < 2*size[j]+1 {
			return nil, mess.NewConfigError("FourierFromGrid", "grid of %d points can't resolve %d harmonics along dimension %d", dims[j], size[j], j)
		}
	}
	data := make([]complex128, len(values))
	for i, v := range values {
		data[i] = complex(v, 0)
	}
	fftND(data, gi, false)
	f := NewFourier(size)
	norm := complex(float64(len(values)), 0)
	k := make([]int, len(size))
	g := make([]int, len(size))
	for i := range f.coef {
		f.index.Vector(i, k)
		for j := range k {
			k[j] -= size[j]
			g[j] = (k[j] + dims[j]) % dims[j]
		}
		f.coef[i] = data[gi.Index(g)] / norm
	}
	return f, nil
}

//Size returns the maximum harmonic along each dimension.
func (f *Fourier) Size() []int { return f.size }

func (f *Fourier) pos(k []int) (int, bool) {
	i := 0
	for j, d := range f.index.dims {
		v := k[j] + f.size[j]
		if v < 0 || v >= d {
			return 0, false
		}
		i = i*d + v
	}
	return i, true
}

//Coefficient returns c_k, which is zero for harmonics outside the series.
func (f *Fourier) Coefficient(k []int) complex128 {
	if i, ok := f.pos(k); ok {
		return f.coef[i]
	}
	return 0
}

//SetCoefficient sets c_k and c_-k = conj(c).
func (f *Fourier) SetCoefficient(k []int, c complex128) {
	i, ok := f.pos(k)
	if !ok {
		panic(mess.ErrShape)
	}
	mk := make([]int, len(k))
	zero := true
	for j := range k {
		mk[j] = -k[j]
		zero = zero && k[j] == 0
	}
	if zero {
		c = complex(real(c), 0)
	}
	f.coef[i] = c
	i, _ = f.pos(mk)
	f.coef[i] = cmplx.Conj(c)
}

//Derivative returns the partial derivative of the series at psi, of order der[j] along
//each dimension. A nil der gives the value.
func (f *Fourier) Derivative(psi []float64, der []int) float64 {
	var s float64
	k := make([]int, len(f.size))
	for i, c := range f.coef {
		if c == 0 {
			continue
		}
		f.index.Vector(i, k)
		var arg float64
		fac := complex(1, 0)
		for j := range k {
			k[j] -= f.size[j]
			arg += float64(k[j]) * psi[j]
			if der != nil {
				for d := 0; d < der[j]; d++ {
					fac *= complex(0, float64(k[j]))
				}
			}
		}
		s += real(fac * c * cmplx.Exp(complex(0, arg)))
	}
	return s
}

//Value returns the series at psi.
func (f *Fourier) Value(psi []float64) float64 { return f.Derivative(psi, nil) }

//Grid samples the series on the uniform grid with dims points per dimension.
//It needs dims[j] >= 2 size[j] + 1.
func (f *Fourier) Grid(dims []int) ([]float64, error) {
	gi := NewMultiIndex(dims)
	data := make([]complex128, gi.Len())
	k := make([]int, len(f.size))
	g := make([]int, len(f.size))
	for j := range dims {
		if dims[j] < 2*f.size[j]+1 {
			return nil, mess.NewConfigError("Fourier.Grid", "grid of %d points can't hold %d harmonics along dimension %d", dims[j], f.size[j], j)
		}
	}
	for i, c := range f.coef {
		f.index.Vector(i, k)
		for j := range k {
			g[j] = (k[j] - f.size[j] + dims[j]) % dims[j]
		}
		data[gi.Index(g)] = c
	}
	fftND(data, gi, true)
	r := make([]float64, len(data))
	for i, v := range data {
		r[i] = real(v)
	}
	return r, nil
}

//Prune sets to zero the coefficients smaller, in absolute value, than tol times the largest
//non-constant one. It returns the number of remaining non-zero coefficients.
func (f *Fourier) Prune(tol float64) int {
	center := f.index.Index(f.size)
	var max float64
	for i, c := range f.coef {
		if i != center {
			max = math.Max(max, cmplx.Abs(c))
		}
	}
	n := 0
	for i, c := range f.coef {
		if i != center && cmplx.Abs(c) < tol*max {
			f.coef[i] = 0
		}
		if f.coef[i] != 0 {
			n++
		}
	}
	return n
}

//Min returns the lowest value of the series on the uniform grid with dims points, and its grid index.
func (f *Fourier) Min(dims []int) (float64, int, error) {
	v, err := f.Grid(dims)
	if err != nil {
		return 0, 0, mess.ErrDecorate(err, "Fourier.Min")
	}
	min, imin := math.Inf(1), 0
	for i, x := range v {
		if x < min {
			min, imin = x, i
		}
	}
	return min, imin, nil
}
