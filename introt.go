/*
 * introt.go, part of gomess.
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

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/gomess/v3"
)

//InternalRotation describes the geometry of one internal rotation: the group of atoms
//that moves, the two atoms that define the rotation axis, and the symmetry number.
//Rotors and the MultiRotor core hold one of these instead of recomputing the geometry themselves.
type InternalRotation struct {
	group    []int
	axis     [2]int
	symmetry int
}

//NewInternalRotation checks the definition against the geometry g and returns the internal rotation.
//The axis atoms must not belong to the moving group, except for the first one, which is allowed
//(but ignored) because some people like to list it.
func NewInternalRotation(g *Geometry, group []int, axis [2]int, symmetry int) (*InternalRotation, error) {
	if symmetry < 1 {
		return nil, NewConfigError("NewInternalRotation", "symmetry number must be positive, got %d", symmetry)
	}
	if len(group) == 0 {
		return nil, NewConfigError("NewInternalRotation", "empty moving group")
	}
	for _, a := range axis {
		if a < 0 || a >= g.Len() {
			return nil, NewConfigError("NewInternalRotation", "axis atom %d out of range", a)
		}
	}
	if axis[0] == axis[1] {
		return nil, NewConfigError("NewInternalRotation", "the two axis atoms are the same")
	}
	seen := make(map[int]bool)
	r := &InternalRotation{axis: axis, symmetry: symmetry}
	for _, i := range group {
		if i < 0 || i >= g.Len() {
			return nil, NewConfigError("NewInternalRotation", "group atom %d out of range", i)
		}
		if i == axis[1] {
			return nil, NewConfigError("NewInternalRotation", "second axis atom %d belongs to the moving group", i)
		}
		if seen[i] || i == axis[0] {
			continue
		}
		seen[i] = true
		r.group = append(r.group, i)
	}
	if len(r.group) == 0 {
		return nil, NewConfigError("NewInternalRotation", "moving group has no atoms off the axis")
	}
	return r, nil
}

//Symmetry returns the symmetry number of the rotation.
func (r *InternalRotation) Symmetry() int { return r.symmetry }

//Group returns the indexes of the moving atoms.
func (r *InternalRotation) Group() []int { return r.group }

//axisVectors returns the first axis atom position and the unit axis vector.
func (r *InternalRotation) axisVectors(g *Geometry) (*v3.Matrix, *v3.Matrix) {
	a := g.Coords.VecView(r.axis[0]).Clone()
	n := v3.Zeros(1)
	n.Sub(g.Coords.VecView(r.axis[1]).Dense, a.Dense)
	n.Unit(n)
	return a, n
}

//Rotate returns a copy of g where the moving group has been rotated by angle radians.
func (r *InternalRotation) Rotate(g *Geometry, angle float64) (*Geometry, error) {
	moving := v3.Zeros(len(r.group))
	if err := moving.SomeVecsSafe(g.Coords, r.group); err != nil {
		return nil, WrapError(err, ConfigError, "InternalRotation.Rotate", "the rotating group is not in the geometry")
	}
	rotated, err := v3.RotateAbout(moving, g.Coords.VecView(r.axis[0]), g.Coords.VecView(r.axis[1]), angle)
	if err != nil {
		return nil, WrapError(err, ConfigError, "InternalRotation.Rotate", "can't rotate group")
	}
	ret := g.Copy()
	ret.Coords.SetVecs(rotated, r.group)
	return ret, nil
}

//displacement returns the cartesian displacement of all atoms for a unit increase of the
//rotation angle, with the overall translation removed.
func (r *InternalRotation) displacement(g *Geometry) []float64 {
	a, n := r.axisVectors(g)
	d := make([]float64, 3*g.Len())
	tmp := v3.Zeros(1)
	rel := v3.Zeros(1)
	for _, i := range r.group {
		rel.Sub(g.Coords.VecView(i).Dense, a.Dense)
		tmp.Cross(n, rel)
		copy(d[3*i:3*i+3], tmp.RawRowView(0))
	}
	removeTranslation(d, g.Masses())
	return d
}

//removeTranslation subtracts the center of mass motion from the cartesian displacement d.
func removeTranslation(d, masses []float64) {
	var com [3]float64
	total := floats.Sum(masses)
	for i, m := range masses {
		for j := 0; j < 3; j++ {
			com[j] += m * d[3*i+j] / total
		}
	}
	for i := range masses {
		for j := 0; j < 3; j++ {
			d[3*i+j] -= com[j]
		}
	}
}

//rotationDisplacements returns the displacements of all atoms for unit overall rotations around x, y and z,
//centered in the center of mass.
func rotationDisplacements(g *Geometry) ([3][]float64, error) {
	var ret [3][]float64
	centered, err := g.ShiftCMToZero()
	if err != nil {
		return ret, ErrDecorate(err, "rotationDisplacements")
	}
	for k := 0; k < 3; k++ {
		ret[k] = make([]float64, 3*g.Len())
		for i := 0; i < g.Len(); i++ {
			p := centered.Coords.RawRowView(i)
			//e_k x p
			ret[k][3*i+(k+1)%3] = p[(k+2)%3]
			ret[k][3*i+(k+2)%3] = -p[(k+1)%3]
		}
	}
	return ret, nil
}

func massDot(a, b, masses []float64) float64 {
	var s float64
	for i, m := range masses {
		s += m * (a[3*i]*b[3*i] + a[3*i+1]*b[3*i+1] + a[3*i+2]*b[3*i+2])
	}
	return s
}

//MassMetric returns the kinetic metric of the overall rotations (first three coordinates)
//and the internal rotations rots (the rest), at the geometry g. The kinetic energy is
//1/2 q'^T G q', where q' are the angular velocities.
func MassMetric(g *Geometry, rots []*InternalRotation) (*mat.SymDense, error) {
	rd, err := rotationDisplacements(g)
	if err != nil {
		return nil, ErrDecorate(err, "MassMetric")
	}
	dim := 3 + len(rots)
	disp := make([][]float64, dim)
	for i := 0; i < 3; i++ {
		disp[i] = rd[i]
	}
	for i, r := range rots {
		disp[3+i] = r.displacement(g)
	}
	masses := g.Masses()
	G := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			G.SetSym(i, j, massDot(disp[i], disp[j], masses))
		}
	}
	return G, nil
}

//InternalMassMatrix returns the effective mass (inertia) matrix of the internal rotations
//rots when the overall angular momentum is zero, that is, the Schur complement of the overall
//rotation block of the full metric. It also returns the determinant of the rotational block
//(the product of the principal moments of inertia).
func InternalMassMatrix(g *Geometry, rots []*InternalRotation) (*mat.SymDense, float64, error) {
	G, err := MassMetric(g, rots)
	if err != nil {
		return nil, 0, ErrDecorate(err, "InternalMassMatrix")
	}
	k := len(rots)
	rr := mat.NewDense(3, 3, nil)
	ri := mat.NewDense(3, k, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rr.Set(i, j, G.At(i, j))
		}
		for j := 0; j < k; j++ {
			ri.Set(i, j, G.At(i, 3+j))
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(rr); err != nil {
		return nil, 0, NewComputeError("InternalMassMatrix", "singular inertia tensor: linear molecules are not supported")
	}
	var tmp, corr mat.Dense
	tmp.Mul(&inv, ri)
	corr.Mul(ri.T(), &tmp)
	M := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			M.SetSym(i, j, G.At(3+i, 3+j)-corr.At(i, j))
		}
	}
	return M, mat.Det(rr), nil
}

//ReducedInertia returns the effective moment of inertia of the rotation at the geometry g.
//The rotational constant is 1/(2 I).
func (r *InternalRotation) ReducedInertia(g *Geometry) (float64, error) {
	M, _, err := InternalMassMatrix(g, []*InternalRotation{r})
	if err != nil {
		return 0, ErrDecorate(err, "ReducedInertia")
	}
	return M.At(0, 0), nil
}

//NormalMode returns the mass-weighted, normalized, cartesian displacement of the internal
//rotation, with the overall translations and rotations projected out.
func (r *InternalRotation) NormalMode(g *Geometry) ([]float64, error) {
	d := r.displacement(g)
	rd, err := rotationDisplacements(g)
	if err != nil {
		return nil, ErrDecorate(err, "NormalMode")
	}
	masses := g.Masses()
	sq := make([]float64, len(d))
	for i, m := range masses {
		for j := 0; j < 3; j++ {
			sq[3*i+j] = sqrt(m)
		}
	}
	floats.Mul(d, sq)
	var basis [][]float64
	for _, v := range rd {
		floats.Mul(v, sq)
		basis = append(basis, v)
	}
	basis = append(basis, d)
	vecs := gramSchmidt(basis)
	if len(vecs) < 4 || vecs[len(vecs)-1] == nil {
		return nil, NewComputeError("NormalMode", "internal rotation is an overall rotation")
	}
	return vecs[len(vecs)-1], nil
}
