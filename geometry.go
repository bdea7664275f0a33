/*
 * geometry.go, part of gomess.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/gomess/v3"
)

//Atom contains the information needed about one atom: the element
//and its mass, in atomic units.
type Atom struct {
	Symbol string
	Mass   float64
}

//Geometry is a molecular structure: the atoms and their cartesian coordinates, in bohr.
//The coordinates are never modified by the library, functions return new Geometries.
type Geometry struct {
	Atoms  []Atom
	Coords *v3.Matrix
}

//NewGeometry builds a Geometry from the symbols and the coordinates, in bohr.
//Masses are taken from the isotope table.
func NewGeometry(symbols []string, coords []float64) (*Geometry, error) {
	if len(coords) != 3*len(symbols) {
		return nil, NewConfigError("NewGeometry", "%d atoms but %d coordinates", len(symbols), len(coords))
	}
	g := &Geometry{Atoms: make([]Atom, len(symbols))}
	for i, s := range symbols {
		m, ok := AtomicMass(s)
		if !ok {
			return nil, NewConfigError("NewGeometry", "unknown element %q (atom %d)", s, i)
		}
		g.Atoms[i] = Atom{Symbol: s, Mass: m}
	}
	c := make([]float64, len(coords))
	copy(c, coords)
	var err error
	g.Coords, err = v3.NewMatrix(c)
	if err != nil {
		return nil, WrapError(err, ConfigError, "NewGeometry", "bad coordinates")
	}
	return g, nil
}

//Len returns the number of atoms in the geometry.
func (g *Geometry) Len() int { return len(g.Atoms) }

//Masses returns a slice with the masses of all atoms.
func (g *Geometry) Masses() []float64 {
	r := make([]float64, len(g.Atoms))
	for i, a := range g.Atoms {
		r[i] = a.Mass
	}
	return r
}

//Mass returns the total mass.
func (g *Geometry) Mass() float64 {
	var m float64
	for _, a := range g.Atoms {
		m += a.Mass
	}
	return m
}

//Copy returns a deep copy of g.
func (g *Geometry) Copy() *Geometry {
	r := &Geometry{Atoms: make([]Atom, len(g.Atoms))}
	copy(r.Atoms, g.Atoms)
	r.Coords = g.Coords.Clone()
	return r
}

//ShiftCMToZero returns a copy of g with the center of mass at the origin.
func (g *Geometry) ShiftCMToZero() (*Geometry, error) {
	centered, _, err := v3.MassCentrate(g.Coords, g.Coords, g.Masses())
	if err != nil {
		return nil, WrapError(err, ConfigError, "ShiftCMToZero", "can't centrate geometry")
	}
	r := g.Copy()
	r.Coords = centered
	return r, nil
}

//Distance returns the distance between atoms i and j.
func (g *Geometry) Distance(i, j int) float64 {
	a := g.Coords.RawRowView(i)
	b := g.Coords.RawRowView(j)
	return math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]) + (a[2]-b[2])*(a[2]-b[2]))
}

//CheckInteratomicDistances returns a configuration error if any two atoms are closer than min.
func (g *Geometry) CheckInteratomicDistances(min float64) error {
	for i := 0; i < g.Len(); i++ {
		for j := i + 1; j < g.Len(); j++ {
			if d := g.Distance(i, j); d < min {
				return NewConfigError("CheckInteratomicDistances", "atoms %d (%s) and %d (%s) are %.3f bohr apart, minimum is %.3f",
					i, g.Atoms[i].Symbol, j, g.Atoms[j].Symbol, d, min)
			}
		}
	}
	return nil
}

//InertiaMomentMatrix returns the inertia tensor, relative to the center of mass.
func (g *Geometry) InertiaMomentMatrix() (*mat.SymDense, error) {
	in, err := v3.InertiaTensor(g.Coords, g.Masses())
	if err != nil {
		return nil, WrapError(err, ConfigError, "InertiaMomentMatrix", "can't obtain inertia tensor")
	}
	return in, nil
}

//PrincipalMoments returns the principal moments of inertia, in increasing order.
func (g *Geometry) PrincipalMoments() ([]float64, error) {
	in, err := g.InertiaMomentMatrix()
	if err != nil {
		return nil, ErrDecorate(err, "PrincipalMoments")
	}
	_, vals, err := v3.EigenWrap(v3.Dense2Matrix(mat.DenseCopyOf(in)), 1e-8)
	if err != nil {
		return nil, WrapError(err, ComputeError, "PrincipalMoments", "inertia tensor diagonalization failed")
	}
	return vals, nil
}

//IsLinear returns true if the smallest principal moment is negligible
//compared with the largest.
func IsLinear(moments []float64) bool {
	return moments[0] < 1e-8*moments[len(moments)-1]
}

//RotationalFactor returns the classical rotational partition function factor W and power p
//such that Q_rot(T) = W T^p for the geometry, with symmetry number sym.
//For non-linear molecules W = sqrt(pi*8*I1*I2*I3)/sym and p = 3/2, for linear ones W = 2I/sym and p = 1.
//A single atom has W = 1 and p = 0.
func (g *Geometry) RotationalFactor(sym float64) (float64, float64, error) {
	if g.Len() == 1 {
		return 1, 0, nil
	}
	mom, err := g.PrincipalMoments()
	if err != nil {
		return 0, 0, ErrDecorate(err, "RotationalFactor")
	}
	if IsLinear(mom) {
		return 2 * mom[2] / sym, 1, nil
	}
	return math.Sqrt(math.Pi*8*mom[0]*mom[1]*mom[2]) / sym, 1.5, nil
}

func (g *Geometry) String() string {
	s := fmt.Sprintf("%d\n\n", g.Len())
	for i, a := range g.Atoms {
		r := g.Coords.RawRowView(i)
		s += fmt.Sprintf("%-2s %12.6f %12.6f %12.6f\n", a.Symbol, r[0]/Angstrom, r[1]/Angstrom, r[2]/Angstrom)
	}
	return s
}
