/*
 * multirotor.go, part of gomess.
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

	"gonum.org/v1/gonum/mat"

	"github.com/rmera/gomess"
)

//Rotation is one of the internal rotations of a MultiRotor, with its expansion and basis sizes.
//Zero sizes select defaults.
type Rotation struct {
	*mess.InternalRotation
	PotentialSize int //maximum harmonic of the potential expansion
	MassSize      int //maximum harmonic of the mobility expansion
	HamSizeMin    int //smallest maximum |m| of the quantum basis
	HamSizeMax    int
	GridSize      int //number of potential samples along this rotation
}

//Sample is a point of the potential sampling.
type Sample struct {
	Angles      []float64 //rotation angles, in radians, from the reference geometry
	Energy      float64
	Frequencies []float64     //vibrational frequencies of the other modes, can be nil
	Hessian     mat.Symmetric //cartesian force constants, used if Frequencies is nil
}

//MultiRotor is a core made of several coupled internal rotations, optionally together with the
//overall rotation. Low energy states come from the quantum levels of the rotations, and the high energy ones
//from the classical phase space volume, corrected to match the quantum count. The vibrations of the other
//modes only enter through their zero-point energy, which is added to the potential.
type MultiRotor struct {
	geom     *mess.Geometry
	rots     []Rotation
	introts  []*mess.InternalRotation
	sym      []float64
	opts     MultiRotorOptions
	mode     mess.Mode
	cpus     int
	pot      *Fourier     //minimum at zero
	vib      []*Fourier   //vibrational frequencies
	mobility [][]*Fourier //lower triangle of the inverse internal mass matrix
	erf      *Fourier     //sqrt(I1 I2 I3), nil without external rotation
	potMin   float64      //potential minimum, in the input energy origin

	levels  []float64 //quantum levels relative to the potential minimum
	meanErf []float64
	ground  float64

	cgrid   classicalGrid
	cstates *mess.Spline
	qfactor *mess.Spline
	qmax    float64
	qend    float64
	nstates *mess.Spline //corrected number of states, monotone
	nend    float64
}

//NewMultiRotor builds the model from the geometry g, its internal rotations and the potential samples,
//which must cover a uniform grid on [0, 2pi/sym) along each rotation.
func NewMultiRotor(g *mess.Geometry, rots []Rotation, samples []Sample, o *MultiRotorOptions, mode mess.Mode, set *mess.Settings) (*MultiRotor, error) {
	mess.MustMode(mode)
	if len(rots) == 0 {
		return nil, mess.NewConfigError("NewMultiRotor", "no internal rotations")
	}
	if o == nil {
		o = DefaultMultiRotorOptions(set)
	}
	if o.extraEnergy <= o.levelEnergyMax {
		return nil, mess.NewConfigError("NewMultiRotor", "the classical states (up to %g) don't reach the quantum levels (up to %g)", o.extraEnergy, o.levelEnergyMax)
	}
	m := &MultiRotor{geom: g, rots: rots, opts: *o, mode: mode, cpus: set.CPUs()}
	for _, r := range rots {
		m.introts = append(m.introts, r.InternalRotation)
		m.sym = append(m.sym, float64(r.Symmetry()))
	}
	if err := m.setPotential(samples); err != nil {
		return nil, mess.ErrDecorate(err, "NewMultiRotor")
	}
	if err := m.setMobility(); err != nil {
		return nil, mess.ErrDecorate(err, "NewMultiRotor")
	}
	if err := m.setLevels(); err != nil {
		return nil, mess.ErrDecorate(err, "NewMultiRotor")
	}
	if err := m.setClassical(); err != nil {
		return nil, mess.ErrDecorate(err, "NewMultiRotor")
	}
	if err := m.setQFactor(); err != nil {
		return nil, mess.ErrDecorate(err, "NewMultiRotor")
	}
	if err := m.setNumber(); err != nil {
		return nil, mess.ErrDecorate(err, "NewMultiRotor")
	}
	return m, nil
}

//psi turns rotation angles into the reduced angles sym*phi, on which all the expansions depend.
func (m *MultiRotor) psi(phi []float64) []float64 {
	r := make([]float64, len(phi))
	for j, p := range phi {
		r[j] = p * m.sym[j]
	}
	return r
}

//rotate returns the geometry with the internal rotations turned by the angles phi.
func (m *MultiRotor) rotate(phi []float64) (*mess.Geometry, error) {
	g := m.geom
	var err error
	for j, r := range m.introts {
		if phi[j] == 0 {
			continue
		}
		if g, err = r.Rotate(g, phi[j]); err != nil {
			return nil, mess.ErrDecorate(err, "MultiRotor.rotate")
		}
	}
	return g, nil
}

//samplingDims returns the number of samples along each rotation, inferring it from the
//distinct sampled angles when not given.
func (m *MultiRotor) samplingDims(samples []Sample) []int {
	dims := make([]int, len(m.rots))
	for j, r := range m.rots {
		if r.GridSize > 0 {
			dims[j] = r.GridSize
			continue
		}
		seen := make(map[int64]bool)
		for _, s := range samples {
			p := math.Mod(s.Angles[j]*m.sym[j], 2*math.Pi)
			if p < 0 {
				p += 2 * math.Pi
			}
			if 2*math.Pi-p < 1e-6 {
				p = 0
			}
			seen[int64(math.Round(p*1e6))] = true
		}
		dims[j] = len(seen)
	}
	return dims
}

//setPotential places the samples on the uniform grid and expands the potential, plus
//the vibrational zero-point energy, and the vibrational frequencies.
func (m *MultiRotor) setPotential(samples []Sample) error {
	k := len(m.rots)
	if len(samples) == 0 {
		return mess.NewConfigError("setPotential", "no potential samples")
	}
	for i, s := range samples {
		if len(s.Angles) != k {
			return mess.NewConfigError("setPotential", "sample %d has %d angles, %d expected", i, len(s.Angles), k)
		}
	}
	dims := m.samplingDims(samples)
	idx := NewMultiIndex(dims)
	if idx.Len() != len(samples) {
		return mess.NewConfigError("setPotential", "%d samples don't fill a %v grid", len(samples), dims)
	}
	energy := make([]float64, idx.Len())
	filled := make([]bool, idx.Len())
	freqs := make([][]float64, idx.Len())
	v := make([]int, k)
	for i, s := range samples {
		for j := range v {
			x := s.Angles[j] * m.sym[j] * float64(dims[j]) / (2 * math.Pi)
			n := math.Round(x)
			if math.Abs(x-n) > 1e-3 {
				return mess.NewConfigError("setPotential", "sample %d is not on the uniform grid", i)
			}
			v[j] = ((int(n) % dims[j]) + dims[j]) % dims[j]
		}
		l := idx.Index(v)
		if filled[l] {
			return mess.NewConfigError("setPotential", "sample %d repeats a grid point", i)
		}
		filled[l] = true
		energy[l] = s.Energy
		f, err := m.sampleFrequencies(s)
		if err != nil {
			return mess.ErrDecorate(err, "setPotential")
		}
		freqs[l] = f
	}
	nvib := len(freqs[0])
	for i, f := range freqs {
		if len(f) != nvib {
			return mess.NewConfigError("setPotential", "grid point %d has %d vibrational frequencies, %d expected", i, len(f), nvib)
		}
		energy[i] += mess.ZeroPointEnergy(f)
	}
	size := make([]int, k)
	for j, r := range m.rots {
		size[j] = r.PotentialSize
		if size[j] <= 0 || 2*size[j]+1 > dims[j] {
			size[j] = (dims[j] - 1) / 2
		}
	}
	var err error
	if m.pot, err = FourierFromGrid(energy, dims, size); err != nil {
		return mess.ErrDecorate(err, "setPotential")
	}
	m.pot.Prune(m.opts.potTol)
	column := make([]float64, len(freqs))
	for a := 0; a < nvib; a++ {
		for i := range freqs {
			column[i] = freqs[i][a]
		}
		f, err := FourierFromGrid(column, dims, size)
		if err != nil {
			return mess.ErrDecorate(err, "setPotential")
		}
		m.vib = append(m.vib, f)
	}
	//the minimum on a fine grid sets the energy origin
	fine := make([]int, k)
	for j := range fine {
		fine[j] = 8*size[j] + 8
	}
	min, _, err := m.pot.Min(fine)
	if err != nil {
		return mess.ErrDecorate(err, "setPotential")
	}
	m.potMin = min
	c0 := m.pot.Coefficient(make([]int, k))
	m.pot.SetCoefficient(make([]int, k), c0-complex(min, 0))
	return nil
}

//sampleFrequencies returns the vibrational frequencies of a sample, projecting its Hessian if needed.
func (m *MultiRotor) sampleFrequencies(s Sample) ([]float64, error) {
	if s.Frequencies != nil || s.Hessian == nil {
		return s.Frequencies, nil
	}
	g, err := m.rotate(s.Angles)
	if err != nil {
		return nil, mess.ErrDecorate(err, "sampleFrequencies")
	}
	f, err := mess.ProjectedFrequencies(g, s.Hessian, m.introts)
	return f, mess.ErrDecorate(err, "sampleFrequencies")
}

//setMobility samples the inverse internal mass matrix, and the external rotation factor,
//on a uniform grid and expands them.
func (m *MultiRotor) setMobility() error {
	k := len(m.rots)
	size := make([]int, k)
	dims := make([]int, k)
	for j, r := range m.rots {
		size[j] = r.MassSize
		if size[j] <= 0 {
			size[j] = 4
		}
		dims[j] = 2*size[j] + 1
	}
	idx := NewMultiIndex(dims)
	n := idx.Len()
	mob := make([][]float64, k*(k+1)/2)
	for i := range mob {
		mob[i] = make([]float64, n)
	}
	erf := make([]float64, n)
	errs := make([]error, n)
	parallel(n, m.cpus, func(i int) {
		v := idx.Vector(i, nil)
		phi := make([]float64, k)
		for j := range phi {
			phi[j] = 2 * math.Pi * float64(v[j]) / float64(dims[j]) / m.sym[j]
		}
		g, err := m.rotate(phi)
		if err != nil {
			errs[i] = err
			return
		}
		mass, det, err := mess.InternalMassMatrix(g, m.introts)
		if err != nil {
			errs[i] = err
			return
		}
		var chol mat.Cholesky
		if ok := chol.Factorize(mass); !ok {
			errs[i] = mess.NewComputeError("setMobility", "internal mass matrix not positive definite at grid point %d", i)
			return
		}
		var inv mat.SymDense
		if err := chol.InverseTo(&inv); err != nil {
			errs[i] = mess.WrapError(err, mess.ComputeError, "setMobility", "internal mass matrix inversion failed")
			return
		}
		l := 0
		for a := 0; a < k; a++ {
			for b := 0; b <= a; b++ {
				mob[l][i] = inv.At(a, b)
				l++
			}
		}
		erf[i] = math.Sqrt(det)
	})
	for _, err := range errs {
		if err != nil {
			return mess.ErrDecorate(err, "setMobility")
		}
	}
	m.mobility = make([][]*Fourier, k)
	l := 0
	for a := 0; a < k; a++ {
		m.mobility[a] = make([]*Fourier, a+1)
		for b := 0; b <= a; b++ {
			f, err := FourierFromGrid(mob[l], dims, size)
			if err != nil {
				return mess.ErrDecorate(err, "setMobility")
			}
			f.Prune(m.opts.massTol)
			m.mobility[a][b] = f
			l++
		}
	}
	if m.opts.externalRotation {
		f, err := FourierFromGrid(erf, dims, size)
		if err != nil {
			return mess.ErrDecorate(err, "setMobility")
		}
		f.Prune(m.opts.massTol)
		m.erf = f
	}
	return nil
}

func (m *MultiRotor) mob(a, b int) *Fourier {
	if a < b {
		a, b = b, a
	}
	return m.mobility[a][b]
}

//InternalSize returns the number of internal rotations.
func (m *MultiRotor) InternalSize() int { return len(m.rots) }

//Symmetry returns the symmetry number of the i-th internal rotation.
func (m *MultiRotor) Symmetry(i int) int { return m.rots[i].Symmetry() }

func (m *MultiRotor) ExternalSymmetry() float64 { return m.opts.externalSymmetry }

//PotentialMinimum returns the minimum of the sampled potential, including the vibrational
//zero-point energy, in the energy origin of the samples.
func (m *MultiRotor) PotentialMinimum() float64 { return m.potMin }

//Potential returns the partial derivative of the potential at the angles phi, of order der[j]
//along each rotation (nil der gives the value). The minimum of the potential is zero.
func (m *MultiRotor) Potential(phi []float64, der []int) float64 {
	v := m.pot.Derivative(m.psi(phi), der)
	for j, d := range der {
		v *= math.Pow(m.sym[j], float64(d))
	}
	return v
}

//PotentialGradient returns the first derivatives of the potential at phi.
func (m *MultiRotor) PotentialGradient(phi []float64) []float64 {
	k := len(phi)
	r := make([]float64, k)
	der := make([]int, k)
	for j := range r {
		der[j] = 1
		r[j] = m.Potential(phi, der)
		der[j] = 0
	}
	return r
}

//ForceConstantMatrix returns the second derivatives of the potential at phi.
func (m *MultiRotor) ForceConstantMatrix(phi []float64) *mat.SymDense {
	k := len(phi)
	r := mat.NewSymDense(k, nil)
	der := make([]int, k)
	for a := 0; a < k; a++ {
		for b := 0; b <= a; b++ {
			der[a]++
			der[b]++
			r.SetSym(a, b, m.Potential(phi, der))
			der[a], der[b] = 0, 0
		}
	}
	return r
}

//Mobility returns the inverse of the internal mass matrix at phi.
func (m *MultiRotor) Mobility(phi []float64) *mat.SymDense {
	k := len(phi)
	psi := m.psi(phi)
	r := mat.NewSymDense(k, nil)
	for a := 0; a < k; a++ {
		for b := 0; b <= a; b++ {
			r.SetSym(a, b, m.mobility[a][b].Value(psi))
		}
	}
	return r
}

//Mass returns the internal mass matrix at phi, from the mobility expansion.
func (m *MultiRotor) Mass(phi []float64) (*mat.SymDense, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(m.Mobility(phi)); !ok {
		return nil, mess.NewComputeError("MultiRotor.Mass", "mobility not positive definite")
	}
	var r mat.SymDense
	if err := chol.InverseTo(&r); err != nil {
		return nil, mess.WrapError(err, mess.ComputeError, "MultiRotor.Mass", "mobility inversion failed")
	}
	return &r, nil
}

//Vibration returns the vibrational frequencies at phi.
func (m *MultiRotor) Vibration(phi []float64) []float64 {
	psi := m.psi(phi)
	r := make([]float64, len(m.vib))
	for i, f := range m.vib {
		r[i] = f.Value(psi)
	}
	return r
}

//ExternalRotationFactor returns sqrt(I1 I2 I3) at phi, or zero if the overall rotation is not included.
func (m *MultiRotor) ExternalRotationFactor(phi []float64) float64 {
	if m.erf == nil {
		return 0
	}
	return m.erf.Value(m.psi(phi))
}

//Frequencies returns the local harmonic frequencies of the internal rotations at phi.
//Imaginary frequencies are returned as negative numbers.
func (m *MultiRotor) Frequencies(phi []float64) ([]float64, error) {
	f, err := localFrequencies(m.Mobility(phi), m.ForceConstantMatrix(phi))
	return f, mess.ErrDecorate(err, "MultiRotor.Frequencies")
}

//localFrequencies returns the signed square roots of the eigenvalues of mobility*force.
func localFrequencies(mobility, force *mat.SymDense) ([]float64, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(mobility); !ok {
		return nil, mess.NewComputeError("localFrequencies", "mobility not positive definite")
	}
	var l mat.TriDense
	chol.LTo(&l)
	k, _ := l.Dims()
	var tmp, prod mat.Dense
	tmp.Mul(force, &l)
	prod.Mul(l.T(), &tmp)
	sym := mat.NewSymDense(k, nil)
	for a := 0; a < k; a++ {
		for b := 0; b <= a; b++ {
			sym.SetSym(a, b, (prod.At(a, b)+prod.At(b, a))/2)
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, mess.NewComputeError("localFrequencies", "diagonalization failed")
	}
	vals := es.Values(nil)
	for i, v := range vals {
		vals[i] = math.Copysign(math.Sqrt(math.Abs(v)), v)
	}
	return vals, nil
}

//Levels returns the quantum levels, relative to the potential minimum.
func (m *MultiRotor) Levels() []float64 { return m.levels }

//Ground returns the lowest quantum level, relative to the potential minimum.
func (m *MultiRotor) Ground() float64 { return m.ground }

func (m *MultiRotor) Mode() mess.Mode { return m.mode }
