/*
 * config.go, part of gomess.
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
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//Input is a complete gomess input document.
type Input struct {
	Settings SettingsConfig  `yaml:"settings"`
	Species  []SpeciesConfig `yaml:"species"`
	Network  *NetworkConfig  `yaml:"network"`
}

//SettingsConfig sets the process-wide options.
type SettingsConfig struct {
	EnergyLimit Energy  `yaml:"energy_limit"`
	EnergyStep  Energy  `yaml:"energy_step"`
	ActionMax   float64 `yaml:"action_max"`
	AtomDistMin Length  `yaml:"atom_dist_min"`
	CPUs        int     `yaml:"cpus"`
	Kernel      struct {
		Up      bool `yaml:"up"`
		Density bool `yaml:"density"`
		NoTrunc bool `yaml:"no_trunc"`
	} `yaml:"kernel_flags"`
}

//Settings returns the default settings modified by the values present in c.
func (c SettingsConfig) Settings() *Settings {
	s := DefaultSettings()
	s.EnergyLimit(float64(c.EnergyLimit))
	s.EnergyStep(float64(c.EnergyStep))
	s.ActionMax(c.ActionMax)
	if c.AtomDistMin > 0 {
		s.AtomDistMin(float64(c.AtomDistMin))
	}
	s.CPUs(c.CPUs)
	var f uint
	if c.Kernel.Up {
		f |= KernelUp
	}
	if c.Kernel.Density {
		f |= KernelDensity
	}
	if c.Kernel.NoTrunc {
		f |= KernelNoTrunc
	}
	s.KernelFlags(f)
	return s
}

//GeometryConfig gives a molecular structure, either inline or as an xyz file.
type GeometryConfig struct {
	Unit  string       `yaml:"unit"` //of the coordinates, angstrom by default
	Atoms []AtomConfig `yaml:"atoms"`
	File  string       `yaml:"file"`
}

//AtomConfig is one atom of a GeometryConfig.
type AtomConfig struct {
	Symbol string     `yaml:"symbol"`
	Pos    [3]float64 `yaml:"pos,flow"`
}

//Geometry builds the geometry and checks that no two atoms are closer than
//the minimal distance in s.
func (c *GeometryConfig) Geometry(s *Settings) (*Geometry, error) {
	unit := c.Unit
	if unit == "" {
		unit = "angstrom"
	}
	f, ok := LengthUnit(unit)
	if !ok {
		return nil, NewConfigError("GeometryConfig.Geometry", "unknown length unit %q", unit)
	}
	atoms := c.Atoms
	if c.File != "" {
		var err error
		atoms, err = readXYZ(c.File)
		if err != nil {
			return nil, ErrDecorate(err, "GeometryConfig.Geometry")
		}
	}
	if len(atoms) == 0 {
		return nil, NewConfigError("GeometryConfig.Geometry", "no atoms given")
	}
	symbols := make([]string, len(atoms))
	coords := make([]float64, 0, 3*len(atoms))
	for i, a := range atoms {
		symbols[i] = a.Symbol
		coords = append(coords, a.Pos[0]*f, a.Pos[1]*f, a.Pos[2]*f)
	}
	g, err := NewGeometry(symbols, coords)
	if err != nil {
		return nil, ErrDecorate(err, "GeometryConfig.Geometry")
	}
	if err := g.CheckInteratomicDistances(s.AtomDistMin()); err != nil {
		return nil, ErrDecorate(err, "GeometryConfig.Geometry")
	}
	return g, nil
}

//readXYZ reads the atoms from a, possibly compressed, xyz file.
func readXYZ(name string) ([]AtomConfig, error) {
	r, closer, err := OpenTable(name)
	if err != nil {
		return nil, ErrDecorate(err, "readXYZ")
	}
	defer closer()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, WrapError(err, ConfigError, "readXYZ", "reading "+name)
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) < 2 {
		return nil, NewConfigError("readXYZ", "%s: truncated file", name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || len(lines) < n+2 {
		return nil, NewConfigError("readXYZ", "%s: bad atom count", name)
	}
	atoms := make([]AtomConfig, n)
	for i := 0; i < n; i++ {
		f := strings.Fields(lines[i+2])
		if len(f) < 4 {
			return nil, NewConfigError("readXYZ", "%s: line %d too short", name, i+3)
		}
		atoms[i].Symbol = f[0]
		for j := 0; j < 3; j++ {
			atoms[i].Pos[j], err = strconv.ParseFloat(f[j+1], 64)
			if err != nil {
				return nil, NewConfigError("readXYZ", "%s: line %d: bad coordinate", name, i+3)
			}
		}
	}
	return atoms, nil
}

//TunnelConfig defines a Tunnel. Type is one of harmonic, eckart, quartic or read.
type TunnelConfig struct {
	Type       string   `yaml:"type"`
	Frequency  Energy   `yaml:"frequency"`   //the magnitude of the imaginary frequency
	Cutoff     Energy   `yaml:"cutoff"`      //measured down from the barrier top
	WellDepths []Energy `yaml:"well_depths"` //eckart and quartic: barrier height seen from both sides
	File       string   `yaml:"file"`        //read: energy, action table
	EnergyUnit string   `yaml:"energy_unit"`
	Tolerance  float64  `yaml:"tolerance"` //quartic root search
	GridSize   int      `yaml:"grid_size"` //quartic action spline
}

//RotationConfig defines an internal rotation on the geometry of the enclosing species.
//Atom indexes start at 0.
type RotationConfig struct {
	Group                  []int  `yaml:"group,flow"`
	Axis                   [2]int `yaml:"axis,flow"`
	Symmetry               int    `yaml:"symmetry"`
	PotentialExpansionSize int    `yaml:"potential_expansion_size"`
	MassExpansionSize      int    `yaml:"mass_expansion_size"`
	HamSizeMin             int    `yaml:"ham_size_min"`
	HamSizeMax             int    `yaml:"ham_size_max"`
	GridSize               int    `yaml:"grid_size"`
}

//InternalRotation builds the internal rotation on the geometry g.
func (c *RotationConfig) InternalRotation(g *Geometry) (*InternalRotation, error) {
	sym := c.Symmetry
	if sym == 0 {
		sym = 1
	}
	r, err := NewInternalRotation(g, c.Group, c.Axis, sym)
	return r, ErrDecorate(err, "RotationConfig.InternalRotation")
}

//RotorConfig defines a Rotor. Type is one of free, hindered or umbrella.
type RotorConfig struct {
	Type               string          `yaml:"type"`
	Rotation           *RotationConfig `yaml:"rotation"`
	RotationalConstant Energy          `yaml:"rotational_constant"` //instead of rotation
	Symmetry           int             `yaml:"symmetry"`
	//hindered rotor potential: cos(k*sym*phi) coefficients for k=1..n, and optional sine ones,
	//or a uniform sampling on [0, 2pi/sym).
	FourierCoefficients []Energy `yaml:"fourier_coefficients"`
	FourierSine         []Energy `yaml:"fourier_sine"`
	PotentialSampling   []Energy `yaml:"potential_sampling"`
	HamSizeMin          int      `yaml:"ham_size_min"`
	HamSizeMax          int      `yaml:"ham_size_max"`
	GridSize            int      `yaml:"grid_size"`
	QuantumWeight       bool     `yaml:"quantum_weight"`
	ThermPowMax         float64  `yaml:"therm_pow_max"`
	//umbrella
	ReducedMass    Mass     `yaml:"reduced_mass"`
	Coordinates    []Length `yaml:"coordinates"`
	Energies       []Energy `yaml:"energies"`
	PolynomialSize int      `yaml:"polynomial_size"`
	BasisSize      int      `yaml:"basis_size"`
}

//LevelConfig is an electronic level.
type LevelConfig struct {
	Energy     Energy `yaml:"energy"`
	Degeneracy int    `yaml:"degeneracy"`
}

//Levels returns the energies and degeneracies of the levels, relative to the lowest one.
//An empty list is a single non-degenerate level.
func Levels(c []LevelConfig) ([]float64, []int, error) {
	if len(c) == 0 {
		return []float64{0}, []int{1}, nil
	}
	e := make([]float64, len(c))
	d := make([]int, len(c))
	min := float64(c[0].Energy)
	for _, l := range c {
		if float64(l.Energy) < min {
			min = float64(l.Energy)
		}
	}
	for i, l := range c {
		if l.Degeneracy < 1 {
			return nil, nil, NewConfigError("Levels", "electronic level %d: degeneracy must be positive", i)
		}
		e[i] = float64(l.Energy) - min
		d[i] = l.Degeneracy
	}
	return e, d, nil
}

//SampleConfig is one point of the potential energy sampling of a MultiRotor.
type SampleConfig struct {
	Angles      []float64 `yaml:"angles,flow"` //degrees
	Energy      Energy    `yaml:"energy"`
	Frequencies []Energy  `yaml:"frequencies,flow"`
	Hessian     []float64 `yaml:"hessian,flow"` //cartesian, lower triangle by rows, atomic units
}

//MultiRotorConfig defines the coupled internal rotations of a MultiRotor core.
type MultiRotorConfig struct {
	Rotations          []RotationConfig `yaml:"rotations"`
	Samples            []SampleConfig   `yaml:"samples"`
	ExternalRotation   bool             `yaml:"external_rotation"`
	ExternalSymmetry   float64          `yaml:"external_symmetry"`
	AmomMax            int              `yaml:"amom_max"`
	LevelEnergyMax     Energy           `yaml:"level_energy_max"`
	ExtraEnergy        Energy           `yaml:"extra_energy"`
	MassTolerance      float64          `yaml:"mass_tolerance"`
	PotentialTolerance float64          `yaml:"potential_tolerance"`
	EnergyGridSize     int              `yaml:"energy_grid_size"`
}

//CoreConfig defines a Core. Type is one of phasespace, rigid, rotd or multirotor.
type CoreConfig struct {
	Type     string          `yaml:"type"`
	Symmetry float64         `yaml:"symmetry"`
	Geometry *GeometryConfig `yaml:"geometry"`
	//phasespace
	Fragments          []GeometryConfig `yaml:"fragments"`
	PotentialPrefactor Energy           `yaml:"potential_prefactor"` //C in V = -C/R^n, bohr^n Hartree
	PotentialPower     float64          `yaml:"potential_power"`
	WeightFactor       float64          `yaml:"weight_factor"` //instead of fragments, atomic units
	WeightPower        float64          `yaml:"weight_power"`
	//rigid
	Frequencies      []Energy      `yaml:"frequencies"`
	Degeneracies     []int         `yaml:"degeneracies"`
	Anharmonicities  [][]Energy    `yaml:"anharmonicities"` //lower triangle
	RovibCouplings   []float64     `yaml:"rovib_couplings"` //relative change of the rotational constant per quantum
	ElectronicLevels []LevelConfig `yaml:"electronic_levels"`
	//rotd
	File       string `yaml:"file"`
	EnergyUnit string `yaml:"energy_unit"`
	//multirotor
	MultiRotor *MultiRotorConfig `yaml:"multirotor"`
}

//ForceConstant is one anharmonic normal mode force constant, in dimensionless normal coordinates.
type ForceConstant struct {
	Modes []int  `yaml:"modes,flow"`
	Value Energy `yaml:"value"`
}

//GraphConfig contains the anharmonic force constants for the perturbative correction.
type GraphConfig struct {
	Cubic   []ForceConstant `yaml:"cubic"`
	Quartic []ForceConstant `yaml:"quartic"`
}

//SpeciesConfig defines a Species. Type is one of rrho, union, barrier, atomic, arrhenius or read.
type SpeciesConfig struct {
	Name       string          `yaml:"name"`
	Type       string          `yaml:"type"`
	Mode       string          `yaml:"mode"`
	ZeroEnergy Energy          `yaml:"zero_energy"`
	Geometry   *GeometryConfig `yaml:"geometry"`
	//rrho
	Core                *CoreConfig   `yaml:"core"`
	Rotors              []RotorConfig `yaml:"rotors"`
	Tunnel              *TunnelConfig `yaml:"tunnel"`
	Frequencies         []Energy      `yaml:"frequencies"`
	Degeneracies        []int         `yaml:"degeneracies"`
	ElectronicLevels    []LevelConfig `yaml:"electronic_levels"`
	Graph               *GraphConfig  `yaml:"graph"`
	InfraredIntensities []float64     `yaml:"infrared_intensities"` //emission rates, 1/s
	//union
	Members []SpeciesConfig `yaml:"members"`
	//barrier
	Inner  []SpeciesConfig `yaml:"inner"`
	Outer  *SpeciesConfig  `yaml:"outer"`
	Method string          `yaml:"method"`
	//atomic
	Symbol string `yaml:"symbol"`
	Mass   Mass   `yaml:"mass"`
	//arrhenius
	Factor           float64 `yaml:"factor"`
	Power            float64 `yaml:"power"`
	ActivationEnergy Energy  `yaml:"activation_energy"`
	Reactant         string  `yaml:"reactant"`
	//read
	File             string  `yaml:"file"`
	EnergyUnit       string  `yaml:"energy_unit"`
	EnergyTolerance  Energy  `yaml:"energy_tolerance"`
	DensityTolerance float64 `yaml:"density_tolerance"`
	Store            string  `yaml:"store"` //name of the table in the grid store
}

//KernelConfig defines an energy transfer kernel. The only type is exponential.
type KernelConfig struct {
	Type      string    `yaml:"type"`
	Factors   []Energy  `yaml:"factors"`
	Powers    []float64 `yaml:"powers"`
	Fractions []float64 `yaml:"fractions"`
	Cutoff    float64   `yaml:"cutoff"`
}

//CollisionConfig defines a collision frequency model. The only type is lennard_jones.
type CollisionConfig struct {
	Type     string    `yaml:"type"`
	Epsilons [2]Energy `yaml:"epsilons,flow"`
	Sigmas   [2]Length `yaml:"sigmas,flow"`
	Masses   [2]Mass   `yaml:"masses,flow"`
}

//EscapeConfig defines an escape channel from a well. Type is constant or fit.
type EscapeConfig struct {
	Type       string  `yaml:"type"`
	Rate       float64 `yaml:"rate"` //1/s
	File       string  `yaml:"file"` //fit: energy, rate (1/s) table
	EnergyUnit string  `yaml:"energy_unit"`
}

//WellConfig is a well of the reaction network.
type WellConfig struct {
	Species   string          `yaml:"species"`
	Kernels   []KernelConfig  `yaml:"kernels"`
	Collision CollisionConfig `yaml:"collision"`
	Escape    *EscapeConfig   `yaml:"escape"`
}

//BimolecularConfig is a pair (or more) of fragments.
type BimolecularConfig struct {
	Name         string   `yaml:"name"`
	Fragments    []string `yaml:"fragments"`
	Dummy        bool     `yaml:"dummy"`
	GroundEnergy Energy   `yaml:"ground_energy"`
}

//BarrierConfig connects two wells or a well and a bimolecular.
type BarrierConfig struct {
	Species string `yaml:"species"`
	From    string `yaml:"from"`
	To      string `yaml:"to"`
}

//NetworkConfig is the reaction network.
type NetworkConfig struct {
	Reference   string              `yaml:"reference"` //species or bimolecular whose ground is the energy zero
	Wells       []WellConfig        `yaml:"wells"`
	Bimolecular []BimolecularConfig `yaml:"bimolecular"`
	Barriers    []BarrierConfig     `yaml:"barriers"`
}

//LoadInput reads and decodes the YAML input file name. Unknown keys are errors.
func LoadInput(name string) (*Input, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, WrapError(err, ConfigError, "LoadInput", "can't read "+name)
	}
	in, err := ParseInput(data)
	return in, ErrDecorate(err, "LoadInput "+name)
}

//ParseInput decodes a YAML input document.
func ParseInput(data []byte) (*Input, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	in := new(Input)
	if err := dec.Decode(in); err != nil {
		return nil, WrapError(err, ConfigError, "ParseInput", "malformed input")
	}
	return in, nil
}
