/*
 * collision.go, part of gomess.
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

package kernel

import (
	"math"

	"github.com/rmera/gomess"
)

// Collision is the interface for the models of the collision frequency.
type Collision interface {

	//Frequency returns the collision rate coefficient (volume/time, atomic units) at temperature t.
	Frequency(t float64) float64
}

//LennardJones gives the collision frequency of two Lennard-Jones particles,
//using the Neufeld fit of the reduced collision integral.
type LennardJones struct {
	epsilon float64
	sigma   float64
	mass    float64 //reduced mass
}

//NewLennardJones combines the Lennard-Jones parameters of the two colliders.
func NewLennardJones(epsilons, sigmas, masses [2]float64) (*LennardJones, error) {
	for i := 0; i < 2; i++ {
		if epsilons[i] <= 0 || sigmas[i] <= 0 || masses[i] <= 0 {
			return nil, mess.NewConfigError("NewLennardJones", "epsilon, sigma and mass must be positive for both colliders")
		}
	}
	return &LennardJones{
		epsilon: math.Sqrt(epsilons[0] * epsilons[1]),
		sigma:   (sigmas[0] + sigmas[1]) / 2,
		mass:    masses[0] * masses[1] / (masses[0] + masses[1]),
	}, nil
}

//ReducedIntegral returns the reduced (2,2) collision integral at the reduced temperature ts.
func ReducedIntegral(ts float64) float64 {
	return 1.16145*math.Pow(ts, -0.14874) + 0.52487*math.Exp(-0.7732*ts) + 2.16178*math.Exp(-2.43787*ts)
}

func (c *LennardJones) Frequency(t float64) float64 {
	return math.Pi * c.sigma * c.sigma * math.Sqrt(8*t/math.Pi/c.mass) * ReducedIntegral(t/c.epsilon)
}

//NewCollision builds the collision model described by c.
func NewCollision(c *mess.CollisionConfig) (Collision, error) {
	switch c.Type {
	case "lennard_jones", "":
		var e, s, m [2]float64
		for i := 0; i < 2; i++ {
			e[i], s[i], m[i] = float64(c.Epsilons[i]), float64(c.Sigmas[i]), float64(c.Masses[i])
		}
		lj, err := NewLennardJones(e, s, m)
		if err != nil {
			return nil, mess.ErrDecorate(err, "kernel.NewCollision")
		}
		return lj, nil
	}
	return nil, mess.NewConfigError("kernel.NewCollision", "unknown collision model %q", c.Type)
}
