/*
 * core.go, part of gomess.
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

//Package core implements the global, non-separable, part of a species: the overall rotation
//together with the vibrations and, for MultiRotor, a set of coupled internal rotations.
//All the cores implement mess.Core.
package core

import (
	"math"
	"sync"

	"github.com/rmera/gomess"
)

//powerNumber is mess.PowerNumber, except that a zero power gives a step function that
//is already factor at e = 0.
func powerNumber(factor, power, e float64) float64 {
	if power == 0 {
		if e < 0 {
			return 0
		}
		return factor
	}
	return mess.PowerNumber(factor, power, e)
}

//levelWeight returns sum_i degs[i] exp(-levels[i]/t).
func levelWeight(levels []float64, degs []int, t float64) float64 {
	var s float64
	for i, e := range levels {
		s += float64(degs[i]) * math.Exp(-e/t)
	}
	return s
}

//parallel runs f(i) for i = 0..n-1, split over cpus goroutines.
//Every f(i) must only write to its own i-indexed results.
func parallel(n, cpus int, f func(i int)) {
	if cpus < 1 {
		cpus = 1
	}
	var wg sync.WaitGroup
	for c := 0; c < cpus; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			for i := c; i < n; i += cpus {
				f(i)
			}
		}(c)
	}
	wg.Wait()
}

//statesFromNumber returns the number or the density of states, from the number of states
//function and its derivative.
func statesFromNumber(mode mess.Mode, e float64, number, density func(float64) float64) float64 {
	switch mode {
	case mess.Number:
		return number(e)
	case mess.Density:
		return density(e)
	}
	panic(mess.ErrNoStates)
}
