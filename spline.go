/*
 * spline.go, part of gomess.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

//Spline is a monotone cubic interpolation of a tabulated function, with power-law
//extrapolation above the table and, optionally, below it. A Spline is never
//modified after it is built, so it can be evaluated from several goroutines.
type Spline struct {
	x, y     []float64
	fit      interp.FritschButland
	powAbove float64
	powBelow float64
	lawBelow bool //use a power law below the table instead of a straight line
	lawAbove bool
}

//NewSpline fits a spline to the (x, y) pairs. x must be strictly increasing,
//and there must be at least 3 points. The data is copied.
func NewSpline(x, y []float64) (*Spline, error) {
	if len(x) != len(y) {
		return nil, NewConfigError("NewSpline", "%d abscissas but %d ordinates", len(x), len(y))
	}
	if len(x) < 3 {
		return nil, NewConfigError("NewSpline", "at least 3 points are needed, got %d", len(x))
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return nil, NewConfigError("NewSpline", "abscissas not strictly increasing at point %d", i)
		}
	}
	s := &Spline{x: make([]float64, len(x)), y: make([]float64, len(y))}
	copy(s.x, x)
	copy(s.y, y)
	if err := s.fit.Fit(s.x, s.y); err != nil {
		return nil, WrapError(err, ComputeError, "NewSpline", "spline fit failed")
	}
	n := len(x)
	s.powAbove, s.lawAbove = powerLaw(s.x[n-2], s.y[n-2], s.x[n-1], s.y[n-1])
	return s, nil
}

//powerLaw returns the exponent p such that y2/y1 = (x2/x1)^p, and whether such
//a power law exists.
func powerLaw(x1, y1, x2, y2 float64) (float64, bool) {
	if x1 <= 0 || x2 <= 0 || y1 <= 0 || y2 <= 0 || x1 == x2 {
		return 0, false
	}
	return math.Log(y2/y1) / math.Log(x2/x1), true
}

//PowerBelow switches on power-law extrapolation below the table, fitted on the
//first two points. It returns false, and changes nothing, if no power law can be fitted.
func (s *Spline) PowerBelow() bool {
	p, ok := powerLaw(s.x[0], s.y[0], s.x[1], s.y[1])
	if ok {
		s.powBelow = p
		s.lawBelow = true
	}
	return ok
}

//Min returns the lowest abscissa of the table
func (s *Spline) Min() float64 { return s.x[0] }

//Max returns the highest abscissa of the table
func (s *Spline) Max() float64 { return s.x[len(s.x)-1] }

//Exponent returns the power-law exponent used above the table.
func (s *Spline) Exponent() float64 { return s.powAbove }

//Value returns the interpolated (or extrapolated) value at x.
func (s *Spline) Value(x float64) float64 {
	n := len(s.x)
	switch {
	case x > s.x[n-1]:
		if s.lawAbove {
			return s.y[n-1] * math.Pow(x/s.x[n-1], s.powAbove)
		}
		return s.y[n-1] + s.slope(n-2)*(x-s.x[n-1])
	case x < s.x[0]:
		if s.lawBelow {
			if x <= 0 {
				return 0
			}
			return s.y[0] * math.Pow(x/s.x[0], s.powBelow)
		}
		return s.y[0] + s.slope(0)*(x-s.x[0])
	}
	return s.fit.Predict(x)
}

//Derivative returns the first derivative of the interpolation at x.
func (s *Spline) Derivative(x float64) float64 {
	n := len(s.x)
	switch {
	case x > s.x[n-1]:
		if s.lawAbove {
			return s.powAbove * s.Value(x) / x
		}
		return s.slope(n - 2)
	case x < s.x[0]:
		if s.lawBelow {
			if x <= 0 {
				return 0
			}
			return s.powBelow * s.Value(x) / x
		}
		return s.slope(0)
	}
	return s.fit.PredictDerivative(x)
}

func (s *Spline) slope(i int) float64 {
	return (s.y[i+1] - s.y[i]) / (s.x[i+1] - s.x[i])
}

//StatesSpline interpolates a number of states tabulated on an energy grid
//that starts at the ground energy. Below the ground it is exactly zero.
type StatesSpline struct {
	ground float64
	sp     *Spline
}

//NewStatesSpline builds a StatesSpline from a number of states array nos,
//tabulated on the grid ground + i*step. Small decreases, from rounding in the
//convolutions, are flattened.
func NewStatesSpline(ground, step float64, nos []float64) (*StatesSpline, error) {
	if len(nos) < 3 {
		return nil, NewConfigError("NewStatesSpline", "energy grid too small: %d points", len(nos))
	}
	x := make([]float64, 0, len(nos))
	y := make([]float64, 0, len(nos))
	for i, v := range nos {
		if i > 0 && len(y) > 0 && v < y[len(y)-1] {
			v = y[len(y)-1] //rounding noise from the convolutions
		}
		x = append(x, float64(i)*step)
		y = append(y, v)
	}
	sp, err := NewSpline(x, y)
	if err != nil {
		return nil, ErrDecorate(err, "NewStatesSpline")
	}
	return &StatesSpline{ground: ground, sp: sp}, nil
}

//Ground returns the lowest energy of the spline.
func (s *StatesSpline) Ground() float64 { return s.ground }

//ShiftGround moves the energy origin of the spline by de.
func (s *StatesSpline) ShiftGround(de float64) { s.ground += de }

//Number returns the number of states at the energy e.
func (s *StatesSpline) Number(e float64) float64 {
	e -= s.ground
	if e <= 0 {
		return 0
	}
	return math.Max(s.sp.Value(e), 0)
}

//Density returns the density of states at the energy e.
func (s *StatesSpline) Density(e float64) float64 {
	e -= s.ground
	if e <= 0 {
		return 0
	}
	return math.Max(s.sp.Derivative(e), 0)
}

//States returns the number or the density of states depending on mode.
func (s *StatesSpline) States(e float64, mode Mode) float64 {
	switch mode {
	case Number:
		return s.Number(e)
	case Density:
		return s.Density(e)
	}
	panic(ErrNoStates)
}

//Exponent returns the power-law exponent of the high-energy extrapolation.
func (s *StatesSpline) Exponent() float64 { return s.sp.Exponent() }

//Grid returns n equally spaced points from a to b, both included.
func Grid(a, b float64, n int) []float64 {
	r := make([]float64, n)
	return floats.Span(r, a, b)
}
