/*
 * quartic.go, part of gomess.
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

package tunnel

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/rmera/gomess"
)

//Quartic is the tunnel through a barrier described by a quartic polynomial along the reaction
//coordinate, with the right curvature at the top and the right depths on both sides.
//Below the barrier top the action is integrated numerically and splined; above it,
//the parabolic action is used.
type Quartic struct {
	base
	depth  [2]float64
	v3, v4 float64 //cubic and quartic coefficients of the reduced potential
	a, b   float64 //positions of the wells, in reduced units
	unit   float64 //energy unit of the reduced potential (the smaller depth)
	tol    float64
	action *mess.Spline
}

//NewQuartic returns the quartic barrier tunnel. depths are the barrier heights seen from both sides,
//and the cutoff must be smaller than both. tol is the tolerance of the turning point search and
//gridsize the number of points of the action spline; zero or negative values select defaults.
func NewQuartic(freq, cutoff float64, depths []float64, tol float64, gridsize int, set *mess.Settings) (*Quartic, error) {
	b, err := newBase(freq, cutoff, set)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewQuartic")
	}
	if len(depths) != 2 {
		return nil, mess.NewConfigError("NewQuartic", "two well depths needed, got %d", len(depths))
	}
	if tol <= 0 {
		tol = 1e-10
	}
	if gridsize < 3 {
		gridsize = 100
	}
	t := &Quartic{base: b, tol: tol}
	t.depth[0], t.depth[1] = depths[0], depths[1]
	vmin, vmax := math.Min(depths[0], depths[1]), math.Max(depths[0], depths[1])
	if vmin <= 0 {
		return nil, mess.NewConfigError("NewQuartic", "well depths must be positive")
	}
	if cutoff >= vmin {
		return nil, mess.NewConfigError("NewQuartic", "cutoff %g must be below the smaller well depth %g", cutoff, vmin)
	}
	ratio, err := wellRatio(vmax/vmin, tol)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewQuartic")
	}
	t.unit = vmin
	t.b = math.Sqrt(12 * ratio / (2*ratio + 1))
	t.a = ratio * t.b
	t.v3 = (t.a - t.b) / (3 * t.a * t.b)
	t.v4 = -1 / (4 * t.a * t.b)
	x := mess.Grid(0, cutoff, gridsize)
	y := make([]float64, gridsize)
	for i, e := range x {
		if i == gridsize-1 {
			y[i] = 0 //the barrier top
			continue
		}
		y[i], err = t.integral((cutoff - e) / t.unit)
		if err != nil {
			return nil, mess.ErrDecorate(err, "NewQuartic")
		}
	}
	t.action, err = mess.NewSpline(x, y)
	if err != nil {
		return nil, mess.ErrDecorate(err, "NewQuartic")
	}
	t.act = t.Action
	return t, nil
}

//wellRatio solves t^3 (t+2)/(2t+1) = r for t >= 1 with Newton-Raphson.
func wellRatio(r, tol float64) (float64, error) {
	f := func(t float64) float64 { return t * t * t * (t + 2) / (2*t + 1) }
	df := func(t float64) float64 {
		return (3*t*t*(t+2)+t*t*t)/(2*t+1) - 2*t*t*t*(t+2)/((2*t+1)*(2*t+1))
	}
	t := math.Pow(r, 0.25) //the large-ratio limit
	if t < 1 {
		t = 1
	}
	for i := 0; i < 100; i++ {
		dt := (f(t) - r) / df(t)
		t -= dt
		if t < 1 {
			t = 1
		}
		if math.Abs(dt) < tol*t {
			return t, nil
		}
	}
	return 0, mess.NewComputeError("wellRatio", "Newton-Raphson did not converge for depth ratio %g", r)
}

//potential returns the reduced potential (depth below the top) at q, and its derivative.
func (t *Quartic) potential(q float64) (float64, float64) {
	return q*q/2 + t.v3*q*q*q + t.v4*q*q*q*q, q + 3*t.v3*q*q + 4*t.v4*q*q*q
}

//turningPoint finds the q between 0 and end where the reduced potential equals e,
//by Newton-Raphson safeguarded with bisection.
func (t *Quartic) turningPoint(e, end float64) (float64, error) {
	lo, hi := 0.0, end
	q := end / 2
	for i := 0; i < 200; i++ {
		p, dp := t.potential(q)
		p -= e
		//p is increasing in |q| on the bracket
		if p > 0 {
			hi = q
		} else {
			lo = q
		}
		next := q - p/dp
		if dp == 0 || (next-lo)*(next-hi) > 0 {
			next = (lo + hi) / 2
		}
		if math.Abs(next-q) < t.tol*math.Abs(end) {
			return next, nil
		}
		q = next
	}
	return 0, mess.NewComputeError("Quartic.turningPoint", "root search did not converge at reduced energy %g", e)
}

//integral returns the action at the reduced energy e (depth below the top, 0 < e < 1).
func (t *Quartic) integral(e float64) (float64, error) {
	qp, err := t.turningPoint(e, t.a)
	if err != nil {
		return 0, err
	}
	qm, err := t.turningPoint(e, -t.b)
	if err != nil {
		return 0, err
	}
	mid, half := (qp+qm)/2, (qp-qm)/2
	f := func(phi float64) float64 {
		p, _ := t.potential(mid + half*math.Sin(phi))
		return math.Sqrt(math.Max(e-p, 0)) * half * math.Cos(phi)
	}
	in := quad.Fixed(f, -math.Pi/2, math.Pi/2, 64, quad.Legendre{}, 0)
	return 2 * math.Sqrt2 * t.unit / t.freq * in, nil
}

//Action returns the semiclassical action at e, measured from the cutoff, or its derivative.
func (t *Quartic) Action(e float64, der int) float64 {
	checkDer(der)
	if e >= t.cutoff {
		if der == 1 {
			return -2 * math.Pi / t.freq
		}
		return -2 * math.Pi * (e - t.cutoff) / t.freq
	}
	if der == 1 {
		return t.action.Derivative(e)
	}
	return t.action.Value(e)
}
