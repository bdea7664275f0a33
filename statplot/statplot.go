/*
 * statplot.go, part of gomess.
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

//Package statplot draws numbers of states and partition functions as PNG (or any
//other format gonum plot knows, by the file extension) figures.
package statplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/gomess"
)

//StateCounter is anything with states to plot, such as a species.
type StateCounter interface {
	Name() string
	States(e float64) float64
}

//Weighter is anything with a partition function to plot.
type Weighter interface {
	Name() string
	Weight(t float64) float64
}

func basicPlot(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true
	return p
}

//addCurve adds the positive points of f on n equally spaced abscissas from a to b
//(in atomic units) to p, with the abscissas divided by unit.
func addCurve(p *plot.Plot, name string, key, keys int, a, b, unit float64, n int, f func(float64) float64) error {
	xys := make(plotter.XYs, 0, n)
	for _, x := range mess.Grid(a, b, n) {
		y := f(x)
		if y <= 0 || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: x / unit, Y: y})
	}
	if len(xys) < 2 {
		return mess.NewComputeError("addCurve", "%s: fewer than 2 positive points to plot", name)
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return mess.WrapError(err, mess.ComputeError, "addCurve", name)
	}
	r, g, bl := colors(key, keys)
	l.LineStyle.Color = color.RGBA{R: r, G: g, B: bl, A: 255}
	l.LineStyle.Width = vg.Points(1.5)
	p.Add(l)
	p.Legend.Add(name, l)
	return nil
}

//States plots the states of every model on n points from emin to emax (atomic units),
//with energies in kcal/mol, to the file file.
func States(models []StateCounter, emin, emax float64, n int, file string) error {
	if len(models) == 0 || n < 2 || emax <= emin {
		return mess.NewConfigError("statplot.States", "nothing to plot")
	}
	p := basicPlot("States", "E (kcal/mol)", "N(E), rho(E)")
	for i, m := range models {
		if err := addCurve(p, m.Name(), i, len(models), emin, emax, mess.Kcal, n, m.States); err != nil {
			return mess.ErrDecorate(err, "statplot.States")
		}
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, file); err != nil {
		return mess.WrapError(err, mess.ComputeError, "statplot.States", "can't save "+file)
	}
	return nil
}

//Weights plots the partition functions of every model on n points from tmin to tmax
//(atomic units), with temperatures in K, to the file file.
func Weights(models []Weighter, tmin, tmax float64, n int, file string) error {
	if len(models) == 0 || n < 2 || tmax <= tmin || tmin <= 0 {
		return mess.NewConfigError("statplot.Weights", "nothing to plot")
	}
	p := basicPlot("Partition functions", "T (K)", "Q(T)")
	for i, m := range models {
		if err := addCurve(p, m.Name(), i, len(models), tmin, tmax, mess.Kelvin, n, m.Weight); err != nil {
			return mess.ErrDecorate(err, "statplot.Weights")
		}
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, file); err != nil {
		return mess.WrapError(err, mess.ComputeError, "statplot.Weights", "can't save "+file)
	}
	return nil
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	conversion := 255.0 * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

//colors spreads steps colors over the hue circle, skipping yellows.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return iHVS2RGB(h, 0.9, 1)
}
