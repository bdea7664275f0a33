/*
 * commands.go, part of gomess.
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

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmera/gomess"
	"github.com/rmera/gomess/species"
	"github.com/rmera/gomess/statplot"
	"github.com/rmera/gomess/store"
)

//rootOptions holds the global flags.
type rootOptions struct {
	db    string
	quiet bool
}

//rangeOptions holds the energy and temperature ranges, in kcal/mol and K.
type rangeOptions struct {
	emin, emax float64
	tmin, tmax float64
	points     int
}

func (r *rangeOptions) addEnergyFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&r.emin, "emin", 0, "lowest energy, kcal/mol above the network zero")
	cmd.Flags().Float64Var(&r.emax, "emax", 40, "highest energy, kcal/mol above the network zero")
	cmd.Flags().IntVar(&r.points, "points", 41, "number of points")
}

func (r *rangeOptions) addTemperatureFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&r.tmin, "tmin", 300, "lowest temperature, K")
	cmd.Flags().Float64Var(&r.tmax, "tmax", 2000, "highest temperature, K")
	if cmd.Flags().Lookup("points") == nil {
		cmd.Flags().IntVar(&r.points, "points", 41, "number of points")
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "gomess",
		Short: "gomess - state counting for master equation kinetics",
		Long: `gomess builds the species of a reaction network (cores, rotors, tunneling,
electronic levels) from a YAML input, and reports their numbers or densities of
states and their partition functions.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFlags(0)
			if opts.quiet {
				log.SetOutput(io.Discard)
			}
		},
	}
	cmd.PersistentFlags().StringVar(&opts.db, "db", "", "SQLite file where the computed state grids are cached")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "discard log messages")

	cmd.AddCommand(newStatesCommand(opts))
	cmd.AddCommand(newWeightsCommand(opts))
	cmd.AddCommand(newPlotCommand(opts))
	cmd.AddCommand(newNetworkCommand(opts))
	return cmd
}

//build reads the input, builds the network and, with a store, saves the state grids.
func build(ctx context.Context, opts *rootOptions, name string) (*species.Network, error) {
	in, err := mess.LoadInput(name)
	if err != nil {
		return nil, err
	}
	set := in.Settings.Settings()
	var db *store.Store
	if opts.db != "" {
		if db, err = store.Open(ctx, opts.db); err != nil {
			return nil, err
		}
		defer db.Close()
	}
	n, err := species.Build(in, set, db)
	if err != nil {
		return nil, err
	}
	if db != nil {
		if err := saveGrids(ctx, db, n, set); err != nil {
			return nil, err
		}
	}
	return n, nil
}

//saveGrids stores the states of every species that counts them.
func saveGrids(ctx context.Context, db *store.Store, n *species.Network, set *mess.Settings) error {
	size := set.GridSize()
	step := set.EnergyStep()
	for _, name := range n.Names() {
		s := n.Species(name)
		if s.Mode() == mess.NoStates {
			continue
		}
		g := &store.Grid{Name: name, Mode: s.Mode(), Energies: make([]float64, size), Values: make([]float64, size)}
		for i := range g.Energies {
			g.Energies[i] = s.Ground() + float64(i)*step
			g.Values[i] = s.States(g.Energies[i])
		}
		if err := db.Save(ctx, g); err != nil {
			return err
		}
		log.Printf("gomess: grid of %s saved", name)
	}
	return nil
}

//counting returns the species that count states, in input order.
func counting(n *species.Network) []species.Species {
	var r []species.Species
	for _, name := range n.Names() {
		if s := n.Species(name); s.Mode() != mess.NoStates {
			r = append(r, s)
		}
	}
	return r
}

func all(n *species.Network) []species.Species {
	r := make([]species.Species, 0, len(n.Names()))
	for _, name := range n.Names() {
		r = append(r, n.Species(name))
	}
	return r
}

func newStatesCommand(opts *rootOptions) *cobra.Command {
	r := &rangeOptions{}
	cmd := &cobra.Command{
		Use:   "states <input.yaml>",
		Short: "Print the number or density of states of every species",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := build(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			return printStates(cmd.OutOrStdout(), counting(n), r)
		},
	}
	r.addEnergyFlags(cmd)
	return cmd
}

func printStates(w io.Writer, sp []species.Species, r *rangeOptions) error {
	if r.points < 2 || r.emax <= r.emin {
		return mess.NewConfigError("states", "bad energy range")
	}
	header := []string{"E(kcal/mol)"}
	for _, s := range sp {
		header = append(header, s.Name()+"("+s.Mode().String()+")")
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, e := range mess.Grid(r.emin*mess.Kcal, r.emax*mess.Kcal, r.points) {
		fmt.Fprintf(w, "%.4f", e/mess.Kcal)
		for _, s := range sp {
			v := s.States(e)
			if s.Mode() == mess.Density {
				v *= mess.Kcal //per kcal/mol
			}
			fmt.Fprintf(w, "\t%.6e", v)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func newWeightsCommand(opts *rootOptions) *cobra.Command {
	r := &rangeOptions{}
	cmd := &cobra.Command{
		Use:   "weights <input.yaml>",
		Short: "Print the partition function of every species, relative to its ground",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := build(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			return printWeights(cmd.OutOrStdout(), all(n), r)
		},
	}
	r.addTemperatureFlags(cmd)
	return cmd
}

func printWeights(w io.Writer, sp []species.Species, r *rangeOptions) error {
	if r.points < 2 || r.tmax <= r.tmin || r.tmin <= 0 {
		return mess.NewConfigError("weights", "bad temperature range")
	}
	header := []string{"T(K)"}
	for _, s := range sp {
		header = append(header, s.Name())
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, t := range mess.Grid(r.tmin*mess.Kelvin, r.tmax*mess.Kelvin, r.points) {
		fmt.Fprintf(w, "%.1f", t/mess.Kelvin)
		for _, s := range sp {
			fmt.Fprintf(w, "\t%.6e", s.Weight(t))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func newPlotCommand(opts *rootOptions) *cobra.Command {
	r := &rangeOptions{}
	var kind, out string
	cmd := &cobra.Command{
		Use:   "plot <input.yaml>",
		Short: "Plot the states or the partition functions of every species",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := build(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			switch kind {
			case "states":
				var sc []statplot.StateCounter
				for _, s := range counting(n) {
					sc = append(sc, s)
				}
				return statplot.States(sc, r.emin*mess.Kcal, r.emax*mess.Kcal, r.points, out)
			case "weights":
				var ws []statplot.Weighter
				for _, s := range all(n) {
					ws = append(ws, s)
				}
				return statplot.Weights(ws, r.tmin*mess.Kelvin, r.tmax*mess.Kelvin, r.points, out)
			}
			return mess.NewConfigError("plot", "unknown plot kind %q", kind)
		},
	}
	r.addEnergyFlags(cmd)
	r.addTemperatureFlags(cmd)
	cmd.Flags().StringVar(&kind, "kind", "states", "what to plot (states|weights)")
	cmd.Flags().StringVarP(&out, "out", "o", "gomess.png", "output file")
	return cmd
}

func newNetworkCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "network <input.yaml>",
		Short: "Summarize the species, wells, bimoleculars and barriers of the input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := build(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			printNetwork(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func printNetwork(w io.Writer, n *species.Network) {
	fmt.Fprintln(w, "species\tground(kcal/mol)\tmode")
	for _, s := range all(n) {
		fmt.Fprintf(w, "%s\t%.3f\t%s\n", s.Name(), s.Ground()/mess.Kcal, s.Mode())
	}
	for _, wl := range n.Wells() {
		esc := "no"
		if wl.Escape() != nil {
			esc = "yes"
		}
		fmt.Fprintf(w, "well %s: %d kernel(s), escape: %s\n", wl.Name(), len(wl.Kernels()), esc)
	}
	for _, b := range n.Bimoleculars() {
		var f []string
		for _, s := range b.Fragments() {
			f = append(f, s.Name())
		}
		fmt.Fprintf(w, "bimolecular %s = %s, ground %.3f kcal/mol\n", b.Name(), strings.Join(f, " + "), b.Ground()/mess.Kcal)
	}
	for _, b := range n.Barriers() {
		fmt.Fprintf(w, "barrier %s: %s -> %s\n", b.Species.Name(), b.From, b.To)
	}
}
