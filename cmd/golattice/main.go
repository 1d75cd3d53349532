/*
 * main.go, part of golattice.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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

// Command golattice inspects directories of crystal structure files,
// pairs each original cell with its externally computed primitive
// reduction, and renders both as interactive or static 3D
// visualizations.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "golattice",
	Short: "Visualize crystal lattices and their primitive unit cells",
	Long: `golattice reads crystal structure files (CIF subset), selects the best
available primitive-cell reduction for each structure among precomputed
candidates, and renders original and reduced cells as 3D figures:
standalone HTML documents, PNG images, or an interactive web viewer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cfgFile)
		if err != nil {
			return err
		}
		flags := cmd.Root().PersistentFlags()
		if flags.Changed("systems") {
			cfg.SystemsDir, _ = flags.GetString("systems")
		}
		if flags.Changed("primitives") {
			cfg.PrimitiveDir, _ = flags.GetString("primitives")
		}
		if flags.Changed("symprec") {
			cfg.Symprec, _ = flags.GetFloat64("symprec")
		}
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path to a TOML configuration file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.String("systems", "", "directory with the original structure files")
	flags.String("primitives", "", "directory with precomputed primitive cells")
	flags.Float64("symprec", 0, "symmetry tolerance handed to reduction strategies")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
