/*
 * export.go, part of golattice.
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

package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	lattice "github.com/rmera/golattice"
	"github.com/rmera/golattice/cif"
	"github.com/rmera/golattice/figure"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write standalone HTML visualizations for every structure pair",
	Long: `export scans the systems directory, pairs each structure with its
precomputed primitive cell (when one exists and actually reduces the
cell), and writes per-structure HTML documents: the original cell, the
primitive cell, and a side-by-side comparison.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("out") {
			cfg.OutDir, _ = cmd.Flags().GetString("out")
		}
		pairs, err := cif.Pairs(cfg.SystemsDir, cfg.PrimitiveDir)
		if err != nil {
			return err
		}
		if len(pairs) == 0 {
			slog.Warn("no structure files found", "dir", cfg.SystemsDir)
			return nil
		}
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return err
		}
		wrote := 0
		for _, p := range pairs {
			orig, err := cif.Read(p.Original)
			if err != nil {
				slog.Warn("skipping unreadable structure", "name", p.Name, "error", err)
				continue
			}
			out := filepath.Join(cfg.OutDir, p.Name+"_original.html")
			fig := figure.New(orig, p.Name+" - original cell")
			if err := figure.SaveHTML(out, fig, p.Name); err != nil {
				return err
			}
			wrote++
			if p.Primitive == "" {
				slog.Debug("no precomputed primitive cell", "name", p.Name)
				continue
			}
			prim := lattice.Primitive(orig, cfg.Symprec, &cif.Precomputed{Path: p.Primitive})
			if prim == orig {
				slog.Warn("candidate did not reduce the cell, keeping original only", "name", p.Name)
				continue
			}
			primFig := figure.New(prim, p.Name+" - primitive unit cell")
			if err := figure.SaveHTML(filepath.Join(cfg.OutDir, p.Name+"_primitive.html"), primFig, p.Name); err != nil {
				return err
			}
			cmpFig := figure.Comparison(orig, prim, p.Name+" - original vs primitive")
			if err := figure.SaveHTML(filepath.Join(cfg.OutDir, p.Name+"_compare.html"), cmpFig, p.Name); err != nil {
				return err
			}
			slog.Debug("reduced", "name", p.Name, "atoms", orig.Len(), "primitive_atoms", prim.Len())
		}
		slog.Info("wrote HTML visualizations", "dir", cfg.OutDir, "structures", wrote)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "output directory for the HTML documents")
	rootCmd.AddCommand(exportCmd)
}
