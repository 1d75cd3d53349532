/*
 * image.go, part of golattice.
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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	lattice "github.com/rmera/golattice"
	"github.com/rmera/golattice/cif"
	"github.com/rmera/golattice/figure"
)

var (
	imgWidth  int
	imgHeight int
)

var imageCmd = &cobra.Command{
	Use:   "image <name>",
	Short: "Export static PNG images for one system",
	Long: `image renders the named system to PNG files in the output directory:
<name>.png with the original cell and, when a genuine reduction exists,
<name>_compare.png with the original and primitive cells side by side.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("out") {
			cfg.OutDir, _ = cmd.Flags().GetString("out")
		}
		name := args[0]
		pairs, err := cif.Pairs(cfg.SystemsDir, cfg.PrimitiveDir)
		if err != nil {
			return err
		}
		var pair *cif.Pair
		for i := range pairs {
			if pairs[i].Name == name {
				pair = &pairs[i]
				break
			}
		}
		if pair == nil {
			return fmt.Errorf("no structure named %q in %s", name, cfg.SystemsDir)
		}
		orig, err := cif.Read(pair.Original)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return err
		}
		out := filepath.Join(cfg.OutDir, name+".png")
		fig := figure.New(orig, name+" - original cell")
		if err := figure.SavePNG(fig, out, imgWidth, imgHeight); err != nil {
			return err
		}
		slog.Info("wrote image", "path", out, "size", fmt.Sprintf("%dx%d", imgWidth, imgHeight))
		if pair.Primitive == "" {
			return nil
		}
		prim := lattice.Primitive(orig, cfg.Symprec, &cif.Precomputed{Path: pair.Primitive})
		if prim == orig {
			slog.Warn("candidate did not reduce the cell, no comparison image", "name", name)
			return nil
		}
		out = filepath.Join(cfg.OutDir, name+"_compare.png")
		cmpFig := figure.Comparison(orig, prim, name+" - original vs primitive")
		if err := figure.SavePNG(cmpFig, out, imgWidth*2, imgHeight); err != nil {
			return err
		}
		slog.Info("wrote image", "path", out, "size", fmt.Sprintf("%dx%d", imgWidth*2, imgHeight))
		return nil
	},
}

func init() {
	imageCmd.Flags().IntVar(&imgWidth, "width", 1400, "image width in pixels")
	imageCmd.Flags().IntVar(&imgHeight, "height", 1000, "image height in pixels")
	imageCmd.Flags().String("out", "", "output directory for the images")
	rootCmd.AddCommand(imageCmd)
}
