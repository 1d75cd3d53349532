/*
 * cif.go, part of golattice.
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
 * golattice is developed at the Universidad de Santiago de Chile (USACH).
 *
 */

//Package cif reads and writes a pragmatic subset of the CIF format: the
//cell parameters and the atom_site loop, which is everything golattice
//needs to rebuild a periodic structure. Symmetry blocks are ignored on
//reading; structures are written as P 1, with every site explicit.
//Files ending in .gz are read and written gzip-compressed.
package cif

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/mat"

	lattice "github.com/rmera/golattice"
)

// Read parses the CIF file in path and returns the structure it
// describes. A ".gz" suffix triggers transparent decompression.
func Read(path string) (*lattice.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("cif.Read %s: %v", path, err)
		}
		defer gz.Close()
		r = gz
	}
	s, err := ReadFrom(r)
	if err != nil {
		cerr := lattice.NewError(fmt.Sprintf("cif.Read %s: %v", path, err))
		cerr.Decorate("Read")
		return nil, cerr
	}
	return s, nil
}

// ReadFrom parses CIF data from r. It needs the six cell parameters and
// at least one atom_site row with fractional coordinates; anything else
// in the file is skipped.
func ReadFrom(r io.Reader) (*lattice.Structure, error) {
	cell := map[string]float64{}
	var atoms []*lattice.Atom
	var coords []float64

	scanner := bufio.NewScanner(r)
	var pending string //a line read ahead while consuming a loop
	readLine := func() (string, bool) {
		if pending != "" {
			l := pending
			pending = ""
			return l, true
		}
		if scanner.Scan() {
			return scanner.Text(), true
		}
		return "", false
	}

	for {
		line, ok := readLine()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "data_") {
			continue
		}
		if trimmed == "loop_" {
			var headers []string
			var rows [][]string
			inHeader := true
			for {
				l, ok := readLine()
				if !ok {
					break
				}
				t := strings.TrimSpace(l)
				if inHeader && strings.HasPrefix(t, "_") {
					headers = append(headers, t)
					continue
				}
				inHeader = false
				if t == "" || t == "loop_" || strings.HasPrefix(t, "_") || strings.HasPrefix(t, "data_") {
					pending = l //belongs to whatever comes next
					break
				}
				if strings.HasPrefix(t, "#") {
					continue
				}
				rows = append(rows, strings.Fields(t))
			}
			if err := parseAtomLoop(headers, rows, &atoms, &coords); err != nil {
				return nil, err
			}
			continue
		}
		if strings.HasPrefix(trimmed, "_") {
			fields := strings.Fields(trimmed)
			if len(fields) < 2 {
				continue
			}
			switch fields[0] {
			case "_cell_length_a", "_cell_length_b", "_cell_length_c",
				"_cell_angle_alpha", "_cell_angle_beta", "_cell_angle_gamma":
				v, err := parseNumber(fields[1])
				if err != nil {
					return nil, fmt.Errorf("bad value for %s: %v", fields[0], err)
				}
				cell[fields[0]] = v
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, tag := range []string{"_cell_length_a", "_cell_length_b", "_cell_length_c",
		"_cell_angle_alpha", "_cell_angle_beta", "_cell_angle_gamma"} {
		if _, ok := cell[tag]; !ok {
			return nil, fmt.Errorf("missing cell parameter %s", tag)
		}
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("no atom_site loop with fractional coordinates")
	}
	lat, err := lattice.FromParameters(cell["_cell_length_a"], cell["_cell_length_b"], cell["_cell_length_c"],
		cell["_cell_angle_alpha"], cell["_cell_angle_beta"], cell["_cell_angle_gamma"])
	if err != nil {
		return nil, err
	}
	frac := mat.NewDense(len(atoms), 3, coords)
	return lattice.NewStructure(atoms, frac, lat)
}

// parseAtomLoop turns a loop block into atoms and coordinates, if the
// loop is an atom_site loop; any other loop is ignored.
func parseAtomLoop(headers []string, rows [][]string, atoms *[]*lattice.Atom, coords *[]float64) error {
	col := map[string]int{}
	for i, h := range headers {
		col[h] = i
	}
	xi, okx := col["_atom_site_fract_x"]
	yi, oky := col["_atom_site_fract_y"]
	zi, okz := col["_atom_site_fract_z"]
	if !okx || !oky || !okz {
		return nil //not the atom loop
	}
	symi, hasSym := col["_atom_site_type_symbol"]
	labi, hasLab := col["_atom_site_label"]
	occi, hasOcc := col["_atom_site_occupancy"]
	if !hasSym && !hasLab {
		return fmt.Errorf("atom_site loop has neither type_symbol nor label")
	}
	for n, row := range rows {
		if len(row) < len(headers) {
			return fmt.Errorf("atom_site row %d has %d fields, want %d", n, len(row), len(headers))
		}
		at := new(lattice.Atom)
		at.Occupancy = 1.0
		if hasLab {
			at.Label = row[labi]
		}
		if hasSym {
			at.Symbol = cleanSymbol(row[symi])
		} else {
			at.Symbol = cleanSymbol(row[labi])
		}
		if hasOcc {
			occ, err := parseNumber(row[occi])
			if err != nil {
				return fmt.Errorf("atom_site row %d: bad occupancy: %v", n, err)
			}
			at.Occupancy = occ
		}
		for _, i := range []int{xi, yi, zi} {
			v, err := parseNumber(row[i])
			if err != nil {
				return fmt.Errorf("atom_site row %d: bad coordinate: %v", n, err)
			}
			*coords = append(*coords, v)
		}
		*atoms = append(*atoms, at)
	}
	return nil
}

// parseNumber parses a CIF numeric value, dropping a trailing
// uncertainty such as "0.3333(2)".
func parseNumber(s string) (float64, error) {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	return strconv.ParseFloat(s, 64)
}

// cleanSymbol extracts the element symbol from a type_symbol or label
// value: "Ti4+" -> "Ti", "Co1" -> "Co". Case is preserved.
func cleanSymbol(s string) string {
	end := 0
	for end < len(s) {
		ch := s[end]
		if (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return s
	}
	return s[:end]
}

// Write serializes the structure to path as a P 1 CIF with every site
// explicit (no re-symmetrization, so a reduced cell is written exactly
// as computed). A ".gz" suffix triggers gzip compression.
func Write(path string, s *lattice.Structure) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	var w io.Writer = f
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		defer gz.Close()
		w = gz
	}
	if err := WriteTo(w, s); err != nil {
		cerr := lattice.NewError(fmt.Sprintf("cif.Write %s: %v", path, err))
		cerr.Decorate("Write")
		return cerr
	}
	return nil
}

// WriteTo serializes the structure as CIF to w.
func WriteTo(w io.Writer, s *lattice.Structure) error {
	if err := s.Corrupted(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	a, b, c, alpha, beta, gamma := s.Lattice().Parameters()
	fmt.Fprintf(bw, "# generated by golattice\n")
	fmt.Fprintf(bw, "data_structure\n")
	fmt.Fprintf(bw, "_symmetry_space_group_name_H-M   'P 1'\n")
	fmt.Fprintf(bw, "_symmetry_Int_Tables_number      1\n")
	fmt.Fprintf(bw, "_cell_length_a   %.8f\n", a)
	fmt.Fprintf(bw, "_cell_length_b   %.8f\n", b)
	fmt.Fprintf(bw, "_cell_length_c   %.8f\n", c)
	fmt.Fprintf(bw, "_cell_angle_alpha   %.8f\n", alpha)
	fmt.Fprintf(bw, "_cell_angle_beta   %.8f\n", beta)
	fmt.Fprintf(bw, "_cell_angle_gamma   %.8f\n", gamma)
	fmt.Fprintf(bw, "loop_\n")
	fmt.Fprintf(bw, " _atom_site_type_symbol\n")
	fmt.Fprintf(bw, " _atom_site_label\n")
	fmt.Fprintf(bw, " _atom_site_occupancy\n")
	fmt.Fprintf(bw, " _atom_site_fract_x\n")
	fmt.Fprintf(bw, " _atom_site_fract_y\n")
	fmt.Fprintf(bw, " _atom_site_fract_z\n")
	frac := s.FracCoords()
	for i := 0; i < s.Len(); i++ {
		at := s.Atom(i)
		label := at.Label
		if label == "" {
			label = fmt.Sprintf("%s%d", at.Symbol, i)
		}
		fmt.Fprintf(bw, "  %s  %s  %.4f  %.8f  %.8f  %.8f\n",
			at.Symbol, label, at.Occupancy, frac.At(i, 0), frac.At(i, 1), frac.At(i, 2))
	}
	return bw.Flush()
}
