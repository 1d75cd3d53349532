/*
 * pairs.go, part of golattice.
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

package cif

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Pair names an original structure file and, when one exists, the
// precomputed primitive cell that goes with it. Primitive is empty when
// no reduced file was found.
type Pair struct {
	Name      string
	Original  string
	Primitive string
}

// primitiveSuffix is the naming convention linking a reduced cell file
// to its original: <name>_primitive.cif next to <name>.cif.
const primitiveSuffix = "_primitive"

var cifExtensions = []string{".cif", ".cif.gz"}

// Pairs scans systemsDir for structure files and pairs each with its
// precomputed primitive cell in primDir, if present. Results are sorted
// by name. Reduced files without an original are ignored.
func Pairs(systemsDir, primDir string) ([]Pair, error) {
	entries, err := os.ReadDir(systemsDir)
	if err != nil {
		return nil, err
	}
	var pairs []Pair
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name, ok := stripExt(e.Name())
		if !ok || strings.HasSuffix(name, primitiveSuffix) {
			continue
		}
		p := Pair{Name: name, Original: filepath.Join(systemsDir, e.Name())}
		for _, ext := range cifExtensions {
			prim := filepath.Join(primDir, name+primitiveSuffix+ext)
			if _, err := os.Stat(prim); err == nil {
				p.Primitive = prim
				break
			}
		}
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })
	return pairs, nil
}

func stripExt(filename string) (string, bool) {
	for _, ext := range cifExtensions {
		if strings.HasSuffix(filename, ext) {
			return strings.TrimSuffix(filename, ext), true
		}
	}
	return "", false
}
