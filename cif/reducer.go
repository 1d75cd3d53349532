/*
 * reducer.go, part of golattice.
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
	"fmt"

	lattice "github.com/rmera/golattice"
)

// Precomputed is a lattice.Reducer backed by an externally computed
// reduction stored as a CIF file (typically produced by a
// crystallographic analyzer). A missing or unreadable file is a
// strategy failure, which the selection machinery treats as "no
// candidate". The symmetry tolerance is ignored: it already went into
// producing the file.
type Precomputed struct {
	Path string
}

// Name identifies the strategy, including the file it reads.
func (P *Precomputed) Name() string {
	return "precomputed:" + P.Path
}

// Reduce implements lattice.Reducer.
func (P *Precomputed) Reduce(s *lattice.Structure, symprec float64) (*lattice.Structure, error) {
	if P.Path == "" {
		return nil, fmt.Errorf("cif: no precomputed reduction available")
	}
	return Read(P.Path)
}
