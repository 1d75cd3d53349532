/*
 * structure.go, part of golattice.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package lattice

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Atom contains the per-site information of a structure except for the
// coordinates, which are kept in a separate matrix.
type Atom struct {
	Symbol    string //chemical element symbol, case-preserved ("Ti", "Al")
	Label     string //site label from the file, if any ("Ti1")
	Occupancy float64
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("golattice: attempted to copy a nil atom")
	}
	newat := new(Atom)
	newat.Symbol = A.Symbol
	newat.Label = A.Label
	newat.Occupancy = A.Occupancy
	return newat
}

// Structure is an ordered set of atomic sites in fractional coordinates
// plus the Lattice of the cell containing them. Two Structures may
// describe the same periodic arrangement while differing in atom count
// and cell choice; establishing that equivalence is the job of whatever
// produced them, not of this package.
type Structure struct {
	atoms []*Atom
	frac  *mat.Dense // Nx3, one row of fractional coordinates per atom
	lat   *Lattice
}

// NewStructure builds a Structure from the given atoms, Nx3 fractional
// coordinate matrix and lattice. It returns an error if anything is nil
// or if the coordinate matrix doesn't match the number of atoms.
func NewStructure(atoms []*Atom, frac *mat.Dense, lat *Lattice) (*Structure, error) {
	if atoms == nil {
		return nil, fmt.Errorf("golattice.NewStructure: nil atoms")
	}
	if frac == nil {
		return nil, fmt.Errorf("golattice.NewStructure: nil coordinates")
	}
	if lat == nil {
		return nil, fmt.Errorf("golattice.NewStructure: nil lattice")
	}
	s := &Structure{atoms: atoms, frac: frac, lat: lat}
	if err := s.Corrupted(); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of atomic sites in the structure.
func (S *Structure) Len() int {
	return len(S.atoms)
}

// Atom returns the Atom corresponding to the index i. Panics if out of
// range.
func (S *Structure) Atom(i int) *Atom {
	if i >= S.Len() {
		panic("golattice: requested Atom out of bounds")
	}
	return S.atoms[i]
}

// Lattice returns the cell of the structure.
func (S *Structure) Lattice() *Lattice {
	return S.lat
}

// FracCoords returns the Nx3 matrix of fractional coordinates. The
// returned matrix is the one held by the structure, not a copy.
func (S *Structure) FracCoords() *mat.Dense {
	return S.frac
}

// CartCoords returns a new Nx3 matrix with the Cartesian coordinates of
// every site (fractional coordinates times the lattice matrix).
func (S *Structure) CartCoords() *mat.Dense {
	return S.lat.Cart(S.frac)
}

// Volume returns the cell volume of the structure's lattice.
func (S *Structure) Volume() float64 {
	return S.lat.Volume()
}

// Species returns the distinct chemical symbols present in the
// structure, lexicographically sorted.
func (S *Structure) Species() []string {
	seen := map[string]bool{}
	var sp []string
	for _, at := range S.atoms {
		if !seen[at.Symbol] {
			seen[at.Symbol] = true
			sp = append(sp, at.Symbol)
		}
	}
	sort.Strings(sp)
	return sp
}

// Copy returns a deep copy of the structure.
func (S *Structure) Copy() *Structure {
	atoms := make([]*Atom, S.Len())
	for i, at := range S.atoms {
		atoms[i] = at.Copy()
	}
	frac := mat.NewDense(S.Len(), 3, nil)
	frac.Copy(S.frac)
	m := mat.NewDense(3, 3, nil)
	m.Copy(S.lat.m)
	return &Structure{atoms: atoms, frac: frac, lat: &Lattice{m: m}}
}

// Corrupted checks that the coordinate matrix matches the number of
// atoms and has 3 columns, returning an error if not.
func (S *Structure) Corrupted() error {
	r, c := S.frac.Dims()
	if r != S.Len() || c != 3 {
		return fmt.Errorf("golattice: inconsistent coordinates/atoms: atoms %d, coords %dx%d", S.Len(), r, c)
	}
	return nil
}
