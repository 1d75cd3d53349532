/*
 * reduce.go, part of golattice.
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

package lattice

// Reducer is a single primitive-cell reduction technique. Reduce
// returns a cell claimed equivalent to s but possibly smaller, or an
// error if the technique is not applicable. symprec is the symmetry
// tolerance the technique should work at; implementations that don't
// need one are free to ignore it.
//
// Implementations live outside this package (a crystallographic
// analyzer, a lookup of precomputed files, etc.); the selection logic
// below depends only on this interface.
type Reducer interface {
	Name() string
	Reduce(s *Structure, symprec float64) (*Structure, error)
}

// Candidates runs every reducer on s and collects the successfully
// produced candidate reductions, in reducer order. A reducer failing is
// expected and non-fatal: it just contributes no candidate.
func Candidates(s *Structure, symprec float64, reducers ...Reducer) []*Structure {
	var cands []*Structure
	for _, red := range reducers {
		c, err := red.Reduce(s, symprec)
		if err != nil || c == nil {
			continue
		}
		cands = append(cands, c)
	}
	return cands
}

// SelectPrimitive picks, among the candidate reductions of s, the one
// minimizing (atom count, cell volume) lexicographically: atom count
// decides, volume breaks ties among equal-count candidates. On an exact
// (count, volume) tie the first candidate in input order wins. Even the
// winning candidate is discarded unless it has strictly fewer atoms
// than s itself, so a strategy that returns an equivalent but
// not-actually-reduced cell can never replace the original. With no
// candidates, s is returned unchanged. The result is never nil.
func SelectPrimitive(s *Structure, candidates []*Structure) *Structure {
	var best *Structure
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if best == nil || smaller(c, best) {
			best = c
		}
	}
	if best == nil || best.Len() >= s.Len() {
		return s
	}
	return best
}

// smaller is the strict lexicographic (atom count, volume) comparison
// used by SelectPrimitive.
func smaller(a, b *Structure) bool {
	if a.Len() != b.Len() {
		return a.Len() < b.Len()
	}
	return a.Volume() < b.Volume()
}

// Primitive runs the given reduction strategies on s at tolerance
// symprec and returns the best resulting cell per SelectPrimitive, or s
// itself when no strategy produced a genuine reduction.
func Primitive(s *Structure, symprec float64, reducers ...Reducer) *Structure {
	return SelectPrimitive(s, Candidates(s, symprec, reducers...))
}
