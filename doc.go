/*
 * doc.go, part of golattice.
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

/*
Package lattice provides types for periodic crystal structures (a cell
defined by three lattice vectors plus atomic sites in fractional
coordinates), the geometric derivations needed to display such cells
(cell corners, the 12-edge wireframe of the parallelepiped, fractional to
Cartesian transforms) and the selection of the best primitive-cell
reduction among externally computed candidates.

The package does not perform symmetry analysis itself. Reduction
strategies are plugged in through the Reducer interface; the library only
decides which, if any, of the produced candidates should replace the
original cell.

Coordinates follow the same convention as the rest of the gonum-based
code in this library: atom metadata is kept apart from the coordinates,
which live in an Nx3 row-major matrix, one row per atomic site.

Subpackages provide CIF-subset file I/O (cif) and figure derivation and
export for interactive or static visualization (figure).
*/
package lattice
