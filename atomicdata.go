/*
 * atomicdata.go, part of golattice.
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

// DefaultRadius is used for species with no entry in the radius table,
// so a missing physical constant never becomes an error.
const DefaultRadius = 1.2

// A map for assigning empirical atomic radii (Å) to elements.
// Values from Slater, J. Chem. Phys. 41, 3199 (1964).
// Note that just elements common in inorganic crystals are present;
// anything missing gets DefaultRadius.
var symbolRadius = map[string]float64{
	"H":  0.25,
	"Li": 1.45,
	"Be": 1.05,
	"B":  0.85,
	"C":  0.70,
	"N":  0.65,
	"O":  0.60,
	"F":  0.50,
	"Na": 1.80,
	"Mg": 1.50,
	"Al": 1.25,
	"Si": 1.10,
	"P":  1.00,
	"S":  1.00,
	"Cl": 1.00,
	"K":  2.20,
	"Ca": 1.80,
	"Sc": 1.60,
	"Ti": 1.40,
	"V":  1.35,
	"Cr": 1.40,
	"Mn": 1.40,
	"Fe": 1.40,
	"Co": 1.35,
	"Ni": 1.35,
	"Cu": 1.35,
	"Zn": 1.35,
	"Ga": 1.30,
	"Ge": 1.25,
	"As": 1.15,
	"Se": 1.15,
	"Br": 1.15,
	"Rb": 2.35,
	"Sr": 2.00,
	"Y":  1.80,
	"Zr": 1.55,
	"Nb": 1.45,
	"Mo": 1.45,
	"Ru": 1.30,
	"Rh": 1.35,
	"Pd": 1.40,
	"Ag": 1.60,
	"Cd": 1.55,
	"In": 1.55,
	"Sn": 1.45,
	"Sb": 1.45,
	"Te": 1.40,
	"I":  1.40,
	"Cs": 2.60,
	"Ba": 2.15,
	"La": 1.95,
	"Ce": 1.85,
	"Hf": 1.55,
	"Ta": 1.45,
	"W":  1.35,
	"Re": 1.35,
	"Os": 1.30,
	"Ir": 1.35,
	"Pt": 1.35,
	"Au": 1.35,
	"Hg": 1.50,
	"Tl": 1.90,
	"Pb": 1.80,
	"Bi": 1.60,
}

// Radius returns the empirical atomic radius for the given chemical
// symbol, or DefaultRadius if the element is not in the table.
func Radius(symbol string) float64 {
	if r, ok := symbolRadius[symbol]; ok {
		return r
	}
	return DefaultRadius
}
