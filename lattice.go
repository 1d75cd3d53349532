/*
 * lattice.go, part of golattice.
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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const deg2rad = math.Pi / 180.0

// Lattice holds the three cell vectors a, b and c as the rows of a 3x3
// matrix, in length units (Å for structures read from CIF files). It
// defines a parallelepiped cell. The vectors are expected to be linearly
// independent; degeneracy is not checked here, a zero-volume lattice
// will just produce collapsed geometry.
type Lattice struct {
	m *mat.Dense
}

// NewLattice builds a Lattice from a 3x3 matrix whose rows are the cell
// vectors. The matrix is copied.
func NewLattice(vectors mat.Matrix) (*Lattice, error) {
	r, c := vectors.Dims()
	if r != 3 || c != 3 {
		return nil, fmt.Errorf("golattice.NewLattice: need a 3x3 matrix, got %dx%d", r, c)
	}
	m := mat.NewDense(3, 3, nil)
	m.Copy(vectors)
	return &Lattice{m: m}, nil
}

// FromVectors builds a Lattice directly from the three cell vectors.
func FromVectors(a, b, c [3]float64) *Lattice {
	m := mat.NewDense(3, 3, []float64{
		a[0], a[1], a[2],
		b[0], b[1], b[2],
		c[0], c[1], c[2],
	})
	return &Lattice{m: m}
}

// FromParameters builds a Lattice from cell lengths (a, b, c) and cell
// angles in degrees (alpha between b and c, beta between a and c, gamma
// between a and b), using the usual crystallographic construction: a
// along x, b in the x-y plane. It returns an error for non-positive
// lengths or angles outside (0,180), which indicate a malformed file
// rather than a valid degenerate cell.
func FromParameters(a, b, c, alpha, beta, gamma float64) (*Lattice, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, fmt.Errorf("golattice.FromParameters: non-positive cell length (%g, %g, %g)", a, b, c)
	}
	for _, ang := range []float64{alpha, beta, gamma} {
		if ang <= 0 || ang >= 180 {
			return nil, fmt.Errorf("golattice.FromParameters: cell angle %g out of range", ang)
		}
	}
	ca := math.Cos(alpha * deg2rad)
	cb := math.Cos(beta * deg2rad)
	cg := math.Cos(gamma * deg2rad)
	sg := math.Sin(gamma * deg2rad)
	cx := c * cb
	cy := c * (ca - cb*cg) / sg
	czsq := c*c - cx*cx - cy*cy
	if czsq < 0 {
		czsq = 0 //fp noise on flat cells
	}
	m := mat.NewDense(3, 3, []float64{
		a, 0, 0,
		b * cg, b * sg, 0,
		cx, cy, math.Sqrt(czsq),
	})
	return &Lattice{m: m}, nil
}

// Matrix returns the 3x3 matrix whose rows are the cell vectors.
// The returned matrix is a copy.
func (L *Lattice) Matrix() *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	m.Copy(L.m)
	return m
}

// Vec returns the ith cell vector (0 for a, 1 for b, 2 for c). Panics if
// i is out of range.
func (L *Lattice) Vec(i int) [3]float64 {
	if i < 0 || i > 2 {
		panic("golattice: requested lattice vector out of range")
	}
	return [3]float64{L.m.At(i, 0), L.m.At(i, 1), L.m.At(i, 2)}
}

// Volume returns the cell volume |a·(b×c)|, i.e. the absolute value of
// the determinant of the lattice matrix.
func (L *Lattice) Volume() float64 {
	return math.Abs(mat.Det(L.m))
}

// Parameters returns the cell lengths a, b, c and the cell angles alpha,
// beta, gamma in degrees.
func (L *Lattice) Parameters() (a, b, c, alpha, beta, gamma float64) {
	av := L.Vec(0)
	bv := L.Vec(1)
	cv := L.Vec(2)
	a = norm(av)
	b = norm(bv)
	c = norm(cv)
	alpha = angleDeg(bv, cv)
	beta = angleDeg(av, cv)
	gamma = angleDeg(av, bv)
	return a, b, c, alpha, beta, gamma
}

// Cart transforms the Nx3 matrix of fractional coordinates frac into
// Cartesian coordinates (frac times the lattice matrix) and returns the
// result as a new matrix.
func (L *Lattice) Cart(frac mat.Matrix) *mat.Dense {
	r, c := frac.Dims()
	if c != 3 {
		panic(fmt.Sprintf("golattice: fractional coordinates must have 3 columns, got %d", c))
	}
	out := mat.NewDense(r, 3, nil)
	out.Mul(frac, L.m)
	return out
}

// Corners returns the 8 vertices of the parallelepiped spanned by the
// cell vectors from the origin, as an 8x3 matrix, in the order
// O, A, B, C, A+B, A+C, B+C, A+B+C. Everything is plain vector
// addition; no rotation or normalization takes place.
func (L *Lattice) Corners() *mat.Dense {
	a := L.Vec(0)
	b := L.Vec(1)
	c := L.Vec(2)
	corners := mat.NewDense(8, 3, nil)
	for k := 0; k < 3; k++ {
		corners.Set(0, k, 0)
		corners.Set(1, k, a[k])
		corners.Set(2, k, b[k])
		corners.Set(3, k, c[k])
		corners.Set(4, k, a[k]+b[k])
		corners.Set(5, k, a[k]+c[k])
		corners.Set(6, k, b[k]+c[k])
		corners.Set(7, k, a[k]+b[k]+c[k])
	}
	return corners
}

// Indices into the matrix returned by Corners.
const (
	CornerO = iota
	CornerA
	CornerB
	CornerC
	CornerAB
	CornerAC
	CornerBC
	CornerABC
)

// cellEdges connects the corners that differ by exactly one cell
// vector. This is the only correct wireframe of a parallelepiped: 12
// edges, 3 per vertex, one per independent lattice direction. Anything
// else either draws face diagonals or drops true edges.
var cellEdges = [12][2]int{
	{CornerO, CornerA}, {CornerO, CornerB}, {CornerO, CornerC},
	{CornerA, CornerAB}, {CornerA, CornerAC},
	{CornerB, CornerAB}, {CornerB, CornerBC},
	{CornerC, CornerAC}, {CornerC, CornerBC},
	{CornerAB, CornerABC}, {CornerAC, CornerABC}, {CornerBC, CornerABC},
}

// CellEdges returns the 12 undirected edges of the cell as pairs of
// indices into the matrix returned by Corners.
func CellEdges() [12][2]int {
	return cellEdges
}

func norm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func angleDeg(u, v [3]float64) float64 {
	dot := u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
	cos := dot / (norm(u) * norm(v))
	// clamp against fp noise before acos
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) / deg2rad
}
