/*
 * cif_test.go, part of golattice.
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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	lattice "github.com/rmera/golattice"
)

const sampleCIF = `# comment line
data_Ti2AlCo
_symmetry_space_group_name_H-M   'P 1'
_cell_length_a   5.75000000
_cell_length_b   5.75000000
_cell_length_c   5.75(2)
_cell_angle_alpha   90.00000000
_cell_angle_beta   90.00000000
_cell_angle_gamma   90.00000000
loop_
 _symmetry_equiv_pos_site_id
 _symmetry_equiv_pos_as_xyz
  1  'x, y, z'
loop_
 _atom_site_type_symbol
 _atom_site_label
 _atom_site_occupancy
 _atom_site_fract_x
 _atom_site_fract_y
 _atom_site_fract_z
  Ti  Ti1  1.0  0.25000000  0.25000000  0.25000000
  Ti  Ti2  1.0  0.75000000  0.75000000  0.75000000
  Al  Al3  1.0  0.00000000  0.00000000  0.00000000
  Co4+  Co4  1.0  0.50000000  0.50000000  0.50000000
`

func TestReadFrom(t *testing.T) {
	s, err := ReadFrom(strings.NewReader(sampleCIF))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"Al", "Co", "Ti"}, s.Species())
	assert.Equal(t, "Co", s.Atom(3).Symbol, "charge suffix should be stripped")
	assert.Equal(t, "Ti2", s.Atom(1).Label)
	a, b, c, alpha, beta, gamma := s.Lattice().Parameters()
	assert.InDelta(t, 5.75, a, 1e-9)
	assert.InDelta(t, 5.75, b, 1e-9)
	assert.InDelta(t, 5.75, c, 1e-9, "uncertainty suffix should be dropped")
	assert.InDelta(t, 90, alpha, 1e-9)
	assert.InDelta(t, 90, beta, 1e-9)
	assert.InDelta(t, 90, gamma, 1e-9)
	assert.InDelta(t, 0.25, s.FracCoords().At(0, 0), 1e-12)
	assert.InDelta(t, 0.5, s.FracCoords().At(3, 2), 1e-12)
}

func TestReadFromErrors(t *testing.T) {
	_, err := ReadFrom(strings.NewReader("data_x\n_cell_length_a 3\n"))
	assert.Error(t, err, "missing cell parameters must be rejected")
	noAtoms := strings.Join([]string{
		"_cell_length_a 3", "_cell_length_b 3", "_cell_length_c 3",
		"_cell_angle_alpha 90", "_cell_angle_beta 90", "_cell_angle_gamma 90",
	}, "\n")
	_, err = ReadFrom(strings.NewReader(noAtoms))
	assert.Error(t, err, "a structure without sites must be rejected")
}

func TestRoundTrip(t *testing.T) {
	orig, err := ReadFrom(strings.NewReader(sampleCIF))
	require.NoError(t, err)
	for _, name := range []string{"out.cif", "out.cif.gz"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, Write(path, orig))
		back, err := Read(path)
		require.NoError(t, err, name)
		require.Equal(t, orig.Len(), back.Len(), name)
		for i := 0; i < orig.Len(); i++ {
			assert.Equal(t, orig.Atom(i).Symbol, back.Atom(i).Symbol)
			for k := 0; k < 3; k++ {
				assert.InDelta(t, orig.FracCoords().At(i, k), back.FracCoords().At(i, k), 1e-6)
			}
		}
		assert.InDelta(t, orig.Volume(), back.Volume(), 1e-6, name)
	}
}

func TestPairs(t *testing.T) {
	systems := t.TempDir()
	prims := t.TempDir()
	s, err := ReadFrom(strings.NewReader(sampleCIF))
	require.NoError(t, err)
	require.NoError(t, Write(filepath.Join(systems, "Ti2AlCo.cif"), s))
	require.NoError(t, Write(filepath.Join(systems, "AlCo.cif"), s))
	require.NoError(t, Write(filepath.Join(prims, "Ti2AlCo_primitive.cif"), s))

	pairs, err := Pairs(systems, prims)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "AlCo", pairs[0].Name, "pairs must be sorted by name")
	assert.Empty(t, pairs[0].Primitive)
	assert.Equal(t, "Ti2AlCo", pairs[1].Name)
	assert.NotEmpty(t, pairs[1].Primitive)
}

func TestPrecomputedReducer(t *testing.T) {
	orig, err := ReadFrom(strings.NewReader(sampleCIF))
	require.NoError(t, err)
	missing := &Precomputed{Path: filepath.Join(t.TempDir(), "nope.cif")}
	got := lattice.Primitive(orig, 1e-2, missing)
	assert.Same(t, orig, got, "an unreadable candidate file must fall back to the original")

	// a genuinely smaller precomputed cell must win
	smallLat, err := lattice.FromParameters(4, 4, 4, 90, 90, 90)
	require.NoError(t, err)
	small, err := lattice.NewStructure(
		[]*lattice.Atom{{Symbol: "Ti", Occupancy: 1}, {Symbol: "Al", Occupancy: 1}},
		matDense2x3(), smallLat)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "small_primitive.cif")
	require.NoError(t, Write(path, small))
	got = lattice.Primitive(orig, 1e-2, &Precomputed{Path: path})
	assert.Equal(t, 2, got.Len())
}

func matDense2x3() *mat.Dense {
	return mat.NewDense(2, 3, []float64{0, 0, 0, 0.5, 0.5, 0.5})
}
