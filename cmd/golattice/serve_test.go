/*
 * serve_test.go, part of golattice.
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
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	lattice "github.com/rmera/golattice"
	"github.com/rmera/golattice/cif"
)

func writeTestSystem(t *testing.T, dir, name string, natoms int, edge float64) {
	t.Helper()
	lat := lattice.FromVectors([3]float64{edge, 0, 0}, [3]float64{0, edge, 0}, [3]float64{0, 0, edge})
	atoms := make([]*lattice.Atom, natoms)
	frac := mat.NewDense(natoms, 3, nil)
	for i := 0; i < natoms; i++ {
		atoms[i] = &lattice.Atom{Symbol: "Ti", Occupancy: 1}
		frac.Set(i, 0, float64(i)/float64(natoms))
	}
	s, err := lattice.NewStructure(atoms, frac, lat)
	require.NoError(t, err)
	require.NoError(t, cif.Write(filepath.Join(dir, name), s))
}

func testViewer(t *testing.T) *viewer {
	t.Helper()
	systems := t.TempDir()
	prims := t.TempDir()
	writeTestSystem(t, systems, "reduced.cif", 4, 4)
	writeTestSystem(t, prims, "reduced_primitive.cif", 2, 2)
	writeTestSystem(t, systems, "lone.cif", 4, 4)
	pairs, err := cif.Pairs(systems, prims)
	require.NoError(t, err)
	return newViewer(pairs, 1e-2)
}

func TestHandleSystems(t *testing.T) {
	v := testViewer(t)
	rec := httptest.NewRecorder()
	v.handleSystems(rec, httptest.NewRequest("GET", "/api/systems", nil))
	require.Equal(t, 200, rec.Code)
	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Equal(t, []string{"lone", "reduced"}, names)
}

func TestHandleFigure(t *testing.T) {
	v := testViewer(t)
	//a paired system gets the two-panel comparison
	rec := httptest.NewRecorder()
	v.handleFigure(rec, httptest.NewRequest("GET", "/api/figure/reduced", nil))
	require.Equal(t, 200, rec.Code)
	var fig map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	assert.Contains(t, string(fig["layout"]), "scene2")

	//a lone system gets the single-cell view
	rec = httptest.NewRecorder()
	v.handleFigure(rec, httptest.NewRequest("GET", "/api/figure/lone", nil))
	require.Equal(t, 200, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	assert.NotContains(t, string(fig["layout"]), "scene2")

	rec = httptest.NewRecorder()
	v.handleFigure(rec, httptest.NewRequest("GET", "/api/figure/nope", nil))
	assert.Equal(t, 404, rec.Code)
}

func TestHandleIndex(t *testing.T) {
	v := testViewer(t)
	rec := httptest.NewRecorder()
	v.handleIndex(rec, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "reduced")
	assert.Contains(t, rec.Body.String(), "Plotly.react")

	rec = httptest.NewRecorder()
	v.handleIndex(rec, httptest.NewRequest("GET", "/other", nil))
	assert.Equal(t, 404, rec.Code)
}
