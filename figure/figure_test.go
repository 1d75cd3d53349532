/*
 * figure_test.go, part of golattice.
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

package figure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	lattice "github.com/rmera/golattice"
)

func cubeStructure(t *testing.T, symbols []string, edge float64) *lattice.Structure {
	t.Helper()
	lat := lattice.FromVectors([3]float64{edge, 0, 0}, [3]float64{0, edge, 0}, [3]float64{0, 0, edge})
	atoms := make([]*lattice.Atom, len(symbols))
	frac := mat.NewDense(len(symbols), 3, nil)
	for i, sym := range symbols {
		atoms[i] = &lattice.Atom{Symbol: sym, Occupancy: 1}
		frac.Set(i, 0, float64(i)/float64(len(symbols)))
		frac.Set(i, 1, float64(i)/float64(len(symbols)))
	}
	s, err := lattice.NewStructure(atoms, frac, lat)
	require.NoError(t, err)
	return s
}

func TestWireframe(t *testing.T) {
	cube := lattice.FromVectors([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{0, 0, 1})
	tr := Wireframe(cube)
	assert.Equal(t, "scatter3d", tr.Type)
	assert.Equal(t, "lines", tr.Mode)
	// 12 segments, each two endpoints plus one break marker
	require.Len(t, tr.X, 36)
	require.Len(t, tr.Y, 36)
	require.Len(t, tr.Z, 36)
	breaks := 0
	for i := range tr.X {
		if tr.X[i] == nil {
			assert.Nil(t, tr.Y[i])
			assert.Nil(t, tr.Z[i])
			assert.Equal(t, 2, i%3, "break markers must follow every two endpoints")
			breaks++
		}
	}
	assert.Equal(t, 12, breaks)
}

func TestColorsDeterministic(t *testing.T) {
	a := cubeStructure(t, []string{"Ti", "Al", "Co"}, 1)
	b := cubeStructure(t, []string{"Co", "Ti", "Al"}, 2)
	ca := Colors(a)
	cb := Colors(b)
	assert.Equal(t, ca, cb, "color assignment must be order-independent")
	assert.Equal(t, ca, Colors(a), "color assignment must be idempotent")
	// lexicographic indexing into the palette
	assert.Equal(t, Palette[0], ca["Al"])
	assert.Equal(t, Palette[1], ca["Co"])
	assert.Equal(t, Palette[2], ca["Ti"])
}

func TestColorsCycle(t *testing.T) {
	symbols := []string{"Ag", "Al", "Au", "B", "Ba", "Be", "Bi", "Br", "C", "Ca", "Cd", "Ce"}
	s := cubeStructure(t, symbols, 1)
	colors := Colors(s)
	require.Len(t, colors, len(symbols))
	// 12 species, 10 palette entries: the 11th and 12th wrap around
	assert.Equal(t, Palette[0], colors["Cd"])
	assert.Equal(t, Palette[1], colors["Ce"])
}

func TestMarkerSize(t *testing.T) {
	assert.Equal(t, 6.0+2.5*1.4, MarkerSize(1.4))
	assert.Equal(t, 6.0, MarkerSize(0), "lower clamp")
	assert.Equal(t, 18.0, MarkerSize(100), "upper clamp")
	prev := 0.0
	for r := 0.0; r < 10; r += 0.25 {
		size := MarkerSize(r)
		assert.GreaterOrEqual(t, size, prev, "size must be monotonic in radius")
		assert.GreaterOrEqual(t, size, 6.0)
		assert.LessOrEqual(t, size, 18.0)
		prev = size
	}
}

func TestMarkersGroupBySpecies(t *testing.T) {
	s := cubeStructure(t, []string{"Ti", "Al", "Ti", "Ti"}, 1)
	traces := Markers(s, Colors(s))
	require.Len(t, traces, 2)
	assert.Equal(t, "Al", traces[0].Name)
	assert.Equal(t, "Ti", traces[1].Name)
	assert.Len(t, traces[0].X, 1)
	assert.Len(t, traces[1].X, 3)
	assert.Equal(t, MarkerSize(lattice.Radius("Ti")), traces[1].Marker.Size)
}

func TestNewFigure(t *testing.T) {
	s := cubeStructure(t, []string{"Ti", "Al"}, 1)
	fig := New(s, "test cell")
	require.Len(t, fig.Data, 3, "wireframe plus one trace per species")
	assert.Equal(t, "data", fig.Layout.Scene.AspectMode)
	assert.Equal(t, "test cell", fig.Layout.Title.Text)
	data, err := fig.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scatter3d"`)
	assert.Contains(t, string(data), "null", "wireframe breaks must serialize as null")
}

func TestComparisonSharedColors(t *testing.T) {
	orig := cubeStructure(t, []string{"Ti", "Ti", "Al", "Co"}, 2)
	prim := cubeStructure(t, []string{"Ti", "Al"}, 1)
	fig := Comparison(orig, prim, "orig vs prim")
	require.NotNil(t, fig.Layout.Scene2)
	assert.Equal(t, "data", fig.Layout.Scene.AspectMode)
	assert.Equal(t, "data", fig.Layout.Scene2.AspectMode)

	colorsBy := map[string]map[string]string{} //scene -> species -> color
	for _, tr := range fig.Data {
		if tr.Mode != "markers" {
			continue
		}
		if colorsBy[tr.SceneID] == nil {
			colorsBy[tr.SceneID] = map[string]string{}
		}
		colorsBy[tr.SceneID][tr.Name] = tr.Marker.Color
	}
	require.Contains(t, colorsBy, "scene")
	require.Contains(t, colorsBy, "scene2")
	for _, sp := range []string{"Ti", "Al"} {
		assert.Equal(t, colorsBy["scene"][sp], colorsBy["scene2"][sp],
			"%s must have the same color in both panels", sp)
	}
	// Co only appears on the left, but it still takes part in the
	// shared assignment scope
	union := Colors(orig, prim)
	assert.Equal(t, union["Co"], colorsBy["scene"]["Co"])
}

func TestSavePNG(t *testing.T) {
	s := cubeStructure(t, []string{"Ti", "Al"}, 1)
	single := filepath.Join(t.TempDir(), "single.png")
	require.NoError(t, SavePNG(New(s, "cell"), single, 700, 500))
	info, err := os.Stat(single)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	cmp := filepath.Join(t.TempDir(), "cmp.png")
	require.NoError(t, SavePNG(Comparison(s, s, "cmp"), cmp, 900, 450))
	info, err = os.Stat(cmp)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, SavePNG(New(s, "cell"), single, 0, 100))
}

func TestWriteHTML(t *testing.T) {
	s := cubeStructure(t, []string{"Ti"}, 1)
	var sb strings.Builder
	require.NoError(t, WriteHTML(&sb, New(s, "cell"), "cell"))
	out := sb.String()
	assert.Contains(t, out, plotlyCDN)
	assert.Contains(t, out, "Plotly.newPlot")
	assert.Contains(t, out, `"scatter3d"`)
}
