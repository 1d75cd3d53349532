/*
 * cells.go, part of golattice.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package figure

import (
	"sort"

	lattice "github.com/rmera/golattice"
)

// Palette is the fixed color cycle for species groups, reused
// cyclically when a figure has more distinct species than colors. It is
// read-only configuration; Colors takes it from here rather than from
// any per-call state.
var Palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

const (
	wireframeColor = "black"
	wireframeWidth = 4.0
	markerOpacity  = 0.9
	minMarkerSize  = 6.0
	maxMarkerSize  = 18.0
	sizePerRadius  = 2.5
)

// Colors assigns one palette color to every distinct species present in
// the given structures. Species are indexed in lexicographic order over
// the union of all structures, modulo the palette length, so the
// mapping only depends on which species are present: the same species
// set always yields the same colors, whatever the input order, and a
// species shared by two compared structures gets the same color on both
// sides.
func Colors(structures ...*lattice.Structure) map[string]string {
	seen := map[string]bool{}
	var species []string
	for _, s := range structures {
		for _, sp := range s.Species() {
			if !seen[sp] {
				seen[sp] = true
				species = append(species, sp)
			}
		}
	}
	sort.Strings(species)
	colors := make(map[string]string, len(species))
	for i, sp := range species {
		colors[sp] = Palette[i%len(Palette)]
	}
	return colors
}

// MarkerSize derives a marker size from an atomic radius:
// 6.0 + 2.5*radius, clamped to [6.0, 18.0]. Bigger atoms draw bigger,
// without degenerate tiny or huge markers.
func MarkerSize(radius float64) float64 {
	size := minMarkerSize + sizePerRadius*radius
	if size < minMarkerSize {
		return minMarkerSize
	}
	if size > maxMarkerSize {
		return maxMarkerSize
	}
	return size
}

// Wireframe returns the cell of l as a single line trace: the 12 edges
// of the parallelepiped, each contributing its two endpoints followed
// by a break marker.
func Wireframe(l *lattice.Lattice) *Trace {
	corners := l.Corners()
	edges := lattice.CellEdges()
	n := len(edges) * 3
	tr := &Trace{
		Type:       "scatter3d",
		Mode:       "lines",
		Name:       "Unit cell",
		Line:       &Line{Color: wireframeColor, Width: wireframeWidth},
		ShowLegend: boolp(false),
		X:          make([]*float64, 0, n),
		Y:          make([]*float64, 0, n),
		Z:          make([]*float64, 0, n),
	}
	for _, e := range edges {
		for _, ci := range e {
			tr.X = append(tr.X, fpt(corners.At(ci, 0)))
			tr.Y = append(tr.Y, fpt(corners.At(ci, 1)))
			tr.Z = append(tr.Z, fpt(corners.At(ci, 2)))
		}
		tr.X = append(tr.X, nil)
		tr.Y = append(tr.Y, nil)
		tr.Z = append(tr.Z, nil)
	}
	return tr
}

// Markers returns one marker trace per species group of s, in
// lexicographic species order. Positions are Cartesian; color comes
// from the given assignment and size from the species' atomic radius.
// Color and size are per-group, never per-atom.
func Markers(s *lattice.Structure, colors map[string]string) []*Trace {
	cart := s.CartCoords()
	var traces []*Trace
	for _, sp := range s.Species() {
		tr := &Trace{
			Type: "scatter3d",
			Mode: "markers",
			Name: sp,
			Marker: &Marker{
				Size:    MarkerSize(lattice.Radius(sp)),
				Color:   colors[sp],
				Opacity: markerOpacity,
			},
		}
		for i := 0; i < s.Len(); i++ {
			if s.Atom(i).Symbol != sp {
				continue
			}
			tr.X = append(tr.X, fpt(cart.At(i, 0)))
			tr.Y = append(tr.Y, fpt(cart.At(i, 1)))
			tr.Z = append(tr.Z, fpt(cart.At(i, 2)))
		}
		traces = append(traces, tr)
	}
	return traces
}

// New composes the single-cell figure for s: the cell wireframe plus
// one marker trace per species, in an axis-equal 3D scene.
func New(s *lattice.Structure, title string) *Figure {
	fig := &Figure{
		Layout: &Layout{
			Title: &Title{Text: title},
			Scene: &Scene{
				XAxis:      &Axis{Title: &Title{Text: "x (Å)"}},
				YAxis:      &Axis{Title: &Title{Text: "y (Å)"}},
				ZAxis:      &Axis{Title: &Title{Text: "z (Å)"}},
				AspectMode: "data",
			},
			Legend: &Legend{ItemSizing: "constant"},
			Margin: &Margin{L: 0, R: 0, T: 50, B: 0},
		},
	}
	fig.AddTrace(Wireframe(s.Lattice()))
	fig.AddTrace(Markers(s, Colors(s))...)
	return fig
}

// Comparison composes the two-panel figure for an original cell and its
// primitive reduction, side by side. The color assignment is computed
// once over the union of both structures' species, so shared species
// match across panels; both scenes are independently axis-equal.
func Comparison(original, primitive *lattice.Structure, title string) *Figure {
	colors := Colors(original, primitive)
	fig := &Figure{
		Layout: &Layout{
			Title:  &Title{Text: title},
			Scene:  &Scene{AspectMode: "data", Domain: &Domain{X: []float64{0, 0.48}}},
			Scene2: &Scene{AspectMode: "data", Domain: &Domain{X: []float64{0.52, 1}}},
			Legend: &Legend{ItemSizing: "constant"},
			Margin: &Margin{L: 0, R: 0, T: 60, B: 0},
			Annotations: []*Annotation{
				{Text: "Original", X: 0.24, Y: 1, XRef: "paper", YRef: "paper", XAnchor: "center"},
				{Text: "Primitive unit cell", X: 0.76, Y: 1, XRef: "paper", YRef: "paper", XAnchor: "center"},
			},
		},
	}
	for _, tr := range append([]*Trace{Wireframe(original.Lattice())}, Markers(original, colors)...) {
		tr.SceneID = "scene"
		fig.AddTrace(tr)
	}
	for _, tr := range append([]*Trace{Wireframe(primitive.Lattice())}, Markers(primitive, colors)...) {
		tr.SceneID = "scene2"
		fig.AddTrace(tr)
	}
	return fig
}

func fpt(v float64) *float64 {
	return &v
}

func boolp(b bool) *bool {
	return &b
}
