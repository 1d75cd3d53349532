/*
 * figure.go, part of golattice.
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

//Package figure derives displayable geometry from lattice structures:
//the 12-edge cell wireframe, per-species atom markers, and composed
//single-cell and original-vs-primitive comparison figures. Figures are
//plain data in the plotly JSON schema, so the same object can be handed
//to a browser for interactive display or rendered to a static image;
//the package does neither by itself, except for the export helpers in
//html.go and png.go.
package figure

import "encoding/json"

// Figure is a plotly figure: traces plus layout. It marshals directly
// to the JSON consumed by Plotly.newPlot.
type Figure struct {
	Data   []*Trace `json:"data"`
	Layout *Layout  `json:"layout"`
}

// AddTrace appends traces to the figure.
func (F *Figure) AddTrace(traces ...*Trace) {
	F.Data = append(F.Data, traces...)
}

// JSON returns the figure serialized to plotly JSON.
func (F *Figure) JSON() ([]byte, error) {
	return json.Marshal(F)
}

// Trace is a scatter3d trace. Coordinates are pointers so a nil entry
// marshals to null, which plotly interprets as a break in a line trace;
// that is how the 12 disjoint wireframe segments travel as one
// primitive.
type Trace struct {
	Type       string     `json:"type"`
	X          []*float64 `json:"x"`
	Y          []*float64 `json:"y"`
	Z          []*float64 `json:"z"`
	Mode       string     `json:"mode"`
	Name       string     `json:"name,omitempty"`
	Line       *Line      `json:"line,omitempty"`
	Marker     *Marker    `json:"marker,omitempty"`
	ShowLegend *bool      `json:"showlegend,omitempty"`
	SceneID    string     `json:"scene,omitempty"` //"scene" or "scene2" in multi-scene figures
}

// Line styles a line trace.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// Marker styles a marker trace. Size and color hold for the whole
// trace: one species group, one style.
type Marker struct {
	Size    float64 `json:"size,omitempty"`
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// Layout holds the figure-level metadata: title, one or two 3D scenes,
// margins, legend behavior and the free-floating annotations used as
// panel subtitles.
type Layout struct {
	Title       *Title        `json:"title,omitempty"`
	Scene       *Scene        `json:"scene,omitempty"`
	Scene2      *Scene        `json:"scene2,omitempty"`
	Margin      *Margin       `json:"margin,omitempty"`
	Legend      *Legend       `json:"legend,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty"`
}

type Title struct {
	Text string `json:"text,omitempty"`
}

// Scene is one 3D panel. AspectMode "data" makes the three spatial axes
// share one scale, so the cell shape is not visually distorted.
type Scene struct {
	XAxis      *Axis    `json:"xaxis,omitempty"`
	YAxis      *Axis    `json:"yaxis,omitempty"`
	ZAxis      *Axis    `json:"zaxis,omitempty"`
	AspectMode string   `json:"aspectmode,omitempty"`
	Domain     *Domain  `json:"domain,omitempty"`
}

type Axis struct {
	Title *Title `json:"title,omitempty"`
}

// Domain places a scene within the figure, as fractions of the paper
// size. Used to lay comparison panels side by side.
type Domain struct {
	X []float64 `json:"x,omitempty"`
	Y []float64 `json:"y,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Legend struct {
	ItemSizing string `json:"itemsizing,omitempty"`
}

// Annotation is a paper-anchored text label; comparison figures use two
// of them as panel subtitles.
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	XAnchor   string  `json:"xanchor,omitempty"`
	ShowArrow bool    `json:"showarrow"`
}
