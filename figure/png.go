/*
 * png.go, part of golattice.
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
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//Static export: each 3D scene is projected isometrically onto the
//drawing plane and rendered with gonum/plot; the scenes of a
//comparison figure tile horizontally. This stands in for the
//browser-side interactive rendering when a raster file is wanted.

const (
	isoCos = 0.8660254037844387 //cos(30°)
	isoSin = 0.5                //sin(30°)
)

// project maps a 3D point to the isometric drawing plane, z up.
func project(x, y, z float64) (px, py float64) {
	return (x - y) * isoCos, (x+y)*isoSin + z
}

// SavePNG renders the figure to a PNG file of the given pixel size.
// Multi-scene figures render one tile per scene, left to right.
func SavePNG(fig *Figure, path string, widthPx, heightPx int) error {
	if widthPx <= 0 || heightPx <= 0 {
		return fmt.Errorf("figure.SavePNG: non-positive image size %dx%d", widthPx, heightPx)
	}
	plots, err := scenePlots(fig)
	if err != nil {
		return err
	}
	w := vg.Length(widthPx) / vgimg.DefaultDPI * vg.Inch
	h := vg.Length(heightPx) / vgimg.DefaultDPI * vg.Inch
	img := vgimg.NewWith(vgimg.UseWH(w, h))
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 1, Cols: len(plots), PadX: vg.Millimeter * 2, PadY: vg.Millimeter * 2}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for j, p := range plots {
		p.Draw(canvases[0][j])
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(f)
	return err
}

// scenePlots builds one 2D plot per scene of the figure, in scene
// order.
func scenePlots(fig *Figure) ([]*plot.Plot, error) {
	order := []string{}
	byScene := map[string][]*Trace{}
	for _, tr := range fig.Data {
		id := tr.SceneID
		if id == "" {
			id = "scene"
		}
		if _, ok := byScene[id]; !ok {
			order = append(order, id)
		}
		byScene[id] = append(byScene[id], tr)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("figure.SavePNG: figure has no traces")
	}
	var plots []*plot.Plot
	for i, id := range order {
		p := plot.New()
		p.Title.Text = sceneTitle(fig, i)
		p.HideAxes()
		p.Legend.Top = true
		for _, tr := range byScene[id] {
			if err := addTrace(p, tr); err != nil {
				return nil, err
			}
		}
		plots = append(plots, p)
	}
	return plots, nil
}

// sceneTitle picks the panel title: the per-panel annotation when the
// layout has one, the figure title otherwise.
func sceneTitle(fig *Figure, i int) string {
	if fig.Layout == nil {
		return ""
	}
	if i < len(fig.Layout.Annotations) {
		return fig.Layout.Annotations[i].Text
	}
	if fig.Layout.Title != nil {
		return fig.Layout.Title.Text
	}
	return ""
}

func addTrace(p *plot.Plot, tr *Trace) error {
	switch tr.Mode {
	case "lines":
		col := color.Color(color.Black)
		width := vg.Points(1)
		if tr.Line != nil {
			col = hexColor(tr.Line.Color)
			if tr.Line.Width > 0 {
				width = vg.Points(tr.Line.Width / 2)
			}
		}
		for _, seg := range segments(tr) {
			l, err := plotter.NewLine(seg)
			if err != nil {
				return err
			}
			l.LineStyle.Color = col
			l.LineStyle.Width = width
			p.Add(l)
		}
	case "markers":
		pts := segments(tr)
		if len(pts) == 0 {
			return nil
		}
		var all plotter.XYs
		for _, seg := range pts {
			all = append(all, seg...)
		}
		sc, err := plotter.NewScatter(all)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		if tr.Marker != nil {
			sc.GlyphStyle.Color = hexColor(tr.Marker.Color)
			sc.GlyphStyle.Radius = vg.Points(tr.Marker.Size / 2)
		}
		p.Add(sc)
		if tr.Name != "" {
			p.Legend.Add(tr.Name, sc)
		}
	default:
		return fmt.Errorf("figure.SavePNG: unsupported trace mode %q", tr.Mode)
	}
	return nil
}

// segments projects a trace's coordinates, splitting at the null break
// markers.
func segments(tr *Trace) []plotter.XYs {
	var segs []plotter.XYs
	var cur plotter.XYs
	for i := range tr.X {
		if tr.X[i] == nil || tr.Y[i] == nil || tr.Z[i] == nil {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		px, py := project(*tr.X[i], *tr.Y[i], *tr.Z[i])
		cur = append(cur, plotter.XY{X: px, Y: py})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// hexColor parses #rrggbb and the few named colors the palette and
// wireframe use; anything unparseable renders black.
func hexColor(s string) color.Color {
	if s == "" || s == "black" {
		return color.Black
	}
	if len(s) != 7 || s[0] != '#' {
		return color.Black
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.RGBA{R: r, G: g, B: b, A: math.MaxUint8}
}
