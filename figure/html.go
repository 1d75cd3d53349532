/*
 * html.go, part of golattice.
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
	"html/template"
	"io"
	"os"
)

// plotlyCDN is the plotly.js build the exported documents load. The
// documents are otherwise self-contained.
const plotlyCDN = "https://cdn.plot.ly/plotly-2.27.0.min.js"

var htmlTmpl = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<script src="{{.CDN}}"></script>
</head>
<body>
<div id="figure" style="width:100%;height:95vh;"></div>
<script>
var fig = {{.Figure}};
Plotly.newPlot("figure", fig.data, fig.layout, {responsive: true});
</script>
</body>
</html>
`))

// WriteHTML writes the figure to w as a standalone HTML document that
// renders it with plotly.js from a CDN.
func WriteHTML(w io.Writer, fig *Figure, title string) error {
	data, err := fig.JSON()
	if err != nil {
		return fmt.Errorf("figure.WriteHTML: %v", err)
	}
	return htmlTmpl.Execute(w, struct {
		Title  string
		CDN    string
		Figure template.JS
	}{Title: title, CDN: plotlyCDN, Figure: template.JS(data)})
}

// SaveHTML writes the figure to path as a standalone HTML document.
func SaveHTML(path string, fig *Figure, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteHTML(f, fig, title)
}
