/*
 * serve.go, part of golattice.
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
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	lattice "github.com/rmera/golattice"
	"github.com/rmera/golattice/cif"
	"github.com/rmera/golattice/figure"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive two-panel lattice viewer",
	Long: `serve starts an HTTP server with a dropdown of the discovered systems
and, per selection, a side-by-side view of the original cell and its
primitive reduction (or the original alone when no reduction exists).
Figures are recomputed from the files on every request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		pairs, err := cif.Pairs(cfg.SystemsDir, cfg.PrimitiveDir)
		if err != nil {
			return err
		}
		v := newViewer(pairs, cfg.Symprec)
		mux := http.NewServeMux()
		mux.HandleFunc("/", v.handleIndex)
		mux.HandleFunc("/api/systems", v.handleSystems)
		mux.HandleFunc("/api/figure/", v.handleFigure)
		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		slog.Info("serving lattice viewer", "addr", cfg.Addr, "systems", len(pairs))
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (host:port)")
	rootCmd.AddCommand(serveCmd)
}

// viewer holds the discovered structure pairs. It keeps no figure
// state: every request recomputes from the files, so a changed file is
// picked up on the next selection.
type viewer struct {
	names   []string
	pairs   map[string]cif.Pair
	symprec float64
}

func newViewer(pairs []cif.Pair, symprec float64) *viewer {
	v := &viewer{pairs: map[string]cif.Pair{}, symprec: symprec}
	for _, p := range pairs {
		v.names = append(v.names, p.Name)
		v.pairs[p.Name] = p
	}
	return v
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>Lattices - golattice viewer</title>
<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
</head>
<body>
<h2>Lattices - golattice viewer</h2>
<select id="system">
{{range .}}<option value="{{.}}">{{.}}</option>
{{end}}</select>
<div id="figure" style="width:100%;height:85vh;"></div>
<script>
var sel = document.getElementById("system");
function show(name) {
  if (!name) { return; }
  fetch("/api/figure/" + encodeURIComponent(name))
    .then(function (r) {
      if (!r.ok) { throw new Error(r.statusText); }
      return r.json();
    })
    .then(function (fig) { Plotly.react("figure", fig.data, fig.layout, {responsive: true}); })
    .catch(function (err) { console.error(err); });
}
sel.addEventListener("change", function () { show(sel.value); });
show(sel.value);
</script>
</body>
</html>
`))

func (v *viewer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, v.names); err != nil {
		slog.Warn("failed to render index", "error", err)
	}
}

func (v *viewer) handleSystems(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v.names); err != nil {
		slog.Warn("failed to encode system list", "error", err)
	}
}

func (v *viewer) handleFigure(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/figure/")
	pair, ok := v.pairs[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	orig, err := cif.Read(pair.Original)
	if err != nil {
		slog.Warn("unreadable structure", "name", name, "error", err)
		http.Error(w, "unreadable structure", http.StatusInternalServerError)
		return
	}
	var fig *figure.Figure
	prim := orig
	if pair.Primitive != "" {
		prim = lattice.Primitive(orig, v.symprec, &cif.Precomputed{Path: pair.Primitive})
	}
	if prim != orig {
		fig = figure.Comparison(orig, prim, name+" - original vs primitive")
	} else {
		fig = figure.New(orig, name+" - original cell")
	}
	data, err := fig.JSON()
	if err != nil {
		http.Error(w, "figure serialization failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		slog.Debug("client went away", "name", name, "error", err)
	}
}
