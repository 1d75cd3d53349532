/*
 * config.go, part of golattice.
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
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = "golattice.toml"

// Config holds the settings shared by all subcommands. Flags override
// the file; the file overrides the defaults.
type Config struct {
	SystemsDir   string  `toml:"systems_dir"`
	PrimitiveDir string  `toml:"primitive_dir"`
	OutDir       string  `toml:"out_dir"`
	Addr         string  `toml:"addr"`
	Symprec      float64 `toml:"symprec"`
}

func defaultConfig() Config {
	return Config{
		SystemsDir:   "Systems",
		PrimitiveDir: "Systems_unitcells",
		OutDir:       "Visualizations",
		Addr:         "127.0.0.1:8050",
		Symprec:      1e-2,
	}
}

// loadConfig reads the TOML file at path on top of the defaults. An
// empty path falls back to defaultConfigFile when that exists, and to
// plain defaults otherwise; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return cfg, nil
		}
		path = defaultConfigFile
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
