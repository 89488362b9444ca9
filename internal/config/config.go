/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package config loads the CLI's optional YAML companion file, letting the
// default source path, stage, and codegen target be pinned without typing
// them on the command line every time.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the CLI's own flags; a zero Config changes nothing, so a
// missing config file and an empty one behave identically.
type Config struct {
	File   string `yaml:"file"`
	Stage  string `yaml:"stage"`
	Target string `yaml:"target"`
}

// Load reads and parses the YAML file at path. A missing file is not an
// error: it returns a zero Config, so the CLI's own defaults apply
// untouched.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &c, nil
}

// Override returns value if it's non-empty, falling back to fallback
// otherwise — used to let an explicit CLI flag win over the config file,
// and the config file win over the built-in default.
func Override(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
