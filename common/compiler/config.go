// Copyright 2026 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package compiler

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Defaults contains the default settings used by the solcw tool.
var Defaults = Config{
	Backend:         "auto",
	OutputDir:       "build",
	Optimize:        true,
	OptimizeRuns:    200,
	OutputSelection: []string{"metadata", "abi", "evm.bytecode", "evm.gasEstimates"},
}

// Config contains the compiler settings that can be loaded from a TOML file.
// Config 包含可以从 TOML 文件加载的编译器配置。
type Config struct {
	// Backend is "solc", "solcjs" or "auto" to pick the first available one.
	Backend string

	// OutputDir receives the .abi and .bin files in argument mode.
	OutputDir string `toml:",omitempty"`

	// Optimizer settings placed in standard-json requests.
	Optimize     bool
	OptimizeRuns int

	// EVMVersion, if set, is forwarded as settings.evmVersion.
	EVMVersion string `toml:",omitempty"`

	// OutputSelection lists the outputs requested for every contract.
	OutputSelection []string
}

// standardInput mirrors the subset of the compiler input description that
// NewStandardInput fills in.
type standardInput struct {
	Language string                    `json:"language"`
	Sources  map[string]standardSource `json:"sources"`
	Settings standardSettings          `json:"settings"`
}

type standardSource struct {
	Content string `json:"content"`
}

type standardSettings struct {
	Optimizer struct {
		Enabled bool `json:"enabled"`
		Runs    int  `json:"runs"`
	} `json:"optimizer"`
	EVMVersion      string                         `json:"evmVersion,omitempty"`
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

// NewStandardInput builds a standard-json request compiling the given sources
// (unit name to source text) with the settings of cfg.
func NewStandardInput(sources map[string]string, cfg Config) (string, error) {
	in := standardInput{
		Language: "Solidity",
		Sources:  make(map[string]standardSource, len(sources)),
	}
	for name, content := range sources {
		in.Sources[name] = standardSource{Content: content}
	}
	in.Settings.Optimizer.Enabled = cfg.Optimize
	in.Settings.Optimizer.Runs = cfg.OptimizeRuns
	in.Settings.EVMVersion = cfg.EVMVersion

	selection := cfg.OutputSelection
	if len(selection) == 0 {
		selection = Defaults.OutputSelection
	}
	in.Settings.OutputSelection = map[string]map[string][]string{
		"*": {"*": selection},
	}
	blob, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return string(blob), nil
}

// ReadSources loads the given Solidity files, keyed by base name, ready to be
// passed to NewStandardInput.
func ReadSources(files ...string) (map[string]string, error) {
	sources := make(map[string]string, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		sources[filepath.Base(file)] = string(content)
	}
	return sources, nil
}
