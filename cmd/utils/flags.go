// Copyright 2015 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// Package utils contains internal helper functions for solcw commands.
package utils

import (
	"github.com/sunyihoo/go-solc/common/compiler"
	"github.com/sunyihoo/go-solc/internal/flags"
	"github.com/urfave/cli/v2"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	// General settings
	ConfigFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}

	// Compiler selection
	BackendFlag = &cli.StringFlag{
		Name:     "backend",
		Usage:    "Solidity compiler to invoke (solc|solcjs|auto)",
		Value:    compiler.Defaults.Backend,
		EnvVars:  []string{"SOLCW_BACKEND"},
		Category: flags.CompilerCategory,
	}
	OutputDirFlag = &flags.DirectoryFlag{
		Name:     "output-dir",
		Usage:    "Directory receiving the compiled .abi and .bin files",
		Value:    flags.DirectoryString(compiler.Defaults.OutputDir),
		EnvVars:  []string{"SOLCW_OUTPUT_DIR"},
		Category: flags.CompilerCategory,
	}
	TimeoutFlag = &cli.DurationFlag{
		Name:     "timeout",
		Usage:    "Abort the compiler after the given duration (0 = no limit)",
		Category: flags.CompilerCategory,
	}

	// Standard JSON request construction
	SourceFlag = &cli.StringSliceFlag{
		Name:     "source",
		Usage:    "Solidity file to place in a generated standard-json request (repeatable)",
		Category: flags.StandardJSONCategory,
	}
	OptimizeFlag = &cli.BoolFlag{
		Name:     "optimize",
		Usage:    "Enable the optimizer in generated requests",
		Value:    compiler.Defaults.Optimize,
		Category: flags.StandardJSONCategory,
	}
	OptimizeRunsFlag = &cli.IntFlag{
		Name:     "optimize-runs",
		Usage:    "Expected number of contract runs the optimizer tunes for",
		Value:    compiler.Defaults.OptimizeRuns,
		Category: flags.StandardJSONCategory,
	}
	EVMVersionFlag = &cli.StringFlag{
		Name:     "evm-version",
		Usage:    "Target EVM version of generated requests (e.g. cancun)",
		Category: flags.StandardJSONCategory,
	}
)

// CompilerFlags are the flags shared by every command that runs a compiler.
var CompilerFlags = []cli.Flag{
	ConfigFileFlag,
	BackendFlag,
	TimeoutFlag,
}

// StandardJSONFlags control how the standard-json command builds its request.
var StandardJSONFlags = []cli.Flag{
	SourceFlag,
	OptimizeFlag,
	OptimizeRunsFlag,
	EVMVersionFlag,
}

// SetCompilerConfig applies compiler related command line flags to the config.
func SetCompilerConfig(ctx *cli.Context, cfg *compiler.Config) {
	if ctx.IsSet(BackendFlag.Name) {
		cfg.Backend = ctx.String(BackendFlag.Name)
	}
	if ctx.IsSet(OutputDirFlag.Name) {
		cfg.OutputDir = OutputDirFlag.Value.String()
	}
	if ctx.IsSet(OptimizeFlag.Name) {
		cfg.Optimize = ctx.Bool(OptimizeFlag.Name)
	}
	if ctx.IsSet(OptimizeRunsFlag.Name) {
		cfg.OptimizeRuns = ctx.Int(OptimizeRunsFlag.Name)
	}
	if ctx.IsSet(EVMVersionFlag.Name) {
		cfg.EVMVersion = ctx.String(EVMVersionFlag.Name)
	}
}
