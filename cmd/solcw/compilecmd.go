// Copyright 2026 The go-ethereum Authors
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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/sunyihoo/go-solc/cmd/utils"
	"github.com/sunyihoo/go-solc/common/compiler"
	"github.com/sunyihoo/go-solc/internal/flags"
	"github.com/sunyihoo/go-solc/log"
	"github.com/urfave/cli/v2"
)

var (
	compileCommand = &cli.Command{
		Action:    compileDir,
		Name:      "compile",
		Usage:     "Compile every Solidity file of a directory",
		ArgsUsage: "<input-dir>",
		Flags:     flags.Merge(utils.CompilerFlags, []cli.Flag{utils.OutputDirFlag}),
		Description: `
The compile command invokes the compiler once per .sol file found directly in
the input directory, in lexicographic order, writing the .abi and .bin files
into the output directory. Compilation stops at the first failing file.
The summary lists the artifacts written by this run, older files already
present in the output directory are left out.

While running, the output directory is locked so that concurrent invocations
do not overwrite each other's artifacts.`,
	}
	standardJSONCommand = &cli.Command{
		Action:    standardJSON,
		Name:      "standard-json",
		Usage:     "Run a standard-json request and print the response",
		ArgsUsage: "[<request.json> | -]",
		Flags:     flags.Merge(utils.CompilerFlags, utils.StandardJSONFlags),
		Description: `
The standard-json command feeds a compiler input description to the compiler's
--standard-json mode and prints the response to stdout. The request is read
from the given file or from stdin. Alternatively, a request may be generated
from one or more --source files and the optimizer flags.`,
	}
)

// compilerContext derives the context bounding a compiler run from the CLI
// context and the --timeout flag.
func compilerContext(ctx *cli.Context) (context.Context, context.CancelFunc) {
	if timeout := ctx.Duration(utils.TimeoutFlag.Name); timeout > 0 {
		return context.WithTimeout(ctx.Context, timeout)
	}
	return context.WithCancel(ctx.Context)
}

func compileDir(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one input directory")
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	backend, err := compiler.ParseBackend(cfg.Compiler.Backend)
	if err != nil {
		return err
	}
	var (
		input  = ctx.Args().First()
		output = cfg.Compiler.OutputDir
		start  = time.Now()
	)
	if err := os.MkdirAll(output, 0755); err != nil {
		return err
	}
	lock := flock.New(filepath.Join(output, "LOCK"))
	locked, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !locked {
		return fmt.Errorf("output directory %s is in use by another process", output)
	}
	defer lock.Unlock()

	cctx, cancel := compilerContext(ctx)
	defer cancel()

	var outputs []*compiler.Output
	if backend == "" {
		outputs, err = compiler.Compile(cctx, input, output)
	} else {
		outputs, err = compiler.CompileDir(cctx, backend, input, output)
	}
	// Warnings of the files that did compile are worth showing even on failure.
	for _, out := range outputs {
		if len(out.Stderr) > 0 {
			fmt.Fprintf(ctx.App.ErrWriter, "%s\n%s", out.Command, out.Stderr)
		}
	}
	if err != nil {
		return err
	}
	contracts, err := compiler.ReadArtifacts(output)
	if err != nil {
		return err
	}
	names, err := freshArtifacts(output, contracts, start)
	if err != nil {
		return err
	}
	for _, name := range names {
		c := contracts[name]
		size := len(strings.TrimPrefix(c.Code, "0x")) / 2
		abi, _ := c.Info.AbiDefinition.([]interface{})
		fmt.Fprintf(ctx.App.Writer, "%-40s %6d bytes %4d abi entries\n", name, size, len(abi))
	}
	log.Info("Compiled solidity directory", "input", input, "output", output,
		"files", len(outputs), "contracts", len(names), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// freshArtifacts returns, sorted, the names of the contracts whose .bin file
// was written at or after since. Artifacts left over from earlier runs are
// skipped. The cutoff is truncated to whole seconds to tolerate filesystems
// with coarse timestamps.
func freshArtifacts(dir string, contracts map[string]*compiler.Contract, since time.Time) ([]string, error) {
	cutoff := since.Truncate(time.Second)
	names := make([]string, 0, len(contracts))
	for name := range contracts {
		info, err := os.Stat(filepath.Join(dir, name+".bin"))
		if err != nil {
			return nil, err
		}
		if info.ModTime().Before(cutoff) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func standardJSON(ctx *cli.Context) error {
	if ctx.NArg() > 1 {
		return errors.New("expected at most one request file")
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	backend, err := compiler.ParseBackend(cfg.Compiler.Backend)
	if err != nil {
		return err
	}
	var input string
	if files := ctx.StringSlice(utils.SourceFlag.Name); len(files) > 0 {
		if ctx.NArg() > 0 {
			return fmt.Errorf("--%s can't be combined with a request file", utils.SourceFlag.Name)
		}
		sources, err := compiler.ReadSources(files...)
		if err != nil {
			return err
		}
		if input, err = compiler.NewStandardInput(sources, cfg.Compiler); err != nil {
			return err
		}
		log.Debug("Generated standard-json request", "sources", len(sources), "size", len(input))
	} else if input, err = utils.ReadInput(ctx.Args().First()); err != nil {
		return err
	}

	cctx, cancel := compilerContext(ctx)
	defer cancel()

	var output string
	if backend == "" {
		output, err = compiler.CompileStandardJSON(cctx, input)
	} else {
		output, err = compiler.StandardJSON(cctx, backend, input)
	}
	if err != nil {
		return err
	}
	fmt.Fprint(ctx.App.Writer, output)
	if !strings.HasSuffix(output, "\n") {
		fmt.Fprintln(ctx.App.Writer)
	}
	return nil
}
