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
	"fmt"

	"github.com/sunyihoo/go-solc/cmd/utils"
	"github.com/sunyihoo/go-solc/common/compiler"
	"github.com/sunyihoo/go-solc/internal/version"
	"github.com/urfave/cli/v2"
)

var versionCommand = &cli.Command{
	Action:    printVersion,
	Name:      "version",
	Usage:     "Print version numbers of solcw and the installed compilers",
	ArgsUsage: " ",
	Flags:     []cli.Flag{utils.TimeoutFlag},
	Description: `
The output of this command is supposed to be machine-readable.
Each compiler line shows the version reported by '<compiler> --version',
or the reason the compiler is unusable.`,
}

func printVersion(ctx *cli.Context) error {
	w := ctx.App.Writer
	fmt.Fprintln(w, "Solcw")
	for _, kv := range version.Info() {
		fmt.Fprintf(w, "%s: %s\n", kv[0], kv[1])
	}

	cctx, cancel := compilerContext(ctx)
	defer cancel()

	for _, inst := range compiler.Available(cctx) {
		if inst.Err != nil {
			fmt.Fprintf(w, "%s: unavailable (%v)\n", inst.Backend, inst.Err)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", inst.Backend, inst.Version)
	}
	return nil
}
