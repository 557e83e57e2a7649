// Copyright 2014 The go-ethereum Authors
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

// solcw is a command-line front end for the solc and solcjs Solidity compilers.
package main

import (
	"context"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/sunyihoo/go-solc/cmd/utils"
	"github.com/sunyihoo/go-solc/internal/debug"
	"github.com/sunyihoo/go-solc/internal/flags"
	"github.com/urfave/cli/v2"
)

const clientIdentifier = "solcw"

var app = newApp()

func newApp() *cli.App {
	app := flags.NewApp("the Solidity compiler wrapper command line interface")
	app.Name = clientIdentifier
	app.Commands = []*cli.Command{
		// See compilecmd.go:
		compileCommand,
		standardJSONCommand,
		// See versioncmd.go:
		versionCommand,
		// See config.go:
		dumpConfigCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Flags = debug.Flags
	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
	return app
}

func main() {
	// Interrupting solcw kills the compiler child process through the context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.RunContext(ctx, os.Args)
	stop()
	if err != nil {
		utils.Fatalf("%v", err)
	}
}
