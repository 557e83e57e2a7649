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
	"context"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// StandardJSON runs `<backend> --standard-json`, writes input to its stdin and
// returns whatever the compiler printed on stdout. Neither the request nor the
// response is parsed, both follow the "Compiler Input and Output JSON
// Description" of the Solidity documentation.
//
// The request is written on its own goroutine while the process is waited
// for and its output drained, so large payloads cannot deadlock on full pipe
// buffers and a compiler that exits without reading cannot hang the caller.
//
// StandardJSON 以 --standard-json 模式运行编译器：请求写入标准输入，响应从标准输出读取。
func StandardJSON(ctx context.Context, backend Backend, input string) (string, error) {
	inv := newInvocation(ctx, backend, "--standard-json")

	stdin, err := inv.cmd.StdinPipe()
	if err != nil {
		return "", newError(StdinOpenFailed, inv.command, err)
	}
	inv.start = time.Now()
	inv.log.Debug("Running compiler", "cmd", inv.command, "input", len(input))
	if err := inv.cmd.Start(); err != nil {
		return "", newError(ProcessSpawnFailed, inv.command, err)
	}

	var g errgroup.Group
	g.Go(func() error {
		if _, err := io.WriteString(stdin, input); err != nil {
			return err
		}
		// Closing stdin signals end of input to the compiler.
		return stdin.Close()
	})
	// Wait runs alongside the writer. Once the compiler exits it closes the
	// write end of stdin, which releases a writer blocked on a pipe that is
	// still held open by a process that stopped reading.
	waitErr := inv.cmd.Wait()
	writeErr := g.Wait()

	// The exit status takes precedence: a compiler that failed early usually
	// breaks the pipe before the request is fully written.
	out, err := inv.finish(waitErr)
	if err != nil {
		return "", err
	}
	if writeErr != nil {
		return "", newError(StdinWriteFailed, inv.command, writeErr)
	}
	return out.text()
}

// CompileStandardJSON is StandardJSON with the backend picked by Resolve.
func CompileStandardJSON(ctx context.Context, input string) (string, error) {
	backend, err := Resolve(ctx)
	if err != nil {
		return "", err
	}
	return StandardJSON(ctx, backend, input)
}
