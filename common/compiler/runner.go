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
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sunyihoo/go-solc/log"
)

// Output is the outcome of a compiler process that ran to completion.
// Output 是一次运行完成的编译器进程的结果。
type Output struct {
	Command  string // command line that was executed
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// invocation is a single child process run. It is never reused.
type invocation struct {
	id      string
	command string
	cmd     *exec.Cmd
	stdout  bytes.Buffer
	stderr  bytes.Buffer
	start   time.Time
	log     log.Logger
}

func newInvocation(ctx context.Context, backend Backend, args ...string) *invocation {
	inv := &invocation{
		id:      uuid.NewString(),
		command: commandLine(string(backend), args...),
		cmd:     exec.CommandContext(ctx, string(backend), args...),
	}
	inv.cmd.Stdout = &inv.stdout
	inv.cmd.Stderr = &inv.stderr
	inv.log = log.New("id", inv.id)
	return inv
}

// run starts the process, waits for it and classifies the exit status.
func (inv *invocation) run() (*Output, error) {
	inv.start = time.Now()
	inv.log.Debug("Running compiler", "cmd", inv.command)
	return inv.finish(inv.cmd.Run())
}

// finish turns the error of Run or Wait into the taxonomy and collects the
// captured streams.
func (inv *invocation) finish(err error) (*Output, error) {
	if err != nil {
		cerr := exitError(inv.command, err)
		inv.log.Debug("Compiler failed", "cmd", inv.command, "kind", cerr.Kind, "exitcode", cerr.ExitCode,
			"stderr", strings.TrimSpace(inv.stderr.String()), "elapsed", time.Since(inv.start))
		return nil, cerr
	}
	out := &Output{
		Command:  inv.command,
		ExitCode: inv.cmd.ProcessState.ExitCode(),
		Stdout:   inv.stdout.Bytes(),
		Stderr:   inv.stderr.Bytes(),
	}
	inv.log.Trace("Compiler finished", "cmd", inv.command, "stdout", len(out.Stdout), "stderr", len(out.Stderr),
		"elapsed", time.Since(inv.start))
	return out, nil
}

// text decodes the captured stdout, rejecting invalid UTF-8.
func (out *Output) text() (string, error) {
	if !utf8.Valid(out.Stdout) {
		return "", newError(OutputNotUtf8, out.Command, nil)
	}
	return string(out.Stdout), nil
}

// commandLine formats a command and its arguments the way a shell user would
// type it, quoting arguments that contain spaces.
func commandLine(name string, args ...string) string {
	var s strings.Builder
	s.WriteString(name)
	for _, arg := range args {
		s.WriteByte(' ')
		if strings.ContainsAny(arg, " \t") || arg == "" {
			arg = strconv.QuoteToASCII(arg)
		}
		s.WriteString(arg)
	}
	return s.String()
}
