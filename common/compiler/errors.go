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
	"errors"
	"fmt"
	"os/exec"
)

// ErrorKind classifies a compiler invocation failure.
// ErrorKind 对编译器调用失败进行分类。
type ErrorKind int

const (
	NoCompilerFound      ErrorKind = iota + 1 // neither solc nor solcjs answered --version
	ProcessSpawnFailed                        // the OS could not start the command
	ExitStatusNotSuccess                      // the command ran but exited abnormally
	OutputNotUtf8                             // captured stdout is not valid UTF-8
	OutputEmpty                               // version output had no usable line
	StdinOpenFailed                           // stdin pipe could not be created
	StdinWriteFailed                          // request could not be fully written to stdin
)

var kindNames = map[ErrorKind]string{
	NoCompilerFound:      "no solidity compiler found",
	ProcessSpawnFailed:   "failed to run process",
	ExitStatusNotSuccess: "exit status not success",
	OutputNotUtf8:        "output is not utf8",
	OutputEmpty:          "output is empty",
	StdinOpenFailed:      "failed to open stdin",
	StdinWriteFailed:     "failed to write stdin",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors, one per kind. Every *Error matches the sentinel of its kind
// under errors.Is.
var (
	ErrNoCompilerFound      = errors.New(NoCompilerFound.String())
	ErrProcessSpawnFailed   = errors.New(ProcessSpawnFailed.String())
	ErrExitStatusNotSuccess = errors.New(ExitStatusNotSuccess.String())
	ErrOutputNotUtf8        = errors.New(OutputNotUtf8.String())
	ErrOutputEmpty          = errors.New(OutputEmpty.String())
	ErrStdinOpenFailed      = errors.New(StdinOpenFailed.String())
	ErrStdinWriteFailed     = errors.New(StdinWriteFailed.String())
)

var kindSentinels = map[ErrorKind]error{
	NoCompilerFound:      ErrNoCompilerFound,
	ProcessSpawnFailed:   ErrProcessSpawnFailed,
	ExitStatusNotSuccess: ErrExitStatusNotSuccess,
	OutputNotUtf8:        ErrOutputNotUtf8,
	OutputEmpty:          ErrOutputEmpty,
	StdinOpenFailed:      ErrStdinOpenFailed,
	StdinWriteFailed:     ErrStdinWriteFailed,
}

// Error is returned by every operation of this package. It carries the failing
// command line and, where one exists, the exit code and the underlying cause.
// Error 是本包所有操作返回的错误类型，携带失败的命令行、退出码以及底层原因。
type Error struct {
	Kind     ErrorKind
	Command  string // e.g. "solc --standard-json", empty for NoCompilerFound
	ExitCode int    // only meaningful for ExitStatusNotSuccess, -1 if killed by a signal
	Err      error  // underlying OS, pipe or exit error, may be nil
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case NoCompilerFound:
		return "no solidity compiler found: neither solc nor solcjs is available"
	case ExitStatusNotSuccess:
		return fmt.Sprintf("process `%s` exited with %s", e.Command, e.status())
	case OutputNotUtf8:
		return fmt.Sprintf("output from `%s` is not utf8", e.Command)
	case OutputEmpty:
		return fmt.Sprintf("output from `%s` is empty", e.Command)
	case ProcessSpawnFailed:
		msg = fmt.Sprintf("failed to run process `%s`", e.Command)
	case StdinOpenFailed:
		msg = fmt.Sprintf("failed to open stdin for process `%s`", e.Command)
	case StdinWriteFailed:
		msg = fmt.Sprintf("failed to write input json to stdin for process `%s`", e.Command)
	default:
		msg = fmt.Sprintf("%v: `%s`", e.Kind, e.Command)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) status() string {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ProcessState.String()
	}
	return fmt.Sprintf("exit status %d", e.ExitCode)
}

// Unwrap returns the underlying cause so errors.As can reach *exec.ExitError or
// *os.PathError.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// IsKind reports whether err is a compiler *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.Kind == kind
}

func newError(kind ErrorKind, command string, err error) *Error {
	return &Error{Kind: kind, Command: command, Err: err}
}

// exitError classifies the error returned by exec.Cmd.Wait or Run. An
// *exec.ExitError becomes ExitStatusNotSuccess, anything else means the process
// never ran and is reported as ProcessSpawnFailed.
func exitError(command string, err error) *Error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Error{
			Kind:     ExitStatusNotSuccess,
			Command:  command,
			ExitCode: exitErr.ExitCode(),
			Err:      err,
		}
	}
	return newError(ProcessSpawnFailed, command, err)
}
