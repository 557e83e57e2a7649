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
	"fmt"
	"strings"

	"github.com/sunyihoo/go-solc/log"
)

// Backend names one of the two interchangeable Solidity compiler executables.
// Backend 表示两个可互换的 Solidity 编译器可执行文件之一。
type Backend string

const (
	// Solc is the C++ implementation of the Solidity compiler.
	Solc Backend = "solc"
	// Solcjs is the JavaScript (emscripten) build of the Solidity compiler.
	Solcjs Backend = "solcjs"
)

// Backends lists every supported backend in preference order. Solc comes first
// because it is the reference implementation.
var Backends = []Backend{Solc, Solcjs}

// ParseBackend maps a user supplied name onto a backend. The empty string and
// "auto" yield the zero Backend, which callers treat as "resolve at call time".
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return "", nil
	case string(Solc):
		return Solc, nil
	case string(Solcjs):
		return Solcjs, nil
	}
	return "", fmt.Errorf("unknown solidity compiler %q, want solc, solcjs or auto", name)
}

// Version runs `<backend> --version` and returns the last non-empty line of its
// output, which is where both backends print the version string.
// Version 运行 `<backend> --version` 并返回输出中最后一个非空行，即版本字符串。
func Version(ctx context.Context, backend Backend) (string, error) {
	out, err := newInvocation(ctx, backend, "--version").run()
	if err != nil {
		return "", err
	}
	stdout, err := out.text()
	if err != nil {
		return "", err
	}
	var last string
	for _, line := range strings.Split(stdout, "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			last = line
		}
	}
	if last == "" {
		return "", newError(OutputEmpty, out.Command, nil)
	}
	return last, nil
}

// SolcVersion returns the output of `solc --version`.
func SolcVersion(ctx context.Context) (string, error) { return Version(ctx, Solc) }

// SolcjsVersion returns the output of `solcjs --version`.
func SolcjsVersion(ctx context.Context) (string, error) { return Version(ctx, Solcjs) }

// IsAvailable reports whether the version probe of backend succeeds.
func IsAvailable(ctx context.Context, backend Backend) bool {
	_, err := Version(ctx, backend)
	return err == nil
}

// IsSolcAvailable reports whether solc can be run from PATH.
func IsSolcAvailable(ctx context.Context) bool { return IsAvailable(ctx, Solc) }

// IsSolcjsAvailable reports whether solcjs can be run from PATH.
func IsSolcjsAvailable(ctx context.Context) bool { return IsAvailable(ctx, Solcjs) }

// Resolve picks the backend to compile with: solc if its probe succeeds,
// otherwise solcjs, otherwise ErrNoCompilerFound. Nothing is cached, every call
// probes the installed binaries again. If ctx is done before a probe succeeds,
// ctx.Err() is returned instead of ErrNoCompilerFound.
// Resolve 选择用于编译的后端：优先 solc，其次 solcjs，都不可用时返回 ErrNoCompilerFound。
func Resolve(ctx context.Context) (Backend, error) {
	for _, backend := range Backends {
		version, err := Version(ctx, backend)
		if err != nil {
			log.Debug("Solidity compiler unavailable", "backend", backend, "err", err)
			continue
		}
		log.Debug("Selected solidity compiler", "backend", backend, "version", version)
		return backend, nil
	}
	// Probes cut short by the caller say nothing about what is installed.
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", &Error{Kind: NoCompilerFound}
}

// Select returns backend unless it is the zero value, in which case a backend
// is picked via Resolve. An explicitly requested backend is not probed.
func Select(ctx context.Context, backend Backend) (Backend, error) {
	if backend != "" {
		return backend, nil
	}
	return Resolve(ctx)
}

// Installation is the probe result of a single backend.
type Installation struct {
	Backend Backend
	Version string // empty if Err is set
	Err     error
}

// Available probes every backend in preference order and reports the outcome
// of each probe.
func Available(ctx context.Context) []Installation {
	res := make([]Installation, 0, len(Backends))
	for _, backend := range Backends {
		version, err := Version(ctx, backend)
		res = append(res, Installation{Backend: backend, Version: version, Err: err})
	}
	return res
}
