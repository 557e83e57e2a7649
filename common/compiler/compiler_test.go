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
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-solc/internal/reexec"
)

func TestMain(m *testing.M) {
	reexec.Register(string(Solc), fakeCompiler)
	reexec.Register(string(Solcjs), fakeCompiler)
	if reexec.Init() {
		return
	}
	os.Exit(m.Run())
}

// fakeEnv looks up a setting of the fake compiler, preferring the variant
// specific to the running backend, e.g. FAKE_EXIT_SOLCJS over FAKE_EXIT.
func fakeEnv(name, key string) string {
	if v, ok := os.LookupEnv("FAKE_" + key + "_" + strings.ToUpper(name)); ok {
		return v
	}
	return os.Getenv("FAKE_" + key)
}

// fakeCompiler stands in for solc and solcjs when the test binary is executed
// under one of those names.
func fakeCompiler() {
	name := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	args := os.Args[1:]

	if file := fakeEnv(name, "LOG"); file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
		fmt.Fprintln(f, name, strings.Join(args, " "))
		f.Close()
	}
	if pidfile := fakeEnv(name, "ORPHAN_STDIN"); pidfile != "" {
		// Exit successfully, leaving behind a child that holds stdin open
		// without ever reading it.
		child := exec.Command(name)
		child.Env = append(os.Environ(), "FAKE_ORPHAN_STDIN=", "FAKE_LOG=", "FAKE_HANG=1")
		child.Stdin = os.Stdin
		if err := child.Start(); err != nil {
			os.Exit(3)
		}
		os.WriteFile(pidfile, []byte(strconv.Itoa(child.Process.Pid)), 0644)
		os.Exit(0)
	}
	code, _ := strconv.Atoi(fakeEnv(name, "EXIT"))
	if fakeEnv(name, "HANG") != "" {
		time.Sleep(time.Hour)
	}
	if raw := fakeEnv(name, "STDOUT_HEX"); raw != "" {
		if len(args) == 1 && args[0] == "--standard-json" {
			io.Copy(io.Discard, os.Stdin)
		}
		blob, _ := hex.DecodeString(raw)
		os.Stdout.Write(blob)
		os.Exit(code)
	}
	switch {
	case len(args) == 1 && args[0] == "--version":
		fmt.Print(fakeEnv(name, "VERSION"))

	case len(args) == 1 && args[0] == "--standard-json":
		if code != 0 || fakeEnv(name, "SKIP_STDIN") != "" {
			break
		}
		io.Copy(os.Stdout, os.Stdin)

	case len(args) == 7:
		outdir, source := args[5], args[6]
		if filepath.Base(source) == fakeEnv(name, "FAIL_ON") {
			fmt.Fprintf(os.Stderr, "Error: failed to compile %s\n", source)
			os.Exit(1)
		}
		stem := strings.TrimSuffix(filepath.Base(source), ".sol")
		os.WriteFile(filepath.Join(outdir, stem+".bin"), []byte("6080604052\n"), 0644)
		os.WriteFile(filepath.Join(outdir, stem+".abi"), []byte(`[{"type":"constructor"}]`), 0644)
		fmt.Fprintln(os.Stderr, "Warning: SPDX license identifier not provided in source file.")

	default:
		fmt.Fprintf(os.Stderr, "unexpected arguments %q\n", args)
		os.Exit(2)
	}
	os.Exit(code)
}

// installFakes puts fake executables for the given backends on an otherwise
// empty PATH and clears all settings of the fake.
func installFakes(t *testing.T, backends ...Backend) {
	t.Helper()

	dir := t.TempDir()
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = string(b)
	}
	require.NoError(t, reexec.Link(dir, names...))
	t.Setenv("PATH", dir)

	for _, key := range []string{"LOG", "EXIT", "STDOUT_HEX", "VERSION", "SKIP_STDIN", "FAIL_ON", "HANG", "ORPHAN_STDIN"} {
		t.Setenv("FAKE_"+key, "")
	}
}

// invocations returns the command lines recorded by the fake compiler.
func invocations(t *testing.T, logfile string) []string {
	t.Helper()

	blob, err := os.ReadFile(logfile)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(blob), "\n"), "\n")
}
