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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-solc/common/compiler"
)

func TestCompileCommand(t *testing.T) {
	installFakes(t, "solc", "solcjs")

	src := writeContracts(t, "b.sol", "a.sol", "README.md")
	out := filepath.Join(t.TempDir(), "build")
	stdout, stderr, err := runSolcw(t, "compile", "--output-dir", out, src)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"a", "5", "bytes", "2", "abi", "entries"}, strings.Fields(lines[0]))
	assert.Equal(t, "b", strings.Fields(lines[1])[0])

	assert.Contains(t, stderr, "solc --bin --abi --overwrite --optimize --output-dir "+out+" "+filepath.Join(src, "a.sol"))
	assert.Contains(t, stderr, "Warning: Unused local variable in a.sol")
	assert.FileExists(t, filepath.Join(out, "LOCK"))
	assert.NoFileExists(t, filepath.Join(out, "README.bin"))
}

// Artifacts already in the output directory are not reported as compiled.
func TestCompileCommandSkipsStaleArtifacts(t *testing.T) {
	installFakes(t, "solc")

	out := t.TempDir()
	stale := filepath.Join(out, "Old.bin")
	require.NoError(t, os.WriteFile(stale, []byte("00"), 0644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	stdout, _, err := runSolcw(t, "compile", "--output-dir", out, writeContracts(t, "a.sol"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "a", strings.Fields(lines[0])[0])
	assert.FileExists(t, stale)
}

func TestCompileCommandAutoFallback(t *testing.T) {
	installFakes(t, "solc", "solcjs")
	t.Setenv("SOLCW_FAKE_BROKEN", "solc")

	src := writeContracts(t, "a.sol")
	_, stderr, err := runSolcw(t, "compile", "--output-dir", t.TempDir(), src)
	require.NoError(t, err)
	assert.Contains(t, stderr, "solcjs --bin --abi")
}

func TestCompileCommandBackendFlag(t *testing.T) {
	installFakes(t, "solc", "solcjs")

	src := writeContracts(t, "a.sol")
	_, stderr, err := runSolcw(t, "compile", "--backend", "solcjs", "--output-dir", t.TempDir(), src)
	require.NoError(t, err)
	assert.Contains(t, stderr, "solcjs --bin --abi")
	assert.NotContains(t, stderr, "solc --bin")

	_, _, err = runSolcw(t, "compile", "--backend", "vyper", "--output-dir", t.TempDir(), src)
	assert.ErrorContains(t, err, "vyper")
}

func TestCompileCommandFailFast(t *testing.T) {
	installFakes(t, "solc")

	src := writeContracts(t, "a.sol", "broken.sol", "c.sol")
	out := t.TempDir()
	_, stderr, err := runSolcw(t, "compile", "--backend", "solc", "--output-dir", out, src)
	require.ErrorIs(t, err, compiler.ErrExitStatusNotSuccess)
	assert.Contains(t, err.Error(), "broken.sol")
	assert.Contains(t, stderr, "Warning: Unused local variable in a.sol")
	assert.FileExists(t, filepath.Join(out, "a.bin"))
	assert.NoFileExists(t, filepath.Join(out, "c.bin"))
}

func TestCompileCommandLocked(t *testing.T) {
	installFakes(t, "solc")

	out := t.TempDir()
	lock := flock.New(filepath.Join(out, "LOCK"))
	locked, err := lock.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer lock.Unlock()

	_, _, err = runSolcw(t, "compile", "--output-dir", out, writeContracts(t, "a.sol"))
	assert.ErrorContains(t, err, "in use by another process")
	assert.NoFileExists(t, filepath.Join(out, "a.bin"))
}

func TestCompileCommandNoCompiler(t *testing.T) {
	installFakes(t)

	_, _, err := runSolcw(t, "compile", "--output-dir", t.TempDir(), writeContracts(t, "a.sol"))
	assert.ErrorIs(t, err, compiler.ErrNoCompilerFound)
}

func TestCompileCommandArgs(t *testing.T) {
	installFakes(t, "solc")

	_, _, err := runSolcw(t, "compile")
	assert.ErrorContains(t, err, "expected exactly one input directory")
}

func TestStandardJSONCommand(t *testing.T) {
	installFakes(t, "solc")

	request := `{"language":"Solidity","sources":{}}`
	file := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(file, []byte(request), 0644))

	stdout, _, err := runSolcw(t, "standard-json", file)
	require.NoError(t, err)
	assert.Equal(t, request+"\n", stdout)
}

func TestStandardJSONCommandStdin(t *testing.T) {
	installFakes(t, "solcjs")

	request := "{\"language\":\"Solidity\"}\n"
	file := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(file, []byte(request), 0644))
	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()

	stdin := os.Stdin
	os.Stdin = f
	defer func() { os.Stdin = stdin }()

	stdout, _, err := runSolcw(t, "standard-json", "--backend", "solcjs", "-")
	require.NoError(t, err)
	assert.Equal(t, request, stdout)
}

func TestStandardJSONCommandSources(t *testing.T) {
	installFakes(t, "solc")

	src := writeContracts(t, "Token.sol")
	stdout, _, err := runSolcw(t, "standard-json",
		"--source", filepath.Join(src, "Token.sol"), "--optimize-runs", "1", "--evm-version", "cancun")
	require.NoError(t, err)

	var request struct {
		Sources  map[string]struct{ Content string }
		Settings struct {
			Optimizer struct {
				Enabled bool
				Runs    int
			}
			EVMVersion string `json:"evmVersion"`
		}
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &request))
	assert.Contains(t, request.Sources["Token.sol"].Content, "contract Token {}")
	assert.True(t, request.Settings.Optimizer.Enabled)
	assert.Equal(t, 1, request.Settings.Optimizer.Runs)
	assert.Equal(t, "cancun", request.Settings.EVMVersion)
}

func TestStandardJSONCommandBadArgs(t *testing.T) {
	installFakes(t, "solc")

	src := writeContracts(t, "a.sol")
	_, _, err := runSolcw(t, "standard-json", "--source", filepath.Join(src, "a.sol"), "request.json")
	assert.ErrorContains(t, err, "can't be combined with a request file")

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(" \n"), 0644))
	_, _, err = runSolcw(t, "standard-json", empty)
	assert.ErrorContains(t, err, "empty standard-json request")

	_, _, err = runSolcw(t, "standard-json", "a.json", "b.json")
	assert.ErrorContains(t, err, "at most one request file")
}

func TestStandardJSONCommandTimeout(t *testing.T) {
	installFakes(t, "solc")
	t.Setenv("SOLCW_FAKE_HANG", "1")

	file := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))

	_, _, err := runSolcw(t, "standard-json", "--backend", "solc", "--timeout", "200ms", file)
	assert.ErrorIs(t, err, compiler.ErrExitStatusNotSuccess)
}
