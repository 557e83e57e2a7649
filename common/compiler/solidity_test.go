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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSource = `// SPDX-License-Identifier: GPL-3.0
pragma solidity >=0.4.0;

contract test {
   function f(uint a) public pure returns(uint d) { return a * 7; }
}
`

// writeSources creates the named files in a fresh directory.
func writeSources(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(testSource), 0644))
	}
	return dir
}

func TestSolidityFiles(t *testing.T) {
	dir := writeSources(t, "b.sol", "a.sol", "c.txt", "Upper.SOL", "noext", "d.sol.bak", ".sol")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.sol"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested.sol", "e.sol"), []byte(testSource), 0644))

	files, err := SolidityFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.sol"),
		filepath.Join(dir, "b.sol"),
	}, files)
}

func TestSolidityFilesMissingDir(t *testing.T) {
	_, err := SolidityFiles(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCompileFile(t *testing.T) {
	installFakes(t, Solc)
	logfile := filepath.Join(t.TempDir(), "calls")
	t.Setenv("FAKE_LOG", logfile)

	src := writeSources(t, "test.sol")
	out := t.TempDir()
	res, err := CompileFile(context.Background(), Solc, filepath.Join(src, "test.sol"), out)
	require.NoError(t, err)

	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, string(res.Stderr), "Warning: SPDX license identifier")
	assert.Empty(t, res.Stdout)
	assert.Equal(t, []string{
		"solc --bin --abi --overwrite --optimize --output-dir " + out + " " + filepath.Join(src, "test.sol"),
	}, invocations(t, logfile))
	assert.FileExists(t, filepath.Join(out, "test.bin"))
	assert.FileExists(t, filepath.Join(out, "test.abi"))
}

func TestCompileFileExitStatus(t *testing.T) {
	installFakes(t, Solcjs)
	t.Setenv("FAKE_FAIL_ON", "test.sol")

	src := writeSources(t, "test.sol")
	_, err := CompileFile(context.Background(), Solcjs, filepath.Join(src, "test.sol"), t.TempDir())
	require.ErrorIs(t, err, ErrExitStatusNotSuccess)

	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 1, cerr.ExitCode)
	assert.Contains(t, cerr.Command, "solcjs --bin --abi --overwrite --optimize --output-dir")
}

func TestCompileFileSpawnFailed(t *testing.T) {
	installFakes(t)

	src := writeSources(t, "test.sol")
	_, err := CompileFile(context.Background(), Solc, filepath.Join(src, "test.sol"), t.TempDir())
	require.ErrorIs(t, err, ErrProcessSpawnFailed)
}

func TestCompileDirOnlySolidity(t *testing.T) {
	installFakes(t, Solc)
	logfile := filepath.Join(t.TempDir(), "calls")
	t.Setenv("FAKE_LOG", logfile)

	src := writeSources(t, "a.sol", "b.sol", "c.txt")
	outputs, err := CompileDir(context.Background(), Solc, src, t.TempDir())
	require.NoError(t, err)
	assert.Len(t, outputs, 2)
	assert.Len(t, invocations(t, logfile), 2)
}

func TestCompileDirFailFast(t *testing.T) {
	installFakes(t, Solc)
	logfile := filepath.Join(t.TempDir(), "calls")
	t.Setenv("FAKE_LOG", logfile)
	t.Setenv("FAKE_FAIL_ON", "b.sol")

	src := writeSources(t, "a.sol", "b.sol", "c.sol", "d.sol")
	out := t.TempDir()
	outputs, err := CompileDir(context.Background(), Solc, src, out)
	require.ErrorIs(t, err, ErrExitStatusNotSuccess)
	assert.Len(t, outputs, 1)

	calls := invocations(t, logfile)
	require.Len(t, calls, 2)
	assert.Contains(t, calls[0], filepath.Join(src, "a.sol"))
	assert.Contains(t, calls[1], filepath.Join(src, "b.sol"))
	assert.NoFileExists(t, filepath.Join(out, "c.bin"))
}

func TestCompileAutoResolve(t *testing.T) {
	installFakes(t, Solcjs)
	logfile := filepath.Join(t.TempDir(), "calls")
	t.Setenv("FAKE_LOG", logfile)
	t.Setenv("FAKE_VERSION", "0.8.26\n")

	src := writeSources(t, "a.sol")
	_, err := Compile(context.Background(), src, t.TempDir())
	require.NoError(t, err)

	calls := invocations(t, logfile)
	require.Len(t, calls, 2)
	assert.Equal(t, "solcjs --version", calls[0])
	assert.Contains(t, calls[1], "solcjs --bin --abi")
}

// Without a compiler the input directory is never looked at.
func TestCompileNoCompiler(t *testing.T) {
	installFakes(t)

	_, err := Compile(context.Background(), filepath.Join(t.TempDir(), "missing"), t.TempDir())
	require.ErrorIs(t, err, ErrNoCompilerFound)
}

func TestReadArtifacts(t *testing.T) {
	installFakes(t, Solc)

	src := writeSources(t, "a.sol", "b.sol")
	out := t.TempDir()
	_, err := CompileDir(context.Background(), Solc, src, out)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(out, "orphan.bin"), []byte("00"), 0644))

	contracts, err := ReadArtifacts(out)
	require.NoError(t, err)
	require.Len(t, contracts, 3)
	assert.Equal(t, "0x6080604052", contracts["a"].Code)
	assert.Equal(t, []interface{}{map[string]interface{}{"type": "constructor"}}, contracts["a"].Info.AbiDefinition)
	assert.Equal(t, "0x00", contracts["orphan"].Code)
	assert.Nil(t, contracts["orphan"].Info.AbiDefinition)
}

func TestReadArtifactsInvalidABI(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(out, "x.bin"), []byte("00"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(out, "x.abi"), []byte("{"), 0644))

	_, err := ReadArtifacts(out)
	assert.ErrorContains(t, err, "x.abi")
}
