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
	"os"
	"path/filepath"
	"sort"

	"github.com/sunyihoo/go-solc/log"
)

// compileArgs are the flags passed to the compiler in argument mode, ahead of
// the output directory and the source file.
var compileArgs = []string{"--bin", "--abi", "--overwrite", "--optimize", "--output-dir"}

// CompileFile shells out to backend to compile sourceFile into .abi and .bin
// files in outputDir. The naming of the produced files is left to the compiler.
// The raw output is returned so callers can look at warnings printed on success.
// CompileFile 调用编译器将 sourceFile 编译为 outputDir 中的 abi 和 bin 文件。
func CompileFile(ctx context.Context, backend Backend, sourceFile, outputDir string) (*Output, error) {
	args := append(append([]string{}, compileArgs...), outputDir, sourceFile)
	return newInvocation(ctx, backend, args...).run()
}

// SolidityFiles returns the paths of all files in dir with a .sol extension,
// sorted by name. Subdirectories are not descended into.
func SolidityFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == ".sol" || filepath.Ext(name) != ".sol" {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

// CompileDir compiles every Solidity file in inputDir with backend, in name
// order. It stops at the first failure.
//
// A non-nil error means the directory as a whole failed to compile. The outputs
// of the files compiled before the failure are returned alongside it only so
// their diagnostics can be shown, they do not signal partial success.
func CompileDir(ctx context.Context, backend Backend, inputDir, outputDir string) ([]*Output, error) {
	files, err := SolidityFiles(inputDir)
	if err != nil {
		return nil, err
	}
	outputs := make([]*Output, 0, len(files))
	for _, file := range files {
		out, err := CompileFile(ctx, backend, file, outputDir)
		if err != nil {
			log.Debug("Aborting directory compile", "file", file, "err", err)
			return outputs, err
		}
		outputs = append(outputs, out)
	}
	log.Debug("Compiled solidity directory", "backend", backend, "input", inputDir, "output", outputDir, "files", len(files))
	return outputs, nil
}

// Compile shells out to solc or solcjs, whichever is available in that order,
// to compile all Solidity files in inputDir into abi and bin files in outputDir.
// If no compiler is available the directory is not read.
func Compile(ctx context.Context, inputDir, outputDir string) ([]*Output, error) {
	backend, err := Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return CompileDir(ctx, backend, inputDir, outputDir)
}
