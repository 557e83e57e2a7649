// Copyright 2019 The go-ethereum Authors
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

// Package compiler wraps the Solidity compiler executables (solc; solcjs).
// 它封装 Solidity 编译器的两个可执行文件（solc 和 solcjs），负责探测可用的编译器、
// 以命令行参数或 standard-json 方式调用编译器，并把进程失败归类为统一的错误类型。
package compiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Contract contains information about a compiled contract, alongside its code and runtime code.
type Contract struct {
	Code        string            `json:"code"`
	RuntimeCode string            `json:"runtime-code"`
	Info        ContractInfo      `json:"info"`
	Hashes      map[string]string `json:"hashes"`
}

// ContractInfo contains information about a compiled contract, including access
// to the ABI definition, source mapping, user and developer docs, and metadata.
//
// Depending on the source, language version, compiler version, and compiler
// options will provide information about how the contract was compiled.
// 用于存储与编译后的合约相关的信息。这些信息包括合约的 ABI 定义、源代码映射、用户文档、开发者文档以及元数据。
type ContractInfo struct {
	Source          string      `json:"source"`
	Language        string      `json:"language"`
	LanguageVersion string      `json:"languageVersion"`
	CompilerVersion string      `json:"compilerVersion"`
	CompilerOptions string      `json:"compilerOptions"`
	SrcMap          interface{} `json:"srcMap"`
	SrcMapRuntime   string      `json:"srcMapRuntime"`
	AbiDefinition   interface{} `json:"abiDefinition"`
	UserDoc         interface{} `json:"userDoc"`
	DeveloperDoc    interface{} `json:"developerDoc"`
	Metadata        string      `json:"metadata"`
}

// ReadArtifacts collects the .bin and .abi files a compiler wrote into dir in
// argument mode, keyed by the file name without extension. A contract whose
// .abi file is missing is still returned, with a nil ABI definition.
//
// The file names are chosen by the compiler: solc writes <Contract>.bin while
// solcjs writes <path>_sol_<Contract>.bin.
func ReadArtifacts(dir string) (map[string]*Contract, error) {
	bins, err := filepath.Glob(filepath.Join(dir, "*.bin"))
	if err != nil {
		return nil, err
	}
	contracts := make(map[string]*Contract, len(bins))
	for _, bin := range bins {
		name := strings.TrimSuffix(filepath.Base(bin), ".bin")
		code, err := os.ReadFile(bin)
		if err != nil {
			return nil, err
		}
		contract := &Contract{
			Code: "0x" + strings.TrimSpace(string(code)),
			Info: ContractInfo{Language: "Solidity"},
		}
		abi, err := os.ReadFile(filepath.Join(dir, name+".abi"))
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		case len(strings.TrimSpace(string(abi))) > 0:
			if err := json.Unmarshal(abi, &contract.Info.AbiDefinition); err != nil {
				return nil, fmt.Errorf("invalid abi definition in %s: %w", name+".abi", err)
			}
		}
		contracts[name] = contract
	}
	return contracts, nil
}
