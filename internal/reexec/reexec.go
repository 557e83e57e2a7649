// This file originates from Docker/Moby,
// https://github.com/moby/moby/blob/master/pkg/reexec/reexec.go
// Licensed under Apache License 2.0: https://github.com/moby/moby/blob/master/LICENSE
// Copyright 2013-2018 Docker, Inc.
//
// Package reexec facilitates the busybox style reexec of the current binary.
// Handlers are registered with a name and the base name of argv 0 of the exec
// of the binary is used to find and execute them. The tests of this module use
// it to stand in for the solc and solcjs executables.

package reexec

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// reexec 的概念：把当前二进制以另一个名字重新执行，Init 根据 argv[0] 找到注册的入口函数。
// 测试中以此伪造 solc / solcjs 可执行文件。

var registeredInitializers = make(map[string]func())

// Register adds an initialization func under the specified name.
func Register(name string, initializer func()) {
	if _, exists := registeredInitializers[name]; exists {
		panic(fmt.Sprintf("reexec func already registered under name %q", name))
	}
	registeredInitializers[name] = initializer
}

// Init is called as the first part of the exec process and returns true if an
// initialization function was called. Only the base name of argv 0 is matched,
// so the binary may be invoked through a PATH lookup or an absolute path.
func Init() bool {
	name := filepath.Base(os.Args[0])
	if runtime.GOOS == "windows" {
		name = trimExe(name)
	}
	if initializer, ok := registeredInitializers[name]; ok {
		initializer()
		return true
	}
	return false
}

// Link makes the current binary reachable as each of names inside dir, so that
// dir can be put on PATH in place of the real executables.
// Link 在 dir 目录中为当前二进制创建以 names 命名的链接，便于将 dir 放入 PATH 替代真实程序。
func Link(dir string, names ...string) error {
	self := Self()
	for _, name := range names {
		if runtime.GOOS == "windows" {
			name += ".exe"
		}
		if err := os.Symlink(self, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("reexec: cannot link %s: %w", name, err)
		}
	}
	return nil
}

func trimExe(name string) string {
	if ext := filepath.Ext(name); ext == ".exe" || ext == ".EXE" {
		return name[:len(name)-len(ext)]
	}
	return name
}
