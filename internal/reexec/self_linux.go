// This file originates from Docker/Moby,
// https://github.com/moby/moby/blob/master/pkg/reexec/
// Licensed under Apache License 2.0: https://github.com/moby/moby/blob/master/LICENSE
// Copyright 2013-2018 Docker, Inc.

//go:build linux

package reexec

import "os"

// Self returns the path to the current process's binary. The resolved path is
// preferred over "/proc/self/exe" because symlinks created by Link must point
// at the binary itself, not at the proc entry of the linking process.
func Self() string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	return "/proc/self/exe"
}
