// Copyright 2017 The go-ethereum Authors
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

package log

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// errVmoduleSyntax is returned when a user vmodule pattern is invalid.
var errVmoduleSyntax = errors.New("expect comma-separated list of filename=N")

// GlogHandler is a log handler that mimics the filtering features of Google's
// glog logger: a global verbosity ceiling that can be raised per source file
// with vmodule patterns, e.g. "common/compiler/*=5".
// GlogHandler 模仿 glog 的过滤功能：全局日志级别，以及按源文件模式覆盖的级别。
type GlogHandler struct {
	origin slog.Handler

	level    atomic.Int32
	override atomic.Bool // whether any vmodule pattern is set

	lock      sync.RWMutex
	patterns  []pattern
	siteCache map[uintptr]slog.Level
}

// NewGlogHandler wraps h with glog style filtering.
func NewGlogHandler(h slog.Handler) *GlogHandler {
	return &GlogHandler{
		origin:    h,
		siteCache: make(map[uintptr]slog.Level),
	}
}

type pattern struct {
	pattern *regexp.Regexp
	level   slog.Level
}

// Verbosity sets the glog verbosity ceiling.
func (h *GlogHandler) Verbosity(level slog.Level) {
	h.level.Store(int32(level))
}

// Vmodule sets the glog verbosity pattern. The argument is a comma-separated
// list of pattern=N, where pattern is a file name or a "dir/*" glob and N a
// legacy verbosity level (0-5).
//
//	"solidity.go=5"       all files named solidity.go
//	"compiler=4"          all files of packages whose import path ends in compiler
//	"common/*=5"          all files below any common directory
func (h *GlogHandler) Vmodule(ruleset string) error {
	var filter []pattern
	for _, rule := range strings.Split(ruleset, ",") {
		if len(rule) == 0 {
			continue
		}
		parts := strings.Split(rule, "=")
		if len(parts) != 2 {
			return errVmoduleSyntax
		}
		parts[0] = strings.TrimSpace(parts[0])
		parts[1] = strings.TrimSpace(parts[1])
		if len(parts[0]) == 0 || len(parts[1]) == 0 {
			return errVmoduleSyntax
		}
		l, err := strconv.Atoi(parts[1])
		if err != nil {
			return errVmoduleSyntax
		}
		level := FromLegacyLevel(l)
		if level == LevelCrit {
			continue
		}
		matcher := ".*"
		for _, comp := range strings.Split(parts[0], "/") {
			if comp == "*" {
				matcher += "(/.*)?"
			} else if comp != "" {
				matcher += "/" + regexp.QuoteMeta(comp)
			}
		}
		if !strings.HasSuffix(parts[0], ".go") {
			matcher += "/[^/]+\\.go"
		}
		filter = append(filter, pattern{regexp.MustCompile(matcher + "$"), level})
	}
	h.lock.Lock()
	defer h.lock.Unlock()

	h.patterns = filter
	h.siteCache = make(map[uintptr]slog.Level)
	h.override.Store(len(filter) != 0)
	return nil
}

func (h *GlogHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.override.Load() || slog.Level(h.level.Load()) <= lvl
}

func (h *GlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.lock.RLock()
	res := &GlogHandler{
		origin:    h.origin.WithAttrs(attrs),
		patterns:  append([]pattern{}, h.patterns...),
		siteCache: maps.Clone(h.siteCache),
	}
	h.lock.RUnlock()

	res.level.Store(h.level.Load())
	res.override.Store(h.override.Load())
	return res
}

func (h *GlogHandler) WithGroup(name string) slog.Handler {
	panic("not implemented")
}

// Handle emits r if the global level or the vmodule level of its call site
// allows it.
func (h *GlogHandler) Handle(_ context.Context, r slog.Record) error {
	if slog.Level(h.level.Load()) <= r.Level {
		return h.origin.Handle(context.Background(), r)
	}
	h.lock.RLock()
	lvl, ok := h.siteCache[r.PC]
	h.lock.RUnlock()

	if !ok {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		lvl = slog.Level(h.level.Load())
		h.lock.Lock()
		for _, rule := range h.patterns {
			if rule.pattern.MatchString("+" + frame.File) {
				lvl = rule.level
			}
		}
		h.siteCache[r.PC] = lvl
		h.lock.Unlock()
	}
	if lvl <= r.Level {
		return h.origin.Handle(context.Background(), r)
	}
	return nil
}
