// Copyright 2016 The go-ethereum Authors
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

// Package debug configures the process-wide logger from command line flags.
package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sunyihoo/go-solc/internal/flags"
	"github.com/sunyihoo/go-solc/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	VerbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value:    3,
		Category: flags.LoggingCategory,
	}
	LogVmoduleFlag = &cli.StringFlag{
		Name:  "log.vmodule",
		Usage: "Per-module verbosity: comma-separated list of <pattern>=<level> (e.g. compiler/*=5,solcw=4)",
		// 模块级别的日志详细程度。
		Category: flags.LoggingCategory,
	}
	LogFormatFlag = &cli.StringFlag{
		Name:     "log.format",
		Usage:    "Log format to use (json|logfmt|terminal)",
		Category: flags.LoggingCategory,
	}
	LogFileFlag = &cli.StringFlag{
		Name:     "log.file",
		Usage:    "Write logs to a file",
		Category: flags.LoggingCategory,
	}
	logRotateFlag = &cli.BoolFlag{
		Name:     "log.rotate",
		Usage:    "Enables log file rotation",
		Category: flags.LoggingCategory,
	}
	logMaxSizeMBsFlag = &cli.IntFlag{
		Name:     "log.maxsize",
		Usage:    "Maximum size in MBs of a single log file",
		Value:    100,
		Category: flags.LoggingCategory,
	}
	logMaxBackupsFlag = &cli.IntFlag{
		Name:     "log.maxbackups",
		Usage:    "Maximum number of log files to retain",
		Value:    10,
		Category: flags.LoggingCategory,
	}
	logMaxAgeFlag = &cli.IntFlag{
		Name:     "log.maxage",
		Usage:    "Maximum number of days to retain a log file",
		Value:    30,
		Category: flags.LoggingCategory,
	}
	logCompressFlag = &cli.BoolFlag{
		Name:     "log.compress",
		Usage:    "Compress the log files",
		Category: flags.LoggingCategory,
	}
)

// Flags holds all command-line flags required for logging.
// Flags 包含所有日志相关的命令行标志。
var Flags = []cli.Flag{
	VerbosityFlag,
	LogVmoduleFlag,
	LogFormatFlag,
	LogFileFlag,
	logRotateFlag,
	logMaxSizeMBsFlag,
	logMaxBackupsFlag,
	logMaxAgeFlag,
	logCompressFlag,
}

var logOutputFile io.WriteCloser

// Setup initializes logging based on the CLI flags. Log records go to stderr
// so that compiler output on stdout stays machine readable.
// It should be called as early as possible in the program.
func Setup(ctx *cli.Context) error {
	return setup(ctx, os.Stderr)
}

func setup(ctx *cli.Context, stderr *os.File) error {
	var (
		handler        slog.Handler
		terminalOutput = io.Writer(stderr)
		output         io.Writer
		logFmtFlag     = ctx.String(LogFormatFlag.Name)
		logFile        = ctx.String(LogFileFlag.Name)
		rotation       = ctx.Bool(logRotateFlag.Name)
	)
	if len(logFile) > 0 {
		if err := validateLogLocation(filepath.Dir(logFile)); err != nil {
			return fmt.Errorf("failed to initialize file logger: %v", err)
		}
	}
	context := []interface{}{"rotate", rotation}
	if len(logFmtFlag) > 0 {
		context = append(context, "format", logFmtFlag)
	} else {
		context = append(context, "format", "terminal")
	}
	if rotation {
		// Lumberjack uses <processname>-lumberjack.log in os.TempDir() if empty.
		if len(logFile) > 0 {
			context = append(context, "location", logFile)
		} else {
			context = append(context, "location", filepath.Join(os.TempDir(), "solcw-lumberjack.log"))
		}
		logOutputFile = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    ctx.Int(logMaxSizeMBsFlag.Name),
			MaxBackups: ctx.Int(logMaxBackupsFlag.Name),
			MaxAge:     ctx.Int(logMaxAgeFlag.Name),
			Compress:   ctx.Bool(logCompressFlag.Name),
		}
		output = io.MultiWriter(terminalOutput, logOutputFile)
	} else if logFile != "" {
		var err error
		if logOutputFile, err = os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err != nil {
			return err
		}
		output = io.MultiWriter(logOutputFile, terminalOutput)
		context = append(context, "location", logFile)
	} else {
		output = terminalOutput
	}

	switch logFmtFlag {
	case "json":
		handler = log.JSONHandler(output)
	case "logfmt":
		handler = log.LogfmtHandler(output)
	case "", "terminal":
		useColor := (isatty.IsTerminal(stderr.Fd()) || isatty.IsCygwinTerminal(stderr.Fd())) && os.Getenv("TERM") != "dumb"
		if useColor {
			terminalOutput = colorable.NewColorable(stderr)
			if logOutputFile != nil {
				output = io.MultiWriter(logOutputFile, terminalOutput)
			} else {
				output = terminalOutput
			}
		}
		handler = log.NewTerminalHandler(output, useColor)
	default:
		return fmt.Errorf("unknown log format: %v", logFmtFlag)
	}

	glogger := log.NewGlogHandler(handler)
	glogger.Verbosity(log.FromLegacyLevel(ctx.Int(VerbosityFlag.Name)))
	if err := glogger.Vmodule(ctx.String(LogVmoduleFlag.Name)); err != nil {
		return fmt.Errorf("invalid --%s: %v", LogVmoduleFlag.Name, err)
	}
	log.SetDefault(log.NewLogger(glogger))

	if len(logFile) > 0 || rotation {
		log.Info("Logging configured", context...)
	}
	return nil
}

// Exit flushes and closes the log file, if any.
func Exit() {
	if logOutputFile != nil {
		logOutputFile.Close()
		logOutputFile = nil
	}
}

// validateLogLocation checks if the log directory is valid and writable.
func validateLogLocation(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("error creating the directory: %w", err)
	}
	// Check if the path is writable by trying to create a temporary file
	tmp := filepath.Join(path, "tmp")
	if f, err := os.Create(tmp); err != nil {
		return err
	} else {
		f.Close()
	}
	return os.Remove(tmp)
}
