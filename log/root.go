package log

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var root atomic.Value

// The root logger discards everything until SetDefault is called, so library
// users of the compiler package see no output unless they ask for it.
func init() {
	root.Store(&logger{slog.New(DiscardHandler())})
}

// SetDefault sets the default global logger
// SetDefault 设置默认的全局日志记录器
func SetDefault(l Logger) {
	root.Store(l)
	if lg, ok := l.(*logger); ok {
		slog.SetDefault(lg.inner)
	}
}

// Root returns the root logger
func Root() Logger {
	return root.Load().(Logger)
}

// The following functions bypass the exported logger methods (logger.Debug,
// etc.) to keep the call depth the same for all paths to logger.Write so
// runtime.Caller(3) always refers to the call site in client code.

// Trace logs a message at the trace level with context key/value pairs
//
//	log.Trace("msg", "key1", val1)
func Trace(msg string, ctx ...interface{}) {
	Root().Write(LevelTrace, msg, ctx...)
}

// Debug logs a message at the debug level with context key/value pairs
func Debug(msg string, ctx ...interface{}) {
	Root().Write(LevelDebug, msg, ctx...)
}

// Info logs a message at the info level with context key/value pairs
func Info(msg string, ctx ...interface{}) {
	Root().Write(LevelInfo, msg, ctx...)
}

// Warn logs a message at the warn level with context key/value pairs
func Warn(msg string, ctx ...interface{}) {
	Root().Write(LevelWarn, msg, ctx...)
}

// Error logs a message at the error level with context key/value pairs
func Error(msg string, ctx ...interface{}) {
	Root().Write(LevelError, msg, ctx...)
}

// Crit logs a message at the crit level with context key/value pairs, and then exits.
func Crit(msg string, ctx ...interface{}) {
	Root().Write(LevelCrit, msg, ctx...)
	os.Exit(1)
}

// New returns a new logger with the given context.
// New is a convenient alias for Root().New
func New(ctx ...interface{}) Logger {
	return Root().With(ctx...)
}
