package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"reflect"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	timeFormat        = "2006-01-02T15:04:05-0700"
	termTimeFormat    = "01-02|15:04:05.000"
	termMsgJust       = 40 // width the message is padded to when attributes follow
	termCtxMaxPadding = 40 // attribute values longer than this are not aligned
)

type discardHandler struct{}

// DiscardHandler returns a no-op handler
func DiscardHandler() slog.Handler {
	return &discardHandler{}
}

func (h *discardHandler) Handle(_ context.Context, r slog.Record) error { return nil }

func (h *discardHandler) Enabled(_ context.Context, level slog.Level) bool { return false }

func (h *discardHandler) WithGroup(name string) slog.Handler { return h }

func (h *discardHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }

// TerminalHandler formats records for humans:
//
//	INFO [10-18|23:14:05.123] Compiled solidity directory    backend=solc files=2
//
// TerminalHandler 以适合人阅读的格式输出日志，可选带颜色的级别。
type TerminalHandler struct {
	mu       sync.Mutex
	wr       io.Writer
	lvl      slog.Level
	useColor bool
	attrs    []slog.Attr

	// fieldPadding holds the longest value seen per key, to align columns.
	fieldPadding map[string]int

	buf []byte
}

// NewTerminalHandler returns a handler which formats log records at all levels
// for a terminal. Colouring the level is only appropriate on interactive
// outputs.
func NewTerminalHandler(wr io.Writer, useColor bool) *TerminalHandler {
	return NewTerminalHandlerWithLevel(wr, levelMaxVerbosity, useColor)
}

// NewTerminalHandlerWithLevel is NewTerminalHandler dropping records below lvl.
func NewTerminalHandlerWithLevel(wr io.Writer, lvl slog.Level, useColor bool) *TerminalHandler {
	return &TerminalHandler{
		wr:           wr,
		lvl:          lvl,
		useColor:     useColor,
		fieldPadding: make(map[string]int),
	}
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	buf := h.format(h.buf, r)
	h.wr.Write(buf)
	h.buf = buf[:0]
	return nil
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl
}

func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	panic("not implemented")
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TerminalHandler{
		wr:           h.wr,
		lvl:          h.lvl,
		useColor:     h.useColor,
		attrs:        append(append([]slog.Attr{}, h.attrs...), attrs...),
		fieldPadding: make(map[string]int),
	}
}

func levelColor(l slog.Level) string {
	switch l {
	case LevelCrit:
		return "\x1b[35m"
	case LevelError:
		return "\x1b[31m"
	case LevelWarn:
		return "\x1b[33m"
	case LevelInfo:
		return "\x1b[32m"
	case LevelDebug:
		return "\x1b[36m"
	case LevelTrace:
		return "\x1b[34m"
	}
	return ""
}

func (h *TerminalHandler) format(buf []byte, r slog.Record) []byte {
	b := bytes.NewBuffer(buf)

	var color string
	if h.useColor {
		color = levelColor(r.Level)
	}
	if color != "" {
		b.WriteString(color + LevelAlignedString(r.Level) + "\x1b[0m")
	} else {
		b.WriteString(LevelAlignedString(r.Level))
	}
	b.WriteString("[" + r.Time.Format(termTimeFormat) + "] ")
	b.WriteString(r.Message)

	nattrs := len(h.attrs) + r.NumAttrs()
	if length := utf8.RuneCountInString(r.Message); nattrs > 0 && length < termMsgJust {
		b.WriteString(fmt.Sprintf("%*s", termMsgJust-length, ""))
	}
	n := 0
	write := func(attr slog.Attr) bool {
		n++
		b.WriteByte(' ')
		if color != "" {
			b.WriteString(color + attr.Key + "\x1b[0m=")
		} else {
			b.WriteString(attr.Key + "=")
		}
		val := formatValue(attr.Value)
		b.WriteString(val)

		length := utf8.RuneCountInString(val)
		padding := h.fieldPadding[attr.Key]
		if padding < length && length <= termCtxMaxPadding {
			padding = length
			h.fieldPadding[attr.Key] = padding
		}
		if n < nattrs && padding > length {
			b.WriteString(fmt.Sprintf("%*s", padding-length, ""))
		}
		return true
	}
	for _, attr := range h.attrs {
		write(attr)
	}
	r.Attrs(write)
	b.WriteByte('\n')
	return b.Bytes()
}

// formatValue renders a value for the terminal, quoting strings that contain
// whitespace or control characters.
func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return escapeString(v.String())
	case slog.KindTime:
		return v.Time().Format(timeFormat)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindAny:
		switch x := v.Any().(type) {
		case nil:
			return "<nil>"
		case error:
			return escapeString(x.Error())
		case []byte:
			return escapeString(string(x))
		case fmt.Stringer:
			if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
				return "<nil>"
			}
			return escapeString(x.String())
		}
		return escapeString(fmt.Sprintf("%+v", v.Any()))
	}
	return v.String()
}

func escapeString(s string) string {
	needsQuoting := s == ""
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' || r == utf8.RuneError {
			needsQuoting = true
			break
		}
	}
	if !needsQuoting {
		return s
	}
	return strconv.Quote(s)
}

type leveler struct{ minLevel slog.Level }

func (l *leveler) Level() slog.Level {
	return l.minLevel
}

// JSONHandler returns a handler which prints records in JSON format.
func JSONHandler(wr io.Writer) slog.Handler {
	return JSONHandlerWithLevel(wr, levelMaxVerbosity)
}

// JSONHandlerWithLevel is JSONHandler dropping records below level.
func JSONHandlerWithLevel(wr io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(wr, &slog.HandlerOptions{
		ReplaceAttr: builtinReplaceJSON,
		Level:       &leveler{level},
	})
}

// LogfmtHandler returns a handler which prints records in logfmt format, an easy
// machine-parseable but human-readable format for key/value pairs.
func LogfmtHandler(wr io.Writer) slog.Handler {
	return LogfmtHandlerWithLevel(wr, levelMaxVerbosity)
}

// LogfmtHandlerWithLevel is LogfmtHandler dropping records below level.
func LogfmtHandlerWithLevel(wr io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(wr, &slog.HandlerOptions{
		ReplaceAttr: builtinReplaceLogfmt,
		Level:       &leveler{level},
	})
}

func builtinReplaceLogfmt(_ []string, attr slog.Attr) slog.Attr {
	return builtinReplace(nil, attr, true)
}

func builtinReplaceJSON(_ []string, attr slog.Attr) slog.Attr {
	return builtinReplace(nil, attr, false)
}

func builtinReplace(_ []string, attr slog.Attr, logfmt bool) slog.Attr {
	switch attr.Key {
	case slog.TimeKey:
		if attr.Value.Kind() == slog.KindTime {
			if logfmt {
				return slog.String("t", attr.Value.Time().Format(timeFormat))
			}
			return slog.Attr{Key: "t", Value: attr.Value}
		}
	case slog.LevelKey:
		if l, ok := attr.Value.Any().(slog.Level); ok {
			return slog.Any("lvl", LevelString(l))
		}
	}

	switch v := attr.Value.Any().(type) {
	case time.Time:
		if logfmt {
			attr = slog.String(attr.Key, v.Format(timeFormat))
		}
	case *big.Int:
		if v == nil {
			attr.Value = slog.StringValue("<nil>")
		} else {
			attr.Value = slog.StringValue(v.String())
		}
	case fmt.Stringer:
		if v == nil || (reflect.ValueOf(v).Kind() == reflect.Pointer && reflect.ValueOf(v).IsNil()) {
			attr.Value = slog.StringValue("<nil>")
		} else {
			attr.Value = slog.StringValue(v.String())
		}
	}
	return attr
}
