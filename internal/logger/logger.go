package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/fatih/color"
)

// ColorHandler is a minimal slog handler with colored levels for console use.
type ColorHandler struct {
	l     *log.Logger
	level slog.Level
}

func NewColorHandler(out io.Writer, level slog.Level) *ColorHandler {
	return &ColorHandler{
		l:     log.New(out, "", 0),
		level: level,
	}
}

func (h *ColorHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.HiBlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	attrs := ""
	r.Attrs(func(a slog.Attr) bool {
		attrs += color.GreenString(a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " "
		return true
	})

	h.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		attrs,
	)
	return nil
}

func (h *ColorHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *ColorHandler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *ColorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Setup installs the colored handler as the default slog logger.
func Setup(out io.Writer, level slog.Level) *slog.Logger {
	l := slog.New(NewColorHandler(out, level))
	slog.SetDefault(l)
	return l
}
