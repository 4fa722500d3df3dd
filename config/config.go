package config

import (
	"io"
	"log/slog"
)

// Default values
const (
	DefaultDebug      = false
	DefaultTitleWidth = 60

	MinTitleWidth = 20
	MaxTitleWidth = 200
)

// Config holds the runtime settings of a karaoke session.
// Nothing here is persisted, every run starts from the defaults
// and whatever flags were passed on the command line.
type Config struct {
	// enables debug logging on the log writer
	Debug bool

	// maximum display width (in terminal cells) of a queue entry
	// e.g. 60
	TitleWidth int
}

// New returns a Config filled with the default values
func New() *Config {
	return &Config{
		Debug:      DefaultDebug,
		TitleWidth: DefaultTitleWidth,
	}
}

// SetTitleWidth sets the queue entry width, clamped to a usable range.
// Zero means "use the default".
func (c *Config) SetTitleWidth(width int) {
	if width == 0 {
		width = DefaultTitleWidth
	}
	if width < MinTitleWidth {
		width = MinTitleWidth
	}
	if width > MaxTitleWidth {
		width = MaxTitleWidth
	}
	c.TitleWidth = width
}

// LogLevel returns the slog level matching the debug setting
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// Logger builds the text logger used by the session.
// Logs go to w (stderr in practice) so stdout only carries the menu.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel()}))
}
