package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Level is a render log verbosity, ordered from most to least verbose
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levels = [...]struct {
	name    string
	backend logging.Level
}{
	Debug:   {"debug", logging.DEBUG},
	Info:    {"info", logging.INFO},
	Notice:  {"notice", logging.NOTICE},
	Warning: {"warning", logging.WARNING},
	Error:   {"error", logging.ERROR},
}

func (l Level) String() string {
	if l < Debug || l > Error {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levels[l].name
}

// ParseLevel accepts a level name in any case, e.g. "info" or "WARNING"
func ParseLevel(name string) (Level, error) {
	for l, entry := range levels {
		if strings.EqualFold(name, entry.name) {
			return Level(l), nil
		}
	}
	return Notice, fmt.Errorf("unknown log level %q", name)
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	current        = Notice
)

// Logger is the leveled logging interface shared by the command line and scene builders.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a logger tagged with module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink sends all loggers to sink. The current level is kept.
func SetSink(sink io.Writer) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(backend)
	leveledBackend.SetLevel(levels[current].backend, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel drops messages less severe than level. Out of range levels are ignored.
func SetLevel(level Level) {
	if level < Debug || level > Error {
		return
	}
	current = level
	leveledBackend.SetLevel(levels[level].backend, "")
}

// GetLevel returns the level set by the last SetLevel.
func GetLevel() Level {
	return current
}

// PrintfAdapter lets a Logger serve as the renderer's single-method progress logger.
// Messages are emitted at Info.
type PrintfAdapter struct {
	Logger Logger
}

func (p PrintfAdapter) Printf(format string, args ...interface{}) {
	p.Logger.Infof(format, args...)
}

func init() {
	SetSink(os.Stdout)
}
