package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// ErrUnknownLevel is returned by ParseLevel and ParseSpec for a level name
// they do not know.
var ErrUnknownLevel = errors.New("log: unknown level")

// Level selects which messages reach the sink
type Level int

// The levels that can be passed to SetLevel and SetModuleLevel.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levelNames = map[Level]string{
	Debug:   "debug",
	Info:    "info",
	Notice:  "notice",
	Warning: "warning",
	Error:   "error",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel parses a level name such as "info" or "WARNING"
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(name, levelName) {
			return level, nil
		}
	}
	return Notice, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

func (l Level) backendLevel() logging.Level {
	switch l {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Notice:
		return logging.NOTICE
	case Warning:
		return logging.WARNING
	default:
		return logging.ERROR
	}
}

// Terminals get colored output, every other sink the plain layout.
var (
	colorFormat = logging.MustStringFormatter(
		`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
	)
	plainFormat = logging.MustStringFormatter(
		`[%{time:15:04:05.000}] [%{module}] [%{level}] %{message}`,
	)
)

var (
	leveledBackend logging.LeveledBackend
	currentSink    io.Writer
	currentLevel   = Notice
	moduleLevels   = map[string]Level{}
)

// Logger is the leveled logger used across the renderer
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

// New creates a named logger. The name shows up as the module of every line
// and is the key for SetModuleLevel.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects every logger to sink, keeping the current levels
func SetSink(sink io.Writer) {
	format := plainFormat
	if _, isFile := sink.(*os.File); isFile {
		format = colorFormat
	}
	currentSink = sink
	backend := logging.NewLogBackend(sink, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	logging.SetBackend(leveledBackend)

	leveledBackend.SetLevel(currentLevel.backendLevel(), "")
	for module, level := range moduleLevels {
		leveledBackend.SetLevel(level.backendLevel(), module)
	}
}

// SetLevel sets the verbosity of every logger without a module level
func SetLevel(level Level) {
	currentLevel = level
	leveledBackend.SetLevel(level.backendLevel(), "")
}

// SetModuleLevel sets the verbosity of the loggers created with New(module)
func SetModuleLevel(module string, level Level) {
	moduleLevels[module] = level
	leveledBackend.SetLevel(level.backendLevel(), module)
}

// ResetModuleLevels drops every module level so all loggers follow SetLevel
func ResetModuleLevels() {
	moduleLevels = map[string]Level{}
	SetSink(currentSink)
}

// ParseSpec applies a comma separated level spec: a bare level sets the
// default, "module=level" sets one module.
//
//	warning,server=info,loaders=debug
func ParseSpec(spec string) error {
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		module, name, hasModule := strings.Cut(part, "=")
		if !hasModule {
			name = module
		}
		level, err := ParseLevel(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		if hasModule {
			SetModuleLevel(strings.TrimSpace(module), level)
		} else {
			SetLevel(level)
		}
	}
	return nil
}

func init() {
	SetSink(os.Stdout)
}
