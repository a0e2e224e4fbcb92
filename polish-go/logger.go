package polish_go

import (
	"fmt"
	"log"
	"strings"

	"github.com/fatih/color"
)

type LogLevel int8

const (
	VERBOSE LogLevel = iota
	DEBUG
	INFO
	WARNING
	ERROR
	SILENT
)

var kLogLevelNames = []string{"verbose", "debug", "info", "warning", "error", "silent"}

func (this LogLevel) String() string {
	if this < VERBOSE || this > SILENT {
		return fmt.Sprintf("LogLevel(%d)", int8(this))
	}
	return kLogLevelNames[this]
}

// / ParseLogLevel accepts the level names case-insensitively, plus "information"
// / and "warn".
func ParseLogLevel(name string) (LogLevel, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "information":
		return INFO, true
	case "warn":
		return WARNING, true
	case "none", "quiet":
		return SILENT, true
	}
	for i, n := range kLogLevelNames {
		if n == name {
			return LogLevel(i), true
		}
	}
	return SILENT, false
}

// Logger is the diagnostic sink every component reports to. Logging is
// observational: no computation depends on it.
type Logger interface {
	Verbose(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type NopLogger struct{}

func (NopLogger) Verbose(string, ...interface{}) {}
func (NopLogger) Debug(string, ...interface{})   {}
func (NopLogger) Info(string, ...interface{})    {}
func (NopLogger) Warning(string, ...interface{}) {}
func (NopLogger) Error(string, ...interface{})   {}

func orNop(logger Logger) Logger {
	if logger == nil {
		return NopLogger{}
	}
	return logger
}

// ConsoleLogger prints messages at or above its level through a LinePrinter.
type ConsoleLogger struct {
	level_   LogLevel
	printer_ *LinePrinter
	colors_  map[LogLevel]*color.Color
}

func NewConsoleLogger(level LogLevel, printer *LinePrinter) *ConsoleLogger {
	ret := ConsoleLogger{}
	ret.level_ = level
	ret.printer_ = printer
	ret.colors_ = map[LogLevel]*color.Color{
		VERBOSE: color.New(color.FgHiBlack),
		DEBUG:   color.New(color.FgCyan),
		INFO:    color.New(color.FgGreen),
		WARNING: color.New(color.FgYellow),
		ERROR:   color.New(color.FgRed, color.Bold),
	}
	for _, c := range ret.colors_ {
		if printer.supports_color() {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &ret
}

func (this *ConsoleLogger) Level() LogLevel { return this.level_ }

func (this *ConsoleLogger) Enabled(level LogLevel) bool {
	return level >= this.level_ && level < SILENT
}

func (this *ConsoleLogger) log(level LogLevel, tag string, msg string, args []interface{}) {
	if !this.Enabled(level) {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	this.printer_.PrintLine(this.colors_[level].Sprint("["+tag+"]") + " " + msg)
}

func (this *ConsoleLogger) Verbose(msg string, args ...interface{}) {
	this.log(VERBOSE, "VERBOSE", msg, args)
}
func (this *ConsoleLogger) Debug(msg string, args ...interface{}) {
	this.log(DEBUG, "DEBUG", msg, args)
}
func (this *ConsoleLogger) Info(msg string, args ...interface{}) {
	this.log(INFO, "INFO", msg, args)
}
func (this *ConsoleLogger) Warning(msg string, args ...interface{}) {
	this.log(WARNING, "WARNING", msg, args)
}
func (this *ConsoleLogger) Error(msg string, args ...interface{}) {
	this.log(ERROR, "ERROR", msg, args)
}

// StdLogger forwards messages at or above its level to a standard library
// logger, which is safe for concurrent use.
type StdLogger struct {
	level_ LogLevel
	out_   *log.Logger
}

func NewStdLogger(level LogLevel, out *log.Logger) *StdLogger {
	return &StdLogger{level_: level, out_: out}
}

func (this *StdLogger) log(level LogLevel, tag string, msg string, args []interface{}) {
	if level < this.level_ || level >= SILENT {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	this.out_.Printf("[%s] %s", tag, msg)
}

func (this *StdLogger) Verbose(msg string, args ...interface{}) {
	this.log(VERBOSE, "VERBOSE", msg, args)
}
func (this *StdLogger) Debug(msg string, args ...interface{}) {
	this.log(DEBUG, "DEBUG", msg, args)
}
func (this *StdLogger) Info(msg string, args ...interface{}) {
	this.log(INFO, "INFO", msg, args)
}
func (this *StdLogger) Warning(msg string, args ...interface{}) {
	this.log(WARNING, "WARNING", msg, args)
}
func (this *StdLogger) Error(msg string, args ...interface{}) {
	this.log(ERROR, "ERROR", msg, args)
}
