package logging

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/runningwild/glop/glog"
)

// LevelTrace sits below slog.LevelDebug; texture construction reports its
// progress at this level.
var LevelTrace = glog.LevelTrace

type Logger interface {
	glog.Logger
}

var logger glog.Logger

func init() {
	logger = glog.New(&glog.Opts{
		Level: slog.LevelInfo,
	})
}

func DefaultLogger() Logger {
	return logger
}

func Trace(msg string, args ...interface{}) {
	doLog(LevelTrace, msg, args...)
}

func Debug(msg string, args ...interface{}) {
	doLog(slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...interface{}) {
	doLog(slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...interface{}) {
	doLog(slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...interface{}) {
	doLog(slog.LevelError, msg, args...)
}

// Emits a record whose source attribute names the caller of the exported
// helper rather than this file.
func doLog(lvl slog.Level, msg string, args ...interface{}) {
	ctx := context.Background()
	if !logger.Enabled(ctx, lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, doLog, <helper>]
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	logger.Handler().Handle(ctx, r)
}

// Call this to redirect all logging output to the given io.Writer. A cleanup
// function that undoes the redirect is returned.
func Redirect(newOut io.Writer) func() {
	old := logger
	logger = glog.WithRedirect(old, newOut)
	return func() {
		logger = old
	}
}

// Tells the default logger to change its verbosity.
func SetLogLevel(lvl slog.Level) {
	logger = glog.Relevel(logger, lvl)
}

// Like SetLogLevel but returns a func that restores the previous logger.
func SetLoggingLevel(lvl slog.Level) func() {
	old := logger
	logger = glog.Relevel(old, lvl)
	return func() {
		logger = old
	}
}
