// Package dbglog is the ambient structured-logging layer used by every jdb
// package, in place of fmt.Printf or the stdlib log package. It exposes the
// same --log-file/--log-format/--debug knobs the CLI accepts, backed by a
// single shared logrus logger.
package dbglog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Format selects the on-disk log encoding.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Configure points the logger at a destination and verbosity, mirroring the
// CLI's --log-file/--log-format/--debug flags.
func Configure(w io.Writer, format Format, debug bool) {
	log.SetOutput(w)
	if debug {
		log.SetLevel(logrus.TraceLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	switch format {
	case FormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// WithField returns an entry carrying a single structured field, e.g. the
// controller's current pid or a breakpoint id.
func WithField(key string, value any) *logrus.Entry {
	return log.WithField(key, value)
}

func Trace(args ...any)                 { log.Trace(args...) }
func Tracef(format string, args ...any) { log.Tracef(format, args...) }
func Debug(args ...any)                 { log.Debug(args...) }
func Debugf(format string, args ...any) { log.Debugf(format, args...) }
func Info(args ...any)                  { log.Info(args...) }
func Infof(format string, args ...any)  { log.Infof(format, args...) }
func Warn(args ...any)                  { log.Warn(args...) }
func Warnf(format string, args ...any)  { log.Warnf(format, args...) }
func Error(args ...any)                 { log.Error(args...) }
func Errorf(format string, args ...any) { log.Errorf(format, args...) }
