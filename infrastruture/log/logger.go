// Package logger provides the prefixed, coloured logger shared by the services and commands.
package logger

import (
	"errors"
	"io"

	"github.com/beka-birhanu/vinom-rover/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes levelled, structured log lines tagged with a component prefix.
type Logger struct {
	zl *zap.Logger
}

// New creates a Logger whose lines start with the given prefix rendered in color.
// An empty color leaves the prefix uncoloured.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	return NewWithLevel(prefix, color, w, "info")
}

// NewWithLevel is New with an explicit minimum level (debug, info, warn, error).
func NewWithLevel(prefix, color string, w io.Writer, level string) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		if color == "" {
			enc.AppendString("[" + name + "]")
			return
		}
		enc.AppendString(color + "[" + name + "]" + config.ColorReset)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return &Logger{zl: zap.New(core).Named(prefix)}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zl.Debug(msg, fields...)
}

// Info logs a message at info level.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zl.Info(msg, fields...)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zl.Warn(msg, fields...)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zl.Error(msg, fields...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.zl.Sync()
}
