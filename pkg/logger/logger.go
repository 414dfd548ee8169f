package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

type Logger struct {
	zl   zerolog.Logger
	sink SinkFunc
}

func New() *Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: logger}
}

func NewFromConfig(cfg LoggerConfig) *Logger {
	if cfg.LogLevel == zerolog.NoLevel {
		cfg.LogLevel = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger().
		Level(cfg.LogLevel)

	return &Logger{zl: logger}
}

func (l *Logger) WithOutput(w io.Writer) *Logger {
	l.zl = l.zl.Output(w)
	return l
}

func (l *Logger) WithLevel(level zerolog.Level) *Logger {
	l.zl = l.zl.Level(level)
	return l
}

// WithField returns a child logger carrying key=value on every line. The sink is shared.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger(), sink: l.sink}
}

// IntoContext stores the logger so request-scoped fields follow the call chain.
func (l *Logger) IntoContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored by IntoContext, or the default logger.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return Default()
}

func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

func (l *Logger) write(level zerolog.Level, err error, msg string) {
	event := l.zl.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
	l.activateSink(msg, level)
}

func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, nil, msg) }

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.write(zerolog.DebugLevel, nil, fmt.Sprintf(format, v...))
}

func (l *Logger) Info(msg string) { l.write(zerolog.InfoLevel, nil, msg) }

func (l *Logger) Infof(format string, v ...interface{}) {
	l.write(zerolog.InfoLevel, nil, fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(msg string) { l.write(zerolog.WarnLevel, nil, msg) }

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.write(zerolog.WarnLevel, nil, fmt.Sprintf(format, v...))
}

func (l *Logger) Error(err error, msg string) { l.write(zerolog.ErrorLevel, err, msg) }

func (l *Logger) Errorf(err error, format string, v ...interface{}) {
	l.write(zerolog.ErrorLevel, err, fmt.Sprintf(format, v...))
}

// Fatal publishes to the sink before exiting the process.
func (l *Logger) Fatal(err error, msg string) {
	l.activateSink(msg, zerolog.FatalLevel)
	l.zl.Fatal().Err(err).Msg(msg)
}

func (l *Logger) Fatalf(err error, format string, v ...interface{}) {
	l.Fatal(err, fmt.Sprintf(format, v...))
}

func (l *Logger) Log(level zerolog.Level, msg string) { l.write(level, nil, msg) }

func (l *Logger) Logf(level zerolog.Level, format string, v ...interface{}) {
	l.write(level, nil, fmt.Sprintf(format, v...))
}
