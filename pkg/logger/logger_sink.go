package logger

import (
	"sos-api/pkg/utilities/timeutil"

	"github.com/rs/zerolog"
)

type SinkFunc func(msg string, level zerolog.Level, timestamp timeutil.TimeUTC)

// AddSinkToLoggerInstance mirrors every line at or above the logger's level into sink.
// Child loggers created afterwards share it.
func AddSinkToLoggerInstance(loggerInstance *Logger, sink SinkFunc) {
	loggerInstance.sink = sink
}

func (l *Logger) activateSink(msg string, level zerolog.Level) {
	if l.sink == nil || level < l.zl.GetLevel() {
		return
	}
	l.sink(msg, level, timeutil.NowUTC())
}
