package logging

import (
	"fmt"
	"strings"
)

// RetryLogger forwards go-retryablehttp's leveled log calls to the subsystem logger.
// It satisfies retryablehttp.LeveledLogger.
type RetryLogger struct {
	subsystem string
}

// NewRetryLogger returns a RetryLogger tagging every line with subsystem.
func NewRetryLogger(subsystem string) *RetryLogger {
	return &RetryLogger{subsystem: subsystem}
}

func (l *RetryLogger) Error(msg string, keysAndValues ...interface{}) {
	logInternal(LevelError, l.subsystem, nil, "%s", withKV(msg, keysAndValues))
}

func (l *RetryLogger) Info(msg string, keysAndValues ...interface{}) {
	// retryablehttp is chatty at info level; one line per request is debug material here.
	logInternal(LevelDebug, l.subsystem, nil, "%s", withKV(msg, keysAndValues))
}

func (l *RetryLogger) Debug(msg string, keysAndValues ...interface{}) {
	logInternal(LevelDebug, l.subsystem, nil, "%s", withKV(msg, keysAndValues))
}

func (l *RetryLogger) Warn(msg string, keysAndValues ...interface{}) {
	logInternal(LevelWarn, l.subsystem, nil, "%s", withKV(msg, keysAndValues))
}

func withKV(msg string, kv []interface{}) string {
	if len(kv) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		b.WriteByte(' ')
		if i+1 < len(kv) {
			fmt.Fprintf(&b, "%v=%v", kv[i], kv[i+1])
		} else {
			fmt.Fprintf(&b, "%v", kv[i])
		}
	}
	return b.String()
}
