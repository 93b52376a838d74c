package logger

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Init routes hlog and logrus through the same rolling output. hlog carries
// the request-scoped logs, logrus carries outbound-call diagnostics from the
// goal gateway.
func Init() {
	out := newOutput()
	hlog.SetOutput(out)
	hlog.SetLevel(newLevel())

	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrusLevel())
}

func logrusLevel() logrus.Level {
	switch newLevel() {
	case hlog.LevelTrace:
		return logrus.TraceLevel
	case hlog.LevelDebug:
		return logrus.DebugLevel
	case hlog.LevelInfo, hlog.LevelNotice:
		return logrus.InfoLevel
	case hlog.LevelWarn:
		return logrus.WarnLevel
	case hlog.LevelError:
		return logrus.ErrorLevel
	case hlog.LevelFatal:
		return logrus.FatalLevel
	}
	return logrus.TraceLevel
}
