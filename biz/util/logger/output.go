package logger

import (
	"io"
	"path/filepath"

	"goalkeeper/api/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/natefinch/lumberjack.v2"
)

func newOutput() io.Writer {
	conf := config.GetLoggerConf()

	return &lumberjack.Logger{
		Filename:   filepath.Join(orDefault(conf.Dir, "./log"), orDefault(conf.FileName, "goalkeeper.log")),
		MaxSize:    orDefaultInt(conf.MaxSize, 512),
		MaxAge:     orDefaultInt(conf.MaxAge, 14),
		MaxBackups: orDefaultInt(conf.MaxBackups, 10),
		LocalTime:  true,
		Compress:   false,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func newLevel() hlog.Level {
	switch config.GetLoggerConf().Level {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "info":
		return hlog.LevelInfo
	case "notice":
		return hlog.LevelNotice
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	case "fatal":
		return hlog.LevelFatal
	}

	return hlog.LevelTrace
}
