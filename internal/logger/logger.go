// Package logger 提供基于 zap 的结构化日志
//
// 控制台输出始终开启；指定日志文件后同时写入按大小轮转的文件
// （lumberjack）。包级的 Log/Sugar 在 Init 之前是 no-op logger，
// 因此测试代码不调用 Init 也能安全使用。
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 全局 logger
var Log = zap.NewNop()

// Sugar 全局 sugared logger，便于 printf 风格调用
var Sugar = Log.Sugar()

// Options 日志初始化选项
type Options struct {
	Level      string // debug/info/warn/error，默认 info
	File       string // 日志文件路径，为空则只输出到控制台
	MaxSizeMB  int    // 单个日志文件上限（MB），默认 20
	MaxBackups int    // 保留的轮转文件数，默认 3
}

// Init 初始化全局 logger
func Init(opts Options) {
	level := parseLevel(opts.Level)

	consoleEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05.000"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	})

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stderr), level),
	}

	if opts.File != "" {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 20
		}
		maxBackups := opts.MaxBackups
		if maxBackups <= 0 {
			maxBackups = 3
		}
		writer := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			LocalTime:  true,
		}
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(writer), level))
	}

	Log = zap.New(zapcore.NewTee(cores...))
	Sugar = Log.Sugar()
}

// Sync 刷新缓冲的日志条目，程序退出前调用
func Sync() {
	_ = Log.Sync()
}

// parseLevel 解析日志级别字符串，未知值回落到 info
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
