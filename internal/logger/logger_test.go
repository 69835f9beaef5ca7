package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

// TestParseLevel 测试日志级别解析
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, 期望 %v", tt.input, got, tt.expected)
		}
	}
}

// TestInitWithFile 初始化带文件输出的 logger 并验证文件被创建
func TestInitWithFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "sky.log")

	Init(Options{Level: "debug", File: logFile})
	defer Sync()

	Sugar.Debugw("test entry", "angle", 90.0)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	if !strings.Contains(string(data), "test entry") {
		t.Errorf("日志文件缺少写入的条目: %s", data)
	}
}

// TestNopBeforeInit Init 之前全局 logger 可安全调用
func TestNopBeforeInit(t *testing.T) {
	Log = nil
	Sugar = nil
	// 重新走一遍包初始化的默认值
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("未初始化的 logger 不应 panic: %v", r)
		}
	}()
	Init(Options{})
	Sugar.Infof("after init %d", 1)
}
