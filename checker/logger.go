package checker

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger 简洁的进度日志系统
type Logger struct {
	w          io.Writer
	stepStart  time.Time
	totalStart time.Time
}

// NewLogger 创建写到 w 的日志记录器；w 为 nil 时写到标准输出
func NewLogger(w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	return &Logger{
		w:          w,
		totalStart: time.Now(),
	}
}

// Discard 返回不输出任何内容的日志记录器
func Discard() *Logger {
	return NewLogger(io.Discard)
}

// Step 开始一个处理步骤
// 格式: [步骤名] 参数 ...
func (l *Logger) Step(name string, params ...any) {
	l.stepStart = time.Now()
	if len(params) > 0 {
		fmt.Fprintf(l.w, "[%s] %v ... ", name, params[0])
	} else {
		fmt.Fprintf(l.w, "[%s] ", name)
	}
}

// Done 完成当前步骤
// 格式: → 结果 (耗时)
func (l *Logger) Done(result string) {
	elapsed := time.Since(l.stepStart)
	if elapsed > 100*time.Millisecond {
		fmt.Fprintf(l.w, "→ %s (%.2fs)\n", result, elapsed.Seconds())
	} else {
		fmt.Fprintf(l.w, "→ %s\n", result)
	}
}

// Total 输出总耗时
func (l *Logger) Total() {
	total := time.Since(l.totalStart)
	fmt.Fprintf(l.w, "\n✓ 总耗时: %.2fs\n", total.Seconds())
}

// Info 输出信息（不计时）
func (l *Logger) Info(format string, args ...any) {
	fmt.Fprintf(l.w, "  • "+format+"\n", args...)
}

// Warn 输出警告
func (l *Logger) Warn(format string, args ...any) {
	fmt.Fprintf(l.w, "  ⚠ "+format+"\n", args...)
}

// 设置 DEBUG 环境变量后输出调试信息到标准错误
var debugLog = newDebugLogger(os.Getenv("DEBUG") != "")

func newDebugLogger(enabled bool) *slog.Logger {
	level := slog.LevelInfo
	if enabled {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func debug(msg string, args ...any) {
	debugLog.Debug(msg, args...)
}
