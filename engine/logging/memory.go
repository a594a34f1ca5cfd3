package logging

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Recent keeps the last few log lines in memory so the HUD can show them
type Recent struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
}

func NewRecent(size int) *Recent {
	if size < 1 {
		size = 1
	}
	return &Recent{lines: make([]string, size)}
}

func (r *Recent) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[r.next] = strings.TrimRight(string(p), "\n")
	r.next++
	if r.next == len(r.lines) {
		r.next = 0
		r.full = true
	}
	return len(p), nil
}

func (r *Recent) Sync() error { return nil }

// Lines returns the kept lines, oldest first
func (r *Recent) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		return append([]string(nil), r.lines[:r.next]...)
	}
	out := make([]string, 0, len(r.lines))
	out = append(out, r.lines[r.next:]...)
	return append(out, r.lines[:r.next]...)
}

// Last returns the newest line, or "" when nothing was logged
func (r *Recent) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full && r.next == 0 {
		return ""
	}
	i := r.next - 1
	if i < 0 {
		i = len(r.lines) - 1
	}
	return r.lines[i]
}

// Core tees entries at or above min into r as plain console lines
func (r *Recent) Core(min zapcore.Level) zapcore.Core {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.LevelKey = ""
	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(r), min)
}
