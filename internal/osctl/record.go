//go:build linux

package osctl

import (
	"log/slog"
	"time"
)

// SlogSink records admission and reap events through structured logging.
// It implements sched.TimeSink. The parent-side bookkeeping it performs
// is distinct from — and complementary to — the burst start/end logging
// RunChild does inside the child itself: this sink sees scheduling
// events as the dispatcher observes them, not as the child experiences
// them.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink wraps logger, or slog.Default() if logger is nil.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// RecordAdmit implements sched.TimeSink.
func (s *SlogSink) RecordAdmit(pid int, name string) {
	s.logger.Debug("process admitted", "pid", pid, "name", name, "at", time.Now().UnixNano())
}

// RecordReap implements sched.TimeSink.
func (s *SlogSink) RecordReap(pid int, name string) {
	s.logger.Debug("process reaped", "pid", pid, "name", name, "at", time.Now().UnixNano())
}
