//go:build linux

package osctl

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogSink_RecordAdmitAndReap(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sink := NewSlogSink(logger)

	sink.RecordAdmit(123, "A")
	sink.RecordReap(123, "A")

	out := buf.String()
	assert.True(t, strings.Contains(out, "process admitted"))
	assert.True(t, strings.Contains(out, "process reaped"))
	assert.True(t, strings.Contains(out, "pid=123"))
}

func TestNewSlogSink_DefaultsWhenNilLogger(t *testing.T) {
	sink := NewSlogSink(nil)
	assert.NotNil(t, sink.logger)
}
