// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"", log.ErrorLevel},
		{"trace", log.DebugLevel},
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{Writer: &buf}

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err := h.HandleLog(&log.Entry{
		Level:     log.WarnLevel,
		Message:   "created directory",
		Timestamp: ts,
		Fields:    log.Fields{"path": "/tmp/twer"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "2026-01-02 03:04:05 W created directory path=/tmp/twer\n", buf.String())
}

func TestHandler_TracePrefix(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{Writer: &buf}

	_ = h.HandleLog(&log.Entry{
		Level:   log.DebugLevel,
		Message: "TRACE: probing",
	})

	assert.Contains(t, buf.String(), " T probing\n")
}

func TestInitLoggerTo_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "warn")
	t.Cleanup(func() { InitLoggerTo(&bytes.Buffer{}, "") })

	Debugf("hidden %d", 1)
	Warnf("shown %d", 2)
	WithError(errors.New("boom")).Error("failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "W shown 2")
	assert.Contains(t, out, "E failed error=boom")
}

func TestTracef_OnlyWhenTraceEnabled(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "debug")
	t.Cleanup(func() { InitLoggerTo(&bytes.Buffer{}, "") })

	Tracef("quiet")
	assert.Empty(t, buf.String())

	InitLoggerTo(&buf, "trace")
	Tracef("loud %s", "now")
	assert.Contains(t, buf.String(), " T loud now")
}
