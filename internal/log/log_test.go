// SPDX-License-Identifier: EPL-2.0

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{" none ", LevelNone},
		{"off", LevelNone},
		{"loud", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := LevelFromString(tt.in); got != tt.want {
			t.Errorf("LevelFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_Filtering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  []string
		skip  []string
	}{
		{LevelDebug, []string{"DEBUG: d", "INFO: i", "WARN: w", "ERROR: e"}, nil},
		{LevelInfo, []string{"INFO: i", "WARN: w", "ERROR: e"}, []string{"DEBUG"}},
		{LevelWarn, []string{"WARN: w", "ERROR: e"}, []string{"DEBUG", "INFO"}},
		{LevelError, []string{"ERROR: e"}, []string{"DEBUG", "INFO", "WARN"}},
		{LevelNone, nil, []string{"DEBUG", "INFO", "WARN", "ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := New(&buf, tt.level)
			l.Debugf("d")
			l.Infof("i")
			l.Warnf("w")
			l.Errorf("e")

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			for _, s := range tt.skip {
				if strings.Contains(out, s) {
					t.Errorf("output %q contains filtered %q", out, s)
				}
			}
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, LevelError)
	l.Infof("hidden")
	l.SetLevel(LevelDebug)
	l.Infof("shown %d", 1)

	if l.Level() != LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", l.Level())
	}
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "INFO: shown 1") {
		t.Errorf("output = %q", out)
	}
}

func TestLogger_NilAndDiscard(t *testing.T) {
	t.Parallel()

	var l *Logger
	l.Infof("no panic")
	Discard().Errorf("dropped")
}
