// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no command", nil, 2},
		{"unknown command", []string{"dance"}, 2},
		{"help", []string{"help"}, 0},
		{"render without output", []string{"render"}, 2},
		{"render bad flag", []string{"render", "-bogus"}, 2},
		{"probe without files", []string{"probe"}, 2},
		{"convert one file", []string{"convert", "in.wav"}, 2},
		{"render to mp3", []string{"render", "-o", "out.mp3"}, 1},
		{"probe missing file", []string{"probe", "/nonexistent/door.wav"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if code, _, stderr := runCmd(t, tt.args...); code != tt.code {
				t.Errorf("run(%q) = %d, want %d; stderr:\n%s", tt.args, code, tt.code, stderr)
			}
		})
	}
}

func TestRender_ProbeConvert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	scene := filepath.Join(dir, "intro.wav")

	code, stdout, stderr := runCmd(t, "render", "-o", scene, "-rate", "8000", "-duration", "2s", "-open-at", "500ms")
	if code != 0 {
		t.Fatalf("render exit %d: %s", code, stderr)
	}
	if want := "16000 samples, 2.00s at 8000 Hz"; !strings.Contains(stdout, want) {
		t.Errorf("render output %q, want it to mention %q", stdout, want)
	}
	if info, err := os.Stat(scene); err != nil || info.Size() < 32000 {
		t.Fatalf("rendered file: %v, %v", info, err)
	}

	code, stdout, stderr = runCmd(t, "probe", scene)
	if code != 0 {
		t.Fatalf("probe exit %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "8000 Hz x1") || !strings.Contains(stdout, "2s") {
		t.Errorf("probe output %q", stdout)
	}

	converted := filepath.Join(dir, "intro.aiff")
	code, stdout, stderr = runCmd(t, "convert", "-rate", "4000", scene, converted)
	if code != 0 {
		t.Fatalf("convert exit %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "at 4000 Hz") {
		t.Errorf("convert output %q", stdout)
	}

	code, stdout, _ = runCmd(t, "probe", converted)
	if code != 0 || !strings.Contains(stdout, "4000 Hz x1") {
		t.Errorf("probe of the converted file: exit %d, %q", code, stdout)
	}
}

func TestRender_DoorAfterEnd(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "quiet.aiff")
	code, stdout, stderr := runCmd(t, "render", "-o", out, "-rate", "8000", "-duration", "1s", "-open-at", "5s")
	if code != 0 {
		t.Fatalf("render exit %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "8000 samples") {
		t.Errorf("render output %q", stdout)
	}
}
