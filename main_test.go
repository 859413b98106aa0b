package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRealMainHeadless(t *testing.T) {
	dir := t.TempDir()
	code := realMain([]string{"-mode", "headless", "-ticks", "2", "-out", dir})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, name := range []string{"frame_00001.png", "frame_00002.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not exported: %v", name, err)
		}
	}
}

func TestRealMainExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown flag", []string{"-nope"}, 2},
		{"bad mode", []string{"-mode", "vr"}, 1},
		{"missing config", []string{"-config", filepath.Join(t.TempDir(), "absent.yaml")}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := realMain(tt.args); got != tt.want {
				t.Errorf("realMain(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
