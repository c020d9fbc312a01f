package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vinser/snek/internal/flags"
)

func TestRunReportsBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snek.yaml")
	if err := os.WriteFile(path, []byte("tick: 1ms\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	fl, err := flags.Parse([]string{"-c", path, "-l", filepath.Join(dir, "snek.log")}, &out)
	if err != nil {
		t.Fatal(err)
	}
	err = run(fl)
	if err == nil || !strings.Contains(err.Error(), "tick") {
		t.Fatalf("run() error = %v, want a tick error", err)
	}
}
