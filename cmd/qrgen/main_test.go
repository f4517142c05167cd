package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/student_support/pkg/qrcode"
)

func TestRunAllEnvironments(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := run([]string{"-out", dir, "-size", "128", "all"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, env := range qrcode.EnvironmentNames() {
		data, err := os.ReadFile(filepath.Join(dir, "system-entry-qr-"+env+".png"))
		if err != nil {
			t.Fatalf("missing png for %s: %v", env, err)
		}
		if !bytes.HasPrefix(data, []byte("\x89PNG")) {
			t.Errorf("%s: not a png", env)
		}
	}
	if !bytes.Contains(out.Bytes(), []byte("production")) {
		t.Errorf("output does not mention production: %s", out.String())
	}
}

func TestRunUnknownEnvironment(t *testing.T) {
	err := run([]string{"-out", t.TempDir(), "moon"}, &bytes.Buffer{})
	if !errors.Is(err, qrcode.ErrUnknownEnv) {
		t.Fatalf("expected ErrUnknownEnv, got %v", err)
	}
}
