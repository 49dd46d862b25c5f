package main

import (
	"fmt"
	"os/exec"
	"testing"
)

func TestExitCode(t *testing.T) {
	if got := exitCode(fmt.Errorf("plain error")); got != 1 {
		t.Errorf("plain error exit code = %d, want 1", got)
	}

	err := exec.Command("sh", "-c", "exit 3").Run()
	if err == nil {
		t.Fatal("command should have failed")
	}
	if got := exitCode(err); got != 3 {
		t.Errorf("exit code = %d, want 3", got)
	}

	wrapped := fmt.Errorf("poetry install: %w", err)
	if got := exitCode(wrapped); got != 3 {
		t.Errorf("wrapped exit code = %d, want 3", got)
	}
}
