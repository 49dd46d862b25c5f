package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fbkclanna/envup/internal/config"
)

// execHook runs a post_install command safely (no shell expansion).
func execHook(projectDir string, h config.Hook) error {
	if len(h.Cmd) == 0 {
		return fmt.Errorf("empty cmd")
	}

	dir := projectDir
	if h.WorkDir != "" {
		dir = filepath.Join(projectDir, h.WorkDir)
	}

	cmd := exec.Command(h.Cmd[0], h.Cmd[1:]...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
