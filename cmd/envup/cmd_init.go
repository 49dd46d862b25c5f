package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbkclanna/envup/internal/config"
	"github.com/fbkclanna/envup/internal/project"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an envup.yaml config interactively",
		RunE:  runInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	cmd.Flags().Bool("defaults", false, "Write the default config without prompting")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")
	force, _ := cmd.Flags().GetBool("force")
	defaults, _ := cmd.Flags().GetBool("defaults")

	path := filepath.Join(root, project.ConfigName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	var cfg *config.File
	switch {
	case defaults:
		cfg = &config.File{Version: 1}
	default:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; use --defaults to write the default config")
		}
		var err error
		cfg, err = promptConfig()
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
	return nil
}
