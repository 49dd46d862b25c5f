package main

import (
	"fmt"

	"github.com/fbkclanna/envup/internal/poetry"
	"github.com/fbkclanna/envup/internal/project"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "run -- <command...>",
		Short:              "Run a command inside the project's virtual environment",
		DisableFlagParsing: true,
		RunE:               runRun,
	}
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Root().Flags().GetString("project")

	if len(args) == 0 {
		return fmt.Errorf("usage: envup run -- <command...>")
	}

	// Strip leading "--" if present.
	if args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("no command specified after --")
	}

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	var binPath string
	if ctx.Config != nil {
		binPath = ctx.Config.PoetryBin
	}
	tool, err := poetry.Resolve(binPath)
	if err != nil {
		return err
	}

	return tool.Run(ctx.Root, args)
}
