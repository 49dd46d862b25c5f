package main

import (
	"fmt"

	"github.com/fbkclanna/envup/internal/config"
	"github.com/fbkclanna/envup/internal/poetry"
	"github.com/fbkclanna/envup/internal/project"
	"github.com/fbkclanna/envup/internal/ui"
	"github.com/spf13/cobra"
)

func newUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Configure the in-project venv and install dependencies",
		Long: `Bootstrap the project environment: force Poetry to create its virtual
environment inside the project directory, then install dependencies
(lock-exact when poetry.lock is present, manifest-driven otherwise).

Each step aborts the whole run on failure; nothing is retried or rolled back.`,
		RunE: runUp,
	}
	cmd.Flags().String("poetry", "", "Path to the poetry binary (skips resolution)")
	cmd.Flags().Bool("fix-perms", false, "Ensure the poetry binary is executable before use")
	cmd.Flags().String("sync-mode", "", "Lockfile strategy: auto, always, never")
	cmd.Flags().Bool("no-venv-config", false, "Skip the virtualenvs.in-project config step")
	return cmd
}

func runUp(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")
	poetryFlag, _ := cmd.Flags().GetString("poetry")
	fixPerms, _ := cmd.Flags().GetBool("fix-perms")
	syncModeStr, _ := cmd.Flags().GetString("sync-mode")
	noVenvConfig, _ := cmd.Flags().GetBool("no-venv-config")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}
	cfg := ctx.Config

	// Flags win over envup.yaml, which wins over defaults.
	binPath := poetryFlag
	if binPath == "" && cfg != nil {
		binPath = cfg.PoetryBin
	}
	syncMode := cfg.EffectiveSyncMode()
	if syncModeStr != "" {
		syncMode, err = config.ParseSyncMode(syncModeStr)
		if err != nil {
			return err
		}
	}
	if cfg != nil && cfg.FixPermissions {
		fixPerms = true
	}

	if syncMode == config.SyncAlways && !ctx.HasLock() {
		return fmt.Errorf("sync mode \"always\" requires %s in %s", project.LockName, ctx.Root)
	}

	tool, err := poetry.Resolve(binPath)
	if err != nil {
		return err
	}

	venvStep := !noVenvConfig && cfg.EffectiveVenvInProject()
	total := 1
	if fixPerms {
		total++
	}
	if venvStep {
		total++
	}
	if cfg != nil && len(cfg.PostInstall) > 0 {
		total++
	}
	steps := ui.NewSteps(cmd.ErrOrStderr(), total)

	if fixPerms {
		steps.Start("Ensuring " + tool.Bin + " is executable")
		if err := poetry.EnsureExecutable(tool.Bin); err != nil {
			return err
		}
	}

	if venvStep {
		steps.Start("Configuring in-project virtualenv")
		if err := tool.ConfigSet(ctx.Root, "virtualenvs.in-project", "true"); err != nil {
			return fmt.Errorf("configuring virtualenvs.in-project: %w", err)
		}
	}

	opts := poetry.InstallOpts{NoRoot: cfg.EffectiveNoRoot()}
	if cfg != nil {
		opts.Extra = cfg.Install.ExtraArgs
	}
	if syncMode != config.SyncNever && ctx.HasLock() {
		opts.Sync = true
		steps.Start("Installing dependencies (lockfile sync)")
	} else {
		if !ctx.HasLock() {
			steps.Warnf("%s not found; installing from %s without lock-exact sync",
				project.LockName, project.ManifestName)
		}
		steps.Start("Installing dependencies (manifest only)")
	}
	if err := tool.Install(ctx.Root, opts); err != nil {
		return fmt.Errorf("poetry install: %w", err)
	}

	if cfg != nil && len(cfg.PostInstall) > 0 {
		steps.Start("Running post-install hooks")
		for _, h := range cfg.PostInstall {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  Running post_install: %s\n", h.Name)
			if err := execHook(ctx.Root, h); err != nil {
				return fmt.Errorf("post_install %q: %w", h.Name, err)
			}
		}
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Environment ready.")
	return nil
}
