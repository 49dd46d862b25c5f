package main

import (
	"encoding/json"
	"fmt"

	"github.com/fbkclanna/envup/internal/poetry"
	"github.com/fbkclanna/envup/internal/project"
	"github.com/fbkclanna/envup/internal/ui"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show project environment status",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().String("poetry", "", "Path to the poetry binary (skips resolution)")
	return cmd
}

type projectStatus struct {
	Name           string `json:"name"`
	Version        string `json:"version,omitempty"`
	Dependencies   int    `json:"dependencies"`
	Lock           bool   `json:"lock"`
	LockedPackages int    `json:"locked_packages,omitempty"`
	Venv           bool   `json:"venv"`
	Poetry         string `json:"poetry,omitempty"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")
	asJSON, _ := cmd.Flags().GetBool("json")
	poetryFlag, _ := cmd.Flags().GetString("poetry")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	s := collectStatus(ctx, poetryFlag)
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	lock := "missing"
	if s.Lock {
		lock = fmt.Sprintf("%d packages", s.LockedPackages)
	}
	venv := "absent"
	if s.Venv {
		venv = ".venv"
	}
	bin := s.Poetry
	if bin == "" {
		bin = "(not found)"
	}

	tbl := ui.NewTable(out, "PROJECT", "VERSION", "DEPS", "LOCK", "VENV", "POETRY")
	tbl.Row(s.Name, s.Version, s.Dependencies, lock, venv, bin)
	return tbl.Flush()
}

func collectStatus(ctx *project.Context, poetryBin string) projectStatus {
	s := projectStatus{
		Name:         ctx.Manifest.Name(),
		Version:      ctx.Manifest.Version(),
		Dependencies: ctx.Manifest.DependencyCount(),
		Venv:         ctx.HasVenv(),
	}
	if ctx.HasLock() {
		s.Lock = true
		s.LockedPackages = len(ctx.Lock.Packages)
	}
	if ctx.Config != nil && poetryBin == "" {
		poetryBin = ctx.Config.PoetryBin
	}
	if tool, err := poetry.Resolve(poetryBin); err == nil {
		s.Poetry = tool.Bin
	}
	return s
}
