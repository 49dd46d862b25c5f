package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fbkclanna/envup/internal/poetry"
	"github.com/fbkclanna/envup/internal/project"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		RunE:  runDoctor,
	}
	cmd.Flags().String("poetry", "", "Path to the poetry binary (skips resolution)")
	return cmd
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ok := true
	poetryFlag, _ := cmd.Flags().GetString("poetry")

	// Check poetry.
	fmt.Print("Checking poetry... ")
	tool, err := poetry.Resolve(poetryFlag)
	if err != nil {
		fmt.Println("NOT FOUND")
		fmt.Println("  poetry is required. Install it from https://python-poetry.org/")
		ok = false
	} else {
		fmt.Printf("found at %s\n", tool.Bin)
	}

	// Check execute permission.
	if err == nil {
		fmt.Print("Checking execute permission... ")
		if info, serr := os.Stat(tool.Bin); serr == nil && info.Mode()&0o111 == 0 {
			fmt.Println("MISSING")
			fmt.Println("  run: envup up --fix-perms")
			ok = false
		} else {
			fmt.Println("OK")
		}
	}

	// Check poetry version.
	if err == nil {
		fmt.Print("Checking poetry version... ")
		ver, verr := tool.Version()
		if verr != nil {
			fmt.Println("ERROR")
			ok = false
		} else {
			fmt.Println(ver)
		}
	}

	// Check python.
	fmt.Print("Checking python3... ")
	pyPath, perr := exec.LookPath("python3")
	if perr != nil {
		fmt.Println("NOT FOUND")
		ok = false
	} else {
		fmt.Printf("found at %s\n", pyPath)
	}

	// Check project files if in a project dir.
	root, _ := cmd.Flags().GetString("project")
	ctx, loadErr := project.Load(root)
	switch {
	case loadErr != nil:
		fmt.Printf("No valid project found (%v)\n", loadErr)
	default:
		fmt.Printf("Project: %s (%d dependencies)\n", ctx.Manifest.Name(), ctx.Manifest.DependencyCount())
		if !ctx.HasLock() {
			fmt.Println("  No poetry.lock; installs will not be reproducible")
		} else if err == nil {
			fmt.Print("  Checking lockfile consistency... ")
			if cerr := tool.CheckLock(ctx.Root); cerr != nil {
				fmt.Println("STALE")
				fmt.Println("  poetry.lock does not match pyproject.toml; run: poetry lock")
				ok = false
			} else {
				fmt.Println("OK")
			}
		}
	}

	if ok {
		fmt.Println("\nAll checks passed.")
		return nil
	}
	fmt.Println("\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
