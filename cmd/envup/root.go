package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "envup",
		Short:   "Dev-environment bootstrapper for Poetry projects",
		Version: version,
	}

	cmd.PersistentFlags().String("project", ".", "Project root directory")

	cmd.AddCommand(
		newUpCmd(),
		newStatusCmd(),
		newDoctorCmd(),
		newRunCmd(),
		newInitCmd(),
	)

	return cmd
}
