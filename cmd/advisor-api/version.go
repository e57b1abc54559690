package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robotics-advisor/planner/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := version.Get()
		fmt.Printf("%s (commit %s)\n", v.GitVersion, v.GitCommit)
		return nil
	},
}
