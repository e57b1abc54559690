package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "advisor-api",
	Short: "Robotics automation advisor API service",
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
