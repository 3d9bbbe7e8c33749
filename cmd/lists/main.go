package main

import (
	"os"

	"linked_lists/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()
	rootCmd.AddCommand(cmd.NewScenarioCommand())
	rootCmd.AddCommand(cmd.NewTeardownCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
