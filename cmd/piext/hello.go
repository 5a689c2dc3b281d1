package main

import (
	"github.com/spf13/cobra"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Prints hello world",
	Long:  `Invoke the greeting command the way the agent host would: it emits a single info-level notification.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := newRegistry()
		if err != nil {
			return err
		}
		return registry.InvokeCommand(cmd.Context(), "hello")
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
}
