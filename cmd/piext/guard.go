package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ManuelSelch/pi-agent-demo/pkg/extension"
)

var guardCmd = &cobra.Command{
	Use:   "guard",
	Short: "Inspect shell commands with the command guard",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var guardCheckCmd = &cobra.Command{
	Use:   "check [flags] -- COMMAND...",
	Short: "Check a shell command against the guard rules",
	Long: `Evaluate a shell command exactly as the before_tool_call hook would.
Exits 0 when the command is allowed and 1 with the veto reason when blocked.

Examples:
  piext guard check -- ls -la
  piext guard check -- sudo rm -rf /
  piext guard check --tool shell -- echo hi`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toolName, err := cmd.Flags().GetString("tool")
		if err != nil {
			return err
		}

		registry, err := newRegistry()
		if err != nil {
			return err
		}

		command := strings.Join(args, " ")
		input, err := json.Marshal(extension.BashInput{Command: command})
		if err != nil {
			return errors.Wrap(err, "failed to encode tool input")
		}

		decision := registry.DispatchToolCall(cmd.Context(), extension.ToolCallEvent{
			ToolName:  toolName,
			ToolInput: input,
		})
		if decision != nil {
			fmt.Fprintf(os.Stderr, "blocked: %s\n", decision.Reason)
			os.Exit(1)
		}

		out.Success("allowed")
		return nil
	},
}

func init() {
	guardCheckCmd.Flags().String("tool", extension.BashToolName, "Tool name to present the command as")
	guardCmd.AddCommand(guardCheckCmd)
	rootCmd.AddCommand(guardCmd)
}
