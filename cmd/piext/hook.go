package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ManuelSelch/pi-agent-demo/pkg/extension"
	"github.com/ManuelSelch/pi-agent-demo/pkg/logger"
)

// The hook executable protocol: the host runs "piext hook" once at discovery
// time to learn the hook type, then "piext run" per event with the payload
// JSON on stdin. The result JSON on stdout carries the veto decision; empty
// output means allow.

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Print the hook type for host discovery",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(extension.EventBeforeToolCall)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the guard against a hook payload from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// stdout is reserved for the wire result.
		logger.SetLogOutput(os.Stderr)
		return runHook(cmd.Context(), os.Stdin, os.Stdout)
	},
}

// runHook decodes a before_tool_call payload, dispatches it to the guard,
// and encodes the decision.
func runHook(ctx context.Context, in io.Reader, outw io.Writer) error {
	log := logger.G(ctx).WithField("invocation_id", uuid.NewString())

	var payload extension.BeforeToolCallPayload
	if err := json.NewDecoder(in).Decode(&payload); err != nil {
		return errors.Wrap(err, "failed to decode hook payload")
	}

	if payload.Event != "" && payload.Event != extension.EventBeforeToolCall {
		return errors.Errorf("unsupported hook event %q", payload.Event)
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}

	decision := registry.DispatchToolCall(ctx, payload.ToolCallEvent())
	result := extension.ResultFromDecision(decision)

	log.WithField("tool", payload.ToolName).WithField("blocked", result.Blocked).Debug("hook evaluated")

	return errors.Wrap(json.NewEncoder(outw).Encode(result), "failed to encode hook result")
}

func init() {
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(runCmd)
}
