package guard

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelSelch/pi-agent-demo/pkg/extension"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		command string
		blocked bool
	}{
		{name: "sudo command", command: "sudo rm -rf /", blocked: true},
		{name: "plain command", command: "ls -la", blocked: false},
		{name: "sudo inside longer token", command: "echo sudoku", blocked: true},
		{name: "sudo mid string", command: "echo hi && sudo apt install foo", blocked: true},
		{name: "uppercase is not matched", command: "SUDO rm -rf /", blocked: false},
		{name: "empty command", command: "", blocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Check(tt.command)
			if tt.blocked {
				require.NotNil(t, decision)
				assert.True(t, decision.Block)
				assert.Equal(t, SudoReason, decision.Reason)
				assert.NotEmpty(t, decision.Reason)
			} else {
				assert.Nil(t, decision)
			}
		})
	}
}

func TestHandleToolCall_BashTool(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	input, err := json.Marshal(extension.BashInput{Command: "sudo reboot"})
	require.NoError(t, err)

	decision, err := g.HandleToolCall(context.Background(), extension.ToolCallEvent{
		ToolName:  "bash",
		ToolInput: input,
	})
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.True(t, decision.Block)
	assert.Equal(t, SudoReason, decision.Reason)
}

func TestHandleToolCall_NonShellToolNotInspected(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	// The input would block if inspected; a non-shell tool must pass through.
	input, err := json.Marshal(extension.BashInput{Command: "sudo reboot"})
	require.NoError(t, err)

	for _, tool := range []string{"file_read", "grep_tool", "thinking"} {
		decision, err := g.HandleToolCall(context.Background(), extension.ToolCallEvent{
			ToolName:  tool,
			ToolInput: input,
		})
		require.NoError(t, err)
		assert.Nil(t, decision, "tool %s should not be inspected", tool)
	}
}

func TestHandleToolCall_MalformedInputAllows(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	decision, err := g.HandleToolCall(context.Background(), extension.ToolCallEvent{
		ToolName:  "bash",
		ToolInput: json.RawMessage(`not json`),
	})
	require.NoError(t, err)
	assert.Nil(t, decision)
}

func TestHandleToolCall_MissingCommandFieldAllows(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	decision, err := g.HandleToolCall(context.Background(), extension.ToolCallEvent{
		ToolName:  "bash",
		ToolInput: json.RawMessage(`{"timeout": 30}`),
	})
	require.NoError(t, err)
	assert.Nil(t, decision)
}

func TestWithShellTools(t *testing.T) {
	t.Run("glob pattern matches host-specific tool names", func(t *testing.T) {
		g, err := New(WithShellTools("bash", "run_*"))
		require.NoError(t, err)

		input, err := json.Marshal(extension.BashInput{Command: "sudo id"})
		require.NoError(t, err)

		decision, err := g.HandleToolCall(context.Background(), extension.ToolCallEvent{
			ToolName:  "run_shell_command",
			ToolInput: input,
		})
		require.NoError(t, err)
		require.NotNil(t, decision)
		assert.True(t, decision.Block)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := New(WithShellTools("[invalid"))
		assert.Error(t, err)
	})
}

func TestWithExtraRules(t *testing.T) {
	g, err := New(WithExtraRules(
		Rule{Substring: "rm -rf", Reason: "recursive delete is not allowed for agent"},
		Rule{Substring: "mkfs"},
	))
	require.NoError(t, err)

	t.Run("extra rule with reason", func(t *testing.T) {
		decision := g.CheckCommand("rm -rf ./build")
		require.NotNil(t, decision)
		assert.Equal(t, "recursive delete is not allowed for agent", decision.Reason)
	})

	t.Run("extra rule with default reason", func(t *testing.T) {
		decision := g.CheckCommand("mkfs /dev/sda1")
		require.NotNil(t, decision)
		assert.Equal(t, "dangerous command, mkfs is not allowed for agent", decision.Reason)
	})

	t.Run("builtin sudo rule wins over extra rules", func(t *testing.T) {
		decision := g.CheckCommand("sudo rm -rf /")
		require.NotNil(t, decision)
		assert.Equal(t, SudoReason, decision.Reason)
	})

	t.Run("no rule matches", func(t *testing.T) {
		assert.Nil(t, g.CheckCommand("go test ./..."))
	})

	t.Run("empty substring rejected", func(t *testing.T) {
		_, err := New(WithExtraRules(Rule{Reason: "no substring"}))
		assert.Error(t, err)
	})
}

func TestRegister(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	registry := extension.NewRegistry(nil)
	g.Register(registry)

	assert.True(t, registry.HasHandlers(extension.EventBeforeToolCall))

	input, err := json.Marshal(extension.BashInput{Command: "sudo rm -rf /"})
	require.NoError(t, err)

	decision := registry.DispatchToolCall(context.Background(), extension.ToolCallEvent{
		ToolName:  extension.BashToolName,
		ToolInput: input,
	})
	require.NotNil(t, decision)
	assert.Equal(t, SudoReason, decision.Reason)
}
