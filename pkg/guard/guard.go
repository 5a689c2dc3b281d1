// Package guard implements the command guard: a stateless observer that
// inspects shell commands before the host executes them and vetoes privilege
// escalation. The match is a naive substring check, deliberately not
// word-boundary aware, so "echo sudoku" is vetoed alongside "sudo rm -rf /".
package guard

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"

	"github.com/ManuelSelch/pi-agent-demo/pkg/extension"
	"github.com/ManuelSelch/pi-agent-demo/pkg/logger"
)

// SudoReason is the reason attached to the builtin sudo veto.
const SudoReason = "dangerous command, sudo is not allowed for agent"

const sudoToken = "sudo"

// Rule blocks commands containing a literal substring.
type Rule struct {
	Substring string `mapstructure:"substring"`
	Reason    string `mapstructure:"reason"`
}

// Check evaluates the builtin sudo rule against a command string.
// It is a pure function: a block decision with SudoReason when the command
// contains "sudo" (case-sensitive, anywhere), nil otherwise.
func Check(command string) *extension.Decision {
	if strings.Contains(command, sudoToken) {
		return extension.Deny(SudoReason)
	}
	return nil
}

// Guard subscribes to before_tool_call events and vetoes shell commands that
// match the builtin sudo rule or any configured extra rule. It holds no
// mutable state and is safe for concurrent use.
type Guard struct {
	shellTools []glob.Glob
	extraRules []Rule
}

// Option configures a Guard.
type Option func(*Guard) error

// WithShellTools sets the glob patterns that identify shell-style tools.
// Hosts name their shell tool differently ("bash", "shell", "run_command");
// events whose tool name matches none of the patterns are not inspected.
func WithShellTools(patterns ...string) Option {
	return func(g *Guard) error {
		compiled := make([]glob.Glob, 0, len(patterns))
		for _, pattern := range patterns {
			c, err := glob.Compile(pattern)
			if err != nil {
				return errors.Wrapf(err, "invalid shell tool pattern %q", pattern)
			}
			compiled = append(compiled, c)
		}
		g.shellTools = compiled
		return nil
	}
}

// WithExtraRules adds substring rules evaluated after the builtin sudo rule.
func WithExtraRules(rules ...Rule) Option {
	return func(g *Guard) error {
		for _, rule := range rules {
			if rule.Substring == "" {
				return errors.New("guard rule requires a non-empty substring")
			}
		}
		g.extraRules = append(g.extraRules, rules...)
		return nil
	}
}

// New creates a Guard. Without options it inspects only the bash tool and
// applies only the builtin sudo rule.
func New(opts ...Option) (*Guard, error) {
	g := &Guard{}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if len(g.shellTools) == 0 {
		if err := WithShellTools(extension.BashToolName)(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Register subscribes the guard to before_tool_call events on the host.
func (g *Guard) Register(host extension.Host) {
	host.Subscribe(extension.EventBeforeToolCall, g.HandleToolCall)
}

// HandleToolCall is the before_tool_call handler. Non-shell tools pass
// through without inspection. Malformed tool input also passes through;
// validating payloads is the host's responsibility, not the guard's.
func (g *Guard) HandleToolCall(ctx context.Context, event extension.ToolCallEvent) (*extension.Decision, error) {
	if !g.isShellTool(event.ToolName) {
		return nil, nil
	}

	var input extension.BashInput
	if err := json.Unmarshal(event.ToolInput, &input); err != nil {
		logger.G(ctx).WithError(err).WithField("tool", event.ToolName).Debug("skipping unparseable tool input")
		return nil, nil
	}

	return g.CheckCommand(input.Command), nil
}

// CheckCommand evaluates all rules against a command string. The builtin
// sudo rule runs first; extra rules run in configuration order.
func (g *Guard) CheckCommand(command string) *extension.Decision {
	if decision := Check(command); decision != nil {
		return decision
	}
	for _, rule := range g.extraRules {
		if strings.Contains(command, rule.Substring) {
			reason := rule.Reason
			if reason == "" {
				reason = "dangerous command, " + rule.Substring + " is not allowed for agent"
			}
			return extension.Deny(reason)
		}
	}
	return nil
}

func (g *Guard) isShellTool(toolName string) bool {
	for _, pattern := range g.shellTools {
		if pattern.Match(toolName) {
			return true
		}
	}
	return false
}
