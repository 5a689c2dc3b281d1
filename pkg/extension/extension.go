// Package extension defines the surface between this repository's extensions
// and the agent host that loads them. The host owns event dispatch, session
// management, and tool execution; extensions only register commands and
// lifecycle observers against the Host interface and return decisions.
package extension

import (
	"context"
	"encoding/json"
)

// EventType identifies a lifecycle event emitted by the host.
type EventType string

// Lifecycle events the host emits to subscribed extensions.
const (
	EventBeforeToolCall  EventType = "before_tool_call"
	EventAfterToolCall   EventType = "after_tool_call"
	EventUserMessageSend EventType = "user_message_send"
	EventAgentStop       EventType = "agent_stop"
)

// Severity is the level of a notification shown to the user by the host.
type Severity string

// Notification severities supported by the host.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// BashToolName is the tool-type discriminator the host uses for shell commands.
const BashToolName = "bash"

// Notifier displays a message to the user at the given severity.
type Notifier interface {
	Notify(ctx context.Context, message string, severity Severity)
}

// ToolCallEvent is delivered to before_tool_call subscribers ahead of each
// tool execution. ToolInput carries the raw tool parameters; its schema
// depends on ToolName.
type ToolCallEvent struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
}

// BashInput is the input schema of the bash tool.
type BashInput struct {
	Command string `json:"command"`
}

// Decision vetoes an otherwise-approved action. A nil *Decision means allow.
type Decision struct {
	Block  bool   `json:"block"`
	Reason string `json:"reason,omitempty"`
}

// Deny builds a blocking decision with the given reason.
func Deny(reason string) *Decision {
	return &Decision{Block: true, Reason: reason}
}

// EventHandler observes a lifecycle event and optionally vetoes it.
// Returning (nil, nil) lets the action proceed.
type EventHandler func(ctx context.Context, event ToolCallEvent) (*Decision, error)

// CommandHandler executes a registered command. The host is passed back so
// handlers can reach the notification subsystem.
type CommandHandler func(ctx context.Context, host Host) error

// Command is a named command an extension registers with the host.
type Command struct {
	Name        string
	Description string
	Handler     CommandHandler
}

// Host is the registration API the agent host exposes to extensions.
type Host interface {
	Notifier

	// RegisterCommand adds a named command invocable by the user.
	RegisterCommand(cmd Command)

	// Subscribe registers a handler for a lifecycle event. Handlers run in
	// registration order.
	Subscribe(event EventType, handler EventHandler)
}
