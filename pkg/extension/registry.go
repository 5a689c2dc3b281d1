package extension

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ManuelSelch/pi-agent-demo/pkg/logger"
)

// Registry is the reference in-process implementation of Host. The CLI and
// tests use it to wire extensions together the way the external host does:
// commands by name, event handlers in registration order.
type Registry struct {
	commands map[string]Command
	handlers map[EventType][]EventHandler
	notifier Notifier
}

// NewRegistry creates a registry that forwards notifications to the given
// notifier. A nil notifier drops notifications.
func NewRegistry(notifier Notifier) *Registry {
	return &Registry{
		commands: make(map[string]Command),
		handlers: make(map[EventType][]EventHandler),
		notifier: notifier,
	}
}

// RegisterCommand adds a named command. Later registrations with the same
// name replace earlier ones.
func (r *Registry) RegisterCommand(cmd Command) {
	r.commands[cmd.Name] = cmd
}

// Subscribe registers a handler for a lifecycle event.
func (r *Registry) Subscribe(event EventType, handler EventHandler) {
	r.handlers[event] = append(r.handlers[event], handler)
}

// Notify forwards the message to the configured notifier.
func (r *Registry) Notify(ctx context.Context, message string, severity Severity) {
	if r.notifier == nil {
		return
	}
	r.notifier.Notify(ctx, message, severity)
}

// Commands returns the registered commands keyed by name.
func (r *Registry) Commands() map[string]Command {
	return r.commands
}

// HasHandlers returns true if any handler is subscribed to the event.
func (r *Registry) HasHandlers(event EventType) bool {
	return len(r.handlers[event]) > 0
}

// InvokeCommand runs the named command.
func (r *Registry) InvokeCommand(ctx context.Context, name string) error {
	cmd, ok := r.commands[name]
	if !ok {
		return errors.Errorf("command %q is not registered", name)
	}
	return cmd.Handler(ctx, r)
}

// DispatchToolCall delivers a before_tool_call event to subscribed handlers
// in registration order and returns the first blocking decision. Handler
// errors are logged and do not veto the call; that mirrors the host, which
// treats a failing observer as absent.
func (r *Registry) DispatchToolCall(ctx context.Context, event ToolCallEvent) *Decision {
	for _, handler := range r.handlers[EventBeforeToolCall] {
		decision, err := handler(ctx, event)
		if err != nil {
			logger.G(ctx).WithError(err).WithField("tool", event.ToolName).Warn("event handler failed")
			continue
		}
		if decision != nil && decision.Block {
			return decision
		}
	}
	return nil
}
