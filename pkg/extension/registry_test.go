package extension

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedNotification struct {
	message  string
	severity Severity
}

type fakeNotifier struct {
	notifications []recordedNotification
}

func (f *fakeNotifier) Notify(_ context.Context, message string, severity Severity) {
	f.notifications = append(f.notifications, recordedNotification{message: message, severity: severity})
}

func TestEventTypeConstants(t *testing.T) {
	assert.Equal(t, EventType("before_tool_call"), EventBeforeToolCall)
	assert.Equal(t, EventType("after_tool_call"), EventAfterToolCall)
	assert.Equal(t, EventType("user_message_send"), EventUserMessageSend)
	assert.Equal(t, EventType("agent_stop"), EventAgentStop)
}

func TestRegistry_InvokeCommand(t *testing.T) {
	notifier := &fakeNotifier{}
	registry := NewRegistry(notifier)

	invoked := 0
	registry.RegisterCommand(Command{
		Name:        "test",
		Description: "test command",
		Handler: func(ctx context.Context, host Host) error {
			invoked++
			host.Notify(ctx, "done", SeverityInfo)
			return nil
		},
	})

	require.NoError(t, registry.InvokeCommand(context.Background(), "test"))
	assert.Equal(t, 1, invoked)
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "done", notifier.notifications[0].message)
}

func TestRegistry_InvokeCommand_Unknown(t *testing.T) {
	registry := NewRegistry(nil)
	err := registry.InvokeCommand(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestRegistry_NilNotifierDropsNotifications(t *testing.T) {
	registry := NewRegistry(nil)
	// Must not panic.
	registry.Notify(context.Background(), "message", SeverityInfo)
}

func TestRegistry_DispatchToolCall(t *testing.T) {
	t.Run("no handlers", func(t *testing.T) {
		registry := NewRegistry(nil)
		assert.Nil(t, registry.DispatchToolCall(context.Background(), ToolCallEvent{ToolName: "bash"}))
	})

	t.Run("first blocking decision wins", func(t *testing.T) {
		registry := NewRegistry(nil)
		registry.Subscribe(EventBeforeToolCall, func(_ context.Context, _ ToolCallEvent) (*Decision, error) {
			return nil, nil
		})
		registry.Subscribe(EventBeforeToolCall, func(_ context.Context, _ ToolCallEvent) (*Decision, error) {
			return Deny("first"), nil
		})
		registry.Subscribe(EventBeforeToolCall, func(_ context.Context, _ ToolCallEvent) (*Decision, error) {
			return Deny("second"), nil
		})

		decision := registry.DispatchToolCall(context.Background(), ToolCallEvent{ToolName: "bash"})
		require.NotNil(t, decision)
		assert.Equal(t, "first", decision.Reason)
	})

	t.Run("handler error does not veto", func(t *testing.T) {
		registry := NewRegistry(nil)
		registry.Subscribe(EventBeforeToolCall, func(_ context.Context, _ ToolCallEvent) (*Decision, error) {
			return nil, errors.New("boom")
		})

		assert.Nil(t, registry.DispatchToolCall(context.Background(), ToolCallEvent{ToolName: "bash"}))
	})

	t.Run("non-blocking decision is ignored", func(t *testing.T) {
		registry := NewRegistry(nil)
		registry.Subscribe(EventBeforeToolCall, func(_ context.Context, _ ToolCallEvent) (*Decision, error) {
			return &Decision{Block: false, Reason: "advisory"}, nil
		})

		assert.Nil(t, registry.DispatchToolCall(context.Background(), ToolCallEvent{ToolName: "bash"}))
	})
}

func TestRegistry_HasHandlers(t *testing.T) {
	registry := NewRegistry(nil)
	assert.False(t, registry.HasHandlers(EventBeforeToolCall))

	registry.Subscribe(EventBeforeToolCall, func(_ context.Context, _ ToolCallEvent) (*Decision, error) {
		return nil, nil
	})
	assert.True(t, registry.HasHandlers(EventBeforeToolCall))
	assert.False(t, registry.HasHandlers(EventAgentStop))
}
