package extension

import "context"

// HelloMessage is the fixed text emitted by the hello command.
const HelloMessage = "hello world"

// RegisterHello registers the greeting command. Invoking it performs exactly
// one side effect: an info-level notification with fixed text.
func RegisterHello(host Host) {
	host.RegisterCommand(Command{
		Name:        "hello",
		Description: "Prints hello world",
		Handler: func(ctx context.Context, h Host) error {
			h.Notify(ctx, HelloMessage, SeverityInfo)
			return nil
		},
	})
}
