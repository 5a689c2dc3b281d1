package extension

import "encoding/json"

// Wire payloads for the out-of-process hook protocol. The host executes the
// hook binary with "run", writes the payload JSON to stdin, and reads the
// result JSON from stdout. Empty output with exit code 0 means "no action".

// BasePayload contains fields common to all hook payloads.
type BasePayload struct {
	Event  EventType `json:"event"`
	ConvID string    `json:"conv_id"`
	CWD    string    `json:"cwd"`
}

// BeforeToolCallPayload is sent to before_tool_call hooks.
type BeforeToolCallPayload struct {
	BasePayload
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
}

// ToolCallEvent converts the wire payload into the in-process event form.
func (p BeforeToolCallPayload) ToolCallEvent() ToolCallEvent {
	return ToolCallEvent{
		ToolName:  p.ToolName,
		ToolInput: p.ToolInput,
	}
}

// BeforeToolCallResult is returned by before_tool_call hooks.
type BeforeToolCallResult struct {
	Blocked bool   `json:"blocked"`
	Reason  string `json:"reason,omitempty"`
}

// ResultFromDecision maps an in-process decision onto the wire result.
// A nil decision yields the zero result (not blocked).
func ResultFromDecision(d *Decision) BeforeToolCallResult {
	if d == nil {
		return BeforeToolCallResult{}
	}
	return BeforeToolCallResult{Blocked: d.Block, Reason: d.Reason}
}
