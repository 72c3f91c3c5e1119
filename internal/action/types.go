package action

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Event is the action group invocation sent by the agent runtime.
type Event struct {
	MessageVersion          string            `json:"messageVersion"`
	Agent                   json.RawMessage   `json:"agent"`
	InputText               string            `json:"inputText,omitempty"`
	SessionID               string            `json:"sessionId,omitempty"`
	ActionGroup             string            `json:"actionGroup"`
	Function                string            `json:"function"`
	Parameters              []Parameter       `json:"parameters"`
	SessionAttributes       map[string]string `json:"sessionAttributes,omitempty"`
	PromptSessionAttributes map[string]string `json:"promptSessionAttributes,omitempty"`
}

// Parameter is a function argument extracted by the agent.
type Parameter struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Response is the envelope the agent runtime expects back from a successful invocation.
type Response struct {
	Response       ActionResponse `json:"response"`
	MessageVersion string         `json:"messageVersion"`
}

// ActionResponse routes the function result back to the agent.
type ActionResponse struct {
	ActionGroup      string           `json:"actionGroup"`
	Function         string           `json:"function"`
	FunctionResponse FunctionResponse `json:"functionResponse"`
}

// FunctionResponse wraps the response body.
type FunctionResponse struct {
	ResponseBody ResponseBody `json:"responseBody"`
}

// ResponseBody holds the result keyed by content type.
type ResponseBody struct {
	Text TextBody `json:"TEXT"`
}

// TextBody holds the JSON encoded function result.
type TextBody struct {
	Body string `json:"body"`
}

// MalformedEventError is returned when an event cannot be decoded or lacks a required field.
type MalformedEventError struct {
	MissingFields []string
	Err           error
}

func (e *MalformedEventError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed event: %v", e.Err)
	}
	return "malformed event: missing required fields: " + strings.Join(e.MissingFields, ", ")
}

func (e *MalformedEventError) Unwrap() error {
	return e.Err
}

// wireEvent tracks which required fields were present in the payload.
type wireEvent struct {
	MessageVersion          *string           `json:"messageVersion"`
	Agent                   json.RawMessage   `json:"agent"`
	InputText               string            `json:"inputText"`
	SessionID               string            `json:"sessionId"`
	ActionGroup             *string           `json:"actionGroup"`
	Function                *string           `json:"function"`
	Parameters              []Parameter       `json:"parameters"`
	SessionAttributes       map[string]string `json:"sessionAttributes"`
	PromptSessionAttributes map[string]string `json:"promptSessionAttributes"`
}

// ParseEvent decodes an event and checks that every required field is present.
// Parameters default to an empty list.
func ParseEvent(raw []byte) (*Event, error) {
	var wire wireEvent
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &MalformedEventError{Err: err}
	}

	var missing []string
	if wire.MessageVersion == nil {
		missing = append(missing, "messageVersion")
	}
	if wire.Agent == nil {
		missing = append(missing, "agent")
	}
	if wire.ActionGroup == nil {
		missing = append(missing, "actionGroup")
	}
	if wire.Function == nil {
		missing = append(missing, "function")
	}
	if len(missing) > 0 {
		return nil, &MalformedEventError{MissingFields: missing}
	}

	event := &Event{
		MessageVersion:          *wire.MessageVersion,
		Agent:                   wire.Agent,
		InputText:               wire.InputText,
		SessionID:               wire.SessionID,
		ActionGroup:             *wire.ActionGroup,
		Function:                *wire.Function,
		Parameters:              wire.Parameters,
		SessionAttributes:       wire.SessionAttributes,
		PromptSessionAttributes: wire.PromptSessionAttributes,
	}
	if event.Parameters == nil {
		event.Parameters = []Parameter{}
	}
	return event, nil
}
