// Package action handles agent action group invocations for the fleet telematics function.
package action

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/DIMO-Network/telematics-action/internal/client/telematics"
	"github.com/DIMO-Network/telematics-action/internal/summary"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrorPrefix starts every value returned for a failed invocation.
const ErrorPrefix = "Error occurred: "

// TelematicsLoader loads the fleet telematics document.
type TelematicsLoader interface {
	GetTelematicsData(ctx context.Context) (*telematics.Document, error)
}

// SummaryBuilder turns a telematics document into the function result.
type SummaryBuilder interface {
	Build(doc *telematics.Document) (*summary.Summary, error)
}

// Outcome is the result of a single invocation. Exactly one of Response and Err is set.
type Outcome struct {
	Response *Response
	Err      error
}

// Value returns what is sent back to the agent runtime: the response envelope on
// success, or a plain error string on failure.
func (o Outcome) Value() any {
	if o.Err != nil {
		return ErrorPrefix + o.Err.Error()
	}
	return o.Response
}

// Handler serves the fleet telematics function.
type Handler struct {
	loader  TelematicsLoader
	builder SummaryBuilder
	logger  *zerolog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(logger *zerolog.Logger, loader TelematicsLoader, builder SummaryBuilder) (*Handler, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if loader == nil {
		return nil, fmt.Errorf("telematics loader is nil")
	}
	if builder == nil {
		return nil, fmt.Errorf("summary builder is nil")
	}
	return &Handler{
		loader:  loader,
		builder: builder,
		logger:  logger,
	}, nil
}

// HandleRequest is the Lambda entry point. Failures are reported in the returned value,
// so the error is always nil.
func (h *Handler) HandleRequest(ctx context.Context, raw json.RawMessage) (any, error) {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		ctx = h.logger.With().Str("awsRequestId", lc.AwsRequestID).Logger().WithContext(ctx)
	}
	return h.Invoke(ctx, raw).Value(), nil
}

// Invoke runs one invocation. It never panics; any failure is returned in the Outcome.
func (h *Handler) Invoke(ctx context.Context, raw []byte) (outcome Outcome) {
	logger := h.loggerFrom(ctx)

	defer func() {
		if r := recover(); r != nil {
			outcome = Outcome{Err: fmt.Errorf("panic: %v", r)}
		}
		if outcome.Err != nil {
			logger.Error().Stack().Err(errors.WithStack(outcome.Err)).Msg("Error in action handler")
		}
	}()

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err == nil {
		logger.Info().RawJSON("event", compact.Bytes()).Msg("Received event")
	} else {
		logger.Info().Bytes("event", raw).Msg("Received event")
	}

	resp, err := h.invoke(ctx, raw)
	if err != nil {
		return Outcome{Err: err}
	}

	respBytes, err := json.Marshal(resp)
	if err != nil {
		return Outcome{Err: fmt.Errorf("failed to marshal response: %w", err)}
	}
	logger.Info().RawJSON("response", respBytes).Msg("Response")

	return Outcome{Response: resp}
}

func (h *Handler) invoke(ctx context.Context, raw []byte) (*Response, error) {
	event, err := ParseEvent(raw)
	if err != nil {
		return nil, err
	}

	doc, err := h.loader.GetTelematicsData(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.builder.Build(doc)
	if err != nil {
		return nil, err
	}
	if result.MixedUnits {
		h.loggerFrom(ctx).Warn().Str("totalDistance", result.TotalDistance).
			Msg("Equipment reports mixed odometer units; total uses the first entry's unit")
	}

	body, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}

	return &Response{
		Response: ActionResponse{
			ActionGroup: event.ActionGroup,
			Function:    event.Function,
			FunctionResponse: FunctionResponse{
				ResponseBody: ResponseBody{
					Text: TextBody{Body: string(body)},
				},
			},
		},
		MessageVersion: event.MessageVersion,
	}, nil
}

// loggerFrom prefers the request scoped logger carried by ctx.
func (h *Handler) loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return h.logger
}
