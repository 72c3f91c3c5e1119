package app

import (
	"errors"

	"github.com/DIMO-Network/telematics-action/internal/action"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Controller serves action invocations over HTTP.
type Controller struct {
	handler *action.Handler
	logger  *zerolog.Logger
}

// NewController creates a new Controller.
func NewController(logger *zerolog.Logger, handler *action.Handler) (*Controller, error) {
	if handler == nil {
		return nil, errors.New("action handler is nil")
	}
	return &Controller{
		handler: handler,
		logger:  logger,
	}, nil
}

// InvokeAction godoc
// @Summary Invoke the fleet telematics function
// @Description Runs one agent action group invocation. A failed invocation still returns 200 with a plain "Error occurred: ..." string, as the agent runtime expects.
// @Tags action
// @Accept json
// @Produce json
// @Param event body action.Event true "Action group event"
// @Success 200 {object} action.Response
// @Failure 400 {object} codeResp
// @Router /v1/actions/invoke [post]
func (c *Controller) InvokeAction(ctx *fiber.Ctx) error {
	body := ctx.Body()
	if len(body) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Empty event body")
	}

	outcome := c.handler.Invoke(ctx.UserContext(), body)
	if outcome.Err != nil {
		c.logger.Debug().Err(outcome.Err).Msg("Invocation failed")
	}
	return ctx.JSON(outcome.Value())
}
