package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DIMO-Network/telematics-action/internal/action"
	"github.com/DIMO-Network/telematics-action/internal/client/telematics"
	"github.com/DIMO-Network/telematics-action/internal/config"
	"github.com/DIMO-Network/telematics-action/internal/summary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
)

// invocationIDHeader carries the ID used to correlate an HTTP invocation with its log lines.
const invocationIDHeader = "X-Invocation-Id"

// CreateWebServer creates the local HTTP server that serves action invocations.
func CreateWebServer(logger *zerolog.Logger, settings *config.Settings) (*fiber.App, error) {
	handler, err := NewActionHandler(logger, settings)
	if err != nil {
		return nil, err
	}

	ctrl, err := NewController(logger, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to setup controller: %w", err)
	}

	return createApp(logger, ctrl), nil
}

// NewActionHandler wires the telematics loader and summary builder into an action handler.
func NewActionHandler(logger *zerolog.Logger, settings *config.Settings) (*action.Handler, error) {
	loader, err := telematics.NewClient(settings.FixturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create telematics client: %w", err)
	}

	handlerLogger := logger.With().Str("component", "action").Logger()
	handler, err := action.NewHandler(&handlerLogger, loader, summary.NewBuilder())
	if err != nil {
		return nil, fmt.Errorf("failed to create action handler: %w", err)
	}
	return handler, nil
}

func createApp(logger *zerolog.Logger, ctrl *Controller) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return ErrorHandler(c, err, logger)
		},
		DisableStartupMessage: true,
	})

	app.Use(recover.New(recover.Config{
		Next:              nil,
		EnableStackTrace:  true,
		StackTraceHandler: nil,
	}))

	app.Use(func(c *fiber.Ctx) error {
		invocationID := ksuid.New().String()
		c.Set(invocationIDHeader, invocationID)
		userCtx := logger.With().Str("httpPath", strings.TrimPrefix(c.Path(), "/")).
			Str("httpMethod", c.Method()).
			Str("invocationId", invocationID).
			Logger().WithContext(c.UserContext())
		c.SetUserContext(userCtx)
		return c.Next()
	})

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", HealthCheck)
	app.Post("/v1/actions/invoke", ctrl.InvokeAction)
	return app
}

// HealthCheck godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func HealthCheck(ctx *fiber.Ctx) error {
	res := map[string]any{
		"data": "Server is up and running",
	}

	return ctx.JSON(res)
}

// ErrorHandler custom handler to log recovered errors using our logger and return json instead of string.
func ErrorHandler(ctx *fiber.Ctx, err error, logger *zerolog.Logger) error {
	code := fiber.StatusInternalServerError // Default 500 statuscode
	message := "Internal error."

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	// don't log not found errors
	if code != fiber.StatusNotFound {
		logger.Err(err).Int("httpStatusCode", code).
			Str("httpPath", strings.TrimPrefix(ctx.Path(), "/")).
			Str("httpMethod", ctx.Method()).
			Msg("caught an error from http request")
	}

	return ctx.Status(code).JSON(codeResp{Code: code, Message: message})
}

type codeResp struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
