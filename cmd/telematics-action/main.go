package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	// import docs for swagger generation.
	_ "github.com/DIMO-Network/telematics-action/docs"
	"github.com/DIMO-Network/telematics-action/internal/app"
	"github.com/DIMO-Network/telematics-action/internal/config"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"golang.org/x/sync/errgroup"
)

// @title Telematics Action API
// @version 1.0
// @description Local HTTP surface for the fleet telematics agent action
const appName = "telematics-action"

func main() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", appName).Logger()

	settings, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load settings.")
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Msgf("Invalid log level %q.", settings.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	switch settings.Runtime {
	case config.RuntimeHTTP:
		runHTTP(&logger, settings)
	default:
		handler, err := app.NewActionHandler(&logger, settings)
		if err != nil {
			logger.Fatal().Err(err).Msg("Couldn't create action handler.")
		}
		logger.Debug().Str("fixturePath", settings.FixturePath).Msg("Starting lambda handler")
		lambda.Start(handler.HandleRequest)
	}
}

func runHTTP(logger *zerolog.Logger, settings *config.Settings) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	group, gCtx := errgroup.WithContext(ctx)

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Received signal, shutting down...")
	}()

	webApp, err := app.CreateWebServer(logger, settings)
	if err != nil {
		logger.Fatal().Err(err).Msg("Couldn't create web server.")
	}

	addr := ":" + strconv.Itoa(settings.Port)
	logger.Info().Msgf("Listening on %s", addr)
	RunFiber(gCtx, webApp, addr, group)

	if err := group.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run server.")
	}
}

// RunFiber runs a fiber server on addr until ctx is done.
func RunFiber(ctx context.Context, fiberApp *fiber.App, addr string, group *errgroup.Group) {
	group.Go(func() error {
		if err := fiberApp.Listen(addr); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		if err := fiberApp.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})
}
