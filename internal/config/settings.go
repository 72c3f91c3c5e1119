package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	// RuntimeLambda serves invocations through the AWS Lambda runtime API.
	RuntimeLambda = "lambda"
	// RuntimeHTTP serves invocations from a local HTTP server.
	RuntimeHTTP = "http"
)

// Settings contains the application config.
type Settings struct {
	Environment string `env:"ENVIRONMENT"                       yaml:"environment"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"    yaml:"logLevel"`
	Port        int    `env:"PORT"         envDefault:"8080"    yaml:"port"`
	Runtime     string `env:"RUNTIME"      envDefault:"lambda"  yaml:"runtime"`

	// Fixture settings
	FixturePath string `env:"FIXTURE_PATH" envDefault:"data/telematics_data.json" yaml:"fixturePath"`
}

// Load reads the settings from the environment.
func Load() (*Settings, error) {
	settings, err := env.ParseAs[Settings]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	switch settings.Runtime {
	case RuntimeLambda, RuntimeHTTP:
	default:
		return nil, fmt.Errorf("unknown runtime %q", settings.Runtime)
	}
	if settings.FixturePath == "" {
		return nil, fmt.Errorf("fixture path is required")
	}
	return &settings, nil
}
