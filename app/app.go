package app

import (
	"github.com/adrianliechti/wincher-mcp/pkg/config"
	"github.com/adrianliechti/wincher-mcp/pkg/rest"
	"github.com/adrianliechti/wincher-mcp/pkg/wincher"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Version = "dev"

func MustLogger(verbose bool) *zap.Logger {
	logger, err := Logger(verbose)

	if err != nil {
		panic(err)
	}

	return logger
}

// Logger writes JSON to stderr; stdout is reserved for the stdio transport.
func Logger(verbose bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.OutputPaths = []string{"stderr"}
	c.ErrorOutputPaths = []string{"stderr"}

	if verbose {
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return c.Build()
}

func MustDispatcher(logger *zap.Logger) *wincher.Dispatcher {
	d, err := Dispatcher(logger)

	if err != nil {
		panic(err)
	}

	return d
}

func Dispatcher(logger *zap.Logger) (*wincher.Dispatcher, error) {
	cfg, err := config.Load()

	if err != nil {
		return nil, err
	}

	options := []rest.Option{
		rest.WithUserAgent("wincher-mcp/" + Version),
	}

	if cfg.APIKey != "" {
		options = append(options, rest.WithBearer(cfg.APIKey))
	} else {
		logger.Warn(wincher.APIKeyEnv + " is not set, every tool call will fail")
	}

	client, err := rest.New(cfg.URL, options...)

	if err != nil {
		return nil, err
	}

	return wincher.New(client, wincher.WithLogger(logger)), nil
}
