package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrianliechti/wincher-mcp/app"
	"github.com/adrianliechti/wincher-mcp/app/bridge"
	"github.com/adrianliechti/wincher-mcp/app/call"
	"github.com/adrianliechti/wincher-mcp/app/catalog"
	"github.com/adrianliechti/wincher-mcp/pkg/cli"
)

var version string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if version != "" {
		app.Version = version
	}

	cmd := initApp()

	if err := cmd.Run(ctx, os.Args); err != nil {
		cli.Fatal(err)
	}
}

func initApp() *cli.Command {
	return &cli.Command{
		Name:  "wincher-mcp",
		Usage: "Wincher MCP Server",

		Suggest: true,
		Version: app.Version,

		HideHelpCommand: true,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},

		Action: func(ctx context.Context, cmd *cli.Command) error {
			return serve(ctx, "", cmd.Bool("verbose"))
		},

		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the MCP server on stdio or SSE",

				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "sse",
						Usage: "Listen address for the SSE transport, e.g. localhost:4200",
					},
				},

				Action: func(ctx context.Context, cmd *cli.Command) error {
					return serve(ctx, cmd.String("sse"), cmd.Bool("verbose"))
				},
			},

			{
				Name:  "tools",
				Usage: "List the available tools",

				Action: func(ctx context.Context, cmd *cli.Command) error {
					return catalog.Run(ctx)
				},
			},

			{
				Name:      "call",
				Usage:     "Invoke a single tool and print its output",
				ArgsUsage: "TOOL",

				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "args",
						Usage: "Tool arguments as a JSON object",
					},
				},

				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()

					if name == "" {
						return errors.New("missing tool name, see `wincher-mcp tools`")
					}

					logger := app.MustLogger(cmd.Bool("verbose"))
					defer logger.Sync()

					d, err := app.Dispatcher(logger)

					if err != nil {
						return err
					}

					return call.Run(ctx, d, name, cmd.String("args"))
				},
			},
		},
	}
}

func serve(ctx context.Context, addr string, verbose bool) error {
	logger := app.MustLogger(verbose)
	defer logger.Sync()

	d, err := app.Dispatcher(logger)

	if err != nil {
		return err
	}

	s, err := bridge.New(ctx, d, app.Version)

	if err != nil {
		return err
	}

	if addr != "" {
		return bridge.ServeSSE(ctx, s, addr)
	}

	return bridge.ServeStdio(ctx, s)
}
