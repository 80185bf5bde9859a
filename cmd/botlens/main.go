package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/botlens/botlens/pkg/config"
	"github.com/botlens/botlens/pkg/log"
)

func main() {
	var cfg config.Config

	cmd := &cli.Command{
		Name:                  "botlens",
		Usage:                 "Analyze RPA workflow definitions for quality, complexity and migration readiness",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the configuration file",
				Value: "botlens.yaml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error); overrides the config file",
				Value: "",
			},
		},
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			cfg = config.LoadOrDefault(command.String("config"))

			level := command.String("log-level")
			if level == "" {
				level = cfg.LogLevel
			}

			log.Setup(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			NewAnalyzeCommand(&cfg),
			NewRulesCommand(),
			NewMappingsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
