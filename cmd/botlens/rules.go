package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/botlens/botlens/pkg/log"
	"github.com/botlens/botlens/pkg/models"
	"github.com/botlens/botlens/pkg/review"
)

func NewRulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "Inspect the built-in code review rule catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List built-in rules, optionally filtered by platform",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "platform",
						Aliases: []string{"p"},
						Usage:   "Only show rules for this platform",
						Value:   "",
					},
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					return runRulesList(command)
				},
			},
		},
	}
}

func runRulesList(command *cli.Command) error {
	registry := review.NewRegistry(log.WithModule("rules"))

	rules := registry.All()
	if platform := command.String("platform"); platform != "" {
		rules = registry.ForPlatform(models.Platform(platform))
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tPLATFORM\tCATEGORY\tSEVERITY\tNAME")

	for _, rule := range rules {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			rule.ID, rule.Platform, rule.Category, rule.Severity, rule.Name)
	}

	return writer.Flush()
}
