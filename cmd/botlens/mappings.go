package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/botlens/botlens/pkg/mappings"
)

var ErrMissingActivity = errors.New("an activity name argument is required")

func NewMappingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "mappings",
		Usage: "Inspect the activity compatibility knowledge base",
		Commands: []*cli.Command{
			{
				Name:      "lookup",
				Usage:     "Look up the Blue Prism equivalents for a UiPath activity",
				ArgsUsage: "<activity>",
				Action: func(ctx context.Context, command *cli.Command) error {
					return runMappingsLookup(command)
				},
			},
			{
				Name:  "list",
				Usage: "Dump the whole mapping table as JSON",
				Action: func(ctx context.Context, command *cli.Command) error {
					return runMappingsList()
				},
			},
		},
	}
}

func runMappingsLookup(command *cli.Command) error {
	activity := command.Args().First()
	if activity == "" {
		return ErrMissingActivity
	}

	kb, err := mappings.Load()
	if err != nil {
		return fmt.Errorf("load knowledge base: %w", err)
	}

	entries, found := kb.Lookup(activity)
	if !found {
		return fmt.Errorf("no mapping found for activity '%s'", activity)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(entries)
}

func runMappingsList() error {
	kb, err := mappings.Load()
	if err != nil {
		return fmt.Errorf("load knowledge base: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(kb.Entries())
}
