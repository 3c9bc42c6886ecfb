package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"pulse/export"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Fetch the dashboard and render it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (terminal, html, json)",
				Value:   "terminal",
			},
			redactFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			renderer, err := a.renderer(cmd.String("format"))
			if err != nil {
				return err
			}

			ex := &export.Exporter{Client: a.client}
			snap, skipped := ex.Fetch(ctx)
			for _, err := range skipped {
				log.Warn("endpoint unavailable", "error", err)
			}

			if r := newRedactor(cmd); r != nil {
				r.Scrub(&snap)
			}

			return renderer.Render(os.Stdout, &snap)
		},
	}
}
