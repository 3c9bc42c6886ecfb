package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"pulse/core"
	"pulse/export"
)

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export all dashboard data as a sectioned CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output directory",
				Value:   ".",
			},
			redactFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			ex := &export.Exporter{Client: a.client}
			if r := newRedactor(cmd); r != nil {
				ex.Scrub = func(snap *core.Snapshot) { r.Scrub(snap) }
			}

			dir := cmd.String("out")
			name, skipped, err := ex.ExportAll(ctx, export.FileEmitter{Dir: dir})
			if err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			for _, err := range skipped {
				log.Warn("endpoint skipped", "error", err)
			}

			fmt.Println("Wrote", filepath.Join(dir, name))
			return nil
		},
	}
}
