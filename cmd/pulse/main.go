package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	// A .env next to the binary may carry PULSE_API_URL; absence is fine.
	_ = godotenv.Load()

	root := &cli.Command{
		Name:  "pulse",
		Usage: "Fetch, export, and chat with the civic sentiment dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "Dashboard backend base URL",
				Sources: cli.EnvVars("PULSE_API_URL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			loginCmd(),
			registerCmd(),
			logoutCmd(),
			whoamiCmd(),
			showCmd(),
			exportCmd(),
			chatCmd(),
			serveCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
