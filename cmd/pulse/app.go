package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"pulse/api"
	"pulse/redact"
	"pulse/render"
	htmlrender "pulse/render/html"
	jsonrender "pulse/render/json"
	"pulse/render/terminal"
	"pulse/session"
)

// app wires the client, session, and renderer registry used by commands.
type app struct {
	client    *api.Client
	session   *session.Session
	renderers map[string]func() render.Renderer
}

func newApp(cmd *cli.Command) (*app, error) {
	client := api.New(cmd.String("api-url"))

	dir, err := session.DefaultStoreDir()
	if err != nil {
		return nil, fmt.Errorf("locate config dir: %w", err)
	}

	return &app{
		client:  client,
		session: session.New(client, &session.Store{Dir: dir}),
		renderers: map[string]func() render.Renderer{
			"terminal": func() render.Renderer { return terminal.New() },
			"html":     func() render.Renderer { return htmlrender.New() },
			"json":     func() render.Renderer { return jsonrender.New() },
		},
	}, nil
}

func (a *app) renderer(name string) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(), nil
}

// newRedactor builds a Redactor from the --redact flag. Returns nil when
// redaction is off.
func newRedactor(cmd *cli.Command) *redact.Redactor {
	if !cmd.Bool("redact") {
		return nil
	}
	return redact.New(redact.All())
}

func redactFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "redact",
		Usage: "Scrub emails, phone numbers, and handles from mentions",
	}
}
