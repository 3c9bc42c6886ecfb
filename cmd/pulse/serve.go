package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/urfave/cli/v3"

	"pulse/core"
	"pulse/export"
	htmlrender "pulse/render/html"
	jsonrender "pulse/render/json"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the dashboard snapshot in a local web UI",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: 8090,
			},
			redactFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			ex := &export.Exporter{Client: a.client}
			redactor := newRedactor(cmd)

			page := htmlrender.New()
			raw := jsonrender.New()

			// Each request fetches fresh data; failed endpoints degrade to
			// empty sections, so the page always renders.
			fetch := func(req *http.Request) *core.Snapshot {
				snap, skipped := ex.Fetch(req.Context())
				for _, err := range skipped {
					slog.Warn("endpoint unavailable", "error", err)
				}
				if redactor != nil {
					redactor.Scrub(&snap)
				}
				return &snap
			}

			mux := http.NewServeMux()

			mux.HandleFunc("GET /", func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				if err := page.Render(w, fetch(req)); err != nil {
					slog.Error("render snapshot", "error", err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			})

			mux.HandleFunc("GET /snapshot.json", func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				if err := raw.Render(w, fetch(req)); err != nil {
					slog.Error("encode snapshot", "error", err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			})

			addr := fmt.Sprintf(":%d", cmd.Int("port"))
			slog.Info("serving", "addr", "http://localhost"+addr, "backend", a.client.Base)
			return http.ListenAndServe(addr, mux)
		},
	}
}
