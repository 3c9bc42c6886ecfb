package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"pulse/chat"
	"pulse/render/terminal"
)

func chatCmd() *cli.Command {
	return &cli.Command{
		Name:  "chat",
		Usage: "Talk to the dashboard's AI assistant",
		Description: `Interactive chat loop. Type a question and press enter.

Commands:
  /clear   clear the conversation (local and server side)
  /quit    exit`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			s := chat.New(a.client)
			terminal.WriteTranscript(os.Stdout, s.Messages())

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					fmt.Println()
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())

				switch line {
				case "/quit", "/exit":
					return nil
				case "/clear":
					if err := s.Clear(ctx); err != nil {
						log.Error("clear failed", "error", err)
						continue
					}
					terminal.WriteTranscript(os.Stdout, s.Messages())
					continue
				}

				before := len(s.Messages())
				if !s.Send(ctx, line) {
					continue
				}
				// Echo only the turns this send appended.
				for _, msg := range s.Messages()[before:] {
					terminal.WriteMessage(os.Stdout, msg)
				}
			}
		},
	}
}
