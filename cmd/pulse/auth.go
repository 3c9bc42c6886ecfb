package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/urfave/cli/v3"
)

func loginCmd() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Authenticate against the dashboard backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "username",
				Aliases:  []string{"u"},
				Usage:    "Account username",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Account password (prompted when omitted)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			password := cmd.String("password")
			if password == "" {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			user, err := a.session.Login(ctx, cmd.String("username"), password)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", user.Username)
			return nil
		},
	}
}

func registerCmd() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Create a new dashboard account and log in",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "Account email", Required: true},
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "Account username", Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Account password (prompted when omitted)"},
			&cli.StringFlag{Name: "full-name", Usage: "Display name"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			password := cmd.String("password")
			if password == "" {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			user, err := a.session.Register(ctx, cmd.String("email"), cmd.String("username"), password, cmd.String("full-name"))
			if err != nil {
				return err
			}

			fmt.Printf("Registered and logged in as %s\n", user.Username)
			return nil
		},
	}
}

func logoutCmd() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Clear the stored credential",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			a.session.Logout()
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the current session's profile",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			if !a.session.Authenticated() {
				fmt.Println("Not logged in")
				return nil
			}

			// Refresh from the backend so an expired token is visible here.
			user, err := a.session.CurrentUser(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%s <%s>\n", user.Username, user.Email)
			if user.FullName != nil && *user.FullName != "" {
				fmt.Println(*user.FullName)
			}
			return nil
		},
	}
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	data, err := term.ReadPassword(os.Stdin.Fd())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
