// Package cli implements replyctl, a terminal client for the replyflow API.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"replyflow.app/api/core/config"
	"replyflow.app/api/internal/apiclient"
	"replyflow.app/api/internal/dashboard"
	"replyflow.app/api/internal/model"
)

// Client is everything replyctl asks of the API.
type Client interface {
	dashboard.Backend
	Me(ctx context.Context) (*model.Profile, error)
	Contract(ctx context.Context) (json.RawMessage, error)
}

// ClientFactory builds a Client for one API URL and session.
type ClientFactory func(apiURL, sessionToken string) Client

// DefaultClientFactory talks HTTP.
func DefaultClientFactory(apiURL, sessionToken string) Client {
	return apiclient.New(apiURL, sessionToken)
}

var errNoSession = errors.New("not signed in: set REPLYFLOW_SESSION or pass --session")

// app is the per-invocation wiring shared by every subcommand.
type app struct {
	newClient    ClientFactory
	apiURL       string
	sessionToken string
	verbose      bool

	client Client
	state  *dashboard.State
}

func (a *app) connect() (Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	if a.sessionToken == "" {
		return nil, errNoSession
	}
	a.client = a.newClient(a.apiURL, a.sessionToken)
	return a.client, nil
}

// loadState returns a State populated from the API.
func (a *app) loadState(ctx context.Context) (*dashboard.State, error) {
	if a.state != nil {
		return a.state, nil
	}
	client, err := a.connect()
	if err != nil {
		return nil, err
	}
	state := dashboard.New(client)
	if err := state.Load(ctx); err != nil {
		return nil, explain(err)
	}
	a.state = state
	return state, nil
}

// RootCmd assembles replyctl.
func RootCmd(newClient ClientFactory) *cobra.Command {
	defaults := config.LoadClient()
	a := &app{newClient: newClient}

	root := &cobra.Command{
		Use:   "replyctl",
		Short: "Manage Instagram reply automation from the terminal",
		Long: `replyctl edits the keyword triggers and automation settings that the
reply engine reads, using the same API as the web dashboard.

Sign in through the dashboard, then export the session token:
  export REPLYFLOW_SESSION=<value of the replyflow_session cookie>`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelError + 4
			if a.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api-url", defaults.APIURL, "replyflow API base URL")
	root.PersistentFlags().StringVar(&a.sessionToken, "session", defaults.SessionToken, "session token")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log requests and failures")

	root.AddCommand(keywordsCmd(a))
	root.AddCommand(configCmd(a))
	root.AddCommand(statsCmd(a))
	root.AddCommand(whoamiCmd(a))
	root.AddCommand(contractCmd(a))

	return root
}

func explain(err error) error {
	switch {
	case errors.Is(err, apiclient.ErrUnauthorized):
		return errors.New("session expired or invalid: sign in again and update REPLYFLOW_SESSION")
	case errors.Is(err, apiclient.ErrNotFound):
		return errors.New("no such keyword")
	}
	return err
}
