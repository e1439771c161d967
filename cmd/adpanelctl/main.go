// Command adpanelctl is a terminal client for the dashboard server. It keeps
// the login in a sealed session file and drives the same table panels the
// web screens use.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"adpanel/internal/core/session"
	"adpanel/internal/gateway"
	"adpanel/internal/panel"
)

type Globals struct {
	Server      string `default:"http://localhost:8080" env:"ADPANEL_SERVER" help:"Dashboard server address."`
	SessionFile string `default:"~/.config/adpanel/session" type:"path" env:"ADPANEL_SESSION_FILE" help:"Where the sealed login is kept."`
	Secret      string `default:"adpanel-dev-secret" env:"ADPANEL_SECRET" help:"Key material sealing the local session file. Unrelated to the server cookie key."`
	Verbose     bool   `short:"v" help:"Log debug output to stderr."`
}

type cli struct {
	Globals

	Login       loginCmd       `cmd:"" help:"Log in and store the session."`
	Logout      logoutCmd      `cmd:"" help:"Log out and forget the session."`
	Whoami      whoamiCmd      `cmd:"" help:"Show the current profile and visible panels."`
	Password    passwordCmd    `cmd:"" help:"Change the password."`
	Campaigns   campaignsCmd   `cmd:"" help:"Campaign data tables."`
	Identifiers identifiersCmd `cmd:"" help:"Advertiser and publisher ids."`
	Requests    requestsCmd    `cmd:"" help:"Campaign-link requests."`
	Watch       watchCmd       `cmd:"" help:"Show a campaign table and refresh it on server events."`
}

var errNotLoggedIn = errors.New("adpanelctl: not logged in (run adpanelctl login)")

func main() {
	var c cli
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	k := kong.Parse(&c,
		kong.Name("adpanelctl"),
		kong.Description("Terminal client for the adpanel dashboard."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := k.Run(&c.Globals)
	k.FatalIfErrorf(describe(err))
}

// app is the per-invocation state shared by commands.
type app struct {
	store  *session.FileStore
	state  session.ClientState
	client *gateway.Client
	logger *slog.Logger
	out    io.Writer
	// alert receives failed panel actions. One-shot commands leave it nil
	// and report the returned error instead.
	alert panel.Alerter
}

func (g *Globals) logger() *slog.Logger {
	level := slog.LevelWarn
	if g.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// open restores the stored session. With needSession set a missing or
// unreadable session file is reported as errNotLoggedIn.
func (g *Globals) open(needSession bool) (*app, error) {
	store := &session.FileStore{Path: g.SessionFile, Sealer: session.NewSealer(g.Secret)}
	state, ok := store.Load()
	if needSession && !ok {
		return nil, errNotLoggedIn
	}
	server := g.Server
	if ok && state.Server != "" {
		server = state.Server
	}
	client, err := gateway.New(gateway.Config{BaseURL: server, Cookie: state.Cookie})
	if err != nil {
		return nil, err
	}
	state.Server = server
	return &app{store: store, state: state, client: client, logger: g.logger(), out: os.Stdout}, nil
}

// stderrAlerter reports failed panel actions without stopping the command.
var stderrAlerter = panel.AlertFunc(func(action string, err error) {
	fmt.Fprintf(os.Stderr, "%s failed: %v\n", action, describe(err))
})

// describe turns gateway errors into user-facing messages.
func describe(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gateway.ErrDuplicate):
		return errors.New("duplicate entry: a record with these values already exists")
	case errors.Is(err, gateway.ErrUnauthenticated):
		return errNotLoggedIn
	}
	var remote *gateway.RemoteError
	if errors.As(err, &remote) {
		return fmt.Errorf("server: %s", remote.Message)
	}
	return err
}
