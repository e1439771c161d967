package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"adpanel/internal/core/port"
	"adpanel/internal/core/session"
	"adpanel/internal/gateway"
)

type loginCmd struct {
	Username string `arg:"" help:"Account name."`
	Password string `required:"" env:"ADPANEL_PASSWORD" help:"Account password."`
}

func (cmd *loginCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.open(false)
	if err != nil {
		return err
	}
	s, err := a.client.Login(ctx, cmd.Username, cmd.Password)
	if err != nil {
		return err
	}
	err = a.store.Save(session.ClientState{Server: a.client.BaseURL(), Cookie: a.client.Cookie(), Session: s})
	if err != nil {
		return fmt.Errorf("adpanelctl: save session: %w", err)
	}
	fmt.Fprintf(a.out, "logged in as %s (%s)\n", s.Username, s.Role)
	return nil
}

type logoutCmd struct{}

func (cmd *logoutCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.open(false)
	if err != nil {
		return err
	}
	if a.state.Cookie != "" {
		if err = a.client.Logout(ctx); err != nil && !errors.Is(err, gateway.ErrUnauthenticated) {
			a.logger.Warn("server logout failed", slog.Any("error", err))
		}
	}
	return a.store.Clear()
}

type whoamiCmd struct{}

func (cmd *whoamiCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.open(true)
	if err != nil {
		return err
	}
	view, err := a.client.Shell(ctx)
	if err != nil {
		return err
	}
	s := view.Session
	fmt.Fprintf(a.out, "%s (id %d, %s) on %s\n", s.Username, s.ID, s.Role, a.client.BaseURL())
	for _, r := range s.Ranges {
		fmt.Fprintf(a.out, "  id range %s-%s\n", r.Start, r.End)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PANEL\tTITLE\tACCESS")
	for _, p := range view.Panels {
		access := "read"
		if p.Actionable {
			access = "read/write"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Code, p.Title, access)
	}
	return tw.Flush()
}

type passwordCmd struct {
	Current string `required:"" env:"ADPANEL_PASSWORD" help:"Current password."`
	New     string `required:"" name:"new" help:"New password."`
	Confirm string `required:"" help:"New password again."`
}

func (cmd *passwordCmd) Run(ctx context.Context, g *Globals) error {
	if cmd.New != cmd.Confirm {
		return errors.New("adpanelctl: new password and confirmation do not match")
	}
	a, err := g.open(true)
	if err != nil {
		return err
	}
	err = a.client.ChangePassword(ctx, port.PasswordChange{Current: cmd.Current, Next: cmd.New, Confirm: cmd.Confirm})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "password changed")
	return nil
}
