package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"adpanel/internal/core/grid"
	"adpanel/internal/panel"
)

type identifiersCmd struct {
	Available identifierAvailableCmd `cmd:"" help:"List ids still free in your ranges."`
	Create    identifierCreateCmd    `cmd:"" help:"Create an identifier record."`
}

// identifierPanel fetches the identifier records of kind and feeds them to
// a picker for owner.
func (a *app) identifierPanel(ctx context.Context, kind string, owner int64) (*panel.Panel, *panel.IDPicker, error) {
	picker := panel.NewIDPicker(a.state.Session, owner)
	src := a.client.Resource("/api/v1/identifiers/" + url.PathEscape(kind))
	p := panel.New(src, panel.Config{
		Session:      a.state.Session,
		Alerter:      a.alert,
		Logger:       a.logger,
		AfterRefresh: picker.Reset,
	})
	if err := p.Refresh(ctx); err != nil {
		return nil, nil, err
	}
	return p, picker, nil
}

type identifierAvailableCmd struct {
	Kind   string `arg:"" enum:"advertiser,publisher" help:"advertiser or publisher."`
	Owner  int64  `help:"Sub-admin to allocate for (managers only)."`
	Remote bool   `help:"Ask the server for the pool instead of computing it locally."`
}

func (cmd *identifierAvailableCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.open(true)
	if err != nil {
		return err
	}
	var ids []string
	if cmd.Remote {
		ids, err = a.client.AvailableIDs(ctx, cmd.Kind, cmd.Owner)
	} else {
		var picker *panel.IDPicker
		_, picker, err = a.identifierPanel(ctx, cmd.Kind, cmd.Owner)
		if picker != nil {
			ids = picker.Options()
		}
	}
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "no ids available")
		return nil
	}
	fmt.Fprintln(a.out, strings.Join(ids, "\n"))
	return nil
}

type identifierCreateCmd struct {
	Kind   string `arg:"" enum:"advertiser,publisher" help:"advertiser or publisher."`
	Name   string `required:"" help:"Display name."`
	ID     string `name:"id" required:"" help:"Assigned id, taken from the available pool."`
	Geo    string `help:"Geo."`
	Note   string `help:"Free-form note."`
	Target string `help:"Target."`
	Owner  int64  `help:"Sub-admin to create for (managers only)."`
}

func (cmd *identifierCreateCmd) Run(ctx context.Context, g *Globals) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.New("adpanelctl: --name is required")
	}
	a, err := g.open(true)
	if err != nil {
		return err
	}
	p, picker, err := a.identifierPanel(ctx, cmd.Kind, cmd.Owner)
	if err != nil {
		return err
	}
	if !slices.Contains(picker.Options(), cmd.ID) {
		return fmt.Errorf("adpanelctl: id %s is not available (see adpanelctl identifiers available %s)", cmd.ID, cmd.Kind)
	}
	rec := grid.Record{
		"name":        cmd.Name,
		"assigned_id": cmd.ID,
		"geo":         cmd.Geo,
		"note":        cmd.Note,
		"target":      cmd.Target,
	}
	if cmd.Owner != 0 {
		rec[grid.KeyOwner] = cmd.Owner
	}
	created, err := p.Create(ctx, rec)
	if err != nil {
		return err
	}
	picker.Created(cmd.ID)
	fmt.Fprintf(a.out, "created %s record %s with id %s\n", cmd.Kind, created.ID(), cmd.ID)
	return nil
}
