package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adpanel/internal/core/grid"
	"adpanel/internal/panel"
)

type campaignsCmd struct {
	List   campaignListCmd   `cmd:"" help:"List campaign rows."`
	Edit   campaignEditCmd   `cmd:"" help:"Edit fields of one row."`
	Delete campaignDeleteCmd `cmd:"" help:"Delete a row created less than a day ago."`
	Copy   campaignCopyCmd   `cmd:"" help:"Duplicate a row as a new row of yours."`
}

type campaignListCmd struct {
	Kind   string   `arg:"" enum:"advertiser,publisher" help:"advertiser or publisher."`
	Filter []string `short:"f" help:"Column filter key=value[,value...] (repeatable)."`
	Search string   `short:"s" help:"Free-text search over every field."`
	RangeFlags
}

func (cmd *campaignListCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.open(true)
	if err != nil {
		return err
	}
	r, err := cmd.dateRange(time.Now())
	if err != nil {
		return err
	}
	filters, err := parseAssignments(cmd.Filter)
	if err != nil {
		return err
	}
	p, err := a.campaignPanel(cmd.Kind, r, grid.DefaultPolicy(), nil)
	if err != nil {
		return err
	}
	for key, values := range filters {
		p.SetFilter(key, strings.Split(values, ",")...)
	}
	p.SetSearch(cmd.Search)
	if err = p.Refresh(ctx); err != nil {
		return err
	}
	return renderPanel(a.out, p)
}

type campaignEditCmd struct {
	Kind string   `arg:"" enum:"advertiser,publisher" help:"advertiser or publisher."`
	ID   string   `arg:"" help:"Row id."`
	Set  []string `required:"" help:"field=value to change (repeatable)."`
}

func (cmd *campaignEditCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.open(true)
	if err != nil {
		return err
	}
	changes, err := parseAssignments(cmd.Set)
	if err != nil {
		return err
	}
	p, err := a.loadedPanel(ctx, cmd.Kind)
	if err != nil {
		return err
	}
	if err = p.StartEdit(cmd.ID); err != nil {
		return err
	}
	editable := p.EditableFields(cmd.ID)
	for field, value := range changes {
		if err = p.SetField(field, value); err != nil {
			return fmt.Errorf("%w (editable now: %s)", err, strings.Join(editable, ", "))
		}
	}
	if err = p.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "row %s saved\n", cmd.ID)
	return nil
}

type campaignDeleteCmd struct {
	Kind string `arg:"" enum:"advertiser,publisher" help:"advertiser or publisher."`
	ID   string `arg:"" help:"Row id."`
}

func (cmd *campaignDeleteCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.open(true)
	if err != nil {
		return err
	}
	p, err := a.loadedPanel(ctx, cmd.Kind)
	if err != nil {
		return err
	}
	if err = p.Delete(ctx, cmd.ID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "row %s deleted\n", cmd.ID)
	return nil
}

type campaignCopyCmd struct {
	Kind string `arg:"" enum:"advertiser,publisher" help:"advertiser or publisher."`
	ID   string `arg:"" help:"Row id."`
}

func (cmd *campaignCopyCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.open(true)
	if err != nil {
		return err
	}
	p, err := a.loadedPanel(ctx, cmd.Kind)
	if err != nil {
		return err
	}
	created, err := p.Copy(ctx, cmd.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "row %s copied to %s\n", cmd.ID, created.ID())
	return nil
}

// loadedPanel fetches the unscoped campaign table so any row can be
// addressed by id.
func (a *app) loadedPanel(ctx context.Context, kind string) (*panel.Panel, error) {
	p, err := a.campaignPanel(kind, nil, grid.DefaultPolicy(), nil)
	if err != nil {
		return nil, err
	}
	if err = p.Refresh(ctx); err != nil {
		return nil, err
	}
	return p, nil
}
