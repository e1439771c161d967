package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
)

type requestsCmd struct {
	List   requestListCmd   `cmd:"" help:"List campaign-link requests."`
	Create requestCreateCmd `cmd:"" help:"Request a campaign link from an advertiser."`
	Status requestStatusCmd `cmd:"" help:"Answer a request (advertisers)."`
}

type requestListCmd struct{}

func (cmd *requestListCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.open(true)
	if err != nil {
		return err
	}
	reqs, err := a.client.LinkRequests(ctx)
	if err != nil {
		return err
	}
	return linkTable(a.out, reqs)
}

type requestCreateCmd struct {
	Advertiser string `required:"" help:"Advertiser account name."`
	Campaign   string `required:"" help:"Campaign name."`
	PID        string `name:"pid" required:"" help:"Publisher id."`
	Payout     string `help:"Requested payout."`
	OS         string `name:"os" help:"Operating system."`
	PubID      string `name:"pub-id" help:"Sub-publisher id."`
	Geo        string `help:"Geo."`
}

func (cmd *requestCreateCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.open(true)
	if err != nil {
		return err
	}
	req, err := a.client.CreateLinkRequest(ctx, port.LinkRequestInput{
		AdvertiserName: cmd.Advertiser,
		CampaignName:   cmd.Campaign,
		Payout:         cmd.Payout,
		OS:             cmd.OS,
		PID:            cmd.PID,
		PubID:          cmd.PubID,
		Geo:            cmd.Geo,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "request %s sent to %s (%s)\n", req.ID, req.AdvertiserName, req.Status)
	return nil
}

type requestStatusCmd struct {
	ID     string `arg:"" help:"Request id."`
	Status string `arg:"" enum:"waiting,shared,rejected,handshake_pending,in_use,poor_performance" help:"New status."`
}

func (cmd *requestStatusCmd) Run(ctx context.Context, g *Globals) error {
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return fmt.Errorf("adpanelctl: bad request id: %w", err)
	}
	a, err := g.open(true)
	if err != nil {
		return err
	}
	req, err := a.client.SetLinkStatus(ctx, id, domain.LinkStatus(cmd.Status))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "request %s is now %s\n", req.ID, req.Status)
	return nil
}
