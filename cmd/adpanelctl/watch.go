package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/grid"
	"adpanel/internal/notify"
	"adpanel/internal/panel"
)

type watchCmd struct {
	Kind     string        `arg:"" enum:"advertiser,publisher" help:"advertiser or publisher."`
	Interval time.Duration `default:"1m" help:"Polling interval on top of server events. Zero disables polling."`
	RangeFlags
}

func (cmd *watchCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.open(true)
	if err != nil {
		return err
	}
	a.alert = stderrAlerter
	r, err := cmd.dateRange(time.Now())
	if err != nil {
		return err
	}

	var p *panel.Panel
	p, err = a.campaignPanel(cmd.Kind, r, grid.DefaultPolicy(), func([]grid.Record) {
		fmt.Fprintf(a.out, "\n-- %s %s --\n", cmd.Kind, time.Now().Format(time.TimeOnly))
		_ = renderPanel(a.out, p)
	})
	if err != nil {
		return err
	}
	// A failed first fetch is alerted; events and polling may still recover.
	_ = p.Refresh(ctx)

	listener := &notify.Listener{
		URL:    a.client.EventsURL(),
		Header: a.client.AuthHeader(),
		Handler: notify.SignalFunc(func(ctx context.Context, name domain.EventName) {
			a.logger.Info("server event", slog.String("event", string(name)))
			p.OnServerChangeSignal(ctx, name)
		}),
		Logger: a.logger,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := listener.Run(ctx); err != nil && ctx.Err() == nil {
			a.logger.Warn("notification channel closed, polling only", slog.Any("error", err))
		}
		return nil
	})
	if cmd.Interval > 0 {
		eg.Go(func() error {
			p.Poll(ctx, cmd.Interval)
			return nil
		})
	}
	return eg.Wait()
}
