package main

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"
	"time"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/grid"
	"adpanel/internal/gateway"
	"adpanel/internal/panel"
)

var campaignColumns = map[string][]grid.Column{
	domain.SideAdvertiser: {
		grid.NewColumn("campaign_name", grid.FilterText),
		grid.NewColumn("geo", grid.FilterEnum),
		grid.NewColumn("city", grid.FilterText),
		grid.NewColumn("os", grid.FilterEnum),
		grid.NewColumn("payable_event", grid.FilterEnum),
		grid.NewColumn("mmp_tracker", grid.FilterEnum),
		grid.NewColumn("pid", grid.FilterEnum),
		grid.NewColumn("adv_payout", grid.FilterEnum),
		grid.NewColumn("shared_date", grid.FilterDate),
		grid.NewColumn("paused_date", grid.FilterDate),
		grid.NewColumn("total_count", grid.FilterEnum),
		grid.NewColumn("deduction", grid.FilterEnum),
		grid.NewColumn("approved_count", grid.FilterEnum),
	},
	domain.SidePublisher: {
		grid.NewColumn("campaign_name", grid.FilterText),
		grid.NewColumn("geo", grid.FilterEnum),
		grid.NewColumn("city", grid.FilterText),
		grid.NewColumn("os", grid.FilterEnum),
		grid.NewColumn("payable_event", grid.FilterEnum),
		grid.NewColumn("pid", grid.FilterEnum),
		grid.NewColumn("pub_id", grid.FilterEnum),
		grid.NewColumn("pub_payout", grid.FilterEnum),
		grid.NewColumn("shared_date", grid.FilterDate),
		grid.NewColumn("paused_date", grid.FilterDate),
		grid.NewColumn("total_count", grid.FilterEnum),
		grid.NewColumn("deduction", grid.FilterEnum),
		grid.NewColumn("approved_count", grid.FilterEnum),
	},
}

// RangeFlags select the date scope of a campaign table.
type RangeFlags struct {
	From string `help:"First creation date shown (YYYY-MM-DD). Defaults to the start of this month."`
	To   string `help:"Last creation date shown (YYYY-MM-DD). Defaults to the end of this month."`
	All  bool   `help:"Show every date."`
}

func (f RangeFlags) dateRange(now time.Time) (*grid.DateRange, error) {
	if f.All {
		return nil, nil
	}
	r := grid.CurrentMonth(now)
	if f.From != "" {
		from, err := time.ParseInLocation(time.DateOnly, f.From, now.Location())
		if err != nil {
			return nil, fmt.Errorf("adpanelctl: --from: %w", err)
		}
		r.From = from
	}
	if f.To != "" {
		to, err := time.ParseInLocation(time.DateOnly, f.To, now.Location())
		if err != nil {
			return nil, fmt.Errorf("adpanelctl: --to: %w", err)
		}
		r.To = to.AddDate(0, 0, 1)
	}
	if !r.From.Before(r.To) {
		return nil, fmt.Errorf("adpanelctl: empty date range %s..%s", f.From, f.To)
	}
	return &r, nil
}

// campaignPanel builds the campaign table of kind for the stored session.
func (a *app) campaignPanel(kind string, r *grid.DateRange, policy grid.EditPolicy, after func([]grid.Record)) (*panel.Panel, error) {
	cols, ok := campaignColumns[kind]
	if !ok {
		return nil, fmt.Errorf("adpanelctl: unknown kind %q (advertiser or publisher)", kind)
	}
	src := a.client.Resource("/api/v1/campaigns/" + url.PathEscape(kind))
	p := panel.New(src, panel.Config{
		Columns:      cols,
		DateField:    grid.KeyCreatedAt,
		Range:        r,
		Policy:       policy,
		Session:      a.state.Session,
		Alerter:      a.alert,
		Logger:       a.logger,
		AfterRefresh: after,
	})
	if r == nil {
		p.SetRange(nil)
	}
	return p, nil
}

// parseAssignments splits key=value pairs.
func parseAssignments(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("adpanelctl: expected key=value, got %q", pair)
		}
		out[key] = value
	}
	return out, nil
}

// renderPanel prints the visible rows of p with their delete countdown.
func renderPanel(w io.Writer, p *panel.Panel) error {
	cols := p.Columns()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := []string{"ID"}
	for _, c := range cols {
		header = append(header, strings.ToUpper(c.Title))
	}
	header = append(header, "DELETE")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	rows := p.View()
	for _, row := range rows {
		cells := []string{row.ID()}
		for _, c := range cols {
			cells = append(cells, cell(row, c))
		}
		del := "-"
		if p.CanDelete(row.ID()) {
			del = fmt.Sprintf("%dh left", p.DeleteHoursLeft(row.ID()))
		}
		cells = append(cells, del)
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d rows\n", len(rows), len(p.Rows()))
	return err
}

func cell(row grid.Record, c grid.Column) string {
	if c.Filter == grid.FilterDate {
		if t, ok := row.Time(c.Key); ok {
			return t.Format(time.DateOnly)
		}
		return ""
	}
	return row.String(c.Key)
}

// linkTable prints campaign-link requests.
func linkTable(w io.Writer, reqs []domain.LinkRequest) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tADVERTISER\tPUBLISHER\tCAMPAIGN\tPID\tGEO\tSTATUS\tUPDATED")
	for _, r := range reqs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.AdvertiserName, r.PublisherName, r.CampaignName, r.PID, r.Geo, r.Status,
			r.UpdatedAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

var _ panel.Source = (*gateway.Resource)(nil)
