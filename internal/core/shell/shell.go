// Package shell decides which dashboard panels a session sees and may act
// on.
package shell

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"adpanel/internal/core/domain"
)

//go:embed layout.yaml
var defaultLayout []byte

// PanelConfig is one panel entry of the layout file.
type PanelConfig struct {
	Code            string        `yaml:"code"`
	Title           string        `yaml:"title"`
	Roles           []domain.Role `yaml:"roles"`
	ActionableRoles []domain.Role `yaml:"actionable_roles"`
	AllowIDs        []int64       `yaml:"allow_ids,omitempty"`
}

// Layout is the ordered set of panels.
type Layout struct {
	Panels []PanelConfig `yaml:"panels"`
}

// PanelView is a panel as resolved for one session.
type PanelView struct {
	Code       string `json:"code"`
	Title      string `json:"title"`
	Actionable bool   `json:"actionable"`
}

// Default returns the embedded layout.
func Default() (*Layout, error) {
	return Parse(defaultLayout)
}

// Load reads the layout from path, or the embedded default when path is
// empty.
func Load(path string) (*Layout, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shell: read layout: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks a YAML layout.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("shell: parse layout: %w", err)
	}
	seen := make(map[string]struct{}, len(l.Panels))
	for _, p := range l.Panels {
		if p.Code == "" {
			return nil, fmt.Errorf("shell: panel without code")
		}
		if _, dup := seen[p.Code]; dup {
			return nil, fmt.Errorf("shell: duplicate panel %q", p.Code)
		}
		seen[p.Code] = struct{}{}
		for _, r := range append(slices.Clone(p.Roles), p.ActionableRoles...) {
			if !r.Valid() {
				return nil, fmt.Errorf("shell: panel %q: unknown role %q", p.Code, r)
			}
		}
	}
	return &l, nil
}

// For resolves the panels visible to s, in layout order.
func (l *Layout) For(s domain.Session) []PanelView {
	views := make([]PanelView, 0, len(l.Panels))
	for _, p := range l.Panels {
		if !slices.Contains(p.Roles, s.Role) {
			continue
		}
		views = append(views, PanelView{
			Code:       p.Code,
			Title:      p.Title,
			Actionable: p.actionable(s),
		})
	}
	return views
}

// CanAct reports whether s may act on the panel code.
func (l *Layout) CanAct(s domain.Session, code string) bool {
	for _, p := range l.Panels {
		if p.Code == code {
			return slices.Contains(p.Roles, s.Role) && p.actionable(s)
		}
	}
	return false
}

func (p PanelConfig) actionable(s domain.Session) bool {
	if !slices.Contains(p.ActionableRoles, s.Role) {
		return false
	}
	return len(p.AllowIDs) == 0 || slices.Contains(p.AllowIDs, s.ID)
}
