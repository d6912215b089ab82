package views

import (
	"net/url"

	"portfolio_backend/internal/models"
)

// DashboardState is the per-request dashboard UI state, carried in the query
// string: ?section=&theme=dark&edit=<id>&new=1.
type DashboardState struct {
	Section  models.DashboardSection
	Dark     bool
	EditID   string
	Creating bool
}

// ParseDashboardState reads the state through a query getter such as
// gin's c.Query. Unknown sections fall back to the overview.
func ParseDashboardState(query func(string) string) DashboardState {
	return DashboardState{
		Section:  models.ParseSection(query("section")),
		Dark:     query("theme") == "dark",
		EditID:   query("edit"),
		Creating: query("new") != "",
	}
}

// Editing reports whether a form (create or edit) is open.
func (s DashboardState) Editing() bool {
	return s.Creating || s.EditID != ""
}

func (s DashboardState) values(section models.DashboardSection) url.Values {
	v := url.Values{}
	v.Set("section", string(section))
	if s.Dark {
		v.Set("theme", "dark")
	}
	return v
}

// SectionURL switches section; open drafts are dropped.
func (s DashboardState) SectionURL(section models.DashboardSection) string {
	return "/dashboard?" + s.values(section).Encode()
}

// ListURL is the current section without any open form.
func (s DashboardState) ListURL() string {
	return s.SectionURL(s.Section)
}

func (s DashboardState) NewURL() string {
	v := s.values(s.Section)
	v.Set("new", "1")
	return "/dashboard?" + v.Encode()
}

func (s DashboardState) EditURL(id string) string {
	v := s.values(s.Section)
	v.Set("edit", id)
	return "/dashboard?" + v.Encode()
}

func (s DashboardState) ToggleThemeURL() string {
	next := s
	next.Dark = !s.Dark
	v := next.values(s.Section)
	if s.EditID != "" {
		v.Set("edit", s.EditID)
	}
	if s.Creating {
		v.Set("new", "1")
	}
	return "/dashboard?" + v.Encode()
}

// ThemeQuery is appended to form actions so a redirect keeps the theme.
func (s DashboardState) ThemeQuery() string {
	if s.Dark {
		return "?theme=dark"
	}
	return ""
}
