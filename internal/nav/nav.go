// Package nav defines the sidebar navigation: static items partitioned into
// the main section (always visible) and the admin section (admins only).
// Items are immutable, defined at process start.
package nav

import domainauth "github.com/teamboard/teamboard/internal/domain/auth"

// Item is a navigation link.
type Item struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var mainItems = []Item{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Team", Path: "/team"},
	{Label: "Activities", Path: "/activities"},
}

var adminItems = []Item{
	{Label: "Admin", Path: "/admin"},
}

// Main returns the always-visible navigation items.
func Main() []Item {
	return append([]Item(nil), mainItems...)
}

// Admin returns the admin-only navigation items.
func Admin() []Item {
	return append([]Item(nil), adminItems...)
}

// ItemsFor returns the navigation visible to the given role: main items for
// everyone, plus the admin section for admins.
func ItemsFor(role domainauth.Role) []Item {
	items := Main()
	if role == domainauth.RoleAdmin {
		items = append(items, Admin()...)
	}
	return items
}
