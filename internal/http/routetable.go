package httpx

import "strings"

// Classification says whether a path may bypass the authentication gate.
type Classification int

const (
	// Protected paths require a resolved identity. This is the default:
	// anything not matched by a rule is protected (default deny).
	Protected Classification = iota
	// Public paths bypass the gate entirely.
	Public
)

// Rule pairs a path prefix with its classification.
type Rule struct {
	Prefix string
	Class  Classification
}

// RouteTable is the single declarative source of truth for path
// classification. Both the middleware and any other layer consult this one
// table; there is no second allow-list to drift from it. First matching rule
// wins; no match means Protected.
type RouteTable struct {
	rules []Rule
}

// NewRouteTable builds a RouteTable from the given rules.
func NewRouteTable(rules ...Rule) RouteTable {
	return RouteTable{rules: rules}
}

// DefaultRouteTable returns Teamboard's routing policy:
// the login page, the login API endpoint, static assets, the favicon, and the
// health probe are public; everything else (including "/" and the rest of
// /api) requires authentication.
func DefaultRouteTable() RouteTable {
	return NewRouteTable(
		Rule{Prefix: "/login", Class: Public},
		Rule{Prefix: "/api/auth/login", Class: Public},
		Rule{Prefix: "/static/", Class: Public},
		Rule{Prefix: "/favicon.ico", Class: Public},
		Rule{Prefix: "/healthz", Class: Public},
	)
}

// Classify returns the classification for a request path.
func (t RouteTable) Classify(path string) Classification {
	for _, rule := range t.rules {
		if strings.HasPrefix(path, rule.Prefix) {
			return rule.Class
		}
	}
	return Protected
}
