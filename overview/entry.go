package overview

import "fmt"

// Role is an access tag a route can require. The overview treats it as opaque.
type Role string

// RouteEntry is one registered route as seen by the overview.
// Entries are produced by the server at registration time and are never mutated afterwards.
//
// Fields:
//   - Method: HTTP method token (GET, POST, etc.) from the consts package
//   - Path: the URL path pattern (e.g., "/users/:id")
//   - Handler: registration-time description of the handler
//   - Roles: roles attached to the route, nil when none were given
type RouteEntry struct {
	Method  string
	Path    string
	Handler HandlerRef
	Roles   []Role
}

// RolesLabel is the display form of the entry's roles.
// A nil role set renders as "-". An empty but non-nil set keeps its default
// form ("[]"), the two cases are not folded together.
func (e RouteEntry) RolesLabel() string {
	if e.Roles == nil {
		return "-"
	}
	return fmt.Sprint(e.Roles)
}
