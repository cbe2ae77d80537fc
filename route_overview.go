package rweb

import (
	"github.com/rohanthewiz/rweb/v2/overview"
)

// RouteOverviewEntries returns the registered routes in registration order.
// The slice is a snapshot, later registrations do not show up in it.
func (s *Server) RouteOverviewEntries() []overview.RouteEntry {
	return s.routes.Snapshot()
}

// RouteOverview renders the route overview page for the current route table.
func (s *Server) RouteOverview() string {
	r := overview.Renderer{Namer: s.namer}
	return r.Render(s.RouteOverviewEntries())
}

// EnableRouteOverview serves the route overview page on the GET path.
// The page lists every route registered by the time it is requested, itself included.
func (s *Server) EnableRouteOverview(path string, roles ...overview.Role) {
	opts := RouteOpts{
		Ref: overview.MethodRef("rweb.Server", "RouteOverview", s.RouteOverview),
	}
	if len(roles) > 0 {
		opts.Roles = roles
	}

	s.Get(path, func(ctx Context) error {
		return ctx.WriteHTML(s.RouteOverview())
	}, opts)
}
