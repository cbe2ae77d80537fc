package rweb

import (
	"path"

	"github.com/rohanthewiz/rweb/v2/consts"
	"github.com/rohanthewiz/rweb/v2/overview"
)

// Group represents a route group with a common prefix, middleware and roles.
// Groups can be nested; a nested group inherits its parent's prefix, middleware and roles.
type Group struct {
	// prefix is the URL path prefix for all routes in this group
	prefix string
	// server is a reference to the main server instance for route registration
	server *Server
	// handlers contains middleware functions that will be applied to all routes in this group
	handlers []Handler
	// roles are required by every route of the group, in addition to the route's own
	roles []overview.Role
}

// Group creates a sub-group with additional prefix and optional middleware.
// Example: apiGroup.Group("/users", authMiddleware) creates /api/users with auth.
func (g *Group) Group(prefix string, handlers ...Handler) *Group {
	return &Group{
		prefix:   path.Join(g.prefix, prefix),
		server:   g.server,
		handlers: append(append([]Handler{}, g.handlers...), handlers...),
		roles:    append([]overview.Role(nil), g.roles...),
	}
}

// Use adds middleware to the group.
// These middleware functions will be executed for all routes registered after this call.
func (g *Group) Use(handlers ...Handler) {
	g.handlers = append(g.handlers, handlers...)
}

// RequireRoles adds roles every route registered on the group afterwards requires.
func (g *Group) RequireRoles(roles ...overview.Role) *Group {
	g.roles = append(g.roles, roles...)
	return g
}

// Get registers a GET route with the group prefix
func (g *Group) Get(path string, handler Handler, opts ...RouteOpts) {
	g.addRoute(consts.MethodGet, path, handler, opts)
}

// Post registers a POST route with the group prefix
func (g *Group) Post(path string, handler Handler, opts ...RouteOpts) {
	g.addRoute(consts.MethodPost, path, handler, opts)
}

// Put registers a PUT route with the group prefix
func (g *Group) Put(path string, handler Handler, opts ...RouteOpts) {
	g.addRoute(consts.MethodPut, path, handler, opts)
}

// Patch registers a PATCH route with the group prefix
func (g *Group) Patch(path string, handler Handler, opts ...RouteOpts) {
	g.addRoute(consts.MethodPatch, path, handler, opts)
}

// Delete registers a DELETE route with the group prefix
func (g *Group) Delete(path string, handler Handler, opts ...RouteOpts) {
	g.addRoute(consts.MethodDelete, path, handler, opts)
}

// Head registers a HEAD route with the group prefix
func (g *Group) Head(path string, handler Handler, opts ...RouteOpts) {
	g.addRoute(consts.MethodHead, path, handler, opts)
}

// Options registers an OPTIONS route with the group prefix
func (g *Group) Options(path string, handler Handler, opts ...RouteOpts) {
	g.addRoute(consts.MethodOptions, path, handler, opts)
}

// Trace registers a TRACE route with the group prefix
func (g *Group) Trace(path string, handler Handler, opts ...RouteOpts) {
	g.addRoute(consts.MethodTrace, path, handler, opts)
}

// addRoute adds a route with the group prefix, roles and middleware.
func (g *Group) addRoute(method, routePath string, handler Handler, opts []RouteOpts) {
	var opt RouteOpts
	if len(opts) > 0 {
		opt = opts[0]
	}

	if len(g.roles) > 0 {
		opt.Roles = append(append([]overview.Role{}, g.roles...), opt.Roles...)
	}

	fullPath := path.Join("/", g.prefix, routePath)
	g.server.addRoute(method, fullPath, handler, opt, g.handlers)
}

// chain wraps handler with the middleware so they execute in the order they were added.
func chain(handler Handler, middlewares []Handler) Handler {
	// Build the middleware chain - start with the route handler as the final handler
	finalHandler := handler

	// Wrap handlers in reverse order, each middleware wraps the next one
	for i := len(middlewares) - 1; i >= 0; i-- {
		middleware := middlewares[i]
		nextHandler := finalHandler

		finalHandler = func(ctx Context) error {
			// Track whether the middleware called Next() to continue the chain
			nextCalled := false

			wrapper := &contextWrapper{
				Context: ctx,
				next: func() error {
					nextCalled = true
					return nextHandler(ctx)
				},
			}

			err := middleware(wrapper)

			// Middleware that neither called Next() nor failed falls through to the next handler
			if err == nil && !nextCalled {
				err = nextHandler(ctx)
			}

			return err
		}
	}

	return finalHandler
}

// contextWrapper wraps a Context to intercept Next() calls.
type contextWrapper struct {
	// Embedded Context provides all standard context methods
	Context
	// next is our custom Next() implementation that tracks calls
	next func() error
}

// Next overrides the Context's Next method to use our custom implementation.
func (w *contextWrapper) Next() error {
	return w.next()
}
