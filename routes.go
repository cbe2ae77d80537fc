package rweb

import (
	"path"
	"slices"

	"github.com/rohanthewiz/rweb/v2/consts"
	"github.com/rohanthewiz/rweb/v2/core/rtr"
	"github.com/rohanthewiz/rweb/v2/overview"
)

// RouteOpts carries optional registration details of a route.
type RouteOpts struct {
	// Roles required to run the handler. They show on the route overview
	// and are enforced by the server's AccessManager when one is set.
	Roles []overview.Role
	// Ref describes the handler for the route overview.
	// When left empty, the handler is described by reflection.
	Ref overview.HandlerRef
}

// Get registers your function to be called when the given GET path has been requested.
func (s *Server) Get(path string, handler Handler, opts ...RouteOpts) {
	s.AddMethod(consts.MethodGet, path, handler, opts...)
}

// Post registers your function to be called when the given POST path has been requested.
func (s *Server) Post(path string, handler Handler, opts ...RouteOpts) {
	s.AddMethod(consts.MethodPost, path, handler, opts...)
}

// Put registers your function to be called when the given PUT path has been requested.
func (s *Server) Put(path string, handler Handler, opts ...RouteOpts) {
	s.AddMethod(consts.MethodPut, path, handler, opts...)
}

// Patch registers your function to be called when the given PATCH path has been requested.
func (s *Server) Patch(path string, handler Handler, opts ...RouteOpts) {
	s.AddMethod(consts.MethodPatch, path, handler, opts...)
}

// Delete registers your function to be called when the given DELETE path has been requested.
func (s *Server) Delete(path string, handler Handler, opts ...RouteOpts) {
	s.AddMethod(consts.MethodDelete, path, handler, opts...)
}

// Head registers your function to be called when the given HEAD path has been requested.
func (s *Server) Head(path string, handler Handler, opts ...RouteOpts) {
	s.AddMethod(consts.MethodHead, path, handler, opts...)
}

// Options registers your function to be called when the given OPTIONS path has been requested.
func (s *Server) Options(path string, handler Handler, opts ...RouteOpts) {
	s.AddMethod(consts.MethodOptions, path, handler, opts...)
}

// Connect registers your function to be called when the given CONNECT path has been requested.
func (s *Server) Connect(path string, handler Handler, opts ...RouteOpts) {
	s.AddMethod(consts.MethodConnect, path, handler, opts...)
}

// Trace registers your function to be called when the given TRACE path has been requested.
func (s *Server) Trace(path string, handler Handler, opts ...RouteOpts) {
	s.AddMethod(consts.MethodTrace, path, handler, opts...)
}

// AddMethod registers handler for the method and path.
// Static paths go to the hash router, paths with parameters or wildcards to the param router.
// Every registration is also recorded, in order, for the route overview.
func (s *Server) AddMethod(method, routePath string, handler Handler, opts ...RouteOpts) {
	var opt RouteOpts
	if len(opts) > 0 {
		opt = opts[0]
	}

	s.addRoute(method, routePath, handler, opt, nil)
}

// addRoute registers handler with the routers, behind the access manager (when the route has roles)
// and the group middleware. The route overview describes handler itself, not its wrappers.
func (s *Server) addRoute(method, routePath string, handler Handler, opt RouteOpts, middlewares []Handler) {
	routePath = cleanRoutePath(routePath)

	ref := opt.Ref
	if ref.IsZero() {
		ref = overview.Func(handler)
	} else if ref.Fn == nil {
		ref.Fn = handler
	}

	final := handler
	if len(opt.Roles) > 0 && s.options.AccessManager != nil {
		final = s.guard(final, opt.Roles)
	}
	final = chain(final, middlewares)

	if rtr.IsParamPath(routePath) {
		s.paramRouter.Add(method, routePath, final)
	} else {
		s.hashRouter.Add(method, routePath, final)
	}

	s.routes.Put(method, routePath, overview.RouteEntry{
		Method:  method,
		Path:    routePath,
		Handler: ref,
		Roles:   slices.Clone(opt.Roles),
	})
}

// cleanRoutePath gives registered paths the same shape parseURL gives request paths
func cleanRoutePath(routePath string) string {
	if routePath == "" {
		return "/"
	}
	return path.Clean("/" + routePath)
}
