package rweb

import (
	"fmt"
	"net/http"

	"github.com/rohanthewiz/rweb/v2/overview"
	"github.com/rohanthewiz/serr"
)

// AccessManager runs in front of every route registered with roles.
// It decides whether handler may serve ctx given the roles the route permits,
// calling handler itself when access is granted.
type AccessManager func(handler Handler, ctx Context, permitted []overview.Role) error

// CtxKeyRoles is where ContextRolesAccessManager expects the caller's roles ([]overview.Role),
// typically set by an authentication middleware.
const CtxKeyRoles = "rweb.roles"

// ContextRolesAccessManager grants access when the caller holds at least one permitted role.
// The caller's roles are read from the request context under CtxKeyRoles.
// Denied requests get a 401 and an error naming the route's roles.
func ContextRolesAccessManager(handler Handler, ctx Context, permitted []overview.Role) error {
	held, _ := ctx.Get(CtxKeyRoles).([]overview.Role)

	for _, want := range permitted {
		for _, have := range held {
			if want == have {
				return handler(ctx)
			}
		}
	}

	ctx.Status(http.StatusUnauthorized)
	_ = ctx.WriteText(http.StatusText(http.StatusUnauthorized))
	return serr.New("access denied", "path", ctx.Request().Path(), "permitted_roles", fmt.Sprint(permitted))
}

// guard wraps handler so the access manager runs first
func (s *Server) guard(handler Handler, roles []overview.Role) Handler {
	am := s.options.AccessManager
	return func(ctx Context) error {
		return am(handler, ctx, roles)
	}
}
