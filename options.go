package rweb

import (
	"net"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rohanthewiz/rweb/v2/overview"
)

const defaultAddress = ":8080"

// ServerOptions configures a Server. The zero value is usable.
type ServerOptions struct {
	// Address to listen on, e.g. ":8080". Defaults to ":8080"
	Address string
	// Verbose logs the listen address and the route table at startup
	Verbose bool
	// ReadyChan is signalled once the server is about to enter its listen loop
	// It should be a buffered chan (cap 1 is all that is needed), so the server will not hang
	ReadyChan chan struct{}

	// RouteOverviewPath, when set, serves the route overview page on that GET path
	RouteOverviewPath string
	// RouteOverviewRoles are the roles required to view the overview page
	RouteOverviewRoles []overview.Role

	// AccessManager decides whether routes registered with roles may run.
	// Without one, route roles are informational only.
	AccessManager AccessManager

	// HandlerSources are structs whose func fields hold route handlers.
	// The overview uses them to name handlers after the field holding them.
	HandlerSources []any
}

var routePathPattern = regexp.MustCompile(`^/\S*$`)

// Validate checks the options Run depends on.
func (o ServerOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Address,
			validation.Required,
			validation.By(validateListenAddress),
		),
		validation.Field(&o.RouteOverviewPath,
			validation.Match(routePathPattern).Error("must be an absolute path"),
		),
		validation.Field(&o.RouteOverviewRoles,
			validation.Each(validation.Required),
		),
	)
}

// validateListenAddress accepts host:port and :port forms
func validateListenAddress(value interface{}) error {
	addr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return validation.NewError("validation_invalid_hostport", "must be in host:port format")
	}

	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return validation.NewError("validation_invalid_port", "must be a port number")
	}

	return nil
}
