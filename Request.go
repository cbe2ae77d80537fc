package rweb

import (
	"github.com/rohanthewiz/rweb/v2/core/rtr"
)

// Request is the interface for an HTTP request.
type Request interface {
	Body() []byte
	Header(string) string
	Host() string
	Method() string
	Param(string) string
	Path() string
	Query() string
	Scheme() string
}

// request represents the HTTP request used in the given context.
type request struct {
	scheme string
	host   string
	method string
	path   string
	query  string

	headers []Header
	body    []byte
	params  []rtr.Parameter
}

// Body returns the raw request body.
func (req *request) Body() []byte {
	return req.body
}

// Header returns the header value for the given key.
func (req *request) Header(key string) string {
	return headerValue(req.headers, key)
}

// Host returns the requested host.
func (req *request) Host() string {
	return req.host
}

// Method returns the request method.
func (req *request) Method() string {
	return req.method
}

// Param retrieves a path parameter captured by the router.
func (req *request) Param(name string) string {
	for i := range len(req.params) {
		p := req.params[i]

		if p.Key == name {
			return p.Value
		}
	}

	return ""
}

// Path returns the requested path.
func (req *request) Path() string {
	return req.path
}

// Query returns the raw query string, without the leading question mark.
func (req *request) Query() string {
	return req.query
}

// Scheme returns either `http`, `https` or an empty string.
func (req *request) Scheme() string {
	return req.scheme
}

// addParameter adds a new parameter to the request.
func (req *request) addParameter(key string, value string) {
	req.params = append(req.params, rtr.Parameter{
		Key:   key,
		Value: value,
	})
}

// reset prepares the request for reuse on a kept-alive connection
func (req *request) reset() {
	req.headers = req.headers[:0]
	req.body = req.body[:0]
	req.params = req.params[:0]
}
