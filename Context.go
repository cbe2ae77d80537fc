package rweb

import (
	"encoding/json"
	"errors"

	"github.com/rohanthewiz/rweb/v2/consts"
)

// Handler serves a request.
type Handler func(ctx Context) error

// Context is the interface for a request and its response.
type Context interface {
	Bytes([]byte) error
	Error(...any) error
	Next() error
	Redirect(int, string) error
	Request() Request
	Response() Response
	Status(int) Context
	WriteString(string) error
	WriteText(string) error
	WriteHTML(string) error
	WriteJSON(any) error

	// Request scoped data, typically set by middleware
	Set(key string, value any)
	Get(key string) any
	Has(key string) bool
	Delete(key string)
}

// context contains the request and response data.
type context struct {
	request
	response
	server       *Server
	data         map[string]any
	handlerCount uint8
}

// Bytes adds the raw byte slice to the response body.
func (ctx *context) Bytes(body []byte) error {
	ctx.response.body = append(ctx.response.body, body...)
	return nil
}

// Error provides a convenient way to wrap multiple errors.
func (ctx *context) Error(messages ...any) error {
	var combined []error

	for _, msg := range messages {
		switch err := msg.(type) {
		case error:
			combined = append(combined, err)
		case string:
			combined = append(combined, errors.New(err))
		}
	}

	return errors.Join(combined...)
}

// Next executes the next handler in the middleware chain.
func (ctx *context) Next() error {
	ctx.handlerCount++
	if int(ctx.handlerCount) >= len(ctx.server.handlers) {
		return nil
	}
	return ctx.server.handlers[ctx.handlerCount](ctx)
}

// Redirect redirects the client to a different location
// with the specified status code.
func (ctx *context) Redirect(status int, location string) error {
	ctx.response.SetStatus(status)
	ctx.response.SetHeader(consts.HeaderLocation, location)
	return nil
}

// Request returns the HTTP request.
func (ctx *context) Request() Request {
	return &ctx.request
}

// Response returns the HTTP response.
func (ctx *context) Response() Response {
	return &ctx.response
}

// Status sets the HTTP status of the response
// and returns the context for method chaining.
func (ctx *context) Status(status int) Context {
	ctx.response.SetStatus(status)
	return ctx
}

// WriteString adds the given string to the response body.
func (ctx *context) WriteString(body string) error {
	ctx.response.body = append(ctx.response.body, body...)
	return nil
}

// WriteText sends the body as `text/plain`.
func (ctx *context) WriteText(body string) error {
	ctx.response.SetHeader(consts.HeaderContentType, consts.MIMETextPlain)
	return ctx.WriteString(body)
}

// WriteHTML sends the body as `text/html`.
func (ctx *context) WriteHTML(body string) error {
	ctx.response.SetHeader(consts.HeaderContentType, consts.MIMEHTML)
	return ctx.WriteString(body)
}

// WriteJSON encodes obj and sends it as `application/json`.
func (ctx *context) WriteJSON(obj any) error {
	ctx.response.SetHeader(consts.HeaderContentType, consts.MIMEJSON)
	return json.NewEncoder(&ctx.response).Encode(obj)
}

// Set stores a request scoped value.
func (ctx *context) Set(key string, value any) {
	if ctx.data == nil {
		ctx.data = make(map[string]any, 4)
	}
	ctx.data[key] = value
}

// Get returns a request scoped value, nil if absent.
func (ctx *context) Get(key string) any {
	return ctx.data[key]
}

// Has reports whether a request scoped value was set.
func (ctx *context) Has(key string) bool {
	_, ok := ctx.data[key]
	return ok
}

// Delete removes a request scoped value.
func (ctx *context) Delete(key string) {
	delete(ctx.data, key)
}

// reset clears the context for the next request on the connection
func (ctx *context) reset() {
	ctx.request.reset()
	ctx.response.reset()
	clear(ctx.data)
	ctx.handlerCount = 0
}
