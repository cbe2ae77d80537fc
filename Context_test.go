package rweb_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rweb/v2"
	"github.com/rohanthewiz/rweb/v2/consts"
)

func TestBytes(t *testing.T) {
	s := rweb.NewServer()

	s.Get("/", func(ctx rweb.Context) error {
		return ctx.Bytes([]byte("Hello"))
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "Hello")
}

func TestString(t *testing.T) {
	s := rweb.NewServer()

	s.Get("/", func(ctx rweb.Context) error {
		return ctx.WriteString("Hello")
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "Hello")
}

func TestError(t *testing.T) {
	s := rweb.NewServer()

	var handled error
	s.SetErrorHandler(func(ctx rweb.Context, err error) {
		handled = err
	})

	s.Get("/", func(ctx rweb.Context) error {
		return ctx.Status(401).Error("Not logged in", errors.New("Missing auth token"))
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 401)
	assert.Equal(t, string(response.Body()), "")
	assert.Equal(t, handled.Error(), "Not logged in\nMissing auth token")
}

func TestRedirect(t *testing.T) {
	s := rweb.NewServer()

	s.Get("/", func(ctx rweb.Context) error {
		return ctx.Redirect(301, "/target")
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 301)
	assert.Equal(t, response.Header("Location"), "/target")
}

func TestMiddlewareChain(t *testing.T) {
	s := rweb.NewServer()

	var order []string
	s.Use(func(ctx rweb.Context) error {
		order = append(order, "first")
		return ctx.Next()
	})
	s.Use(func(ctx rweb.Context) error {
		order = append(order, "second")
		ctx.Set("user", "bob")
		return ctx.Next()
	})

	s.Get("/", func(ctx rweb.Context) error {
		order = append(order, "handler")
		return ctx.WriteString(ctx.Get("user").(string))
	})

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, string(response.Body()), "bob")
	assert.Equal(t, len(order), 3)
	assert.Equal(t, order[0], "first")
	assert.Equal(t, order[2], "handler")
}
