package send_test

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rweb/v2"
	"github.com/rohanthewiz/rweb/v2/consts"
	"github.com/rohanthewiz/rweb/v2/overview"
	"github.com/rohanthewiz/rweb/v2/send"
)

func TestContentTypes(t *testing.T) {
	s := rweb.NewServer()

	s.Get("/css", func(ctx rweb.Context) error {
		return send.CSS(ctx, "body{}")
	})

	s.Get("/html", func(ctx rweb.Context) error {
		return send.HTML(ctx, "<html></html>")
	})

	s.Get("/json", func(ctx rweb.Context) error {
		return send.JSON(ctx, struct{ Name string }{Name: "User 1"})
	})

	s.Get("/text", func(ctx rweb.Context) error {
		return send.Text(ctx, "Hello")
	})

	tests := []struct {
		Method      string
		URL         string
		Status      int
		Response    string
		ContentType string
	}{
		{Method: consts.MethodGet, URL: "/css", Status: 200, Response: "body{}", ContentType: "text/css"},
		{Method: consts.MethodGet, URL: "/html", Status: 200, Response: "<html></html>", ContentType: "text/html"},
		{Method: consts.MethodGet, URL: "/json", Status: 200, Response: "{\"Name\":\"User 1\"}\n", ContentType: "application/json"},
		{Method: consts.MethodGet, URL: "/text", Status: 200, Response: "Hello", ContentType: "text/plain"},
	}

	for _, test := range tests {
		t.Run(test.URL, func(t *testing.T) {
			response := s.Request(test.Method, "http://example.com"+test.URL, nil, nil)
			assert.Equal(t, response.Status(), test.Status)
			assert.Equal(t, response.Header("Content-Type"), test.ContentType)
			assert.Equal(t, string(response.Body()), test.Response)
		})
	}
}

func TestRouteOverview(t *testing.T) {
	entries := []overview.RouteEntry{
		{Method: consts.MethodGet, Path: "/a", Handler: overview.MethodRef("Foo", "bar", nil)},
	}

	s := rweb.NewServer()
	s.Get("/routes", func(ctx rweb.Context) error {
		return send.RouteOverview(ctx, entries)
	})

	response := s.Request(consts.MethodGet, "/routes", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, response.Header("Content-Type"), "text/html")
	assert.True(t, strings.Contains(string(response.Body()), "Foo::bar"))
}
