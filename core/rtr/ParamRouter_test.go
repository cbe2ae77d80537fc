package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rweb/v2/core/rtr"
)

func TestParameter(t *testing.T) {
	r := rtr.NewParamRouter[string]()
	r.Add("GET", "/blog/:post", "Blog post")
	r.Add("GET", "/blog/:post/comments/:id", "Comment")

	data, params := r.Lookup("GET", "/blog/hello-world")
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "post")
	assert.Equal(t, params[0].Value, "hello-world")
	assert.Equal(t, data, "Blog post")

	data, params = r.Lookup("GET", "/blog/hello-world/comments/123")
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[0].Key, "post")
	assert.Equal(t, params[0].Value, "hello-world")
	assert.Equal(t, params[1].Key, "id")
	assert.Equal(t, params[1].Value, "123")
	assert.Equal(t, data, "Comment")
}

func TestParameterNotFound(t *testing.T) {
	r := rtr.NewParamRouter[string]()
	r.Add("GET", "/user/:id", "User")

	notFound := []string{
		"",
		"/",
		"/user",
		"/user/",
		"/user/1/extra",
		"/users/1",
	}

	for _, path := range notFound {
		data, params := r.Lookup("GET", path)
		assert.Equal(t, len(params), 0)
		assert.Equal(t, data, "")
	}

	data, _ := r.Lookup("POST", "/user/1")
	assert.Equal(t, data, "")
}

func TestWildcard(t *testing.T) {
	r := rtr.NewParamRouter[string]()
	r.Add("GET", "/static/*filepath", "Static")

	data, params := r.Lookup("GET", "/static/css/main.css")
	assert.Equal(t, data, "Static")
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "filepath")
	assert.Equal(t, params[0].Value, "css/main.css")
}

func TestParameterReplace(t *testing.T) {
	r := rtr.NewParamRouter[string]()
	r.Add("GET", "/user/:id", "first")
	r.Add("GET", "/user/:id", "second")

	data, _ := r.Lookup("GET", "/user/7")
	assert.Equal(t, data, "second")
}

func TestLookupNoAlloc(t *testing.T) {
	r := rtr.NewParamRouter[string]()
	r.Add("PUT", "/user/:id/name/:name", "Rename")

	var keys, values []string
	data := r.LookupNoAlloc("PUT", "/user/7/name/bob", func(key string, value string) {
		keys = append(keys, key)
		values = append(values, value)
	})

	assert.Equal(t, data, "Rename")
	assert.Equal(t, len(keys), 2)
	assert.Equal(t, keys[0], "id")
	assert.Equal(t, values[1], "bob")
}

func TestIsParamPath(t *testing.T) {
	assert.True(t, rtr.IsParamPath("/user/:id"))
	assert.True(t, rtr.IsParamPath("/static/*filepath"))
	assert.False(t, rtr.IsParamPath("/user/list"))
}
