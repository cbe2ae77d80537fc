package rtr

import (
	"strings"

	"github.com/rohanthewiz/rweb/v2/consts"
)

// ParamRouter serves paths with parameter (":id") or wildcard ("*filepath") segments.
// Routes are tried in registration order per method, and the first match wins,
// so a static sibling such as /greet/city belongs in the HashRouter which is consulted first.
type ParamRouter[T any] struct {
	routes map[string][]paramRoute[T]
}

type paramRoute[T any] struct {
	segments []string
	data     T
}

// NewParamRouter creates an empty parameter router.
func NewParamRouter[T any]() *ParamRouter[T] {
	return &ParamRouter[T]{routes: make(map[string][]paramRoute[T], 8)}
}

// Add registers data for the method and path pattern.
// Re-adding an identical pattern replaces the earlier data.
func (pr *ParamRouter[T]) Add(method string, path string, data T) {
	segs := splitPath(path)

	routes := pr.routes[method]
	for i := range routes {
		if sameSegments(routes[i].segments, segs) {
			routes[i].data = data
			return
		}
	}

	pr.routes[method] = append(routes, paramRoute[T]{segments: segs, data: data})
}

// Lookup finds the data and parameters for the given route.
func (pr *ParamRouter[T]) Lookup(method string, path string) (T, []Parameter) {
	var params []Parameter

	data := pr.LookupNoAlloc(method, path, func(key string, value string) {
		params = append(params, Parameter{Key: key, Value: value})
	})

	return data, params
}

// LookupNoAlloc finds the data for the given route, handing each captured parameter to addParameter.
func (pr *ParamRouter[T]) LookupNoAlloc(method string, path string, addParameter func(key string, value string)) T {
	segs := splitPath(path)

	for _, route := range pr.routes[method] {
		if route.match(segs, nil) {
			route.match(segs, addParameter)
			return route.data
		}
	}

	var empty T
	return empty
}

// match reports whether the request segments fit the pattern.
// When addParameter is not nil, captured values are reported through it.
func (route paramRoute[T]) match(segs []string, addParameter func(string, string)) bool {
	for i, pattern := range route.segments {
		if pattern != "" && pattern[0] == consts.RuneAsterisk {
			if addParameter != nil {
				addParameter(pattern[1:], strings.Join(segs[min(i, len(segs)):], "/"))
			}
			return true
		}

		if i >= len(segs) {
			return false
		}

		if pattern != "" && pattern[0] == consts.RuneColon {
			if segs[i] == "" {
				return false
			}
			if addParameter != nil {
				addParameter(pattern[1:], segs[i])
			}
			continue
		}

		if pattern != segs[i] {
			return false
		}
	}

	return len(route.segments) == len(segs)
}

// splitPath splits "/users/:id" into ["users", ":id"]
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func sameSegments(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsParamPath reports whether the path needs the ParamRouter.
func IsParamPath(path string) bool {
	return strings.IndexByte(path, consts.RuneColon) >= 0 || strings.IndexByte(path, consts.RuneAsterisk) >= 0
}
