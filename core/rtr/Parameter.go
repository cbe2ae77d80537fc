package rtr

// Parameter represents a URL parameter extracted from dynamic route segments.
// This is returned by the ParamRouter for routes like /user/:id.
//
// Example:
//   Route: /user/:id/posts/:postId
//   URL:   /user/123/posts/456
//   Result: []Parameter{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
type Parameter struct {
	Key   string
	Value string
}
