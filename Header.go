package rweb

import "strings"

// Header is used to store HTTP headers.
type Header struct {
	Key   string
	Value string
}

// headerValue finds key in headers. Header names are case-insensitive.
func headerValue(headers []Header, key string) string {
	for _, header := range headers {
		if strings.EqualFold(header.Key, key) {
			return header.Value
		}
	}

	return ""
}
