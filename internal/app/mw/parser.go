package mw

import (
	"fmt"
	"strings"
)

// parseURI parses URI into api and root method, ignoring any query string.
//
// Example 1: /api/method/other -> (api, method)
//
// Example 2: /api?key=value -> (api, "")
func parseURI(uri string) (string, string, error) {
	if uri == "" || uri == "/" || uri[0] != '/' {
		return "", "", fmt.Errorf("incorrect URI format: %q", uri)
	}

	if i := strings.IndexByte(uri, '?'); i >= 0 {
		uri = uri[:i]
	}

	uriParts := strings.Split(uri[1:], "/")
	if uriParts[0] == "" {
		return "", "", fmt.Errorf("incorrect URI format: %q", uri)
	}

	method := ""
	if len(uriParts) > 1 {
		method = uriParts[1]
	}

	return uriParts[0], method, nil
}
