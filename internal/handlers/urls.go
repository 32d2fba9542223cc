package handlers

import (
	"fmt"
	"net/url"
	"strings"
)

// routeTable maps endpoint names to gin path patterns for reverse routing.
var routeTable = map[string]string{
	"index":        "/",
	"user_page":    "/user/:name",
	"settings":     "/settings",
	"edit":         "/movie/edit/:id",
	"delete":       "/movie/delete/:id",
	"login":        "/login",
	"logout":       "/logout",
	"test_url_for": "/test",
}

// urlFor builds the URL of a named endpoint. params are key/value pairs;
// keys naming a path parameter are substituted, the rest become the query
// string.
func urlFor(endpoint string, params ...any) (string, error) {
	pattern, ok := routeTable[endpoint]
	if !ok {
		return "", fmt.Errorf("url for %q: unknown endpoint", endpoint)
	}
	if len(params)%2 != 0 {
		return "", fmt.Errorf("url for %q: odd number of params", endpoint)
	}

	values := make(map[string]string, len(params)/2)
	for i := 0; i < len(params); i += 2 {
		key, ok := params[i].(string)
		if !ok {
			return "", fmt.Errorf("url for %q: param name %v is not a string", endpoint, params[i])
		}
		values[key] = fmt.Sprint(params[i+1])
	}

	segments := strings.Split(pattern, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("url for %q: missing path param %q", endpoint, name)
		}
		segments[i] = url.PathEscape(v)
		delete(values, name)
	}
	path := strings.Join(segments, "/")

	if len(values) == 0 {
		return path, nil
	}
	q := url.Values{}
	for k, v := range values {
		q.Set(k, v)
	}
	return path + "?" + q.Encode(), nil
}

// mustURLFor is for endpoints and params fixed in code.
func mustURLFor(endpoint string, params ...any) string {
	u, err := urlFor(endpoint, params...)
	if err != nil {
		panic(err)
	}
	return u
}
