package routes

import "net/http"

// Route declares a single endpoint: the HTTP method, the path pattern
// relative to its group prefix, and the handler that serves it.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
