package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// Route is a canned upstream response.
type Route struct {
	Status int
	Body   string
}

// NewUpstream starts a server answering request paths (with query) from routes.
// Unknown paths get 404. The server is closed on cleanup.
func NewUpstream(t *testing.T, routes map[string]Route) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, ok := routes[r.URL.RequestURI()]
		if !ok {
			route, ok = routes[r.URL.Path]
		}
		if !ok {
			http.NotFound(w, r)
			return
		}
		status := route.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(route.Body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
