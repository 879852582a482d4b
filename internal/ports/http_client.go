package ports

import "net/http"

// HTTPClient is what the HTTP exporter needs from net/http.
// *http.Client satisfies it; tests substitute a stub.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
