package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// UsersEndpoint is appended to the service URL by the HTTP exporter.
const UsersEndpoint = "/v1/users/export"

// maxErrorBody caps how much of a failed response ends up in the error.
const maxErrorBody = 4 << 10

// HTTPExporter posts a user as JSON to a remote service.
type HTTPExporter struct {
	client     ports.HTTPClient
	serviceURL string
	authKey    string
	newID      IDFunc
}

// NewHTTPExporter creates an exporter posting to serviceURL + UsersEndpoint.
// authKey is sent as a bearer token when non-empty.
func NewHTTPExporter(client ports.HTTPClient, serviceURL, authKey string) *HTTPExporter {
	return &HTTPExporter{
		client:     client,
		serviceURL: strings.TrimSuffix(serviceURL, "/"),
		authKey:    authKey,
		newID:      newUUID,
	}
}

// Export sends user in a single POST. Any non-2xx status is a failure.
func (e *HTTPExporter) Export(ctx context.Context, user domain.User) error {
	return domain.NewExportError(FormatHTTP, e.send(ctx, user))
}

func (e *HTTPExporter) send(ctx context.Context, user domain.User) error {
	body, err := json.Marshal(toRecord(user))
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.serviceURL+UsersEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Hexport-Export-Id", e.newID())
	if e.authKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.authKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	// drain so the connection can be reused
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	return nil
}

var _ ports.UserExporter = (*HTTPExporter)(nil)
