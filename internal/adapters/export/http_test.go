package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bft-labs/hexport/internal/domain"
)

type stubClient struct {
	err error
}

func (c *stubClient) Do(req *http.Request) (*http.Response, error) {
	return nil, c.err
}

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}

func TestHTTPExporter_Success(t *testing.T) {
	var (
		gotPath   string
		gotAuth   string
		gotID     string
		gotRecord userRecord
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotID = r.Header.Get("X-Hexport-Export-Id")
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotRecord); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	exp := NewHTTPExporter(ts.Client(), ts.URL+"/", "secret")
	exp.newID = fixedID

	if err := exp.Export(context.Background(), johnDoe()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if gotPath != UsersEndpoint {
		t.Errorf("path = %q, want %q", gotPath, UsersEndpoint)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotID != fixedID() {
		t.Errorf("X-Hexport-Export-Id = %q", gotID)
	}
	if gotRecord != toRecord(johnDoe()) {
		t.Errorf("body = %+v", gotRecord)
	}
}

func TestHTTPExporter_NoAuthHeaderWithoutKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Error("Authorization header sent without an auth key")
		}
	}))
	defer ts.Close()

	if err := NewHTTPExporter(ts.Client(), ts.URL, "").Export(context.Background(), johnDoe()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
}

func TestHTTPExporter_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream down\n")
	}))
	defer ts.Close()

	err := NewHTTPExporter(ts.Client(), ts.URL, "").Export(context.Background(), johnDoe())

	var ee *domain.ExportError
	if !errors.As(err, &ee) || ee.Format != FormatHTTP {
		t.Fatalf("error = %v, want http ExportError", err)
	}
	if !strings.Contains(err.Error(), "502") || !strings.Contains(err.Error(), "upstream down") {
		t.Errorf("error = %q, want status and body", err)
	}
}

func TestHTTPExporter_TransportError(t *testing.T) {
	refused := errors.New("connection refused")
	err := NewHTTPExporter(&stubClient{err: refused}, "http://example.invalid", "").Export(context.Background(), johnDoe())

	if !errors.Is(err, refused) || !errors.Is(err, domain.ErrExportFailed) {
		t.Errorf("error = %v, want ExportError wrapping transport error", err)
	}
}

// readTracker reports whether its body was read to EOF before Close.
type readTracker struct {
	r      io.Reader
	atEOF  bool
	closed bool
}

func (b *readTracker) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err == io.EOF {
		b.atEOF = true
	}
	return n, err
}

func (b *readTracker) Close() error {
	b.closed = true
	return nil
}

type bodyClient struct {
	body *readTracker
}

func (c *bodyClient) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK, Body: c.body}, nil
}

func TestHTTPExporter_DrainsSuccessBody(t *testing.T) {
	body := &readTracker{r: strings.NewReader(`{"status":"queued"}`)}

	if err := NewHTTPExporter(&bodyClient{body: body}, "http://example.invalid", "").Export(context.Background(), johnDoe()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !body.atEOF {
		t.Error("response body closed without being drained")
	}
	if !body.closed {
		t.Error("response body not closed")
	}
}
