package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"podcheck-api/core/interfaces"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type stubHTTPClient struct {
	status      int
	body        string
	contentType string
	err         error
}

func (c *stubHTTPClient) Get(context.Context, string) (interfaces.Response, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &stubResponse{status: c.status, body: c.body, contentType: c.contentType}, nil
}

func (c *stubHTTPClient) GetWithHeaders(ctx context.Context, url string, _ map[string]string) (interfaces.Response, error) {
	return c.Get(ctx, url)
}

type stubResponse struct {
	status      int
	body        string
	contentType string
}

func (r *stubResponse) StatusCode() int { return r.status }
func (r *stubResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(r.body)))
}
func (r *stubResponse) Header(key string) string {
	if key == "Content-Type" {
		return r.contentType
	}
	return ""
}

// deadlineCapturingClient records the deadline of the context it is called with
type deadlineCapturingClient struct {
	stubHTTPClient
	deadline time.Time
	hasLimit bool
}

func (c *deadlineCapturingClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	c.deadline, c.hasLimit = ctx.Deadline()
	return c.stubHTTPClient.Get(ctx, url)
}

func TestRelay_BoundsUpstreamFetch(t *testing.T) {
	client := &deadlineCapturingClient{stubHTTPClient: stubHTTPClient{status: 200, body: "<rss/>"}}
	handler := NewRelayHandler(client, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/relay?url=https%3A%2F%2Fexample.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, client.hasLimit, "upstream fetch must carry a deadline")
	remaining := time.Until(client.deadline)
	assert.LessOrEqual(t, remaining, 10*time.Second)
	assert.Greater(t, remaining, 9*time.Second)
}

func TestRelay_ProxiesBody(t *testing.T) {
	handler := NewRelayHandler(&stubHTTPClient{status: 200, body: "<rss/>", contentType: "text/xml"}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/relay?url=https%3A%2F%2Fexample.com%2Ffeed.xml", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<rss/>", rec.Body.String())
}

func TestRelay_DefaultsContentType(t *testing.T) {
	handler := NewRelayHandler(&stubHTTPClient{status: 200, body: "<rss/>"}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/relay?url=https%3A%2F%2Fexample.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
}

func TestRelay_MissingURL(t *testing.T) {
	handler := NewRelayHandler(&stubHTTPClient{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/relay", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRelay_MethodNotAllowed(t *testing.T) {
	handler := NewRelayHandler(&stubHTTPClient{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/relay?url=https%3A%2F%2Fexample.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRelay_UpstreamFailure(t *testing.T) {
	handler := NewRelayHandler(&stubHTTPClient{err: errors.New("refused")}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/relay?url=https%3A%2F%2Fexample.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRelay_UpstreamTimeout(t *testing.T) {
	handler := NewRelayHandler(&stubHTTPClient{err: context.DeadlineExceeded}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/relay?url=https%3A%2F%2Fexample.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestRelay_ForwardsUpstreamStatus(t *testing.T) {
	handler := NewRelayHandler(&stubHTTPClient{status: 404, body: "not found"}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/relay?url=https%3A%2F%2Fexample.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
