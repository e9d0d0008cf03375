// ABOUTME: Check handlers running the full validation pipeline over a feed
// ABOUTME: Accepts a feed URL to fetch or raw XML submitted in the request body

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"podcheck-api/core/domain"
	"podcheck-api/core/feed"
	"podcheck-api/core/resolve"
	"podcheck-api/core/validate"
)

// CheckHandler handles feed validation requests
type CheckHandler struct {
	feeds    *feed.Service
	resolver *resolve.Resolver
}

// NewCheckHandler creates a new check handler
func NewCheckHandler(feeds *feed.Service, resolver *resolve.Resolver) *CheckHandler {
	return &CheckHandler{
		feeds:    feeds,
		resolver: resolver,
	}
}

// RegisterRoutes registers all check-related routes
func (h *CheckHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "checkFeed",
		Method:      http.MethodGet,
		Path:        "/check",
		Summary:     "Validate a podcast feed by URL",
		Description: "Fetches a podcast RSS feed, validates it against the Podcast Namespace and reports findings",
		Tags:        []string{"Check"},
	}, h.CheckFeed)

	huma.Register(api, huma.Operation{
		OperationID: "checkFeedDocument",
		Method:      http.MethodPost,
		Path:        "/check",
		Summary:     "Validate a submitted feed document",
		Description: "Validates raw podcast RSS XML submitted in the request body, without fetching anything",
		Tags:        []string{"Check"},
	}, h.CheckFeedDocument)
}

// CheckFeedInput defines the input for the CheckFeed operation
type CheckFeedInput struct {
	URL     string `query:"url" required:"true" format:"uri" doc:"Feed URL to validate"`
	Resolve bool   `query:"resolve,omitempty" doc:"Resolve remote items referenced by value time splits"`
}

// CheckResponse is the full validation result for one feed.
type CheckResponse struct {
	Title    string                      `json:"title"`
	Stats    domain.Stats                `json:"stats"`
	Findings []domain.Finding            `json:"findings"`
	Summary  map[string]int              `json:"summary"`
	Report   validate.Report             `json:"report"`
	Remote   []domain.ResolvedRemoteItem `json:"remoteItems,omitempty"`
}

// CheckFeedOutput defines the output for the CheckFeed operation
type CheckFeedOutput struct {
	Body CheckResponse
}

// CheckFeed handles the GET /check endpoint
func (h *CheckHandler) CheckFeed(ctx context.Context, input *CheckFeedInput) (*CheckFeedOutput, error) {
	parsed, err := h.feeds.Fetch(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	response := h.buildResponse(ctx, parsed, input.Resolve)
	return &CheckFeedOutput{Body: response}, nil
}

// CheckFeedDocumentInput defines the input for the CheckFeedDocument operation
type CheckFeedDocumentInput struct {
	RawBody []byte `contentType:"application/xml" doc:"Feed XML document"`
}

// CheckFeedDocumentOutput defines the output for the CheckFeedDocument operation
type CheckFeedDocumentOutput struct {
	Body CheckResponse
}

// CheckFeedDocument handles the POST /check endpoint
func (h *CheckHandler) CheckFeedDocument(ctx context.Context, input *CheckFeedDocumentInput) (*CheckFeedDocumentOutput, error) {
	if len(input.RawBody) == 0 {
		return nil, huma.Error400BadRequest("Request body must contain a feed document")
	}

	parsed, err := h.feeds.Parse(input.RawBody)
	if err != nil {
		return nil, toHumaError(err)
	}

	// Remote resolution needs network access and is only offered on
	// the fetch path
	response := h.buildResponse(ctx, parsed, false)
	return &CheckFeedDocumentOutput{Body: response}, nil
}

func (h *CheckHandler) buildResponse(ctx context.Context, parsed *domain.Feed, resolveRemote bool) CheckResponse {
	findings := validate.Validate(parsed)

	response := CheckResponse{
		Title:    parsed.Channel.Title,
		Stats:    feed.Stats(parsed),
		Findings: findings,
		Summary:  domain.CountBySeverity(findings),
		Report:   validate.BuildReport(parsed),
	}

	if resolveRemote && h.resolver != nil {
		response.Remote = h.resolver.ResolveAll(ctx, parsed)
	}

	return response
}
