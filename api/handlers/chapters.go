// ABOUTME: Chapters handler fetching and validating podcast:chapters documents
// ABOUTME: Returns the chapter list with derived end times plus any findings

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"podcheck-api/core/chapters"
	"podcheck-api/core/domain"
	"podcheck-api/core/validate"
)

// ChaptersHandler handles chapter document requests
type ChaptersHandler struct {
	service *chapters.Service
}

// NewChaptersHandler creates a new chapters handler
func NewChaptersHandler(service *chapters.Service) *ChaptersHandler {
	return &ChaptersHandler{service: service}
}

// RegisterRoutes registers all chapters-related routes
func (h *ChaptersHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getChapters",
		Method:      http.MethodGet,
		Path:        "/chapters",
		Summary:     "Fetch and validate a chapters document",
		Description: "Fetches a podcast:chapters JSON document, derives end times and validates chapter ordering",
		Tags:        []string{"Chapters"},
	}, h.GetChapters)
}

// GetChaptersInput defines the input for the GetChapters operation
type GetChaptersInput struct {
	URL string `query:"url" required:"true" format:"uri" doc:"Chapters document URL"`
}

// ChaptersResponse is a parsed chapters document plus its findings.
type ChaptersResponse struct {
	Chapters []domain.Chapter `json:"chapters"`
	Findings []domain.Finding `json:"findings"`
}

// GetChaptersOutput defines the output for the GetChapters operation
type GetChaptersOutput struct {
	Body ChaptersResponse
}

// GetChapters handles the GET /chapters endpoint
func (h *ChaptersHandler) GetChapters(ctx context.Context, input *GetChaptersInput) (*GetChaptersOutput, error) {
	list, err := h.service.Fetch(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetChaptersOutput{
		Body: ChaptersResponse{
			Chapters: list.Chapters,
			Findings: validate.ValidateChapters(list.Chapters),
		},
	}, nil
}
