// ABOUTME: Resolve handler turning a remote item GUID pair into artwork and value data
// ABOUTME: Resolution is best-effort and always answers 200 with whatever was found

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"podcheck-api/core/domain"
	"podcheck-api/core/resolve"
)

// ResolveHandler handles remote item resolution requests
type ResolveHandler struct {
	resolver *resolve.Resolver
}

// NewResolveHandler creates a new resolve handler
func NewResolveHandler(resolver *resolve.Resolver) *ResolveHandler {
	return &ResolveHandler{resolver: resolver}
}

// RegisterRoutes registers all resolve-related routes
func (h *ResolveHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "resolveRemoteItem",
		Method:      http.MethodGet,
		Path:        "/resolve",
		Summary:     "Resolve a podcast:remoteItem reference",
		Description: "Resolves a feed GUID and item GUID pair to artwork and the remote item's value block",
		Tags:        []string{"Resolve"},
	}, h.ResolveRemoteItem)
}

// ResolveRemoteItemInput defines the input for the ResolveRemoteItem operation
type ResolveRemoteItemInput struct {
	FeedGuid string `query:"feedGuid" required:"true" doc:"GUID of the remote feed"`
	ItemGuid string `query:"itemGuid,omitempty" doc:"GUID of the remote item within the feed"`
}

// ResolveRemoteItemOutput defines the output for the ResolveRemoteItem operation
type ResolveRemoteItemOutput struct {
	Body domain.ResolvedRemoteItem
}

// ResolveRemoteItem handles the GET /resolve endpoint
func (h *ResolveHandler) ResolveRemoteItem(ctx context.Context, input *ResolveRemoteItemInput) (*ResolveRemoteItemOutput, error) {
	resolved := h.resolver.Resolve(ctx, domain.RemoteItem{
		FeedGuid: input.FeedGuid,
		ItemGuid: input.ItemGuid,
	})

	return &ResolveRemoteItemOutput{Body: *resolved}, nil
}
