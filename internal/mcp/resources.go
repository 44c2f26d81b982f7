package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ctagard/ado-mcp/internal/azdo"
)

// registerResources exposes work items as addressable resources so clients
// can read them by URI without a tool round trip.
func (s *Server) registerResources() {
	template := mcp.NewResourceTemplate(
		"azuredevops://workitems/{id}",
		"Azure DevOps Work Item",
		mcp.WithTemplateDescription("A single work item rendered as markdown, addressed by its numeric ID"),
		mcp.WithTemplateMIMEType("text/markdown"),
	)
	s.mcpServer.AddResourceTemplate(template, s.handleWorkItemResource)
}

func (s *Server) handleWorkItemResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI

	rawID := uri[strings.LastIndex(uri, "/")+1:]
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid work item id %q in resource URI", rawID)
	}

	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     getWorkItemImpl(ctx, client, id),
		},
	}, nil
}
