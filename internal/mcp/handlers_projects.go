package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"

	"github.com/ctagard/ado-mcp/internal/azdo"
	"github.com/ctagard/ado-mcp/internal/format"
)

func (s *Server) handleGetProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := azdo.NewCoreClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	args := core.GetProjectsArgs{}
	if stateFilter := request.GetString("state_filter", ""); stateFilter != "" {
		state := core.ProjectState(stateFilter)
		args.StateFilter = &state
	}
	if top, ok := optionalInt(request, "top"); ok {
		args.Top = &top
	}

	return mcp.NewToolResultText(getProjectsImpl(ctx, client, args)), nil
}

func getProjectsImpl(ctx context.Context, client azdo.CoreClient, args core.GetProjectsArgs) string {
	projects, err := client.GetProjects(ctx, args)
	if err != nil {
		return fmt.Sprintf("Error retrieving projects: %v", err)
	}
	if projects == nil || len(projects.Value) == 0 {
		return "No projects found."
	}

	formatted := make([]string, 0, len(projects.Value))
	for _, project := range projects.Value {
		formatted = append(formatted, format.Project(project))
	}
	return strings.Join(formatted, "\n\n")
}
