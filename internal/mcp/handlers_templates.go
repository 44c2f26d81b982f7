package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"

	"github.com/ctagard/ado-mcp/internal/azdo"
	"github.com/ctagard/ado-mcp/internal/errors"
	"github.com/ctagard/ado-mcp/internal/format"
)

// teamScope carries the project/team pair addressing a team's templates.
// Either the name or the id form may be supplied for both halves.
type teamScope struct {
	project string
	team    string
}

func (t teamScope) valid() bool {
	return t.project != "" && t.team != ""
}

func teamScopeFromRequest(request mcp.CallToolRequest) teamScope {
	scope := teamScope{
		project: request.GetString("project", ""),
		team:    request.GetString("team", ""),
	}
	if scope.project == "" {
		scope.project = request.GetString("project_id", "")
	}
	if scope.team == "" {
		scope.team = request.GetString("team_id", "")
	}
	return scope
}

func (s *Server) handleGetWorkItemTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scope := teamScopeFromRequest(request)
	if !scope.valid() {
		return errorResult(errors.MissingParameter("team",
			"Supply project (or project_id) and team (or team_id).")), nil
	}

	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	workItemType := request.GetString("work_item_type", "")
	return mcp.NewToolResultText(getWorkItemTemplatesImpl(ctx, client, scope, workItemType)), nil
}

func (s *Server) handleGetWorkItemTemplate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scope := teamScopeFromRequest(request)
	if !scope.valid() {
		return errorResult(errors.MissingParameter("team",
			"Supply project (or project_id) and team (or team_id).")), nil
	}
	templateID, err := request.RequireString("template_id")
	if err != nil {
		return errorResult(errors.MissingParameter("template_id", "Supply the template ID.")), nil
	}

	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(getWorkItemTemplateImpl(ctx, client, scope, templateID)), nil
}

func getWorkItemTemplatesImpl(ctx context.Context, client azdo.WorkItemClient, scope teamScope, workItemType string) string {
	args := workitemtracking.GetTemplatesArgs{
		Project: &scope.project,
		Team:    &scope.team,
	}
	if workItemType != "" {
		args.Workitemtypename = &workItemType
	}

	templates, err := client.GetTemplates(ctx, args)
	if err != nil {
		return fmt.Sprintf("Error retrieving templates: %v", err)
	}
	if templates == nil || len(*templates) == 0 {
		typeScope := ""
		if workItemType != "" {
			typeScope = fmt.Sprintf("work item type '%s' in ", workItemType)
		}
		return fmt.Sprintf("No templates found for %steam %s.", typeScope, scope.team)
	}
	return format.TemplateTable(scope.team, scope.project, workItemType, *templates)
}

func getWorkItemTemplateImpl(ctx context.Context, client azdo.WorkItemClient, scope teamScope, rawTemplateID string) string {
	templateID, err := uuid.Parse(rawTemplateID)
	if err != nil {
		return fmt.Sprintf("Error retrieving template '%s': %v", rawTemplateID, err)
	}

	template, err := client.GetTemplate(ctx, workitemtracking.GetTemplateArgs{
		Project:    &scope.project,
		Team:       &scope.team,
		TemplateId: &templateID,
	})
	if err != nil {
		return fmt.Sprintf("Error retrieving template '%s': %v", rawTemplateID, err)
	}
	if template == nil {
		return fmt.Sprintf("Template with ID '%s' not found.", rawTemplateID)
	}
	return format.Template(*template)
}
