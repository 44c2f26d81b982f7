package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/work"

	"github.com/ctagard/ado-mcp/internal/azdo"
	"github.com/ctagard/ado-mcp/internal/errors"
	"github.com/ctagard/ado-mcp/internal/format"
)

func (s *Server) handleGetAllTeams(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := azdo.NewCoreClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	args := core.GetAllTeamsArgs{}
	if mine := request.GetBool("user_is_member_of", false); mine {
		args.Mine = &mine
	}
	if top, ok := optionalInt(request, "top"); ok {
		args.Top = &top
	}
	if skip, ok := optionalInt(request, "skip"); ok {
		args.Skip = &skip
	}

	return mcp.NewToolResultText(getAllTeamsImpl(ctx, client, args)), nil
}

func (s *Server) handleGetTeamMembers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := request.RequireString("project_id")
	if err != nil {
		return errorResult(errors.MissingParameter("project_id", "Supply the project name or ID (GUID).")), nil
	}
	teamID, err := request.RequireString("team_id")
	if err != nil {
		return errorResult(errors.MissingParameter("team_id", "Supply the team name or ID (GUID).")), nil
	}

	client, err := azdo.NewCoreClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	args := core.GetTeamMembersWithExtendedPropertiesArgs{
		ProjectId: &projectID,
		TeamId:    &teamID,
	}
	if top, ok := optionalInt(request, "top"); ok {
		args.Top = &top
	}
	if skip, ok := optionalInt(request, "skip"); ok {
		args.Skip = &skip
	}

	return mcp.NewToolResultText(getTeamMembersImpl(ctx, client, args, projectID, teamID)), nil
}

func (s *Server) handleGetTeamAreaPaths(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project_name_or_id")
	if err != nil {
		return errorResult(errors.MissingParameter("project_name_or_id", "Supply the project name or ID.")), nil
	}
	team, err := request.RequireString("team_name_or_id")
	if err != nil {
		return errorResult(errors.MissingParameter("team_name_or_id", "Supply the team name or ID.")), nil
	}

	client, err := azdo.NewWorkClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(getTeamAreaPathsImpl(ctx, client, project, team)), nil
}

func (s *Server) handleGetTeamIterations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project_name_or_id")
	if err != nil {
		return errorResult(errors.MissingParameter("project_name_or_id", "Supply the project name or ID.")), nil
	}
	team, err := request.RequireString("team_name_or_id")
	if err != nil {
		return errorResult(errors.MissingParameter("team_name_or_id", "Supply the team name or ID.")), nil
	}

	client, err := azdo.NewWorkClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	current := request.GetBool("current", false)
	return mcp.NewToolResultText(getTeamIterationsImpl(ctx, client, project, team, current)), nil
}

func getAllTeamsImpl(ctx context.Context, client azdo.CoreClient, args core.GetAllTeamsArgs) string {
	teams, err := client.GetAllTeams(ctx, args)
	if err != nil {
		return fmt.Sprintf("Error retrieving teams: %v", err)
	}
	if teams == nil || len(*teams) == 0 {
		return "No teams found."
	}

	formatted := make([]string, 0, len(*teams))
	for _, team := range *teams {
		formatted = append(formatted, format.Team(team))
	}
	return strings.Join(formatted, "\n\n")
}

func getTeamMembersImpl(ctx context.Context, client azdo.CoreClient,
	args core.GetTeamMembersWithExtendedPropertiesArgs, projectID, teamID string) string {

	members, err := client.GetTeamMembersWithExtendedProperties(ctx, args)
	if err != nil {
		return fmt.Sprintf("Error retrieving team members: %v", err)
	}
	if members == nil || len(*members) == 0 {
		return fmt.Sprintf("No members found for team %s in project %s.", teamID, projectID)
	}

	formatted := make([]string, 0, len(*members))
	for _, member := range *members {
		formatted = append(formatted, format.TeamMember(member))
	}
	return strings.Join(formatted, "\n\n")
}

func getTeamAreaPathsImpl(ctx context.Context, client azdo.WorkClient, project, team string) string {
	values, err := client.GetTeamFieldValues(ctx, work.GetTeamFieldValuesArgs{
		Project: &project,
		Team:    &team,
	})
	if err != nil {
		return fmt.Sprintf("Error retrieving team area paths: %v", err)
	}
	if values == nil {
		return fmt.Sprintf("No area paths found for team %s in project %s.", team, project)
	}
	return format.TeamAreaPaths(*values)
}

func getTeamIterationsImpl(ctx context.Context, client azdo.WorkClient, project, team string, current bool) string {
	args := work.GetTeamIterationsArgs{
		Project: &project,
		Team:    &team,
	}
	if current {
		timeframe := "Current"
		args.Timeframe = &timeframe
	}

	iterations, err := client.GetTeamIterations(ctx, args)
	if err != nil {
		return fmt.Sprintf("Error retrieving team iterations: %v", err)
	}
	if iterations == nil || len(*iterations) == 0 {
		return fmt.Sprintf("No iterations found for team %s in project %s.", team, project)
	}

	formatted := make([]string, 0, len(*iterations))
	for _, iteration := range *iterations {
		formatted = append(formatted, format.TeamIteration(iteration))
	}
	return strings.Join(formatted, "\n\n")
}
