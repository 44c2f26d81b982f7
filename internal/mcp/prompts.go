package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// registerPrompts adds the static prompt templates. These need no Azure
// DevOps connection; they guide the client toward effective tool usage.
func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(mcp.NewPrompt("Create Conventions File",
		mcp.WithPromptDescription("Create a starting conventions file for Azure DevOps"),
	), handleConventionsFilePrompt)

	s.mcpServer.AddPrompt(mcp.NewPrompt("wiql_query_format",
		mcp.WithPromptDescription("Helper for formatting WIQL queries for common scenarios"),
		mcp.WithArgument("query_type",
			mcp.ArgumentDescription("Type of query to format (current_sprint, assigned_to_me, active_bugs, blocked_items, recent_activity)"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("additional_fields",
			mcp.ArgumentDescription("Additional fields to include in the SELECT clause"),
		),
	), handleWiqlQueryFormatPrompt)
}

const conventionsFilePrompt = `Create a concise Azure DevOps conventions file to
serve as a quick reference for our environment.
This should capture all important patterns and structures
while remaining compact enough for an LLM context.

Using the available Azure DevOps tools, please:

1. Get an overview of ALL projects (get_projects)
2. For ALL projects:
   - Identify teams (get_all_teams)
   - Get area paths and iterations for each team
   (get_team_area_paths, get_team_iterations)
3. Capture work item configuration for EACH project:
   - Process ID and details (get_project_process_id, get_process_details)
   - Work item types (get_work_item_types)
   - For each work item type, get ALL fields
   (get_work_item_type_fields) and clearly identify mandatory fields
   - Note differences in processes between projects

Create a concise markdown document with these sections:

1. **Projects and Teams**:
    List of all projects and their teams
2. **Work Item Types by Process**:
    Work item types grouped by process template,
    including ALL fields for each type with mandatory fields clearly marked
3. **Classification Structure**:
    Area paths and iterations for each team,
    with team-specific structures and patterns
4. **Naming Conventions**:
    Observed naming patterns across projects, teams, and items

Focus on identifying and documenting patterns and
variations between projects.
When listing field names or other details, prioritize the most important ones.
The goal is to create a reference that captures key conventions
while staying concise.`

func handleConventionsFilePrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return mcp.NewGetPromptResult(
		"Create a starting conventions file for Azure DevOps",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(conventionsFilePrompt)),
		},
	), nil
}

func handleWiqlQueryFormatPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	queryType, exists := request.Params.Arguments["query_type"]
	if !exists {
		return nil, fmt.Errorf("query_type is required")
	}

	baseFields := "[System.Id], [System.Title], [System.WorkItemType], [System.State], [System.AssignedTo]"
	if additionalFields := request.Params.Arguments["additional_fields"]; additionalFields != "" {
		baseFields += ", " + additionalFields
	}

	var template string
	var explanation string
	switch queryType {
	case "current_sprint":
		template = fmt.Sprintf("SELECT %s FROM WorkItems WHERE [System.IterationPath] = @currentIteration", baseFields)
		explanation = "This query gets all work items in the current sprint. The @currentIteration macro automatically resolves to the current sprint path."
	case "assigned_to_me":
		template = fmt.Sprintf("SELECT %s FROM WorkItems WHERE [System.AssignedTo] = @me AND [System.State] <> 'Closed'", baseFields)
		explanation = "This query gets all active work items assigned to the current user. The @me macro automatically resolves to the current user."
	case "active_bugs":
		template = fmt.Sprintf("SELECT %s FROM WorkItems WHERE [System.WorkItemType] = 'Bug' AND [System.State] <> 'Closed' ORDER BY [Microsoft.VSTS.Common.Priority]", baseFields)
		explanation = "This query gets all active bugs, ordered by priority."
	case "blocked_items":
		template = fmt.Sprintf("SELECT %s FROM WorkItems WHERE [System.State] <> 'Closed' AND [Microsoft.VSTS.Common.Blocked] = 'Yes'", baseFields)
		explanation = "This query gets all work items that are marked as blocked."
	case "recent_activity":
		template = fmt.Sprintf("SELECT %s FROM WorkItems WHERE [System.ChangedDate] > @today-7 ORDER BY [System.ChangedDate] DESC", baseFields)
		explanation = "This query gets all work items modified in the last 7 days, ordered by most recent first."
	default:
		return nil, fmt.Errorf("unknown query_type %q", queryType)
	}

	return mcp.NewGetPromptResult(
		"WIQL Query Format Helper",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(fmt.Sprintf("Here's a template for a %s query:\n\n```sql\n%s\n```\n\n%s\n\nCommon WIQL Tips:\n- Use square brackets [] around field names\n- Common macros: @me, @today, @currentIteration\n- Date arithmetic: @today+/-n\n- String comparison is case-insensitive\n- Use 'Contains' for partial matches", queryType, template, explanation)),
			),
		},
	), nil
}
