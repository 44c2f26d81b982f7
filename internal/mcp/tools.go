package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers the Azure DevOps tool surface. Read tools are
// always exposed; mutating tools require full mode.
func (s *Server) registerTools() {
	// Work item reads
	s.registerQueryWorkItems()
	s.registerGetWorkItem()
	s.registerGetWorkItemComments()

	// Projects and teams
	s.registerGetProjects()
	s.registerGetAllTeams()
	s.registerGetTeamMembers()
	s.registerGetTeamAreaPaths()
	s.registerGetTeamIterations()

	// Work item metadata
	s.registerGetWorkItemTypes()
	s.registerGetWorkItemType()
	s.registerGetWorkItemTypeFields()
	s.registerGetWorkItemTypeField()
	s.registerGetProjectProcessID()
	s.registerGetProcessDetails()
	s.registerListProcesses()
	s.registerGetWorkItemTemplates()
	s.registerGetWorkItemTemplate()

	// Work item writes (full mode only)
	if s.config.CanMutate() {
		s.registerCreateWorkItem()
		s.registerUpdateWorkItem()
		s.registerAddParentChildLink()
		s.registerAddWorkItemComment()
	}
}

// Work Item Read Tools

func (s *Server) registerQueryWorkItems() {
	tool := mcp.NewTool("query_work_items",
		mcp.WithDescription("Query work items using WIQL (Work Item Query Language). Returns full details for every match, formatted as markdown."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The WIQL query string, e.g. \"SELECT [System.Id] FROM WorkItems WHERE [System.State] = 'Active'\""),
		),
		mcp.WithNumber("top",
			mcp.Description("Maximum number of results to return (default: 30)"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleQueryWorkItems)
}

func (s *Server) registerGetWorkItem() {
	tool := mcp.NewTool("get_work_item",
		mcp.WithDescription("Retrieve detailed information about one or multiple work items, including all system fields, custom fields, and relations."),
		mcp.WithNumber("id",
			mcp.Description("The work item ID. Use ids instead for a batch."),
		),
		mcp.WithString("ids",
			mcp.Description("Comma-separated list of work item IDs for batch retrieval, e.g. \"12,34,56\""),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetWorkItem)
}

func (s *Server) registerGetWorkItemComments() {
	tool := mcp.NewTool("get_work_item_comments",
		mcp.WithDescription("Retrieve all comments on a work item, with author names and timestamps, in chronological order."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("The work item ID"),
		),
		mcp.WithString("project",
			mcp.Description("Optional project name. Determined from the work item when omitted."),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetWorkItemComments)
}

// Work Item Write Tools

func (s *Server) registerCreateWorkItem() {
	tool := mcp.NewTool("create_work_item",
		mcp.WithDescription("Create a new work item in Azure DevOps. The item is created immediately and visible to everyone with access to the project. Set parent_id to place it under a parent in the hierarchy."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the work item"),
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("The project name or ID where the work item will be created"),
		),
		mcp.WithString("work_item_type",
			mcp.Required(),
			mcp.Description("Type of work item, e.g. \"User Story\", \"Bug\", \"Task\""),
		),
		mcp.WithString("description",
			mcp.Description("Optional description of the work item"),
		),
		mcp.WithString("state",
			mcp.Description("Optional initial state for the work item"),
		),
		mcp.WithString("assigned_to",
			mcp.Description("Optional user email to assign the work item to"),
		),
		mcp.WithNumber("parent_id",
			mcp.Description("Optional ID of a parent work item for hierarchy"),
		),
		mcp.WithString("iteration_path",
			mcp.Description("Optional iteration path for the work item"),
		),
		mcp.WithString("area_path",
			mcp.Description("Optional area path for the work item"),
		),
		mcp.WithNumber("story_points",
			mcp.Description("Optional story points value"),
		),
		mcp.WithNumber("priority",
			mcp.Description("Optional priority value"),
		),
		mcp.WithString("tags",
			mcp.Description("Optional tags as a comma-separated string"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleCreateWorkItem)
}

func (s *Server) registerUpdateWorkItem() {
	tool := mcp.NewTool("update_work_item",
		mcp.WithDescription("Update fields on an existing work item. At least one field must be supplied. Changes apply immediately and trigger any configured notifications."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("The ID of the work item to update"),
		),
		mcp.WithString("project",
			mcp.Description("Optional project name or ID"),
		),
		mcp.WithString("title",
			mcp.Description("Optional new title for the work item"),
		),
		mcp.WithString("description",
			mcp.Description("Optional new description"),
		),
		mcp.WithString("state",
			mcp.Description("Optional new state"),
		),
		mcp.WithString("assigned_to",
			mcp.Description("Optional user email to assign to"),
		),
		mcp.WithString("iteration_path",
			mcp.Description("Optional new iteration path"),
		),
		mcp.WithString("area_path",
			mcp.Description("Optional new area path"),
		),
		mcp.WithNumber("story_points",
			mcp.Description("Optional new story points value"),
		),
		mcp.WithNumber("priority",
			mcp.Description("Optional new priority value"),
		),
		mcp.WithString("tags",
			mcp.Description("Optional new tags as a comma-separated string"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleUpdateWorkItem)
}

func (s *Server) registerAddParentChildLink() {
	tool := mcp.NewTool("add_parent_child_link",
		mcp.WithDescription("Add a parent-child relationship between two work items. The child immediately appears under the parent in hierarchical views; a work item can have only one parent."),
		mcp.WithNumber("parent_id",
			mcp.Required(),
			mcp.Description("ID of the parent work item"),
		),
		mcp.WithNumber("child_id",
			mcp.Required(),
			mcp.Description("ID of the child work item"),
		),
		mcp.WithString("project",
			mcp.Description("Optional project name or ID"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleAddParentChildLink)
}

func (s *Server) registerAddWorkItemComment() {
	tool := mcp.NewTool("add_work_item_comment",
		mcp.WithDescription("Add a comment to a work item. Comments become part of the permanent history and cannot be edited or deleted; the comment is attributed to the PAT user."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("The work item ID"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text of the comment (supports markdown formatting)"),
		),
		mcp.WithString("project",
			mcp.Description("Optional project name. Determined from the work item when omitted."),
		),
	)
	s.mcpServer.AddTool(tool, s.handleAddWorkItemComment)
}

// Project and Team Tools

func (s *Server) registerGetProjects() {
	tool := mcp.NewTool("get_projects",
		mcp.WithDescription("List all projects in the Azure DevOps organization that the authenticated user can access."),
		mcp.WithString("state_filter",
			mcp.Description("Filter on projects in a specific state, e.g. \"wellFormed\", \"deleting\""),
		),
		mcp.WithNumber("top",
			mcp.Description("Maximum number of projects to return"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetProjects)
}

func (s *Server) registerGetAllTeams() {
	tool := mcp.NewTool("get_all_teams",
		mcp.WithDescription("List all teams in the Azure DevOps organization."),
		mcp.WithBoolean("user_is_member_of",
			mcp.Description("If true, return only teams where the current user is a member. Otherwise return all teams the user has read access to."),
		),
		mcp.WithNumber("top",
			mcp.Description("Maximum number of teams to return"),
		),
		mcp.WithNumber("skip",
			mcp.Description("Number of teams to skip"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetAllTeams)
}

func (s *Server) registerGetTeamMembers() {
	tool := mcp.NewTool("get_team_members",
		mcp.WithDescription("Retrieve the membership roster for a team, including administrator status."),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("The name or ID (GUID) of the team project the team belongs to"),
		),
		mcp.WithString("team_id",
			mcp.Required(),
			mcp.Description("The name or ID (GUID) of the team"),
		),
		mcp.WithNumber("top",
			mcp.Description("Maximum number of members to return"),
		),
		mcp.WithNumber("skip",
			mcp.Description("Number of members to skip"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetTeamMembers)
}

func (s *Server) registerGetTeamAreaPaths() {
	tool := mcp.NewTool("get_team_area_paths",
		mcp.WithDescription("Retrieve the area paths assigned to a team. Area paths determine which work items appear on the team's backlogs and boards."),
		mcp.WithString("project_name_or_id",
			mcp.Required(),
			mcp.Description("The name or ID of the team project"),
		),
		mcp.WithString("team_name_or_id",
			mcp.Required(),
			mcp.Description("The name or ID of the team"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetTeamAreaPaths)
}

func (s *Server) registerGetTeamIterations() {
	tool := mcp.NewTool("get_team_iterations",
		mcp.WithDescription("Retrieve the iterations (sprints) assigned to a team, with date ranges and time frames."),
		mcp.WithString("project_name_or_id",
			mcp.Required(),
			mcp.Description("The name or ID of the team project"),
		),
		mcp.WithString("team_name_or_id",
			mcp.Required(),
			mcp.Description("The name or ID of the team"),
		),
		mcp.WithBoolean("current",
			mcp.Description("If true, return only the current iteration"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetTeamIterations)
}

// Metadata Tools

func (s *Server) registerGetWorkItemTypes() {
	tool := mcp.NewTool("get_work_item_types",
		mcp.WithDescription("List all work item types in a project with their reference names and descriptions."),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project ID or project name"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetWorkItemTypes)
}

func (s *Server) registerGetWorkItemType() {
	tool := mcp.NewTool("get_work_item_type",
		mcp.WithDescription("Get detailed information about a work item type, including its states, color, and icon."),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project ID or project name"),
		),
		mcp.WithString("type_name",
			mcp.Required(),
			mcp.Description("The name of the work item type"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetWorkItemType)
}

func (s *Server) registerGetWorkItemTypeFields() {
	tool := mcp.NewTool("get_work_item_type_fields",
		mcp.WithDescription("List all fields of a work item type, with types and required/read-only status."),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project ID or project name"),
		),
		mcp.WithString("type_name",
			mcp.Required(),
			mcp.Description("The name of the work item type"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetWorkItemTypeFields)
}

func (s *Server) registerGetWorkItemTypeField() {
	tool := mcp.NewTool("get_work_item_type_field",
		mcp.WithDescription("Get detailed information about a single field of a work item type, including allowed values and constraints."),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project ID or project name"),
		),
		mcp.WithString("type_name",
			mcp.Required(),
			mcp.Description("The name of the work item type"),
		),
		mcp.WithString("field_name",
			mcp.Required(),
			mcp.Description("The reference name or display name of the field"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetWorkItemTypeField)
}

func (s *Server) registerGetProjectProcessID() {
	tool := mcp.NewTool("get_project_process_id",
		mcp.WithDescription("Get the process template bound to a project, with its name and ID."),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project ID or project name"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetProjectProcessID)
}

func (s *Server) registerGetProcessDetails() {
	tool := mcp.NewTool("get_process_details",
		mcp.WithDescription("Get detailed information about a process, including its properties and the work item types it defines."),
		mcp.WithString("process_id",
			mcp.Required(),
			mcp.Description("The ID of the process"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetProcessDetails)
}

func (s *Server) registerListProcesses() {
	tool := mcp.NewTool("list_processes",
		mcp.WithDescription("List all processes available in the organization with IDs and default status."),
	)
	s.mcpServer.AddTool(tool, s.handleListProcesses)
}

func (s *Server) registerGetWorkItemTemplates() {
	tool := mcp.NewTool("get_work_item_templates",
		mcp.WithDescription("List all work item templates for a team, optionally filtered by work item type."),
		mcp.WithString("project",
			mcp.Description("Project name (optional if project_id is provided)"),
		),
		mcp.WithString("project_id",
			mcp.Description("Project ID (optional if project is provided)"),
		),
		mcp.WithString("team",
			mcp.Description("Team name (optional if team_id is provided)"),
		),
		mcp.WithString("team_id",
			mcp.Description("Team ID (optional if team is provided)"),
		),
		mcp.WithString("work_item_type",
			mcp.Description("Optional work item type name to filter templates"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetWorkItemTemplates)
}

func (s *Server) registerGetWorkItemTemplate() {
	tool := mcp.NewTool("get_work_item_template",
		mcp.WithDescription("Get detailed information about a work item template, including the field values it pre-populates."),
		mcp.WithString("project",
			mcp.Description("Project name (optional if project_id is provided)"),
		),
		mcp.WithString("project_id",
			mcp.Description("Project ID (optional if project is provided)"),
		),
		mcp.WithString("team",
			mcp.Description("Team name (optional if team_id is provided)"),
		),
		mcp.WithString("team_id",
			mcp.Description("Team ID (optional if team is provided)"),
		),
		mcp.WithString("template_id",
			mcp.Required(),
			mcp.Description("The ID of the template"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleGetWorkItemTemplate)
}
