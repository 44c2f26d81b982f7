package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"

	"github.com/ctagard/ado-mcp/internal/azdo"
	"github.com/ctagard/ado-mcp/internal/errors"
	"github.com/ctagard/ado-mcp/internal/fields"
	"github.com/ctagard/ado-mcp/internal/format"
)

// Work Item Read Handlers

func (s *Server) handleQueryWorkItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return errorResult(errors.MissingParameter("query",
			"Supply a WIQL query string, e.g. \"SELECT [System.Id] FROM WorkItems\".")), nil
	}
	top, ok := optionalInt(request, "top")
	if !ok {
		top = 30
	}

	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := queryWorkItemsImpl(ctx, client, query, top)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error querying work items: %v", err)), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleGetWorkItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	if raw := request.GetString("ids", ""); raw != "" {
		ids, err := parseIDList(raw)
		if err != nil {
			return errorResult(errors.InvalidParameter("ids", raw,
				"a comma-separated list of numeric work item IDs, e.g. \"12,34,56\"")), nil
		}
		return mcp.NewToolResultText(getWorkItemsImpl(ctx, client, ids)), nil
	}

	id, ok := optionalInt(request, "id")
	if !ok {
		return errorResult(errors.MissingParameter("id",
			"Supply a work item ID, or ids for a batch.")), nil
	}
	return mcp.NewToolResultText(getWorkItemImpl(ctx, client, id)), nil
}

// queryWorkItemsImpl runs a WIQL query and renders every matching work
// item in full. The query only yields references, so the matches are
// re-fetched as a batch with relations expanded.
func queryWorkItemsImpl(ctx context.Context, client azdo.WorkItemClient, query string, top int) (string, error) {
	wiql := workitemtracking.Wiql{Query: &query}
	result, err := client.QueryByWiql(ctx, workitemtracking.QueryByWiqlArgs{
		Wiql: &wiql,
		Top:  &top,
	})
	if err != nil {
		return "", err
	}
	if result == nil || result.WorkItems == nil || len(*result.WorkItems) == 0 {
		return "No work items found matching the query.", nil
	}

	ids := make([]int, 0, len(*result.WorkItems))
	for _, ref := range *result.WorkItems {
		if ref.Id != nil {
			ids = append(ids, *ref.Id)
		}
	}

	items, err := fetchWorkItems(ctx, client, ids)
	if err != nil {
		return "", err
	}
	return strings.Join(renderWorkItems(items), "\n\n"), nil
}

// getWorkItemImpl fetches a single work item with everything expanded.
func getWorkItemImpl(ctx context.Context, client azdo.WorkItemClient, id int) string {
	expand := workitemtracking.WorkItemExpandValues.All
	item, err := client.GetWorkItem(ctx, workitemtracking.GetWorkItemArgs{
		Id:     &id,
		Expand: &expand,
	})
	if err != nil {
		return fmt.Sprintf("Error retrieving work item %d: %v", id, err)
	}
	return format.WorkItem(item)
}

// getWorkItemsImpl fetches a batch of work items. Items the API could not
// resolve are omitted rather than failing the whole batch.
func getWorkItemsImpl(ctx context.Context, client azdo.WorkItemClient, ids []int) string {
	items, err := fetchWorkItems(ctx, client, ids)
	if err != nil {
		return fmt.Sprintf("Error retrieving work items %v: %v", ids, err)
	}
	if len(items) == 0 {
		return "No work items found."
	}

	formatted := renderWorkItems(items)
	if len(formatted) == 0 {
		return "No valid work items found with the provided IDs."
	}
	return strings.Join(formatted, "\n\n")
}

func fetchWorkItems(ctx context.Context, client azdo.WorkItemClient, ids []int) ([]workitemtracking.WorkItem, error) {
	expand := workitemtracking.WorkItemExpandValues.All
	policy := workitemtracking.WorkItemErrorPolicyValues.Omit
	items, err := client.GetWorkItems(ctx, workitemtracking.GetWorkItemsArgs{
		Ids:         &ids,
		Expand:      &expand,
		ErrorPolicy: &policy,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		return nil, nil
	}
	return *items, nil
}

// renderWorkItems skips entries the omit error policy left unresolved.
func renderWorkItems(items []workitemtracking.WorkItem) []string {
	var formatted []string
	for i := range items {
		if items[i].Id == nil {
			continue
		}
		formatted = append(formatted, format.WorkItem(&items[i]))
	}
	return formatted
}

// Work Item Write Handlers

func (s *Server) handleCreateWorkItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return errorResult(errors.MissingParameter("title", "Supply a title for the new work item.")), nil
	}
	project, err := request.RequireString("project")
	if err != nil {
		return errorResult(errors.MissingParameter("project", "Supply the project name or ID.")), nil
	}
	workItemType, err := request.RequireString("work_item_type")
	if err != nil {
		return errorResult(errors.MissingParameter("work_item_type",
			"Supply the work item type, e.g. \"User Story\", \"Bug\", \"Task\".")), nil
	}

	std := standardFieldsFromRequest(request)
	std.Title = title
	parentID, _ := optionalInt(request, "parent_id")

	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := createWorkItemImpl(ctx, client, std.Prepare(), project, workItemType, parentID, azdo.OrganizationURL())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error creating work item: %v", err)), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleUpdateWorkItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := optionalInt(request, "id")
	if !ok {
		return errorResult(errors.MissingParameter("id", "Supply the ID of the work item to update.")), nil
	}

	std := standardFieldsFromRequest(request)
	std.Title = request.GetString("title", "")
	pairs := std.Prepare()
	if len(pairs) == 0 {
		return mcp.NewToolResultError("Error: At least one field must be specified for update"), nil
	}

	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := updateWorkItemImpl(ctx, client, id, pairs, request.GetString("project", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error updating work item: %v", err)), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleAddParentChildLink(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	parentID, ok := optionalInt(request, "parent_id")
	if !ok {
		return errorResult(errors.MissingParameter("parent_id", "Supply the ID of the parent work item.")), nil
	}
	childID, ok := optionalInt(request, "child_id")
	if !ok {
		return errorResult(errors.MissingParameter("child_id", "Supply the ID of the child work item.")), nil
	}

	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := addLinkImpl(ctx, client, childID, parentID, fields.HierarchyReverse,
		azdo.OrganizationURL(), request.GetString("project", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error creating parent-child link: %v", err)), nil
	}
	return mcp.NewToolResultText(result), nil
}

// standardFieldsFromRequest collects the optional standard fields shared by
// the create and update tools. Title is handled by the callers.
func standardFieldsFromRequest(request mcp.CallToolRequest) fields.Standard {
	std := fields.Standard{
		Description:   request.GetString("description", ""),
		State:         request.GetString("state", ""),
		AssignedTo:    request.GetString("assigned_to", ""),
		IterationPath: request.GetString("iteration_path", ""),
		AreaPath:      request.GetString("area_path", ""),
		Tags:          request.GetString("tags", ""),
	}
	if points, ok := optionalFloat(request, "story_points"); ok {
		std.StoryPoints = &points
	}
	if priority, ok := optionalInt(request, "priority"); ok {
		std.Priority = &priority
	}
	return std
}

// createWorkItemImpl creates a work item and, when parentID is set, links
// it under the parent. A failed link is a partial success: the item exists,
// so its rendering is returned along with the link error.
func createWorkItemImpl(ctx context.Context, client azdo.WorkItemClient, pairs []fields.Pair,
	project, workItemType string, parentID int, organizationURL string) (string, error) {

	document := fields.BuildFieldDocument(pairs, webapi.OperationValues.Add)
	created, err := client.CreateWorkItem(ctx, workitemtracking.CreateWorkItemArgs{
		Document: &document,
		Project:  &project,
		Type:     &workItemType,
	})
	if err != nil {
		return "", err
	}

	if parentID != 0 {
		linkDocument := fields.BuildLinkDocument(parentID, fields.HierarchyReverse, organizationURL)
		updated, err := client.UpdateWorkItem(ctx, workitemtracking.UpdateWorkItemArgs{
			Document: &linkDocument,
			Id:       created.Id,
			Project:  &project,
		})
		if err != nil {
			return fmt.Sprintf("Work item created successfully, but failed to establish "+
				"parent-child relationship: %v\n\n%s", err, format.WorkItem(created)), nil
		}
		created = updated
	}

	return format.WorkItem(created), nil
}

func updateWorkItemImpl(ctx context.Context, client azdo.WorkItemClient, id int,
	pairs []fields.Pair, project string) (string, error) {

	document := fields.BuildFieldDocument(pairs, webapi.OperationValues.Replace)
	args := workitemtracking.UpdateWorkItemArgs{
		Document: &document,
		Id:       &id,
	}
	if project != "" {
		args.Project = &project
	}

	updated, err := client.UpdateWorkItem(ctx, args)
	if err != nil {
		return "", err
	}
	return format.WorkItem(updated), nil
}

func addLinkImpl(ctx context.Context, client azdo.WorkItemClient, sourceID, targetID int,
	linkType, organizationURL, project string) (string, error) {

	document := fields.BuildLinkDocument(targetID, linkType, organizationURL)
	args := workitemtracking.UpdateWorkItemArgs{
		Document: &document,
		Id:       &sourceID,
	}
	if project != "" {
		args.Project = &project
	}

	updated, err := client.UpdateWorkItem(ctx, args)
	if err != nil {
		return "", err
	}
	return format.WorkItem(updated), nil
}
