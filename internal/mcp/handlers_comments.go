package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"

	"github.com/ctagard/ado-mcp/internal/azdo"
	"github.com/ctagard/ado-mcp/internal/errors"
	"github.com/ctagard/ado-mcp/internal/format"
)

func (s *Server) handleGetWorkItemComments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := optionalInt(request, "id")
	if !ok {
		return errorResult(errors.MissingParameter("id", "Supply the work item ID.")), nil
	}

	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := getWorkItemCommentsImpl(ctx, client, id, request.GetString("project", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error retrieving comments: %v", err)), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleAddWorkItemComment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := optionalInt(request, "id")
	if !ok {
		return errorResult(errors.MissingParameter("id", "Supply the work item ID.")), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return errorResult(errors.MissingParameter("text", "Supply the comment text.")), nil
	}

	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := addWorkItemCommentImpl(ctx, client, id, text, request.GetString("project", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error adding comment: %v", err)), nil
	}
	return mcp.NewToolResultText(result), nil
}

// projectForWorkItem resolves the owning project of a work item. The
// comments API is project-scoped, so calls without an explicit project go
// through this lookup first.
func projectForWorkItem(ctx context.Context, client azdo.WorkItemClient, id int) string {
	item, err := client.GetWorkItem(ctx, workitemtracking.GetWorkItemArgs{Id: &id})
	if err != nil || item == nil || item.Fields == nil {
		return ""
	}
	if project, ok := (*item.Fields)["System.TeamProject"].(string); ok {
		return project
	}
	return ""
}

func getWorkItemCommentsImpl(ctx context.Context, client azdo.WorkItemClient, id int, project string) (string, error) {
	if project == "" {
		project = projectForWorkItem(ctx, client, id)
		if project == "" {
			return fmt.Sprintf("Error retrieving work item %d to determine project", id), nil
		}
	}

	comments, err := client.GetComments(ctx, workitemtracking.GetCommentsArgs{
		Project:    &project,
		WorkItemId: &id,
	})
	if err != nil {
		return "", err
	}

	var formatted []string
	if comments != nil && comments.Comments != nil {
		for _, comment := range *comments.Comments {
			formatted = append(formatted, format.Comment(comment))
		}
	}
	if len(formatted) == 0 {
		return "No comments found for this work item.", nil
	}
	return strings.Join(formatted, "\n\n"), nil
}

func addWorkItemCommentImpl(ctx context.Context, client azdo.WorkItemClient, id int, text, project string) (string, error) {
	if project == "" {
		project = projectForWorkItem(ctx, client, id)
		if project == "" {
			return fmt.Sprintf("Error retrieving work item %d to determine project", id), nil
		}
	}

	comment, err := client.AddComment(ctx, workitemtracking.AddCommentArgs{
		Request:    &workitemtracking.CommentCreate{Text: &text},
		Project:    &project,
		WorkItemId: &id,
	})
	if err != nil {
		return "", err
	}
	return "Comment added successfully.\n\n" + format.Comment(*comment), nil
}
