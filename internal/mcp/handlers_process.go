package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtrackingprocess"

	"github.com/ctagard/ado-mcp/internal/azdo"
	"github.com/ctagard/ado-mcp/internal/errors"
	"github.com/ctagard/ado-mcp/internal/format"
)

func (s *Server) handleGetProjectProcessID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project")
	if err != nil {
		return errorResult(errors.MissingParameter("project", "Supply the project ID or name.")), nil
	}

	client, err := azdo.NewCoreClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(getProjectProcessIDImpl(ctx, client, project)), nil
}

func (s *Server) handleGetProcessDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	processID, err := request.RequireString("process_id")
	if err != nil {
		return errorResult(errors.MissingParameter("process_id", "Supply the process ID.")), nil
	}

	client, err := azdo.NewProcessClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(getProcessDetailsImpl(ctx, client, processID)), nil
}

func (s *Server) handleListProcesses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := azdo.NewProcessClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(listProcessesImpl(ctx, client)), nil
}

func getProjectProcessIDImpl(ctx context.Context, client azdo.CoreClient, project string) string {
	template, details, err := processTemplateForProject(ctx, client, project)
	if err != nil {
		return fmt.Sprintf("Error retrieving process ID for project '%s': %v", project, err)
	}

	processID := template["templateTypeId"]
	if processID == "" {
		return fmt.Sprintf("Could not determine process ID for project %s.", project)
	}

	projectName := project
	if details != nil && details.Name != nil {
		projectName = *details.Name
	}
	return format.ProjectProcess(projectName, template["templateName"], processID)
}

func getProcessDetailsImpl(ctx context.Context, client azdo.ProcessClient, rawProcessID string) string {
	processID, err := uuid.Parse(rawProcessID)
	if err != nil {
		return fmt.Sprintf("Error retrieving process details for process ID '%s': %v", rawProcessID, err)
	}

	process, err := client.GetProcessByItsId(ctx, workitemtrackingprocess.GetProcessByItsIdArgs{
		ProcessTypeId: &processID,
	})
	if err != nil {
		return fmt.Sprintf("Error retrieving process details for process ID '%s': %v", rawProcessID, err)
	}
	if process == nil {
		return fmt.Sprintf("Process with ID '%s' not found.", rawProcessID)
	}

	// The type listing is supplementary; the process detail still renders
	// when it cannot be fetched.
	var types []workitemtrackingprocess.ProcessWorkItemType
	witTypes, err := client.GetProcessWorkItemTypes(ctx, workitemtrackingprocess.GetProcessWorkItemTypesArgs{
		ProcessId: &processID,
	})
	if err == nil && witTypes != nil {
		types = *witTypes
	}
	return format.Process(*process, types)
}

func listProcessesImpl(ctx context.Context, client azdo.ProcessClient) string {
	processes, err := client.GetListOfProcesses(ctx, workitemtrackingprocess.GetListOfProcessesArgs{})
	if err != nil {
		return fmt.Sprintf("Error retrieving processes: %v", err)
	}
	if processes == nil || len(*processes) == 0 {
		return "No processes found in the organization."
	}
	return format.ProcessTable(*processes)
}
