package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtrackingprocess"

	"github.com/ctagard/ado-mcp/internal/azdo"
	"github.com/ctagard/ado-mcp/internal/errors"
	"github.com/ctagard/ado-mcp/internal/format"
)

func (s *Server) handleGetWorkItemTypes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project")
	if err != nil {
		return errorResult(errors.MissingParameter("project", "Supply the project ID or name.")), nil
	}

	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(getWorkItemTypesImpl(ctx, client, project)), nil
}

func (s *Server) handleGetWorkItemType(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project")
	if err != nil {
		return errorResult(errors.MissingParameter("project", "Supply the project ID or name.")), nil
	}
	typeName, err := request.RequireString("type_name")
	if err != nil {
		return errorResult(errors.MissingParameter("type_name", "Supply the work item type name.")), nil
	}

	client, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(getWorkItemTypeImpl(ctx, client, project, typeName)), nil
}

func (s *Server) handleGetWorkItemTypeFields(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project")
	if err != nil {
		return errorResult(errors.MissingParameter("project", "Supply the project ID or name.")), nil
	}
	typeName, err := request.RequireString("type_name")
	if err != nil {
		return errorResult(errors.MissingParameter("type_name", "Supply the work item type name.")), nil
	}

	witClient, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	coreClient, err := azdo.NewCoreClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	processClient, err := azdo.NewProcessClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(
		getWorkItemTypeFieldsImpl(ctx, witClient, coreClient, processClient, project, typeName)), nil
}

func (s *Server) handleGetWorkItemTypeField(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project")
	if err != nil {
		return errorResult(errors.MissingParameter("project", "Supply the project ID or name.")), nil
	}
	typeName, err := request.RequireString("type_name")
	if err != nil {
		return errorResult(errors.MissingParameter("type_name", "Supply the work item type name.")), nil
	}
	fieldName, err := request.RequireString("field_name")
	if err != nil {
		return errorResult(errors.MissingParameter("field_name",
			"Supply the field's reference name or display name.")), nil
	}

	witClient, err := azdo.NewWorkItemClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	coreClient, err := azdo.NewCoreClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	processClient, err := azdo.NewProcessClient(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(
		getWorkItemTypeFieldImpl(ctx, witClient, coreClient, processClient, project, typeName, fieldName)), nil
}

func getWorkItemTypesImpl(ctx context.Context, client azdo.WorkItemClient, project string) string {
	types, err := client.GetWorkItemTypes(ctx, workitemtracking.GetWorkItemTypesArgs{Project: &project})
	if err != nil {
		return fmt.Sprintf("Error retrieving work item types for project '%s': %v", project, err)
	}
	if types == nil || len(*types) == 0 {
		return fmt.Sprintf("No work item types found in project %s.", project)
	}
	return format.WorkItemTypeTable(project, *types)
}

func getWorkItemTypeImpl(ctx context.Context, client azdo.WorkItemClient, project, typeName string) string {
	wit, err := client.GetWorkItemType(ctx, workitemtracking.GetWorkItemTypeArgs{
		Project: &project,
		Type:    &typeName,
	})
	if err != nil || wit == nil {
		return fmt.Sprintf("Work item type '%s' not found in project %s.", typeName, project)
	}
	return format.WorkItemType(*wit)
}

// processTemplateForProject resolves the process template capability block
// of a project. The returned map carries templateTypeId and templateName.
func processTemplateForProject(ctx context.Context, client azdo.CoreClient, project string) (map[string]string, *core.TeamProject, error) {
	includeCapabilities := true
	details, err := client.GetProject(ctx, core.GetProjectArgs{
		ProjectId:           &project,
		IncludeCapabilities: &includeCapabilities,
	})
	if err != nil {
		return nil, nil, err
	}
	if details == nil || details.Capabilities == nil {
		return nil, details, nil
	}
	return (*details.Capabilities)["processTemplate"], details, nil
}

func getWorkItemTypeFieldsImpl(ctx context.Context, witClient azdo.WorkItemClient,
	coreClient azdo.CoreClient, processClient azdo.ProcessClient, project, typeName string) string {

	operationalError := func(err error) string {
		return fmt.Sprintf("Error retrieving fields for work item type '%s' in project '%s': %v",
			typeName, project, err)
	}

	wit, err := witClient.GetWorkItemType(ctx, workitemtracking.GetWorkItemTypeArgs{
		Project: &project,
		Type:    &typeName,
	})
	if err != nil {
		return operationalError(err)
	}
	if wit == nil || wit.ReferenceName == nil {
		return fmt.Sprintf("Work item type '%s' not found in project %s.", typeName, project)
	}

	processID, err := resolveProcessID(ctx, coreClient, project)
	if err != nil {
		return operationalError(err)
	}
	if processID == uuid.Nil {
		return fmt.Sprintf("Could not determine process ID for project %s", project)
	}

	typeFields, err := processClient.GetAllWorkItemTypeFields(ctx, workitemtrackingprocess.GetAllWorkItemTypeFieldsArgs{
		ProcessId:  &processID,
		WitRefName: wit.ReferenceName,
	})
	if err != nil {
		return operationalError(err)
	}
	if typeFields == nil || len(*typeFields) == 0 {
		return fmt.Sprintf("No fields found for work item type '%s' in project %s.", typeName, project)
	}
	return format.FieldTable(typeName, *typeFields)
}

func getWorkItemTypeFieldImpl(ctx context.Context, witClient azdo.WorkItemClient,
	coreClient azdo.CoreClient, processClient azdo.ProcessClient, project, typeName, fieldName string) string {

	operationalError := func(err error) string {
		return fmt.Sprintf("Error retrieving field '%s' for work item type '%s' in project '%s': %v",
			fieldName, typeName, project, err)
	}
	notFound := func() string {
		return fmt.Sprintf("Field '%s' not found for work item type '%s' in project '%s'.",
			fieldName, typeName, project)
	}

	wit, err := witClient.GetWorkItemType(ctx, workitemtracking.GetWorkItemTypeArgs{
		Project: &project,
		Type:    &typeName,
	})
	if err != nil {
		return operationalError(err)
	}
	if wit == nil || wit.ReferenceName == nil {
		return fmt.Sprintf("Work item type '%s' not found in project %s.", typeName, project)
	}

	processID, err := resolveProcessID(ctx, coreClient, project)
	if err != nil {
		return operationalError(err)
	}
	if processID == uuid.Nil {
		return fmt.Sprintf("Could not determine process ID for project %s", project)
	}

	// A name without a dot is a display name; resolve it against the full
	// field list of the type.
	refName := fieldName
	if !strings.Contains(fieldName, ".") {
		typeFields, err := processClient.GetAllWorkItemTypeFields(ctx, workitemtrackingprocess.GetAllWorkItemTypeFieldsArgs{
			ProcessId:  &processID,
			WitRefName: wit.ReferenceName,
		})
		if err != nil {
			return operationalError(err)
		}
		refName = ""
		if typeFields != nil {
			for _, field := range *typeFields {
				if field.Name != nil && strings.EqualFold(*field.Name, fieldName) && field.ReferenceName != nil {
					refName = *field.ReferenceName
					break
				}
			}
		}
		if refName == "" {
			return notFound()
		}
	}

	field, err := processClient.GetWorkItemTypeField(ctx, workitemtrackingprocess.GetWorkItemTypeFieldArgs{
		ProcessId:    &processID,
		WitRefName:   wit.ReferenceName,
		FieldRefName: &refName,
	})
	if err != nil {
		return operationalError(err)
	}
	if field == nil {
		return notFound()
	}
	return format.Field(*field)
}

// resolveProcessID returns the process template id of a project, or
// uuid.Nil when the capability block does not carry one.
func resolveProcessID(ctx context.Context, client azdo.CoreClient, project string) (uuid.UUID, error) {
	template, _, err := processTemplateForProject(ctx, client, project)
	if err != nil {
		return uuid.Nil, err
	}
	raw, ok := template["templateTypeId"]
	if !ok || raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, nil
	}
	return id, nil
}
