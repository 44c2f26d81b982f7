package azdo

import (
	"context"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/work"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtrackingprocess"

	"github.com/ctagard/ado-mcp/internal/errors"
)

// The interfaces below are the subsets of the SDK client surfaces this
// server actually calls. Tool implementations accept these so tests can
// substitute fakes; the SDK clients satisfy them directly.

// CoreClient covers project and team operations.
type CoreClient interface {
	GetProjects(ctx context.Context, args core.GetProjectsArgs) (*core.GetProjectsResponseValue, error)
	GetProject(ctx context.Context, args core.GetProjectArgs) (*core.TeamProject, error)
	GetAllTeams(ctx context.Context, args core.GetAllTeamsArgs) (*[]core.WebApiTeam, error)
	GetTeamMembersWithExtendedProperties(ctx context.Context, args core.GetTeamMembersWithExtendedPropertiesArgs) (*[]webapi.TeamMember, error)
}

// WorkClient covers team settings (area paths, iterations).
type WorkClient interface {
	GetTeamFieldValues(ctx context.Context, args work.GetTeamFieldValuesArgs) (*work.TeamFieldValues, error)
	GetTeamIterations(ctx context.Context, args work.GetTeamIterationsArgs) (*[]work.TeamSettingsIteration, error)
}

// WorkItemClient covers work item tracking operations.
type WorkItemClient interface {
	QueryByWiql(ctx context.Context, args workitemtracking.QueryByWiqlArgs) (*workitemtracking.WorkItemQueryResult, error)
	GetWorkItem(ctx context.Context, args workitemtracking.GetWorkItemArgs) (*workitemtracking.WorkItem, error)
	GetWorkItems(ctx context.Context, args workitemtracking.GetWorkItemsArgs) (*[]workitemtracking.WorkItem, error)
	CreateWorkItem(ctx context.Context, args workitemtracking.CreateWorkItemArgs) (*workitemtracking.WorkItem, error)
	UpdateWorkItem(ctx context.Context, args workitemtracking.UpdateWorkItemArgs) (*workitemtracking.WorkItem, error)
	GetComments(ctx context.Context, args workitemtracking.GetCommentsArgs) (*workitemtracking.CommentList, error)
	AddComment(ctx context.Context, args workitemtracking.AddCommentArgs) (*workitemtracking.Comment, error)
	GetWorkItemTypes(ctx context.Context, args workitemtracking.GetWorkItemTypesArgs) (*[]workitemtracking.WorkItemType, error)
	GetWorkItemType(ctx context.Context, args workitemtracking.GetWorkItemTypeArgs) (*workitemtracking.WorkItemType, error)
	GetTemplates(ctx context.Context, args workitemtracking.GetTemplatesArgs) (*[]workitemtracking.WorkItemTemplateReference, error)
	GetTemplate(ctx context.Context, args workitemtracking.GetTemplateArgs) (*workitemtracking.WorkItemTemplate, error)
}

// ProcessClient covers process template introspection.
type ProcessClient interface {
	GetListOfProcesses(ctx context.Context, args workitemtrackingprocess.GetListOfProcessesArgs) (*[]workitemtrackingprocess.ProcessInfo, error)
	GetProcessByItsId(ctx context.Context, args workitemtrackingprocess.GetProcessByItsIdArgs) (*workitemtrackingprocess.ProcessInfo, error)
	GetProcessWorkItemTypes(ctx context.Context, args workitemtrackingprocess.GetProcessWorkItemTypesArgs) (*[]workitemtrackingprocess.ProcessWorkItemType, error)
	GetAllWorkItemTypeFields(ctx context.Context, args workitemtrackingprocess.GetAllWorkItemTypeFieldsArgs) (*[]workitemtrackingprocess.ProcessWorkItemTypeField, error)
	GetWorkItemTypeField(ctx context.Context, args workitemtrackingprocess.GetWorkItemTypeFieldArgs) (*workitemtrackingprocess.ProcessWorkItemTypeField, error)
}

// NewCoreClient returns a core (projects/teams) client, or a ClientError
// when credentials are missing or the client cannot be fabricated.
func NewCoreClient(ctx context.Context) (CoreClient, error) {
	conn := NewConnection()
	if conn == nil {
		return nil, errors.CredentialsNotFound()
	}
	client, err := core.NewClient(ctx, conn)
	if err != nil {
		return nil, errors.ClientCreationFailed("core", err)
	}
	return client, nil
}

// NewWorkClient returns a work (team settings) client.
func NewWorkClient(ctx context.Context) (WorkClient, error) {
	conn := NewConnection()
	if conn == nil {
		return nil, errors.CredentialsNotFound()
	}
	client, err := work.NewClient(ctx, conn)
	if err != nil {
		return nil, errors.ClientCreationFailed("work", err)
	}
	return client, nil
}

// NewWorkItemClient returns a work item tracking client.
func NewWorkItemClient(ctx context.Context) (WorkItemClient, error) {
	conn := NewConnection()
	if conn == nil {
		return nil, errors.CredentialsNotFound()
	}
	client, err := workitemtracking.NewClient(ctx, conn)
	if err != nil {
		return nil, errors.ClientCreationFailed("work item tracking", err)
	}
	return client, nil
}

// NewProcessClient returns a work item tracking process client.
func NewProcessClient(ctx context.Context) (ProcessClient, error) {
	conn := NewConnection()
	if conn == nil {
		return nil, errors.CredentialsNotFound()
	}
	client, err := workitemtrackingprocess.NewClient(ctx, conn)
	if err != nil {
		return nil, errors.ClientCreationFailed("work item tracking process", err)
	}
	return client, nil
}
