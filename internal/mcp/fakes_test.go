package mcp

import (
	"context"
	"errors"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/work"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtrackingprocess"

	"github.com/ctagard/ado-mcp/internal/fields"
)

// errNotStubbed is returned by any fake method the test did not wire.
var errNotStubbed = errors.New("not stubbed")

type fakeWorkItemClient struct {
	queryByWiql      func(workitemtracking.QueryByWiqlArgs) (*workitemtracking.WorkItemQueryResult, error)
	getWorkItem      func(workitemtracking.GetWorkItemArgs) (*workitemtracking.WorkItem, error)
	getWorkItems     func(workitemtracking.GetWorkItemsArgs) (*[]workitemtracking.WorkItem, error)
	createWorkItem   func(workitemtracking.CreateWorkItemArgs) (*workitemtracking.WorkItem, error)
	updateWorkItem   func(workitemtracking.UpdateWorkItemArgs) (*workitemtracking.WorkItem, error)
	getComments      func(workitemtracking.GetCommentsArgs) (*workitemtracking.CommentList, error)
	addComment       func(workitemtracking.AddCommentArgs) (*workitemtracking.Comment, error)
	getWorkItemTypes func(workitemtracking.GetWorkItemTypesArgs) (*[]workitemtracking.WorkItemType, error)
	getWorkItemType  func(workitemtracking.GetWorkItemTypeArgs) (*workitemtracking.WorkItemType, error)
	getTemplates     func(workitemtracking.GetTemplatesArgs) (*[]workitemtracking.WorkItemTemplateReference, error)
	getTemplate      func(workitemtracking.GetTemplateArgs) (*workitemtracking.WorkItemTemplate, error)
}

func (f *fakeWorkItemClient) QueryByWiql(_ context.Context, args workitemtracking.QueryByWiqlArgs) (*workitemtracking.WorkItemQueryResult, error) {
	if f.queryByWiql == nil {
		return nil, errNotStubbed
	}
	return f.queryByWiql(args)
}

func (f *fakeWorkItemClient) GetWorkItem(_ context.Context, args workitemtracking.GetWorkItemArgs) (*workitemtracking.WorkItem, error) {
	if f.getWorkItem == nil {
		return nil, errNotStubbed
	}
	return f.getWorkItem(args)
}

func (f *fakeWorkItemClient) GetWorkItems(_ context.Context, args workitemtracking.GetWorkItemsArgs) (*[]workitemtracking.WorkItem, error) {
	if f.getWorkItems == nil {
		return nil, errNotStubbed
	}
	return f.getWorkItems(args)
}

func (f *fakeWorkItemClient) CreateWorkItem(_ context.Context, args workitemtracking.CreateWorkItemArgs) (*workitemtracking.WorkItem, error) {
	if f.createWorkItem == nil {
		return nil, errNotStubbed
	}
	return f.createWorkItem(args)
}

func (f *fakeWorkItemClient) UpdateWorkItem(_ context.Context, args workitemtracking.UpdateWorkItemArgs) (*workitemtracking.WorkItem, error) {
	if f.updateWorkItem == nil {
		return nil, errNotStubbed
	}
	return f.updateWorkItem(args)
}

func (f *fakeWorkItemClient) GetComments(_ context.Context, args workitemtracking.GetCommentsArgs) (*workitemtracking.CommentList, error) {
	if f.getComments == nil {
		return nil, errNotStubbed
	}
	return f.getComments(args)
}

func (f *fakeWorkItemClient) AddComment(_ context.Context, args workitemtracking.AddCommentArgs) (*workitemtracking.Comment, error) {
	if f.addComment == nil {
		return nil, errNotStubbed
	}
	return f.addComment(args)
}

func (f *fakeWorkItemClient) GetWorkItemTypes(_ context.Context, args workitemtracking.GetWorkItemTypesArgs) (*[]workitemtracking.WorkItemType, error) {
	if f.getWorkItemTypes == nil {
		return nil, errNotStubbed
	}
	return f.getWorkItemTypes(args)
}

func (f *fakeWorkItemClient) GetWorkItemType(_ context.Context, args workitemtracking.GetWorkItemTypeArgs) (*workitemtracking.WorkItemType, error) {
	if f.getWorkItemType == nil {
		return nil, errNotStubbed
	}
	return f.getWorkItemType(args)
}

func (f *fakeWorkItemClient) GetTemplates(_ context.Context, args workitemtracking.GetTemplatesArgs) (*[]workitemtracking.WorkItemTemplateReference, error) {
	if f.getTemplates == nil {
		return nil, errNotStubbed
	}
	return f.getTemplates(args)
}

func (f *fakeWorkItemClient) GetTemplate(_ context.Context, args workitemtracking.GetTemplateArgs) (*workitemtracking.WorkItemTemplate, error) {
	if f.getTemplate == nil {
		return nil, errNotStubbed
	}
	return f.getTemplate(args)
}

type fakeCoreClient struct {
	getProjects    func(core.GetProjectsArgs) (*core.GetProjectsResponseValue, error)
	getProject     func(core.GetProjectArgs) (*core.TeamProject, error)
	getAllTeams    func(core.GetAllTeamsArgs) (*[]core.WebApiTeam, error)
	getTeamMembers func(core.GetTeamMembersWithExtendedPropertiesArgs) (*[]webapi.TeamMember, error)
}

func (f *fakeCoreClient) GetProjects(_ context.Context, args core.GetProjectsArgs) (*core.GetProjectsResponseValue, error) {
	if f.getProjects == nil {
		return nil, errNotStubbed
	}
	return f.getProjects(args)
}

func (f *fakeCoreClient) GetProject(_ context.Context, args core.GetProjectArgs) (*core.TeamProject, error) {
	if f.getProject == nil {
		return nil, errNotStubbed
	}
	return f.getProject(args)
}

func (f *fakeCoreClient) GetAllTeams(_ context.Context, args core.GetAllTeamsArgs) (*[]core.WebApiTeam, error) {
	if f.getAllTeams == nil {
		return nil, errNotStubbed
	}
	return f.getAllTeams(args)
}

func (f *fakeCoreClient) GetTeamMembersWithExtendedProperties(_ context.Context, args core.GetTeamMembersWithExtendedPropertiesArgs) (*[]webapi.TeamMember, error) {
	if f.getTeamMembers == nil {
		return nil, errNotStubbed
	}
	return f.getTeamMembers(args)
}

type fakeWorkClient struct {
	getTeamFieldValues func(work.GetTeamFieldValuesArgs) (*work.TeamFieldValues, error)
	getTeamIterations  func(work.GetTeamIterationsArgs) (*[]work.TeamSettingsIteration, error)
}

func (f *fakeWorkClient) GetTeamFieldValues(_ context.Context, args work.GetTeamFieldValuesArgs) (*work.TeamFieldValues, error) {
	if f.getTeamFieldValues == nil {
		return nil, errNotStubbed
	}
	return f.getTeamFieldValues(args)
}

func (f *fakeWorkClient) GetTeamIterations(_ context.Context, args work.GetTeamIterationsArgs) (*[]work.TeamSettingsIteration, error) {
	if f.getTeamIterations == nil {
		return nil, errNotStubbed
	}
	return f.getTeamIterations(args)
}

type fakeProcessClient struct {
	getListOfProcesses       func(workitemtrackingprocess.GetListOfProcessesArgs) (*[]workitemtrackingprocess.ProcessInfo, error)
	getProcessByItsId        func(workitemtrackingprocess.GetProcessByItsIdArgs) (*workitemtrackingprocess.ProcessInfo, error)
	getProcessWorkItemTypes  func(workitemtrackingprocess.GetProcessWorkItemTypesArgs) (*[]workitemtrackingprocess.ProcessWorkItemType, error)
	getAllWorkItemTypeFields func(workitemtrackingprocess.GetAllWorkItemTypeFieldsArgs) (*[]workitemtrackingprocess.ProcessWorkItemTypeField, error)
	getWorkItemTypeField     func(workitemtrackingprocess.GetWorkItemTypeFieldArgs) (*workitemtrackingprocess.ProcessWorkItemTypeField, error)
}

func (f *fakeProcessClient) GetListOfProcesses(_ context.Context, args workitemtrackingprocess.GetListOfProcessesArgs) (*[]workitemtrackingprocess.ProcessInfo, error) {
	if f.getListOfProcesses == nil {
		return nil, errNotStubbed
	}
	return f.getListOfProcesses(args)
}

func (f *fakeProcessClient) GetProcessByItsId(_ context.Context, args workitemtrackingprocess.GetProcessByItsIdArgs) (*workitemtrackingprocess.ProcessInfo, error) {
	if f.getProcessByItsId == nil {
		return nil, errNotStubbed
	}
	return f.getProcessByItsId(args)
}

func (f *fakeProcessClient) GetProcessWorkItemTypes(_ context.Context, args workitemtrackingprocess.GetProcessWorkItemTypesArgs) (*[]workitemtrackingprocess.ProcessWorkItemType, error) {
	if f.getProcessWorkItemTypes == nil {
		return nil, errNotStubbed
	}
	return f.getProcessWorkItemTypes(args)
}

func (f *fakeProcessClient) GetAllWorkItemTypeFields(_ context.Context, args workitemtrackingprocess.GetAllWorkItemTypeFieldsArgs) (*[]workitemtrackingprocess.ProcessWorkItemTypeField, error) {
	if f.getAllWorkItemTypeFields == nil {
		return nil, errNotStubbed
	}
	return f.getAllWorkItemTypeFields(args)
}

func (f *fakeProcessClient) GetWorkItemTypeField(_ context.Context, args workitemtrackingprocess.GetWorkItemTypeFieldArgs) (*workitemtrackingprocess.ProcessWorkItemTypeField, error) {
	if f.getWorkItemTypeField == nil {
		return nil, errNotStubbed
	}
	return f.getWorkItemTypeField(args)
}

func ptr[T any](v T) *T { return &v }

// titleOnlyPairs builds the minimal field assignment used by the create
// and update tests.
func titleOnlyPairs(title string) []fields.Pair {
	return []fields.Pair{{Ref: "System.Title", Value: title}}
}

func makeWorkItem(id int, fields map[string]interface{}) *workitemtracking.WorkItem {
	return &workitemtracking.WorkItem{Id: &id, Fields: &fields}
}
