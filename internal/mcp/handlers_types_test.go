package mcp

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtrackingprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const agileProcessID = "adcc42ab-9882-485e-a3ed-7678f01f66bc"

// coreClientWithProcess returns a core client whose project carries the
// given process template capability block.
func coreClientWithProcess(templateTypeID string) *fakeCoreClient {
	return &fakeCoreClient{
		getProject: func(args core.GetProjectArgs) (*core.TeamProject, error) {
			capabilities := map[string]map[string]string{
				"processTemplate": {
					"templateTypeId": templateTypeID,
					"templateName":   "Agile",
				},
			}
			return &core.TeamProject{
				Name:         ptr("Phoenix"),
				Capabilities: &capabilities,
			}, nil
		},
	}
}

// TestGetWorkItemTypesImpl verifies the table listing and the empty text.
func TestGetWorkItemTypesImpl(t *testing.T) {
	client := &fakeWorkItemClient{
		getWorkItemTypes: func(args workitemtracking.GetWorkItemTypesArgs) (*[]workitemtracking.WorkItemType, error) {
			assert.Equal(t, "Phoenix", *args.Project)
			return &[]workitemtracking.WorkItemType{
				{Name: ptr("Bug"), ReferenceName: ptr("Microsoft.VSTS.WorkItemTypes.Bug")},
			}, nil
		},
	}

	got := getWorkItemTypesImpl(context.Background(), client, "Phoenix")
	assert.Contains(t, got, "# Work Item Types in Project: Phoenix")
	assert.Contains(t, got, "| Bug | Microsoft.VSTS.WorkItemTypes.Bug | N/A |")

	empty := &fakeWorkItemClient{
		getWorkItemTypes: func(workitemtracking.GetWorkItemTypesArgs) (*[]workitemtracking.WorkItemType, error) {
			return &[]workitemtracking.WorkItemType{}, nil
		},
	}
	assert.Equal(t, "No work item types found in project Phoenix.",
		getWorkItemTypesImpl(context.Background(), empty, "Phoenix"))
}

// TestGetWorkItemTypeImpl verifies the detail rendering and the not-found
// text.
func TestGetWorkItemTypeImpl(t *testing.T) {
	client := &fakeWorkItemClient{
		getWorkItemType: func(args workitemtracking.GetWorkItemTypeArgs) (*workitemtracking.WorkItemType, error) {
			assert.Equal(t, "Bug", *args.Type)
			return &workitemtracking.WorkItemType{Name: ptr("Bug")}, nil
		},
	}
	got := getWorkItemTypeImpl(context.Background(), client, "Phoenix", "Bug")
	assert.Contains(t, got, "# Work Item Type: Bug")

	missing := &fakeWorkItemClient{
		getWorkItemType: func(workitemtracking.GetWorkItemTypeArgs) (*workitemtracking.WorkItemType, error) {
			return nil, fmt.Errorf("type does not exist")
		},
	}
	assert.Equal(t, "Work item type 'Ticket' not found in project Phoenix.",
		getWorkItemTypeImpl(context.Background(), missing, "Phoenix", "Ticket"))
}

// TestResolveProcessID verifies parsing of the capability block and the
// nil result for projects without one.
func TestResolveProcessID(t *testing.T) {
	id, err := resolveProcessID(context.Background(), coreClientWithProcess(agileProcessID), "Phoenix")
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse(agileProcessID), id)

	noCapability := &fakeCoreClient{
		getProject: func(core.GetProjectArgs) (*core.TeamProject, error) {
			return &core.TeamProject{Name: ptr("Phoenix")}, nil
		},
	}
	id, err = resolveProcessID(context.Background(), noCapability, "Phoenix")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)

	unparseable := coreClientWithProcess("not-a-guid")
	id, err = resolveProcessID(context.Background(), unparseable, "Phoenix")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
}

// TestGetWorkItemTypeFieldsImpl verifies the process-scoped field listing.
func TestGetWorkItemTypeFieldsImpl(t *testing.T) {
	witClient := &fakeWorkItemClient{
		getWorkItemType: func(workitemtracking.GetWorkItemTypeArgs) (*workitemtracking.WorkItemType, error) {
			return &workitemtracking.WorkItemType{
				Name:          ptr("Bug"),
				ReferenceName: ptr("Microsoft.VSTS.WorkItemTypes.Bug"),
			}, nil
		},
	}
	processClient := &fakeProcessClient{
		getAllWorkItemTypeFields: func(args workitemtrackingprocess.GetAllWorkItemTypeFieldsArgs) (*[]workitemtrackingprocess.ProcessWorkItemTypeField, error) {
			assert.Equal(t, uuid.MustParse(agileProcessID), *args.ProcessId)
			assert.Equal(t, "Microsoft.VSTS.WorkItemTypes.Bug", *args.WitRefName)
			return &[]workitemtrackingprocess.ProcessWorkItemTypeField{
				{Name: ptr("Title"), ReferenceName: ptr("System.Title"), Required: ptr(true)},
			}, nil
		},
	}

	got := getWorkItemTypeFieldsImpl(context.Background(), witClient,
		coreClientWithProcess(agileProcessID), processClient, "Phoenix", "Bug")
	assert.Contains(t, got, "# Fields for Work Item Type: Bug")
	assert.Contains(t, got, "| Title | System.Title | N/A | Yes | No |")
}

// TestGetWorkItemTypeFieldsImpl_NoProcessID verifies the inline error when
// the project has no process template capability.
func TestGetWorkItemTypeFieldsImpl_NoProcessID(t *testing.T) {
	witClient := &fakeWorkItemClient{
		getWorkItemType: func(workitemtracking.GetWorkItemTypeArgs) (*workitemtracking.WorkItemType, error) {
			return &workitemtracking.WorkItemType{
				Name:          ptr("Bug"),
				ReferenceName: ptr("Microsoft.VSTS.WorkItemTypes.Bug"),
			}, nil
		},
	}
	noCapability := &fakeCoreClient{
		getProject: func(core.GetProjectArgs) (*core.TeamProject, error) {
			return &core.TeamProject{}, nil
		},
	}

	got := getWorkItemTypeFieldsImpl(context.Background(), witClient, noCapability,
		&fakeProcessClient{}, "Phoenix", "Bug")
	assert.Equal(t, "Could not determine process ID for project Phoenix", got)
}

// TestGetWorkItemTypeFieldImpl_ReferenceName verifies a dotted name skips
// display-name resolution.
func TestGetWorkItemTypeFieldImpl_ReferenceName(t *testing.T) {
	witClient := &fakeWorkItemClient{
		getWorkItemType: func(workitemtracking.GetWorkItemTypeArgs) (*workitemtracking.WorkItemType, error) {
			return &workitemtracking.WorkItemType{
				Name:          ptr("Bug"),
				ReferenceName: ptr("Microsoft.VSTS.WorkItemTypes.Bug"),
			}, nil
		},
	}
	processClient := &fakeProcessClient{
		getWorkItemTypeField: func(args workitemtrackingprocess.GetWorkItemTypeFieldArgs) (*workitemtrackingprocess.ProcessWorkItemTypeField, error) {
			assert.Equal(t, "System.Title", *args.FieldRefName)
			return &workitemtrackingprocess.ProcessWorkItemTypeField{
				Name:          ptr("Title"),
				ReferenceName: ptr("System.Title"),
			}, nil
		},
	}

	got := getWorkItemTypeFieldImpl(context.Background(), witClient,
		coreClientWithProcess(agileProcessID), processClient, "Phoenix", "Bug", "System.Title")
	assert.Contains(t, got, "# Field: Title")
}

// TestGetWorkItemTypeFieldImpl_DisplayName verifies a bare name resolves
// against the type's field list case-insensitively.
func TestGetWorkItemTypeFieldImpl_DisplayName(t *testing.T) {
	witClient := &fakeWorkItemClient{
		getWorkItemType: func(workitemtracking.GetWorkItemTypeArgs) (*workitemtracking.WorkItemType, error) {
			return &workitemtracking.WorkItemType{
				Name:          ptr("Bug"),
				ReferenceName: ptr("Microsoft.VSTS.WorkItemTypes.Bug"),
			}, nil
		},
	}
	processClient := &fakeProcessClient{
		getAllWorkItemTypeFields: func(workitemtrackingprocess.GetAllWorkItemTypeFieldsArgs) (*[]workitemtrackingprocess.ProcessWorkItemTypeField, error) {
			return &[]workitemtrackingprocess.ProcessWorkItemTypeField{
				{Name: ptr("Story Points"), ReferenceName: ptr("Microsoft.VSTS.Scheduling.StoryPoints")},
			}, nil
		},
		getWorkItemTypeField: func(args workitemtrackingprocess.GetWorkItemTypeFieldArgs) (*workitemtrackingprocess.ProcessWorkItemTypeField, error) {
			assert.Equal(t, "Microsoft.VSTS.Scheduling.StoryPoints", *args.FieldRefName)
			return &workitemtrackingprocess.ProcessWorkItemTypeField{
				Name:          ptr("Story Points"),
				ReferenceName: ptr("Microsoft.VSTS.Scheduling.StoryPoints"),
			}, nil
		},
	}

	got := getWorkItemTypeFieldImpl(context.Background(), witClient,
		coreClientWithProcess(agileProcessID), processClient, "Phoenix", "Bug", "story points")
	assert.Contains(t, got, "# Field: Story Points")
}

// TestGetWorkItemTypeFieldImpl_NotFound verifies the not-found text when a
// display name matches nothing.
func TestGetWorkItemTypeFieldImpl_NotFound(t *testing.T) {
	witClient := &fakeWorkItemClient{
		getWorkItemType: func(workitemtracking.GetWorkItemTypeArgs) (*workitemtracking.WorkItemType, error) {
			return &workitemtracking.WorkItemType{
				Name:          ptr("Bug"),
				ReferenceName: ptr("Microsoft.VSTS.WorkItemTypes.Bug"),
			}, nil
		},
	}
	processClient := &fakeProcessClient{
		getAllWorkItemTypeFields: func(workitemtrackingprocess.GetAllWorkItemTypeFieldsArgs) (*[]workitemtrackingprocess.ProcessWorkItemTypeField, error) {
			return &[]workitemtrackingprocess.ProcessWorkItemTypeField{}, nil
		},
	}

	got := getWorkItemTypeFieldImpl(context.Background(), witClient,
		coreClientWithProcess(agileProcessID), processClient, "Phoenix", "Bug", "Nonexistent")
	assert.Equal(t, "Field 'Nonexistent' not found for work item type 'Bug' in project 'Phoenix'.", got)
}
