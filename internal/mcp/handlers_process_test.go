package mcp

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtrackingprocess"
	"github.com/stretchr/testify/assert"
)

// TestGetProjectProcessIDImpl verifies the rendered binding and the
// missing-capability text.
func TestGetProjectProcessIDImpl(t *testing.T) {
	got := getProjectProcessIDImpl(context.Background(), coreClientWithProcess(agileProcessID), "phoenix-guid")
	want := "# Process for Project: Phoenix\n" +
		"Process Name: Agile\n" +
		"Process ID: " + agileProcessID
	assert.Equal(t, want, got)

	noCapability := &fakeCoreClient{
		getProject: func(core.GetProjectArgs) (*core.TeamProject, error) {
			return &core.TeamProject{}, nil
		},
	}
	assert.Equal(t, "Could not determine process ID for project Phoenix.",
		getProjectProcessIDImpl(context.Background(), noCapability, "Phoenix"))

	failing := &fakeCoreClient{
		getProject: func(core.GetProjectArgs) (*core.TeamProject, error) {
			return nil, fmt.Errorf("dial tcp: refused")
		},
	}
	assert.Equal(t, "Error retrieving process ID for project 'Phoenix': dial tcp: refused",
		getProjectProcessIDImpl(context.Background(), failing, "Phoenix"))
}

// TestGetProcessDetailsImpl verifies the detail rendering with its type
// table, and that a failing type listing does not fail the call.
func TestGetProcessDetailsImpl(t *testing.T) {
	client := &fakeProcessClient{
		getProcessByItsId: func(args workitemtrackingprocess.GetProcessByItsIdArgs) (*workitemtrackingprocess.ProcessInfo, error) {
			assert.Equal(t, uuid.MustParse(agileProcessID), *args.ProcessTypeId)
			return &workitemtrackingprocess.ProcessInfo{Name: ptr("Agile")}, nil
		},
		getProcessWorkItemTypes: func(workitemtrackingprocess.GetProcessWorkItemTypesArgs) (*[]workitemtrackingprocess.ProcessWorkItemType, error) {
			return &[]workitemtrackingprocess.ProcessWorkItemType{
				{Name: ptr("Bug")},
			}, nil
		},
	}

	got := getProcessDetailsImpl(context.Background(), client, agileProcessID)
	assert.Contains(t, got, "# Process: Agile")
	assert.Contains(t, got, "## Work Item Types")
	assert.Contains(t, got, "| Bug | N/A | N/A |")

	noTypes := &fakeProcessClient{
		getProcessByItsId: func(workitemtrackingprocess.GetProcessByItsIdArgs) (*workitemtrackingprocess.ProcessInfo, error) {
			return &workitemtrackingprocess.ProcessInfo{Name: ptr("Agile")}, nil
		},
		getProcessWorkItemTypes: func(workitemtrackingprocess.GetProcessWorkItemTypesArgs) (*[]workitemtrackingprocess.ProcessWorkItemType, error) {
			return nil, fmt.Errorf("VS403202: forbidden")
		},
	}
	got = getProcessDetailsImpl(context.Background(), noTypes, agileProcessID)
	assert.Contains(t, got, "# Process: Agile")
	assert.NotContains(t, got, "## Work Item Types")
}

// TestGetProcessDetailsImpl_BadID verifies malformed process IDs are
// reported inline without calling the API.
func TestGetProcessDetailsImpl_BadID(t *testing.T) {
	got := getProcessDetailsImpl(context.Background(), &fakeProcessClient{}, "not-a-guid")
	assert.Contains(t, got, "Error retrieving process details for process ID 'not-a-guid':")
}

// TestListProcessesImpl verifies the organization listing and the empty
// text.
func TestListProcessesImpl(t *testing.T) {
	client := &fakeProcessClient{
		getListOfProcesses: func(workitemtrackingprocess.GetListOfProcessesArgs) (*[]workitemtrackingprocess.ProcessInfo, error) {
			return &[]workitemtrackingprocess.ProcessInfo{
				{Name: ptr("Agile"), IsDefault: ptr(true)},
			}, nil
		},
	}
	got := listProcessesImpl(context.Background(), client)
	assert.Contains(t, got, "# Available Processes")
	assert.Contains(t, got, "| Agile | N/A | N/A | N/A | Yes |")

	empty := &fakeProcessClient{
		getListOfProcesses: func(workitemtrackingprocess.GetListOfProcessesArgs) (*[]workitemtrackingprocess.ProcessInfo, error) {
			return &[]workitemtrackingprocess.ProcessInfo{}, nil
		},
	}
	assert.Equal(t, "No processes found in the organization.",
		listProcessesImpl(context.Background(), empty))
}
