package fields

import (
	"testing"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureReferenceName verifies short name normalization across casing
// and separator variants.
func TestEnsureReferenceName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"title", "System.Title"},
		{"Title", "System.Title"},
		{"TITLE", "System.Title"},
		{"story_points", "Microsoft.VSTS.Scheduling.StoryPoints"},
		{"Story Points", "Microsoft.VSTS.Scheduling.StoryPoints"},
		{"story-points", "Microsoft.VSTS.Scheduling.StoryPoints"},
		{"acceptance_criteria", "Microsoft.VSTS.Common.AcceptanceCriteria"},
		{"assigned_to", "System.AssignedTo"},
		{"iteration_path", "System.IterationPath"},
		// Qualified names pass through untouched.
		{"System.Title", "System.Title"},
		{"Custom.MyField", "Custom.MyField"},
		// Unknown short names pass through untouched.
		{"frobnicate", "frobnicate"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EnsureReferenceName(tt.in), "input %q", tt.in)
	}
}

// TestEnsureReferenceName_Idempotent verifies that applying the mapping
// twice is the same as applying it once.
func TestEnsureReferenceName_Idempotent(t *testing.T) {
	for _, in := range []string{"title", "story_points", "System.Title", "nonsense"} {
		once := EnsureReferenceName(in)
		assert.Equal(t, once, EnsureReferenceName(once))
	}
}

// TestStandardPrepare verifies the pair ordering and the string encoding of
// numeric fields.
func TestStandardPrepare(t *testing.T) {
	points := 5.0
	priority := 2
	std := Standard{
		Title:       "Fix login flow",
		Description: "Users get logged out",
		StoryPoints: &points,
		Priority:    &priority,
		Tags:        "auth; bug",
	}

	pairs := std.Prepare()
	require.Len(t, pairs, 5)
	assert.Equal(t, Pair{"System.Title", "Fix login flow"}, pairs[0])
	assert.Equal(t, Pair{"System.Description", "Users get logged out"}, pairs[1])
	assert.Equal(t, Pair{"Microsoft.VSTS.Scheduling.StoryPoints", "5"}, pairs[2])
	assert.Equal(t, Pair{"Microsoft.VSTS.Common.Priority", "2"}, pairs[3])
	assert.Equal(t, Pair{"System.Tags", "auth; bug"}, pairs[4])
}

// TestStandardPrepare_FractionalPoints verifies fractional story points
// keep their fractional part in the string encoding.
func TestStandardPrepare_FractionalPoints(t *testing.T) {
	points := 0.5
	pairs := Standard{StoryPoints: &points}.Prepare()
	require.Len(t, pairs, 1)
	assert.Equal(t, "0.5", pairs[0].Value)
}

// TestStandardPrepare_Empty verifies that an all-zero Standard yields no
// pairs at all.
func TestStandardPrepare_Empty(t *testing.T) {
	assert.Empty(t, Standard{}.Prepare())
}

// TestBuildFieldDocument verifies path prefixing, short name expansion, and
// passthrough of already-prefixed paths.
func TestBuildFieldDocument(t *testing.T) {
	document := BuildFieldDocument([]Pair{
		{"System.Title", "A"},
		{"priority", "1"},
		{"/fields/Custom.Raw", "B"},
	}, webapi.OperationValues.Add)

	require.Len(t, document, 3)
	assert.Equal(t, "/fields/System.Title", *document[0].Path)
	assert.Equal(t, "/fields/Microsoft.VSTS.Common.Priority", *document[1].Path)
	assert.Equal(t, "/fields/Custom.Raw", *document[2].Path)
	for _, op := range document {
		assert.Equal(t, webapi.OperationValues.Add, *op.Op)
	}
	assert.Equal(t, "A", document[0].Value)
}

// TestBuildFieldDocument_ReplaceOp verifies the operation is carried
// through for updates.
func TestBuildFieldDocument_ReplaceOp(t *testing.T) {
	document := BuildFieldDocument([]Pair{{"state", "Active"}}, webapi.OperationValues.Replace)
	require.Len(t, document, 1)
	assert.Equal(t, webapi.OperationValues.Replace, *document[0].Op)
	assert.Equal(t, "/fields/System.State", *document[0].Path)
}

// TestBuildLinkDocument verifies the single relation operation and the
// target URL shape.
func TestBuildLinkDocument(t *testing.T) {
	document := BuildLinkDocument(42, HierarchyReverse, "https://dev.azure.com/myorg")

	require.Len(t, document, 1)
	assert.Equal(t, webapi.OperationValues.Add, *document[0].Op)
	assert.Equal(t, "/relations/-", *document[0].Path)

	value, ok := document[0].Value.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "System.LinkTypes.Hierarchy-Reverse", value["rel"])
	assert.Equal(t, "https://dev.azure.com/myorg/_apis/wit/workItems/42", value["url"])
}
