// Package fields handles work item field reference names and the JSON patch
// documents used to create and update work items.
//
// Azure DevOps addresses fields by fully qualified reference name
// (e.g. System.Title). Callers commonly pass short display-style names
// ("title", "story_points"); this package normalizes the known short names
// and builds patch documents with properly prefixed paths.
package fields

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
)

// HierarchyReverse is the relation kind of a child-to-parent link.
const HierarchyReverse = "System.LinkTypes.Hierarchy-Reverse"

// shortNames maps lowercased, separator-stripped short names to their
// canonical reference names. Unknown names pass through untouched.
var shortNames = map[string]string{
	"title":              "System.Title",
	"description":        "System.Description",
	"state":              "System.State",
	"reason":             "System.Reason",
	"assignedto":         "System.AssignedTo",
	"iterationpath":      "System.IterationPath",
	"areapath":           "System.AreaPath",
	"tags":               "System.Tags",
	"history":            "System.History",
	"teamproject":        "System.TeamProject",
	"storypoints":        "Microsoft.VSTS.Scheduling.StoryPoints",
	"effort":             "Microsoft.VSTS.Scheduling.Effort",
	"remainingwork":      "Microsoft.VSTS.Scheduling.RemainingWork",
	"originalestimate":   "Microsoft.VSTS.Scheduling.OriginalEstimate",
	"completedwork":      "Microsoft.VSTS.Scheduling.CompletedWork",
	"priority":           "Microsoft.VSTS.Common.Priority",
	"severity":           "Microsoft.VSTS.Common.Severity",
	"risk":               "Microsoft.VSTS.Common.Risk",
	"valuearea":          "Microsoft.VSTS.Common.ValueArea",
	"acceptancecriteria": "Microsoft.VSTS.Common.AcceptanceCriteria",
	"reprosteps":         "Microsoft.VSTS.TCM.ReproSteps",
	"systeminfo":         "Microsoft.VSTS.TCM.SystemInfo",
}

var separatorStripper = strings.NewReplacer("_", "", "-", "", " ", "")

// EnsureReferenceName maps a known short field name to its fully qualified
// reference name. Matching is case- and separator-insensitive. A name that
// already contains a dot is treated as qualified and returned unchanged, so
// the function is idempotent; unrecognized names also pass through unchanged.
func EnsureReferenceName(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	key := strings.ToLower(separatorStripper.Replace(name))
	if ref, ok := shortNames[key]; ok {
		return ref
	}
	return name
}

// Pair is one field reference-name/value assignment.
type Pair struct {
	Ref   string
	Value interface{}
}

// Standard holds the optional standard fields accepted by the create and
// update work item tools. Zero values mean "not supplied".
type Standard struct {
	Title         string
	Description   string
	State         string
	AssignedTo    string
	IterationPath string
	AreaPath      string
	StoryPoints   *float64
	Priority      *int
	Tags          string
}

// Prepare returns the supplied fields as ordered reference-name/value pairs.
// Numeric values are carried as strings, which is what the work item patch
// endpoint accepts for every field type.
func (s Standard) Prepare() []Pair {
	var pairs []Pair
	if s.Title != "" {
		pairs = append(pairs, Pair{"System.Title", s.Title})
	}
	if s.Description != "" {
		pairs = append(pairs, Pair{"System.Description", s.Description})
	}
	if s.State != "" {
		pairs = append(pairs, Pair{"System.State", s.State})
	}
	if s.AssignedTo != "" {
		pairs = append(pairs, Pair{"System.AssignedTo", s.AssignedTo})
	}
	if s.IterationPath != "" {
		pairs = append(pairs, Pair{"System.IterationPath", s.IterationPath})
	}
	if s.AreaPath != "" {
		pairs = append(pairs, Pair{"System.AreaPath", s.AreaPath})
	}
	if s.StoryPoints != nil {
		pairs = append(pairs, Pair{
			"Microsoft.VSTS.Scheduling.StoryPoints",
			strconv.FormatFloat(*s.StoryPoints, 'f', -1, 64),
		})
	}
	if s.Priority != nil {
		pairs = append(pairs, Pair{
			"Microsoft.VSTS.Common.Priority",
			strconv.Itoa(*s.Priority),
		})
	}
	if s.Tags != "" {
		pairs = append(pairs, Pair{"System.Tags", s.Tags})
	}
	return pairs
}

// BuildFieldDocument builds a JSON patch document with one operation per
// pair. Paths are normalized to /fields/{reference-name}; a pair whose Ref
// already starts with /fields/ is used as-is.
func BuildFieldDocument(pairs []Pair, op webapi.Operation) []webapi.JsonPatchOperation {
	document := make([]webapi.JsonPatchOperation, 0, len(pairs))
	for _, pair := range pairs {
		path := pair.Ref
		if !strings.HasPrefix(path, "/fields/") {
			path = "/fields/" + EnsureReferenceName(path)
		}
		operation := op
		p := path
		document = append(document, webapi.JsonPatchOperation{
			Op:    &operation,
			Path:  &p,
			Value: pair.Value,
		})
	}
	return document
}

// BuildLinkDocument builds the single-operation patch document that adds a
// relation of the given kind pointing at the target work item.
func BuildLinkDocument(targetID int, linkType, organizationURL string) []webapi.JsonPatchOperation {
	op := webapi.OperationValues.Add
	path := "/relations/-"
	return []webapi.JsonPatchOperation{
		{
			Op:   &op,
			Path: &path,
			Value: map[string]interface{}{
				"rel": linkType,
				"url": fmt.Sprintf("%s/_apis/wit/workItems/%d", organizationURL, targetID),
			},
		},
	}
}
