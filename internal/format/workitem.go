package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
)

// Well-known field reference names used by the structured rendering.
const (
	fieldTitle        = "System.Title"
	fieldWorkItemType = "System.WorkItemType"
	fieldState        = "System.State"
	fieldTeamProject  = "System.TeamProject"
)

// personFields are rendered with the person fallback in Additional Details.
var personFields = []struct{ label, ref string }{
	{"Assigned To", "System.AssignedTo"},
	{"Created By", "System.CreatedBy"},
	{"Changed By", "System.ChangedBy"},
	{"Activated By", "Microsoft.VSTS.Common.ActivatedBy"},
	{"Resolved By", "Microsoft.VSTS.Common.ResolvedBy"},
}

var dateFields = []struct{ label, ref string }{
	{"Created Date", "System.CreatedDate"},
	{"Changed Date", "System.ChangedDate"},
	{"Activated Date", "Microsoft.VSTS.Common.ActivatedDate"},
	{"Resolved Date", "Microsoft.VSTS.Common.ResolvedDate"},
	{"State Change Date", "Microsoft.VSTS.Common.StateChangeDate"},
}

var schedulingFields = []struct{ label, ref string }{
	{"Story Points", "Microsoft.VSTS.Scheduling.StoryPoints"},
	{"Effort", "Microsoft.VSTS.Scheduling.Effort"},
	{"Original Estimate", "Microsoft.VSTS.Scheduling.OriginalEstimate"},
	{"Remaining Work", "Microsoft.VSTS.Scheduling.RemainingWork"},
	{"Completed Work", "Microsoft.VSTS.Scheduling.CompletedWork"},
}

var classificationFields = []struct{ label, ref string }{
	{"Iteration", "System.IterationPath"},
	{"Area", "System.AreaPath"},
	{"Value Area", "Microsoft.VSTS.Common.ValueArea"},
	{"Risk", "Microsoft.VSTS.Common.Risk"},
	{"Severity", "Microsoft.VSTS.Common.Severity"},
	{"Tags", "System.Tags"},
}

var longTextSections = []struct{ heading, ref string }{
	{"Description", "System.Description"},
	{"Acceptance Criteria", "Microsoft.VSTS.Common.AcceptanceCriteria"},
	{"Repro Steps", "Microsoft.VSTS.TCM.ReproSteps"},
	{"System Information", "Microsoft.VSTS.TCM.SystemInfo"},
}

func workItemFields(wi *workitemtracking.WorkItem) map[string]interface{} {
	if wi == nil || wi.Fields == nil {
		return map[string]interface{}{}
	}
	return *wi.Fields
}

// fieldValue returns the normalized value of a field, Absent when the field
// is missing from the payload.
func fieldValue(fields map[string]interface{}, ref string) Value {
	raw, ok := fields[ref]
	if !ok {
		return Value{Kind: Absent}
	}
	return Normalize(raw)
}

// WorkItemBasic renders the fixed identification block: header with id and
// title, then type and state, plus project and URL when present.
func WorkItemBasic(wi *workitemtracking.WorkItem) string {
	fields := workItemFields(wi)

	title := "Untitled"
	if v := fieldValue(fields, fieldTitle); v.Kind != Absent {
		title = v.String()
	}
	itemType := "Unknown"
	if v := fieldValue(fields, fieldWorkItemType); v.Kind != Absent {
		itemType = v.String()
	}
	state := "Unknown"
	if v := fieldValue(fields, fieldState); v.Kind != Absent {
		state = v.String()
	}

	id := 0
	if wi != nil && wi.Id != nil {
		id = *wi.Id
	}

	lines := []string{
		fmt.Sprintf("# Work Item %d: %s", id, title),
		fmt.Sprintf("Type: %s", itemType),
		fmt.Sprintf("State: %s", state),
	}
	if v := fieldValue(fields, fieldTeamProject); v.Kind != Absent {
		lines = append(lines, fmt.Sprintf("Project: %s", v.String()))
	}
	if wi != nil && wi.Url != nil && *wi.Url != "" {
		lines = append(lines, fmt.Sprintf("Url: %s", *wi.Url))
	}
	return strings.Join(lines, "\n")
}

// WorkItem renders the full structured view: the basic block plus revision,
// the long-text sections that exist, an Additional Details section, and any
// relations. This is the canonical rendering used by every tool result.
func WorkItem(wi *workitemtracking.WorkItem) string {
	fields := workItemFields(wi)
	details := []string{WorkItemBasic(wi)}

	if wi != nil && wi.Rev != nil {
		details = append(details, fmt.Sprintf("Revision: %d", *wi.Rev))
	}

	for _, section := range longTextSections {
		if v := fieldValue(fields, section.ref); v.Kind != Absent && v.String() != "" {
			details = append(details, "\n## "+section.heading, v.String())
		}
	}

	if extra := additionalDetails(fields); len(extra) > 0 {
		details = append(details, "\n## Additional Details")
		details = append(details, extra...)
	}

	details = append(details, relationLines(wi)...)
	return strings.Join(details, "\n")
}

func additionalDetails(fields map[string]interface{}) []string {
	var lines []string
	appendIf := func(label, ref string) {
		if v := fieldValue(fields, ref); v.Kind != Absent && v.String() != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", label, v.String()))
		}
	}

	for _, f := range personFields {
		appendIf(f.label, f.ref)
	}
	for _, f := range dateFields {
		appendIf(f.label, f.ref)
	}
	appendIf("Reason", "System.Reason")
	lines = append(lines, boardLines(fields)...)
	for _, f := range schedulingFields {
		appendIf(f.label, f.ref)
	}
	for _, f := range classificationFields {
		appendIf(f.label, f.ref)
	}
	appendIf("Priority", "Microsoft.VSTS.Common.Priority")
	appendIf("Found In", "Microsoft.VSTS.Build.FoundIn")
	appendIf("Integration Build", "Microsoft.VSTS.Build.IntegrationBuild")
	return lines
}

// boardLines renders board placement. The done flag is an explicit boolean
// status: it renders whenever present, even when false.
func boardLines(fields map[string]interface{}) []string {
	var lines []string
	if v := fieldValue(fields, "System.BoardColumn"); v.Kind != Absent && v.String() != "" {
		lines = append(lines, fmt.Sprintf("Board Column: %s", v.String()))
		if raw, ok := fields["System.BoardColumnDone"]; ok {
			state := "Not Done"
			if done, isBool := raw.(bool); isBool && done {
				state = "Done"
			}
			lines = append(lines, fmt.Sprintf("Column State: %s", state))
		}
	}
	return lines
}

func relationLines(wi *workitemtracking.WorkItem) []string {
	if wi == nil || wi.Relations == nil || len(*wi.Relations) == 0 {
		return nil
	}
	lines := []string{"\n## Related Items"}
	for _, link := range *wi.Relations {
		rel, url := "", ""
		if link.Rel != nil {
			rel = *link.Rel
		}
		if link.Url != nil {
			url = *link.Url
		}
		lines = append(lines, fmt.Sprintf("- %s URL: %s", rel, url))
		if link.Attributes != nil && len(*link.Attributes) > 0 {
			lines = append(lines, fmt.Sprintf("  :: Attributes: %s", joinMap(*link.Attributes)))
		}
	}
	return lines
}

// WorkItemFields is the alternate debug rendering: every field in the
// payload, sorted by reference name, followed by relations. Kept alongside
// the structured view for callers that need the raw field surface.
func WorkItemFields(wi *workitemtracking.WorkItem) string {
	fields := workItemFields(wi)

	id := 0
	if wi != nil && wi.Id != nil {
		id = *wi.Id
	}
	details := []string{fmt.Sprintf("# Work Item %d", id)}

	refs := make([]string, 0, len(fields))
	for ref := range fields {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	for _, ref := range refs {
		details = append(details, fmt.Sprintf("- **%s**: %s", ref, Normalize(fields[ref]).String()))
	}

	details = append(details, relationLines(wi)...)
	return strings.Join(details, "\n")
}
