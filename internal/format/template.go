package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
)

// Template renders the detail view of a work item template, including the
// field values it pre-populates, sorted by reference name.
func Template(template workitemtracking.WorkItemTemplate) string {
	lines := []string{fmt.Sprintf("# Template: %s", strOrEmpty(template.Name))}
	if template.Description != nil && *template.Description != "" {
		lines = append(lines, fmt.Sprintf("Description: %s", *template.Description))
	}
	if template.WorkItemTypeName != nil && *template.WorkItemTypeName != "" {
		lines = append(lines, fmt.Sprintf("Work item type name: %s", *template.WorkItemTypeName))
	}
	if template.Id != nil {
		lines = append(lines, fmt.Sprintf("Id: %s", template.Id.String()))
	}

	if template.Fields != nil && len(*template.Fields) > 0 {
		lines = append(lines, "\n## Default Field Values")
		refs := make([]string, 0, len(*template.Fields))
		for ref := range *template.Fields {
			refs = append(refs, ref)
		}
		sort.Strings(refs)
		for _, ref := range refs {
			lines = append(lines, fmt.Sprintf("- %s: %s", ref, (*template.Fields)[ref]))
		}
	}
	return strings.Join(lines, "\n")
}

// TemplateTable lists a team's templates, with the header naming the team,
// project, and any type filter applied.
func TemplateTable(teamDisplay, projectDisplay, workItemType string, templates []workitemtracking.WorkItemTemplateReference) string {
	header := fmt.Sprintf("# Work Item Templates for Team: %s (Project: %s)", teamDisplay, projectDisplay)
	if workItemType != "" {
		header += fmt.Sprintf(" (Filtered by type: %s)", workItemType)
	}

	rows := make([][]string, 0, len(templates))
	for _, template := range templates {
		rows = append(rows, []string{
			strOrEmpty(template.Name),
			strOrEmpty(template.WorkItemTypeName),
			strOrEmpty(template.Description),
		})
	}
	return header + "\n\n" + Table([]string{"Name", "Work Item Type", "Description"}, rows)
}
