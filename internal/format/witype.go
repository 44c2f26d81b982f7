package format

import (
	"fmt"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtrackingprocess"
)

// WorkItemType renders the full detail view of a type, including its
// state model when the payload carries one.
func WorkItemType(wit workitemtracking.WorkItemType) string {
	lines := []string{fmt.Sprintf("# Work Item Type: %s", strOrEmpty(wit.Name))}
	if wit.Description != nil && *wit.Description != "" {
		lines = append(lines, fmt.Sprintf("\nDescription: %s", *wit.Description))
	}
	if wit.Color != nil && *wit.Color != "" {
		lines = append(lines, fmt.Sprintf("Color: %s", *wit.Color))
	}
	if wit.Icon != nil && wit.Icon.Id != nil && *wit.Icon.Id != "" {
		lines = append(lines, fmt.Sprintf("Icon: %s", *wit.Icon.Id))
	}
	if wit.ReferenceName != nil && *wit.ReferenceName != "" {
		lines = append(lines, fmt.Sprintf("Reference name: %s", *wit.ReferenceName))
	}
	if wit.IsDisabled != nil {
		lines = append(lines, fmt.Sprintf("Is Disabled: %t", *wit.IsDisabled))
	}

	if wit.States != nil && len(*wit.States) > 0 {
		lines = append(lines, "\n## States")
		for _, state := range *wit.States {
			lines = append(lines, fmt.Sprintf("- %s (Category: %s, Color: %s)",
				strOrEmpty(state.Name), strOrEmpty(state.Category), strOrEmpty(state.Color)))
		}
	}
	return strings.Join(lines, "\n")
}

// WorkItemTypeTable lists every type of a project as a markdown table.
func WorkItemTypeTable(project string, types []workitemtracking.WorkItemType) string {
	rows := make([][]string, 0, len(types))
	for _, wit := range types {
		rows = append(rows, []string{
			strOrEmpty(wit.Name),
			strOrEmpty(wit.ReferenceName),
			strOrEmpty(wit.Description),
		})
	}
	return fmt.Sprintf("# Work Item Types in Project: %s\n\n", project) +
		Table([]string{"Name", "Reference Name", "Description"}, rows)
}

// FieldTable lists the fields of a work item type as a markdown table.
func FieldTable(typeName string, fields []workitemtrackingprocess.ProcessWorkItemTypeField) string {
	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		fieldType := ""
		if field.Type != nil {
			fieldType = string(*field.Type)
		}
		rows = append(rows, []string{
			strOrEmpty(field.Name),
			strOrEmpty(field.ReferenceName),
			fieldType,
			yesNo(field.Required),
			yesNo(field.ReadOnly),
		})
	}
	return fmt.Sprintf("# Fields for Work Item Type: %s\n\n", typeName) +
		Table([]string{"Name", "Reference Name", "Type", "Required", "Read Only"}, rows)
}

// Field renders the detail view of a single work item type field.
func Field(field workitemtrackingprocess.ProcessWorkItemTypeField) string {
	lines := []string{
		fmt.Sprintf("# Field: %s", strOrEmpty(field.Name)),
		fmt.Sprintf("Reference Name: %s", strOrEmpty(field.ReferenceName)),
	}
	if field.Description != nil && *field.Description != "" {
		lines = append(lines, fmt.Sprintf("Description: %s", *field.Description))
	}
	if field.Type != nil {
		lines = append(lines, fmt.Sprintf("Type: %s", string(*field.Type)))
	}
	lines = append(lines,
		fmt.Sprintf("Required: %s", yesNo(field.Required)),
		fmt.Sprintf("Read Only: %s", yesNo(field.ReadOnly)))

	if field.AllowedValues != nil && len(*field.AllowedValues) > 0 {
		lines = append(lines, "\n## Allowed Values")
		for _, value := range *field.AllowedValues {
			lines = append(lines, fmt.Sprintf("- %v", value))
		}
	}
	if field.DefaultValue != nil {
		lines = append(lines, fmt.Sprintf("\nDefault Value: %v", field.DefaultValue))
	}
	return strings.Join(lines, "\n")
}

func yesNo(b *bool) string {
	if b != nil && *b {
		return "Yes"
	}
	return "No"
}
