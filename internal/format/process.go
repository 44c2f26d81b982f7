package format

import (
	"fmt"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtrackingprocess"
)

// ProjectProcess renders the process binding of a project.
func ProjectProcess(projectName, processName, processID string) string {
	return strings.Join([]string{
		fmt.Sprintf("# Process for Project: %s", projectName),
		fmt.Sprintf("Process Name: %s", processName),
		fmt.Sprintf("Process ID: %s", processID),
	}, "\n")
}

// Process renders the detail view of a process, with the work item types
// table appended when available.
func Process(process workitemtrackingprocess.ProcessInfo, types []workitemtrackingprocess.ProcessWorkItemType) string {
	lines := []string{fmt.Sprintf("# Process: %s", strOrEmpty(process.Name))}
	if process.Description != nil && *process.Description != "" {
		lines = append(lines, fmt.Sprintf("\nDescription: %s", *process.Description))
	}
	lines = append(lines, fmt.Sprintf("Reference Name: %s", orNA(process.ReferenceName)))
	typeID := "N/A"
	if process.TypeId != nil {
		typeID = process.TypeId.String()
	}
	lines = append(lines, fmt.Sprintf("Type ID: %s", typeID))

	if process.IsDefault != nil || process.IsEnabled != nil {
		lines = append(lines, "\n## Properties")
		if process.IsDefault != nil {
			lines = append(lines, fmt.Sprintf("Is default: %t", *process.IsDefault))
		}
		if process.IsEnabled != nil {
			lines = append(lines, fmt.Sprintf("Is enabled: %t", *process.IsEnabled))
		}
	}

	if len(types) > 0 {
		lines = append(lines, "\n## Work Item Types")
		rows := make([][]string, 0, len(types))
		for _, wit := range types {
			rows = append(rows, []string{
				strOrEmpty(wit.Name),
				strOrEmpty(wit.ReferenceName),
				strOrEmpty(wit.Description),
			})
		}
		lines = append(lines, Table([]string{"Name", "Reference Name", "Description"}, rows))
	}
	return strings.Join(lines, "\n")
}

// ProcessTable lists every process in the organization.
func ProcessTable(processes []workitemtrackingprocess.ProcessInfo) string {
	rows := make([][]string, 0, len(processes))
	for _, process := range processes {
		typeID := ""
		if process.TypeId != nil {
			typeID = process.TypeId.String()
		}
		rows = append(rows, []string{
			strOrEmpty(process.Name),
			typeID,
			strOrEmpty(process.ReferenceName),
			strOrEmpty(process.Description),
			yesNo(process.IsDefault),
		})
	}
	return "# Available Processes\n" +
		Table([]string{"Name", "ID", "Reference Name", "Description", "Is Default"}, rows)
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
