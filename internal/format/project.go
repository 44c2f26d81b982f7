package format

import (
	"fmt"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
)

// Project renders a single project reference. Name and ID always appear,
// the remaining lines only when the payload carries them.
func Project(project core.TeamProjectReference) string {
	lines := []string{fmt.Sprintf("# Project: %s", strOrEmpty(project.Name))}
	if project.Id != nil {
		lines = append(lines, fmt.Sprintf("ID: %s", project.Id.String()))
	}
	if project.Description != nil && *project.Description != "" {
		lines = append(lines, fmt.Sprintf("Description: %s", *project.Description))
	}
	if project.State != nil && *project.State != "" {
		lines = append(lines, fmt.Sprintf("State: %s", string(*project.State)))
	}
	if project.Visibility != nil && *project.Visibility != "" {
		lines = append(lines, fmt.Sprintf("Visibility: %s", string(*project.Visibility)))
	}
	if project.Url != nil && *project.Url != "" {
		lines = append(lines, fmt.Sprintf("URL: %s", *project.Url))
	}
	if ts := Timestamp(project.LastUpdateTime); ts != "" {
		lines = append(lines, fmt.Sprintf("Last Updated: %s", ts))
	}
	return strings.Join(lines, "\n")
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
