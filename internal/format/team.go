package format

import (
	"fmt"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/work"
)

// Team renders a single team with its owning project when known.
func Team(team core.WebApiTeam) string {
	lines := []string{fmt.Sprintf("# Team: %s", strOrEmpty(team.Name))}
	if team.Id != nil {
		lines = append(lines, fmt.Sprintf("ID: %s", team.Id.String()))
	}
	if team.Description != nil && *team.Description != "" {
		lines = append(lines, fmt.Sprintf("Description: %s", *team.Description))
	}
	if team.ProjectName != nil && *team.ProjectName != "" {
		lines = append(lines, fmt.Sprintf("Project: %s", *team.ProjectName))
	}
	if team.ProjectId != nil {
		lines = append(lines, fmt.Sprintf("Project ID: %s", team.ProjectId.String()))
	}
	return strings.Join(lines, "\n")
}

// TeamMember renders one roster entry. The header prefers the display name
// and falls back to the identity id.
func TeamMember(member webapi.TeamMember) string {
	var lines []string
	if member.Identity != nil {
		identity := member.Identity
		if identity.DisplayName != nil && *identity.DisplayName != "" {
			lines = append(lines, fmt.Sprintf("# Member: %s", *identity.DisplayName))
		} else {
			lines = append(lines, fmt.Sprintf("# Member ID: %s", strOrEmpty(identity.Id)))
		}
		if identity.Id != nil && *identity.Id != "" {
			lines = append(lines, fmt.Sprintf("ID: %s", *identity.Id))
		}
		if identity.Descriptor != nil && *identity.Descriptor != "" {
			lines = append(lines, fmt.Sprintf("Descriptor: %s", *identity.Descriptor))
		}
		if identity.UniqueName != nil && *identity.UniqueName != "" {
			lines = append(lines, fmt.Sprintf("Email/Username: %s", *identity.UniqueName))
		}
	} else {
		lines = append(lines, "# Unknown Member")
	}

	isAdmin := "No"
	if member.IsTeamAdmin != nil && *member.IsTeamAdmin {
		isAdmin = "Yes"
	}
	lines = append(lines, fmt.Sprintf("Team Administrator: %s", isAdmin))
	return strings.Join(lines, "\n")
}

// TeamAreaPaths renders the default area path plus every assigned path,
// marking the ones that cover their sub-tree.
func TeamAreaPaths(values work.TeamFieldValues) string {
	lines := []string{"# Team Area Paths"}
	if values.DefaultValue != nil && *values.DefaultValue != "" {
		lines = append(lines, fmt.Sprintf("Default Area Path: %s", *values.DefaultValue))
	}
	if values.Values != nil && len(*values.Values) > 0 {
		lines = append(lines, "\n## All Area Paths:")
		for _, areaPath := range *values.Values {
			entry := fmt.Sprintf("- %s", strOrEmpty(areaPath.Value))
			if areaPath.IncludeChildren != nil && *areaPath.IncludeChildren {
				entry += " (Including sub-areas)"
			}
			lines = append(lines, entry)
		}
	}
	return strings.Join(lines, "\n")
}

// TeamIteration renders one sprint with its date range and time frame.
func TeamIteration(iteration work.TeamSettingsIteration) string {
	lines := []string{fmt.Sprintf("# Iteration: %s", strOrEmpty(iteration.Name))}
	if iteration.Id != nil {
		lines = append(lines, fmt.Sprintf("ID: %s", iteration.Id.String()))
	}
	if iteration.Path != nil && *iteration.Path != "" {
		lines = append(lines, fmt.Sprintf("Path: %s", *iteration.Path))
	}
	if iteration.Attributes != nil {
		attrs := iteration.Attributes
		if ts := Timestamp(attrs.StartDate); ts != "" {
			lines = append(lines, fmt.Sprintf("Start Date: %s", ts))
		}
		if ts := Timestamp(attrs.FinishDate); ts != "" {
			lines = append(lines, fmt.Sprintf("Finish Date: %s", ts))
		}
		if attrs.TimeFrame != nil && *attrs.TimeFrame != "" {
			lines = append(lines, fmt.Sprintf("Time Frame: %s", string(*attrs.TimeFrame)))
		}
	}
	return strings.Join(lines, "\n")
}
