package format

import (
	"fmt"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
)

// Comment renders one discussion entry with its author and timestamp.
func Comment(comment workitemtracking.Comment) string {
	createdDate := ""
	if ts := Timestamp(comment.CreatedDate); ts != "" {
		createdDate = fmt.Sprintf(" on %s", ts)
	}

	author := "Unknown"
	if comment.CreatedBy != nil && comment.CreatedBy.DisplayName != nil && *comment.CreatedBy.DisplayName != "" {
		author = *comment.CreatedBy.DisplayName
	}

	text := "No text"
	if comment.Text != nil && *comment.Text != "" {
		text = *comment.Text
	}

	return fmt.Sprintf("## Comment by %s%s:\n%s", author, createdDate, text)
}
