package mcp

import (
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// The JSON decoder hands numeric arguments over as float64. These helpers
// pull optional numbers out of a request without caring whether the client
// sent a number or a numeric string.

func optionalInt(request mcp.CallToolRequest, key string) (int, bool) {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func optionalFloat(request mcp.CallToolRequest, key string) (float64, bool) {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// parseIDList splits a comma-separated list of work item IDs. Blank entries
// are skipped; a malformed entry fails the whole list.
func parseIDList(raw string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// errorResult renders a client-boundary error the way every tool reports
// it: a tool error result carrying "Error: <message>", never a Go error.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}
