// Package mcp provides the Model Context Protocol (MCP) server implementation.
//
// This package exposes Azure DevOps capabilities through MCP tools that can
// be used by AI assistants and other MCP clients:
//
// Work Items (read, always available):
//   - query_work_items: Run a WIQL query and render the matches
//   - get_work_item: Fetch one or several work items by ID
//   - get_work_item_comments: List the discussion on a work item
//
// Work Items (write, full mode only):
//   - create_work_item: Create a work item, optionally under a parent
//   - update_work_item: Update fields on an existing work item
//   - add_parent_child_link: Link two work items hierarchically
//   - add_work_item_comment: Append a comment to a work item
//
// Projects and Teams (always available):
//   - get_projects, get_all_teams, get_team_members,
//     get_team_area_paths, get_team_iterations
//
// Metadata (always available):
//   - get_work_item_types, get_work_item_type,
//     get_work_item_type_fields, get_work_item_type_field
//   - get_project_process_id, get_process_details, list_processes
//   - get_work_item_templates, get_work_item_template
//
// A resource template (azuredevops://workitems/{id}) and static prompts are
// also registered.
package mcp

import (
	"github.com/ctagard/ado-mcp/internal/config"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with Azure DevOps capabilities
type Server struct {
	mcpServer *server.MCPServer
	config    *config.Config
}

// NewServer creates a new ado-mcp server
func NewServer(cfg *config.Config) *Server {
	mcpServer := server.NewMCPServer(
		"ado-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)

	s := &Server{
		mcpServer: mcpServer,
		config:    cfg,
	}

	s.registerTools()
	s.registerResources()
	if cfg.EnablePrompts {
		s.registerPrompts()
	}

	return s
}

// ServeStdio starts the server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// GetConfig returns the server configuration
func (s *Server) GetConfig() *config.Config {
	return s.config
}
