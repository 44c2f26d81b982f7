package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ctagard/ado-mcp/internal/config"
	"github.com/ctagard/ado-mcp/internal/mcp"
	"github.com/ctagard/ado-mcp/internal/version"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file")
	mode := flag.String("mode", "full", "Capability mode: 'readonly' or 'full'")
	showVersion := flag.Bool("version", false, "Show version and exit")
	help := flag.Bool("help", false, "Show help and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("ado-mcp version %s\n", version.GetVersion())
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Override mode from command line
	if *mode == "readonly" {
		cfg.Mode = config.ModeReadOnly
	} else if *mode == "full" {
		cfg.Mode = config.ModeFull
	}

	// Kick off a non-blocking update check; the result is only logged.
	checker := version.NewChecker()
	checker.CheckForUpdatesAsync()

	// Create the server
	server := mcp.NewServer(cfg)

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Println("Shutting down...")
		if info := checker.GetUpdateInfo(); info != nil {
			if msg := info.UpdateMessage(); msg != "" {
				log.Println(msg)
			}
		}
		os.Exit(0)
	}()

	// Start serving via stdio
	log.Println("ado-mcp server starting...")
	if err := server.ServeStdio(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println(`ado-mcp: Azure DevOps MCP Server

A Model Context Protocol (MCP) server that exposes Azure DevOps work item
tracking to LLMs, enabling AI agents to query, inspect, and manage work items,
projects, and teams.

USAGE:
    ado-mcp [OPTIONS]

OPTIONS:
    -config <path>     Path to configuration file (JSON)
    -mode <mode>       Capability mode: 'readonly' or 'full' (default: full)
    -version           Show version and exit
    -help              Show this help message

ENVIRONMENT:
    AZURE_DEVOPS_PAT                Personal access token
    AZURE_DEVOPS_ORGANIZATION_URL   e.g. https://dev.azure.com/your-org

CONFIGURATION:
    Create a JSON configuration file to customize behavior:

    {
        "mode": "full",
        "enablePrompts": true
    }

MCP INTEGRATION:
    Add to your MCP client configuration:

    {
        "mcpServers": {
            "ado-mcp": {
                "command": "ado-mcp",
                "args": ["--mode", "full"],
                "env": {
                    "AZURE_DEVOPS_PAT": "<your-pat>",
                    "AZURE_DEVOPS_ORGANIZATION_URL": "https://dev.azure.com/your-org"
                }
            }
        }
    }

TOOLS:
    Work Items (read):
        query_work_items          Run a WIQL query
        get_work_item             Fetch one or several work items
        get_work_item_comments    List work item comments

    Work Items (full mode only):
        create_work_item          Create a work item
        update_work_item          Update work item fields
        add_parent_child_link     Link two work items hierarchically
        add_work_item_comment     Add a comment

    Projects and Teams:
        get_projects              List projects
        get_all_teams             List teams
        get_team_members          List team members
        get_team_area_paths       Team area path assignments
        get_team_iterations       Team sprints

    Metadata:
        get_work_item_types       Work item types of a project
        get_work_item_type        One type in detail
        get_work_item_type_fields Fields of a type
        get_work_item_type_field  One field in detail
        get_project_process_id    Process bound to a project
        get_process_details       One process in detail
        list_processes            All processes
        get_work_item_templates   Team templates
        get_work_item_template    One template in detail

For more information, visit: https://github.com/ctagard/ado-mcp`)
}
