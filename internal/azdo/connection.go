// Package azdo provides the connection to Azure DevOps and typed client
// accessors for the resource areas this server talks to.
//
// Credentials are resolved from the process environment on every call:
//
//	AZURE_DEVOPS_PAT               personal access token
//	AZURE_DEVOPS_ORGANIZATION_URL  e.g. https://dev.azure.com/myorg
//
// Missing credentials are a recoverable condition reported per tool
// invocation, not a startup failure. Connections are cheap handles; no
// network call happens until a client method is invoked.
package azdo

import (
	"os"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
)

const (
	// EnvPAT names the environment variable holding the personal access token.
	EnvPAT = "AZURE_DEVOPS_PAT"

	// EnvOrganizationURL names the environment variable holding the
	// organization base URL.
	EnvOrganizationURL = "AZURE_DEVOPS_ORGANIZATION_URL"
)

// Credentials returns the PAT and organization URL from the environment.
// Either value may be empty; no validation happens here.
func Credentials() (pat string, organizationURL string) {
	return os.Getenv(EnvPAT), os.Getenv(EnvOrganizationURL)
}

// OrganizationURL returns the configured organization URL with any trailing
// slash removed, or the empty string when unconfigured. Used to build
// work-item link targets.
func OrganizationURL() string {
	_, orgURL := Credentials()
	return strings.TrimRight(orgURL, "/")
}

// NewConnection builds a connection to Azure DevOps, or nil when either
// credential is missing. The PAT is carried as the basic-auth password with
// an empty username.
func NewConnection() *azuredevops.Connection {
	pat, orgURL := Credentials()
	if pat == "" || orgURL == "" {
		return nil
	}
	return azuredevops.NewPatConnection(orgURL, pat)
}
