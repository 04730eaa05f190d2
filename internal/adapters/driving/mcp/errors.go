// Package mcp provides an MCP (Model Context Protocol) server adapter for
// plume. It enables AI assistants to read project state and run imports.
package mcp

import "errors"

// ErrMissingProjectService is returned when the project service is not provided.
var ErrMissingProjectService = errors.New("mcp: project service is required")
