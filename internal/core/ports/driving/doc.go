// Package driving defines the inbound port interfaces the CLI, TUI and MCP
// adapters call into the core through.
//
// The form session controller is intentionally absent here: it is a generic
// type instantiated per section, and a Go interface cannot range over those
// instantiations. Surfaces receive the concrete FormSession they need as a
// constructed argument instead of looking it up through a port.
package driving
