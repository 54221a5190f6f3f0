// Package driving defines the primary ports of the application: the
// interfaces through which the CLI, TUI, and MCP adapters invoke core
// services.
package driving
