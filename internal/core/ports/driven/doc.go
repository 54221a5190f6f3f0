// Package driven defines the secondary ports of the application: the
// interfaces core services depend on for catalog data, indexing, and
// configuration. Adapters implement these against files, memory, or
// embedded data.
package driven
