// Package backends registers the platform adapter for the current host via
// init(). Importing it for side effects wires platform.NewBackendFunc; on
// hosts with no adapter the variable stays nil and backend selection fails
// with the unsupported-platform error.
package backends
