// Package app wires application dependencies for the CLI and the server.
//
// It loads Config from an optional YAML file, then builds the concrete
// loader, renderer, image store, service and API client, exposing them via
// the Wire struct for commands to use.
package app
