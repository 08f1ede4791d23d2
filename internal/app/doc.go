// Package app wires application dependencies for the CLI.
//
// It loads Config from flags, environment and an optional YAML file, sets up
// structured logging, and builds the concrete stores, backend client and
// services, exposing them via the Wire struct for commands to use.
package app
