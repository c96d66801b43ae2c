// Package config provides configuration loading, merging, and validation
// facilities for the gateway.
//
// Configuration is assembled from multiple sources. For every field the first
// source that provides a non-zero value wins, in this order:
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. Validation happens once, at
// build time, so a missing credential or upstream setting stops the process
// before the HTTP listener starts.
package config
