// Package commands defines the trendline CLI and wires dependencies for subcommands.
//
// Commands
//
//   - serve        Run the HTTP API
//   - fit          Fit a trendline to timestamps and values
//   - country      Print a country's trendline from the dataset
//   - plot         Render a country's data and trendline to <country>.png
//   - countries    List the countries in the dataset
//   - fingerprint  Print the dataset file's fingerprint
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds
// the dependency graph (loader, renderer, image store, service, API client)
// before any subcommand runs. With --server, fit, country, plot and
// countries call a running API instead of reading the dataset locally.
package commands
