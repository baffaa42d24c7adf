// Package config provides configuration loading, merging, and validation
// facilities for the asimov-account CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file (-c / --config or ASIMOV_CONFIG)
//  3. Environment variables, including a ./.env file
//  4. Command-line flags
//
// The main entry points are [RegisterFlags], which declares the persistent
// flags on a pflag set, and [GetCLIConfig], which resolves home-relative
// paths and validates the result.
package config
