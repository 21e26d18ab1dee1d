// Package config loads, merges and validates the runtime settings of the
// storefront configuration library.
//
// Settings are assembled from several sources. Earlier sources win over later
// ones for every non-zero field:
//  1. Environment variables (prefix STOREFRONT_)
//  2. A JSON or YAML file named by STOREFRONT_CONFIG
//  3. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
