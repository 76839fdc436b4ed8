// Package config loads the note keeper configuration.
//
// Sources, from lowest to highest precedence:
//  1. built-in defaults
//  2. JSON config file (path from -c / -config or CONFIG)
//  3. environment variables
//  4. command-line flags
//
// Sources are merged with mergo: a non-zero value from a higher source
// overrides the lower one. [GetStructuredConfig] returns the full merged
// config used by the server, [GetClientConfig] the view used by the
// terminal client.
package config
