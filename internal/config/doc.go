// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, environment
// variables prefixed STUDYSMART_). It provides type-safe access to the
// settings needed by the server, the Gemini generator and the storage
// backends while keeping configuration details separate from business logic.
package config
