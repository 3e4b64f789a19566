// Package config loads and validates configuration for the receiver and
// the client applications.
//
// Settings are merged from three sources, later ones overriding earlier
// non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetServerConfig] and [GetClientConfig] return the per-application views;
// both are built on the shared [GetStructuredConfig] base.
package config
