// Package version exposes build metadata of the release tooling.
//
// Version, Commit and BuildTime are injected with -ldflags at build time.
// Short and Full render them for the `version` subcommand and for logs.
package version
