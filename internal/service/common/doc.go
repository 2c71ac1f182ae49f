// Package common holds helpers shared by the layout-state commands.
//
// It provides a gRPC client wrapper with per-call timeouts and detection of
// the current system actor (hostname/username) for the audit trail.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
