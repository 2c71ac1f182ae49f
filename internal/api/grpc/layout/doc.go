// Package layout implements the gRPC transport for the layout-state service.
//
// It converts domain snapshots to structpb messages, decorates them with the
// rendered sidebar switch, and streams changes to watchers.
package layout
