// Package state persists the layout State between layout-state server runs.
//
// FileRepository keeps the snapshot as protobuf JSON on disk and satisfies the
// Repository interface the server service depends on.
package state
