// Package packager builds the Windows (Squirrel) installer bundle.
//
// Package runs the pipeline for an explicit build descriptor: reset the
// output directory, read the project version, delegate to the installer
// generator and enumerate the produced artifacts. Run is the CLI entry point
// that assembles the descriptor from settings and flags, then records the
// artifacts in a checksummed (and optionally signed) manifest.
package packager
