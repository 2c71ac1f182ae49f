// Package project reads the project manifest (package.json) at the root of
// the application sources.
package project
