// Package generator adapts the external installer generator.
//
// The packager only depends on the one-method Generator interface; Exec runs
// a real command, Func lets tests and embedders substitute their own.
package generator
