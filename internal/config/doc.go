// Package config defines the settings shared by the release binaries and
// helpers to load, validate and save them in YAML format.
//
// The file has two sections: `release` drives squirrel-packager and
// `layout` drives the layout-state server and its clients.
package config
