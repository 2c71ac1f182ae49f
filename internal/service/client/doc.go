// Package client implements the layout-state toggle, status and watch commands.
//
// Each command connects to the layout server, performs its call, and prints
// the layout together with the tooltip rendered for the local platform.
package client
