// Package sidebar is the headless view model of the sidebar switch: an icon
// button bound to the shared "sidebar open" flag whose tooltip names the
// next action and the keyboard shortcut of the host platform.
package sidebar
