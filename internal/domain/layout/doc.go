// Package layout contains the domain types of the shared window layout:
// who changed it (Actor) and what it currently is (State), with Clone
// helpers so callers never share internal pointers.
package layout
