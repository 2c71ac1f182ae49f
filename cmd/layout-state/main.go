package main

import "github.com/oshokin/notes-release/cmd/layout-state/cmd"

func main() {
	cmd.Execute()
}
