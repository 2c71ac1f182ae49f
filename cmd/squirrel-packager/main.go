package main

import "github.com/oshokin/notes-release/cmd/squirrel-packager/cmd"

func main() {
	cmd.Execute()
}
