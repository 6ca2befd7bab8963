package main

import "github.com/danpozmanter/NoteSquirrel/pkg/cmd/root"

func main() {
	root.Execute()
}
