package main

import (
	"os"

	"github.com/ribgsilva/note-keeper/app/cmd/notes"
	"github.com/ribgsilva/note-keeper/app/cmd/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	case "notes":
		notes.Run(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	println("usage: cmd <group> <command> [args]")
	println()
	schema.ListCommands()
	println()
	notes.ListCommands()
}
