package main

import "github.com/battlesnakeio/decaysnake/cmd/engine/commands"

func main() {
	commands.Execute()
}
