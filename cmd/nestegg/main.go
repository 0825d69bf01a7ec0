package main

import (
	"github.com/nestegg/retirement-simulator/cmd/nestegg/commands"
)

func main() {
	commands.Execute()
}
