package main

import (
	"github.com/bornholm/corpus-asana/internal/command"
	"github.com/bornholm/corpus-asana/internal/command/index"
	"github.com/bornholm/corpus-asana/internal/command/load"
)

func main() {
	command.Main(
		"corpus-asana", "load asana tasks as documents and index them into a corpus server",
		load.Command(),
		index.Command(),
	)
}
