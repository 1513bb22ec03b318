package main

import (
	"log"

	"codeberg.org/velat/layout-carousel-niri/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error: %+v", err)
	}
}
