package main

import "github.com/pfrederiksen/nfl-data/internal/cli"

func main() {
	cli.Execute()
}
