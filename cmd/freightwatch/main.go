package main

import (
	"freight-rate-watch/internal/cli"
)

func main() {
	cli.Execute()
}
