package main

import "github.com/reoring/wirekit/internal/cli"

func main() {
	cli.Execute()
}
