package main

import "github.com/displayq/displayq/internal/cli"

func main() {
	cli.Execute()
}
