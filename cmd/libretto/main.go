package main

import "github.com/oleksandr-romashko/libretto/internal/cli"

func main() {
	cli.Execute()
}
