package main

import "github.com/oleksandr-romashko/libretto/internal/vehiclecli"

func main() {
	vehiclecli.Execute()
}
