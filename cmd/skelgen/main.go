package main

import "skelgen/cmd/skelgen/cmd"

// Overridden with -ldflags "-X main.version=1.0.0".
var version = "dev"

func main() {
	cmd.Execute(version)
}
