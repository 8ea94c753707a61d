package main

import "github.com/mwk/arfcn-calculator/cmd/arfcn-calculator/cmd"

var version string // set by the compiler

func main() {
	cmd.Execute(version)
}
