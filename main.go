package main

import (
	"github.com/fatih/color"

	"a11yreport/cmd"
)

// main is the entry point of the program.
func main() {
	// Banner goes to stderr; stdout carries only the output path.
	color.New(color.BgHiCyan).Fprintln(color.Error, "Starting a11yreport...")
	cmd.Execute()
}
