// Package main is the entry point for the scanspec CLI.
package main

import "scanspec.dev/pkg/scanspec/cmd"

func main() {
	cmd.Execute()
}
