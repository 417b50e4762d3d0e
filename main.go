// Package main provides the entry point for the perf-report CLI.
package main

import (
	"yqhp/perf-report/cmd"
)

func main() {
	cmd.Execute()
}
