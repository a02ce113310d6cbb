// Package main is the entry point for the coopstats CLI tool, which reads
// StarCraft II co-op replay files and computes a per-match statistics report.
package main

import "github.com/nanpuhaha/SC2-Coop-Overlay/cmd"

func main() {
	cmd.Execute()
}
