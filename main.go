package main

import (
	"fmt"
	"os"
	"strings"

	"amp_buddy_go/benchmark"
	"amp_buddy_go/combinator"
	"amp_buddy_go/config"
	"amp_buddy_go/motif_finder"
	"amp_buddy_go/sanity_check"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`AMP Buddy - Custom Help Menu
Usage:
  amp_buddy <tool> [options]

Tools:
  motif_finder		Find shared k-mers and anagram motifs in a FASTA corpus
  combinator		Assemble candidate peptides from top anagram motifs
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("AMP Buddy - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tAMP Buddy:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tMotif Finder:\t\t%s\n", config.Motif_Finder)
	fmt.Printf("\tCombinator:\t\t%s\n", config.Combinator)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executable-specific help flags
	if len(os.Args) < 3 {
		if arg := os.Args[1]; arg == "-h" || arg == "-help" {
			printCustomHelp()
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "motif_finder":
			motif_finder.Run(cleanedArgs)
		case "combinator":
			combinator.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("amp_buddy %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
