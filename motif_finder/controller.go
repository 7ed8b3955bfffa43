package motif_finder

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"amp_buddy_go/config"
)

// Run executes the motif_finder tool.
func Run(args []string) {
	defaults := config.DefaultParams().MotifFinder

	// isolated flag set for the "motif_finder" subcommand
	fs := flag.NewFlagSet("motif_finder", flag.ExitOnError)

	inFile := fs.String("in_file", "", "FASTA file input (plain or gzipped)")
	outPrefix := fs.String("out_prefix", defaults.OutPrefix, "Prefix for output tables")
	format := fs.String("format", defaults.Format, "Table format: 'xlsx', 'csv' or 'tsv'")
	minLength := fs.Int("min_length", defaults.MinLength, "Shortest k-mer")
	maxLength := fs.Int("max_length", defaults.MaxLength, "Longest k-mer")
	tieBreak := fs.String("tie_break", defaults.TieBreak, "Order of equally common contributors: 'lexical' or 'encounter'")
	htmlOut := fs.Bool("html", defaults.HTML, "Also write an HTML summary with plots")
	cfgFile := fs.String("config", "", "TOML parameter file ([motif_finder] table)")
	quiet := fs.Bool("quiet", false, "Hide progress bars")
	verbose := fs.Bool("verbose", false, "Debug logging")

	if err := fs.Parse(args); err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}
	// unparsed arguments left over are an error
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	params := config.MotifParams{
		InFile:    *inFile,
		OutPrefix: *outPrefix,
		Format:    *format,
		MinLength: *minLength,
		MaxLength: *maxLength,
		TieBreak:  *tieBreak,
		HTML:      *htmlOut,
	}
	if *cfgFile != "" {
		loaded, err := config.LoadParams(*cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		params = mergeParams(loaded.MotifFinder, params, config.SetFlags(fs))
	}

	if params.InFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -in_file is required")
		fs.Usage()
		os.Exit(1)
	}

	motifs, out, err := Analyze(params, !*quiet)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d shared sequences to %s\n", len(motifs.Identical.Entries), out.Identical)
	fmt.Printf("Wrote %d anagram groups to %s\n", len(motifs.Rows), out.Anagrams)
	if params.HTML {
		fmt.Printf("Wrote HTML file: %s\n", out.HTML)
	}
}

// mergeParams lets explicitly set flags override the config file.
func mergeParams(file, cli config.MotifParams, set map[string]bool) config.MotifParams {
	if set["in_file"] {
		file.InFile = cli.InFile
	}
	if set["out_prefix"] {
		file.OutPrefix = cli.OutPrefix
	}
	if set["format"] {
		file.Format = cli.Format
	}
	if set["min_length"] {
		file.MinLength = cli.MinLength
	}
	if set["max_length"] {
		file.MaxLength = cli.MaxLength
	}
	if set["tie_break"] {
		file.TieBreak = cli.TieBreak
	}
	if set["html"] {
		file.HTML = cli.HTML
	}
	return file
}
