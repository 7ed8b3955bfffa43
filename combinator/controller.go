package combinator

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"amp_buddy_go/config"
	"amp_buddy_go/progress"
	common "amp_buddy_go/utils"
)

// OutputName is the FASTA file written inside the output folder.
const OutputName = "Generated_Peptides.fasta"

// Summary reports what Generate wrote.
type Summary struct {
	Ranked   int         // motifs surviving the filters
	Written  int         // combinations written in total
	ByTarget map[int]int // target length -> combinations written
	Path     string
}

// Generate ranks the motifs of params.InFile and writes every combination
// for each target length to <out_dir>/Generated_Peptides.fasta.
// Nothing is written when the input is missing or lacks a required column.
func Generate(params config.CombinatorParams, showProgress bool) (Summary, error) {
	summary := Summary{ByTarget: make(map[int]int)}
	if params.UnitLength < 1 {
		return summary, errors.Errorf("unit_length must be at least 1, got %d", params.UnitLength)
	}

	rows, err := LoadMotifRows(params.InFile)
	if err != nil {
		return summary, err
	}
	ranked := RankMotifs(rows, params.UnitLength, params.CountThreshold)
	summary.Ranked = len(ranked)
	log.Infof("ranked %d motifs of length %d with count > %d", len(ranked), params.UnitLength, params.CountThreshold)

	records, byTarget, err := buildRecords(ranked, params, showProgress)
	if err != nil {
		return summary, err
	}

	if err := os.MkdirAll(params.OutDir, 0o755); err != nil {
		return summary, errors.Wrapf(err, "failed to create %s", params.OutDir)
	}
	summary.Path = filepath.Join(params.OutDir, OutputName)
	if err := writeRecords(summary.Path, records); err != nil {
		return summary, err
	}
	summary.ByTarget = byTarget
	summary.Written = len(records)
	return summary, nil
}

// buildRecords renders every combination of every target length in memory,
// numbering headers across targets.
func buildRecords(ranked []MotifRow, params config.CombinatorParams, showProgress bool) ([]common.FastaRecord, map[int]int, error) {
	var records []common.FastaRecord
	byTarget := make(map[int]int)

	for _, target := range TargetLengths(params.MinLength, params.MaxLength, params.UnitLength) {
		n := target / params.UnitLength
		log.Debugf("length %d needs %d motifs", target, n)

		combos, err := GenerateCombinations(ranked, params.UnitLength, target)
		if err != nil {
			return nil, nil, err
		}

		bar := progress.New(fmt.Sprintf("length %d:", target), len(combos), showProgress)
		written := 0
		for _, c := range combos {
			bar.Increment()
			if err := checkCombination(c); err != nil {
				log.Warnf("combination %s: %v, skipped", c.Sequence, err)
				continue
			}
			records = append(records, common.FastaRecord{
				Header:   c.Header(len(records) + 1),
				Sequence: c.Sequence,
			})
			written++
		}
		bar.Done()

		byTarget[target] = written
		log.Infof("built %d combinations of length %d", written, target)
	}
	return records, byTarget, nil
}

// writeRecords writes path in one go and removes it again if writing fails.
func writeRecords(path string, records []common.FastaRecord) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	err = common.WriteFasta(out, records)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// checkCombination re-splits the label and compares it with the sequence.
func checkCombination(c Combination) error {
	unit, target, _, n, err := ParseLabel(c.Label())
	if err != nil {
		return err
	}
	if unit == 0 || n == 0 || unit*n != target || len([]rune(c.Sequence)) != target {
		return errors.Wrapf(ErrBadLabel, "%s does not describe %q", c.Label(), c.Sequence)
	}
	return nil
}

// Run executes the combinator tool.
func Run(args []string) {
	defaults := config.DefaultParams().Combinator

	// isolated flag set for the "combinator" subcommand
	fs := flag.NewFlagSet("combinator", flag.ExitOnError)

	inFile := fs.String("in_file", "", "Anagram table (.xlsx, .csv or .tsv) from motif_finder")
	outDir := fs.String("out_dir", defaults.OutDir, "Output folder for "+OutputName)
	unitLength := fs.Int("unit_length", defaults.UnitLength, "Length of each motif unit")
	minLength := fs.Int("min_length", defaults.MinLength, "Shortest combination length")
	maxLength := fs.Int("max_length", defaults.MaxLength, "Longest combination length")
	threshold := fs.Int("count_threshold", defaults.CountThreshold, "Keep motifs with Count above this value")
	cfgFile := fs.String("config", "", "TOML parameter file ([combinator] table)")
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

	params := config.CombinatorParams{
		InFile:         *inFile,
		OutDir:         *outDir,
		UnitLength:     *unitLength,
		MinLength:      *minLength,
		MaxLength:      *maxLength,
		CountThreshold: *threshold,
	}
	if *cfgFile != "" {
		loaded, err := config.LoadParams(*cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		params = mergeParams(loaded.Combinator, params, config.SetFlags(fs))
	}

	if params.InFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -in_file is required")
		fs.Usage()
		os.Exit(1)
	}

	summary, err := Generate(params, !*quiet)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d combinations from %d ranked motifs to %s\n", summary.Written, summary.Ranked, summary.Path)
}

// mergeParams lets explicitly set flags override the config file.
func mergeParams(file, cli config.CombinatorParams, set map[string]bool) config.CombinatorParams {
	if set["in_file"] {
		file.InFile = cli.InFile
	}
	if set["out_dir"] {
		file.OutDir = cli.OutDir
	}
	if set["unit_length"] {
		file.UnitLength = cli.UnitLength
	}
	if set["min_length"] {
		file.MinLength = cli.MinLength
	}
	if set["max_length"] {
		file.MaxLength = cli.MaxLength
	}
	if set["count_threshold"] {
		file.CountThreshold = cli.CountThreshold
	}
	return file
}
