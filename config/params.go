// Package config holds tool versions and the parameters shared by the CLI
// and an optional TOML file.
package config

import (
	"flag"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// MotifParams drives motif_finder.
type MotifParams struct {
	InFile    string `toml:"in_file"`
	OutPrefix string `toml:"out_prefix"`
	Format    string `toml:"format"`    // "xlsx" or "csv"
	MinLength int    `toml:"min_length"`
	MaxLength int    `toml:"max_length"`
	TieBreak  string `toml:"tie_break"` // "lexical" or "encounter"
	HTML      bool   `toml:"html"`
}

// CombinatorParams drives combinator.
type CombinatorParams struct {
	InFile         string `toml:"in_file"`
	OutDir         string `toml:"out_dir"`
	UnitLength     int    `toml:"unit_length"`
	MinLength      int    `toml:"min_length"`
	MaxLength      int    `toml:"max_length"`
	CountThreshold int    `toml:"count_threshold"`
}

// Params is the root of a params.toml file.
type Params struct {
	MotifFinder MotifParams      `toml:"motif_finder"`
	Combinator  CombinatorParams `toml:"combinator"`
}

// DefaultParams holds the defaults used when neither a flag nor a config file sets a value.
func DefaultParams() Params {
	return Params{
		MotifFinder: MotifParams{
			OutPrefix: "motifs",
			Format:    "xlsx",
			MinLength: 9,
			MaxLength: 9,
			TieBreak:  "lexical",
		},
		Combinator: CombinatorParams{
			OutDir:     "combinations",
			UnitLength: 3,
			MinLength:  3,
			MaxLength:  12,
		},
	}
}

// LoadParams reads a TOML file on top of DefaultParams. Keys missing from the
// file keep their default.
func LoadParams(file string) (Params, error) {
	params := DefaultParams()
	data, err := os.ReadFile(file)
	if err != nil {
		return params, errors.Wrapf(err, "reading config %s", file)
	}
	if err := toml.Unmarshal(data, &params); err != nil {
		return params, errors.Wrapf(err, "parsing config %s", file)
	}
	return params, nil
}

// SetFlags returns the names of flags given explicitly on the command line.
// Tools use it so that CLI flags win over values from a config file.
func SetFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
