// Package motif_finder runs the k-mer -> identical sequence -> anagram
// pipeline over a FASTA corpus and writes the result tables.
package motif_finder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"amp_buddy_go/anagram"
	"amp_buddy_go/config"
	"amp_buddy_go/kmer_analyzer"
	"amp_buddy_go/progress"
	"amp_buddy_go/report"
	"amp_buddy_go/table"
	common "amp_buddy_go/utils"
)

// Motifs is the in-memory result of FindMotifs.
type Motifs struct {
	Identical *kmer_analyzer.IdenticalSet
	Groups    []anagram.Group
	Rows      []anagram.Row
}

// FindMotifs runs extraction, aggregation and anagram grouping.
// Each stage takes the previous stage's output and returns a new value.
func FindMotifs(seqs []common.Sequence, minLength, maxLength int, tie anagram.TieBreak, bar *progress.Bar) (Motifs, error) {
	idx, err := kmer_analyzer.NewKmerIndex(minLength, maxLength)
	if err != nil {
		return Motifs{}, err
	}
	for _, s := range seqs {
		idx.Add(s)
		bar.Increment()
	}
	bar.Done()

	identical := kmer_analyzer.Aggregate(idx)
	groups := anagram.GroupAnagrams(identical)
	rows := anagram.Report(groups, identical, identical.Counts(), tie)
	return Motifs{Identical: identical, Groups: groups, Rows: rows}, nil
}

// Outputs lists the files written by Analyze.
type Outputs struct {
	Identical string
	Anagrams  string
	HTML      string
}

// OutputPaths derives file names from the output prefix and table format.
func OutputPaths(prefix, format string) Outputs {
	format = strings.TrimPrefix(strings.ToLower(format), ".")
	return Outputs{
		Identical: fmt.Sprintf("%s_identical.%s", prefix, format),
		Anagrams:  fmt.Sprintf("%s_anagrams.%s", prefix, format),
		HTML:      prefix + "_report.html",
	}
}

// Analyze reads params.InFile, finds motifs and writes the identical-sequence
// and anagram tables (plus the HTML report when asked). Nothing is left on
// disk if the input cannot be read or any output fails.
func Analyze(params config.MotifParams, showProgress bool) (Motifs, Outputs, error) {
	out := OutputPaths(params.OutPrefix, params.Format)
	if _, err := table.Format(out.Anagrams); err != nil {
		return Motifs{}, out, err
	}
	tie, err := anagram.ParseTieBreak(params.TieBreak)
	if err != nil {
		return Motifs{}, out, err
	}

	seqs, err := common.ReadSequences(params.InFile)
	if err != nil {
		return Motifs{}, out, err
	}
	log.Infof("read %d sequences from %s", len(seqs), params.InFile)

	bar := progress.New("sequences:", len(seqs), showProgress)
	motifs, err := FindMotifs(seqs, params.MinLength, params.MaxLength, tie, bar)
	if err != nil {
		return motifs, out, err
	}
	log.Infof("%d shared k-mers, %d anagram groups", len(motifs.Identical.Entries), len(motifs.Rows))

	if err := os.MkdirAll(filepath.Dir(params.OutPrefix), 0o755); err != nil {
		return motifs, out, errors.Wrapf(err, "failed to create output folder for %s", params.OutPrefix)
	}
	// written tracks files to remove if a later output fails
	var written []string
	discard := func() {
		for _, path := range written {
			os.Remove(path)
		}
	}

	if err := table.Write(out.Identical, kmer_analyzer.IdenticalHeader, motifs.Identical.Rows()); err != nil {
		return motifs, out, errors.Wrap(err, "identical sequence table")
	}
	written = append(written, out.Identical)
	if err := table.Write(out.Anagrams, anagram.Header, anagram.Rows(motifs.Rows)); err != nil {
		discard()
		return motifs, out, errors.Wrap(err, "anagram table")
	}
	written = append(written, out.Anagrams)

	if params.HTML {
		summary := report.Summarize(seqs, motifs.Identical, motifs.Rows)
		summary.InFile = params.InFile
		summary.KmerMin, summary.KmerMax = params.MinLength, params.MaxLength
		summary.TieBreak = tie.String()

		svgSize, err := report.GroupSizePlotSVG(motifs.Rows)
		if err != nil {
			log.Warnf("failed to generate group size plot: %v", err)
			svgSize = report.Unavailable
		}
		svgPos, err := report.PositionPlotSVG(motifs.Rows)
		if err != nil {
			log.Warnf("failed to generate position plot: %v", err)
			svgPos = report.Unavailable
		}
		if err := report.WriteHTMLReport(out.HTML, summary, svgSize, svgPos); err != nil {
			written = append(written, out.HTML)
			discard()
			return motifs, out, err
		}
	}
	return motifs, out, nil
}
