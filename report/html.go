package report

import (
	"fmt"
	"html"
	"os"

	"github.com/pkg/errors"
)

// WriteHTMLReport writes the summary table and plots to path.
func WriteHTMLReport(path string, s Summary, svgGroupSize, svgPosition string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	page := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<title>Anagram Motif Report</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
	</style>
</head>
<body>
	<h1>Anagram Motif Report</h1>
	<table>
		<tr><th>Metric</th><th>Value</th></tr>
		<tr><td>Input</td><td>%s</td></tr>
		<tr><td>Sequences</td><td>%d</td></tr>
		<tr><td>Sequence Length (min / max)</td><td>%d / %d</td></tr>
		<tr><td>Mean Sequence Length</td><td>%.2f</td></tr>
		<tr><td>Sequence Length StdDev</td><td>%.2f</td></tr>
		<tr><td>K-mer Length</td><td>%d - %d</td></tr>
		<tr><td>Shared K-mers</td><td>%d</td></tr>
		<tr><td>Anagram Groups</td><td>%d</td></tr>
		<tr><td>Mean Sequences per Group</td><td>%.2f</td></tr>
		<tr><td>Max Sequences per Group</td><td>%d</td></tr>
		<tr><td>Mean Group Position</td><td>%.2f%%</td></tr>
		<tr><td>Contributor Tie Break</td><td>%s</td></tr>
	</table>
	<h2>Anagram Group Size</h2>
	<div>%s</div>
	<h2>Average Group Position</h2>
	<div>%s</div>
</body>
</html>`,
		html.EscapeString(s.InFile),
		s.Sequences,
		s.MinLength, s.MaxLength,
		s.MeanLength,
		s.LengthStdDev,
		s.KmerMin, s.KmerMax,
		s.Identical,
		s.Groups,
		s.MeanGroupIDs,
		s.MaxGroupIDs,
		s.MeanGroupPosPct,
		s.TieBreak,
		svgGroupSize,
		svgPosition,
	)

	if _, err := f.WriteString(page); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return f.Close()
}
