package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"amp_buddy_go/anagram"
)

// Unavailable stands in for a plot that could not be drawn.
const Unavailable = "<p>Graph unavailable</p>"

// IntegerTicks labels an axis at every whole number.
type IntegerTicks struct{}

// Ticks implements plot.Ticker.
func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i++ {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// GroupSizePlotSVG plots how many anagram groups span each number of sequences.
func GroupSizePlotSVG(rows []anagram.Row) (string, error) {
	if len(rows) == 0 {
		return Unavailable, nil
	}
	maxIDs := 0
	for _, r := range rows {
		if r.Count > maxIDs {
			maxIDs = r.Count
		}
	}
	counts := make([]float64, maxIDs+1)
	for _, r := range rows {
		counts[r.Count]++
	}

	points := make(plotter.XYs, 0, maxIDs-1)
	for ids := 2; ids <= maxIDs; ids++ {
		points = append(points, plotter.XY{X: float64(ids), Y: counts[ids]})
	}

	p := plot.New()
	p.Title.Text = "Anagram Group Size"
	p.X.Label.Text = "Sequences per Group"
	p.Y.Label.Text = "Group Count"
	p.X.Tick.Marker = IntegerTicks{}
	return linePlotSVG(p, points, "Groups", color.RGBA{R: 50, G: 100, B: 200, A: 255})
}

// PositionPlotSVG plots where in their source sequences anagram groups sit,
// binned over 0-100% of sequence length.
func PositionPlotSVG(rows []anagram.Row) (string, error) {
	if len(rows) == 0 {
		return Unavailable, nil
	}
	binCount := 20
	binWidth := 100.0 / float64(binCount)
	observed := make([]float64, binCount)
	for _, r := range rows {
		bin := int(r.AvgPosition / binWidth)
		if bin >= binCount {
			bin = binCount - 1
		}
		if bin < 0 {
			bin = 0
		}
		observed[bin]++
	}

	points := make(plotter.XYs, binCount)
	for i := range observed {
		points[i].X = binWidth*float64(i) + binWidth/2
		points[i].Y = observed[i]
	}

	p := plot.New()
	p.Title.Text = "Average Group Position"
	p.X.Label.Text = "Position (% of sequence length)"
	p.Y.Label.Text = "Group Count"
	return linePlotSVG(p, points, "Groups", color.RGBA{R: 200, G: 60, B: 60, A: 255})
}

func linePlotSVG(p *plot.Plot, points plotter.XYs, legend string, c color.Color) (string, error) {
	line, err := plotter.NewLine(points)
	if err != nil {
		return "", err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add(legend, line)
	p.Legend.Top = true

	// Write to SVG
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
