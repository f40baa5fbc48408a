package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Seed            int64 // Base seed actually used
	TotalSamples    int   // Camera rays traced
	Duration        time.Duration
	RowTimeMean     time.Duration
	RowTimeStdDev   time.Duration
}

func newRenderStats(width, height int, config SamplingConfig, workers int, seed int64, duration time.Duration, rowSeconds []float64) RenderStats {
	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: config.SamplesPerPixel,
		MaxDepth:        config.MaxDepth,
		Workers:         workers,
		Seed:            seed,
		TotalSamples:    width * height * config.SamplesPerPixel,
		Duration:        duration,
	}

	if len(rowSeconds) > 0 {
		mean, stdDev := stat.MeanStdDev(rowSeconds, nil)
		if len(rowSeconds) == 1 {
			stdDev = 0 // undefined for a single row
		}
		stats.RowTimeMean = secondsToDuration(mean)
		stats.RowTimeStdDev = secondsToDuration(stdDev)
	}

	return stats
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// SamplesPerSecond returns camera-ray throughput over the whole render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// Table renders the statistics as a text table
func (s RenderStats) Table() string {
	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Stat", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Image size", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"Samples per pixel", fmt.Sprintf("%d", s.SamplesPerPixel)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", s.Workers)})
	table.Append([]string{"Seed", fmt.Sprintf("%d", s.Seed)})
	table.Append([]string{"Camera rays", fmt.Sprintf("%d", s.TotalSamples)})
	table.Append([]string{"Row time", fmt.Sprintf("%v ± %v", s.RowTimeMean.Round(time.Microsecond), s.RowTimeStdDev.Round(time.Microsecond))})
	table.Append([]string{"Rays/sec", fmt.Sprintf("%.0f", s.SamplesPerSecond())})
	table.SetFooter([]string{"Total time", s.Duration.Round(time.Millisecond).String()})

	table.Render()
	return buf.String()
}
