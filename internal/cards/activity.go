package cards

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"statscards/internal/chart"
	"statscards/internal/config"
)

// MonthlyActivityFile is the output file name of the activity card.
const MonthlyActivityFile = "monthly_activity.svg"

// Sample weekly totals shown until real activity data is wired up.
// TODO: replace with per-week commit counts from the events API.
var sampleWeeks = []chart.Datum{
	{Label: "Week 1", Value: 14.0},
	{Label: "Week 2", Value: 18.5},
	{Label: "Week 3", Value: 10.0},
	{Label: "Week 4", Value: 20.2},
}

// MonthlyActivity writes the monthly activity bar card with a "last
// updated" footer. now is injected so the markup stays testable.
func MonthlyActivity(cfg *config.Config, now time.Time, log *zap.Logger) (string, error) {
	data := make([]chart.Datum, len(sampleWeeks))
	for i, d := range sampleWeeks {
		d.Display = fmt.Sprintf("%.1fh", d.Value)
		data[i] = d
	}

	svg := chart.Render(chart.Config{
		Kind:         chart.KindBar,
		Width:        600,
		Height:       220,
		Title:        "Monthly Activity (placeholder)",
		Background:   "#2e3440",
		Foreground:   "#eceff4",
		BarFill:      "#a3be8c",
		Footer:       "Last updated on " + now.UTC().Format("2006-01-02 15:04:05 UTC"),
		EmptyMessage: "No activity data",
	}, data)

	return writeSVG(cfg.OutputDir, MonthlyActivityFile, svg, log)
}
