package cards

import (
	"context"

	"go.uber.org/zap"

	"statscards/internal/chart"
	"statscards/internal/config"
	"statscards/internal/stats"
)

// TopLangsFile is the output file name of the top-languages card.
const TopLangsFile = "top_langs.svg"

// TopLanguages aggregates language bytes over the account's non-fork
// repositories and writes the donut card. An account with no language
// data gets the no-data card rather than an error.
func TopLanguages(ctx context.Context, client stats.RepoLister, cfg *config.Config, log *zap.Logger) (string, error) {
	agg := stats.NewAggregator(client, log, cfg.GitHub.Concurrency)
	totals, err := agg.Aggregate(ctx, cfg.Username)
	if err != nil {
		return "", err
	}

	shares := stats.TopN(stats.Shares(totals), cfg.Chart.TopN+1)
	data := make([]chart.Datum, 0, len(shares))
	for _, s := range shares {
		data = append(data, chart.Datum{Label: s.Name, Value: float64(s.Bytes)})
	}

	svg := chart.Render(chart.Config{
		Kind:         chart.KindDonut,
		Width:        500,
		Height:       260,
		Title:        "Top Languages by Repo",
		Background:   "#0d1117",
		Foreground:   "#c9d1d9",
		Colors:       chart.DefaultColors,
		Palette:      chart.DefaultPalette,
		EmptyMessage: "No language data",
	}, data)

	return writeSVG(cfg.OutputDir, TopLangsFile, svg, log)
}
