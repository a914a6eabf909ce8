package cards

import (
	"go.uber.org/zap"

	"statscards/internal/chart"
	"statscards/internal/config"
)

const (
	WeeklyFile   = "weekly_activity.svg"
	WakaTimeFile = "wakatime.svg"
)

func placeholderCard(cfg *config.Config, file, title string, log *zap.Logger) (string, error) {
	svg := chart.Placeholder(chart.Config{
		Width:      600,
		Height:     80,
		Title:      title,
		Background: "#3b4252",
		Foreground: "#e5e9f0",
	}, "Coming soon…")
	return writeSVG(cfg.OutputDir, file, svg, log)
}

// Weekly writes the weekly-activity placeholder card.
func Weekly(cfg *config.Config, log *zap.Logger) (string, error) {
	return placeholderCard(cfg, WeeklyFile, "Weekly Activity", log)
}

// WakaTime writes the WakaTime placeholder card.
func WakaTime(cfg *config.Config, log *zap.Logger) (string, error) {
	return placeholderCard(cfg, WakaTimeFile, "WakaTime", log)
}
