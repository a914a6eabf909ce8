package chart

import (
	"math"
	"strings"
	"testing"
)

func barConfig() Config {
	return Config{
		Kind:       KindBar,
		Width:      600,
		Height:     220,
		Title:      "Monthly Activity",
		Background: "#2e3440",
		Foreground: "#eceff4",
		BarFill:    "#a3be8c",
	}
}

func TestBars_MaxNormalized(t *testing.T) {
	bars := Bars([]Datum{
		{Label: "Week 1", Value: 10},
		{Label: "Week 2", Value: 20},
		{Label: "Week 3", Value: 5},
	})
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}

	// The largest value fills the chart height.
	if math.Abs(bars[1].Height-chartHeight) > 1e-9 {
		t.Errorf("tallest bar height = %v, want %v", bars[1].Height, chartHeight)
	}
	if math.Abs(bars[0].Height-chartHeight/2) > 1e-9 {
		t.Errorf("half-value bar height = %v, want %v", bars[0].Height, chartHeight/2.0)
	}
	if math.Abs(bars[2].Height-chartHeight/4.0) > 1e-9 {
		t.Errorf("quarter-value bar height = %v, want %v", bars[2].Height, chartHeight/4.0)
	}
}

func TestBars_FixedSpacing(t *testing.T) {
	bars := Bars([]Datum{
		{Label: "a", Value: 1},
		{Label: "b", Value: 2},
		{Label: "c", Value: 3},
	})
	for i := 1; i < len(bars); i++ {
		if got := bars[i].X - bars[i-1].X; got != barWidth+barGap {
			t.Errorf("bar %d spacing = %v, want %v", i, got, barWidth+barGap)
		}
	}
}

func TestBars_ValueLabelAboveBar(t *testing.T) {
	bars := Bars([]Datum{{Label: "w", Value: 3, Display: "3.0h"}})
	if bars[0].Display != "3.0h" {
		t.Errorf("display override lost: %q", bars[0].Display)
	}
	// Bar top sits at chartBottom - height; the label is placed above
	// it by the renderer, which is only possible if Y is the bar top.
	if math.Abs(bars[0].Y-(chartBottom-bars[0].Height)) > 1e-9 {
		t.Errorf("bar top = %v, want %v", bars[0].Y, chartBottom-bars[0].Height)
	}
}

func TestRenderBars_FooterAndLabels(t *testing.T) {
	cfg := barConfig()
	cfg.Footer = "Last updated on 2026-01-02 03:04:05 UTC"

	svg := Render(cfg, []Datum{
		{Label: "Week 1", Value: 14.0, Display: "14.0h"},
		{Label: "Week 2", Value: 18.5, Display: "18.5h"},
	})

	for _, want := range []string{"Monthly Activity", "Week 1", "Week 2", "14.0h", "18.5h", cfg.Footer} {
		if !strings.Contains(svg, want) {
			t.Errorf("markup missing %q", want)
		}
	}
}

func TestRenderBars_NoDataPlaceholder(t *testing.T) {
	cfg := barConfig()
	cfg.EmptyMessage = "No activity data"

	svg := Render(cfg, nil)
	if !strings.Contains(svg, "No activity data") {
		t.Errorf("expected no-data card, got:\n%s", svg)
	}
}

func TestPlaceholder(t *testing.T) {
	cfg := Config{Width: 600, Height: 80, Title: "WakaTime",
		Background: "#3b4252", Foreground: "#e5e9f0"}

	svg := Placeholder(cfg, "Coming soon…")
	for _, want := range []string{"WakaTime", "Coming soon…", `width="600"`, `height="80"`} {
		if !strings.Contains(svg, want) {
			t.Errorf("placeholder missing %q", want)
		}
	}
}
