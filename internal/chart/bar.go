package chart

import (
	"fmt"
	"strings"
)

// Bar layout constants for the 600x220 activity card.
const (
	barWidth    = 60
	barGap      = 30
	chartLeft   = 80
	chartBottom = 150
	chartHeight = 90
)

// Bar is one laid-out bar, exported for geometry tests.
type Bar struct {
	Label   string
	Value   float64
	Display string
	X       float64
	Y       float64
	Width   float64
	Height  float64
}

// Bars lays the series out at fixed horizontal spacing. Heights are
// max-normalized: the largest value fills the chart height and every
// other bar scales against it. Zero-value entries still occupy a slot
// so the axis labels keep their positions.
func Bars(data []Datum) []Bar {
	var max float64
	for _, d := range data {
		if d.Value > max {
			max = d.Value
		}
	}
	if max <= 0 {
		return nil
	}

	bars := make([]Bar, 0, len(data))
	for i, d := range data {
		h := d.Value / max * chartHeight
		x := float64(chartLeft + i*(barWidth+barGap))
		display := d.Display
		if display == "" {
			display = fmt.Sprintf("%.1f", d.Value)
		}
		bars = append(bars, Bar{
			Label:   d.Label,
			Value:   d.Value,
			Display: display,
			X:       x,
			Y:       chartBottom - h,
			Width:   barWidth,
			Height:  h,
		})
	}
	return bars
}

func renderBars(cfg Config, data []Datum) string {
	fill := cfg.BarFill
	if fill == "" {
		fill = "#a3be8c"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n",
		cfg.Width, cfg.Height)
	fmt.Fprintf(&b,
		"<style>.title{font:bold 18px sans-serif;fill:%s;}.label{font:12px sans-serif;fill:%s;}.value{font:12px monospace;fill:%s;}</style>\n",
		cfg.Foreground, cfg.Foreground, cfg.Foreground)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s" rx="16"/>`+"\n", cfg.Background)
	fmt.Fprintf(&b, `<text x="24" y="32" class="title">%s</text>`+"\n", escape(cfg.Title))

	for _, bar := range Bars(data) {
		fmt.Fprintf(&b, `<rect x="%.0f" y="%.2f" width="%.0f" height="%.2f" rx="6" fill="%s"/>`+"\n",
			bar.X, bar.Y, bar.Width, bar.Height, fill)
		// Axis label under the bar, value label above it.
		fmt.Fprintf(&b, `<text x="%.0f" y="%d" text-anchor="middle" class="label">%s</text>`+"\n",
			bar.X+bar.Width/2, chartBottom+16, escape(bar.Label))
		fmt.Fprintf(&b, `<text x="%.0f" y="%.2f" text-anchor="middle" class="value">%s</text>`+"\n",
			bar.X+bar.Width/2, bar.Y-4, escape(bar.Display))
	}

	if cfg.Footer != "" {
		fmt.Fprintf(&b, `<text x="24" y="%d" class="label">%s</text>`+"\n",
			cfg.Height-16, escape(cfg.Footer))
	}
	b.WriteString("</svg>\n")
	return b.String()
}
