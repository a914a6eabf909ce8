// Package chart renders SVG cards from ordered value series. One
// parameterized renderer covers every card; the donut and bar layouts
// only differ in geometry.
package chart

import (
	"fmt"
	"strings"
)

// Kind selects the chart layout.
type Kind string

const (
	KindDonut Kind = "donut"
	KindBar   Kind = "bar"
)

// Datum is one labeled value. Display, when set, replaces the default
// value text next to a bar; the donut legend always shows percentages.
type Datum struct {
	Label   string
	Value   float64
	Display string
}

// Config parameterizes the renderer. One Config fully determines the
// markup produced for a given series: same inputs, same card.
type Config struct {
	Kind   Kind
	Width  int
	Height int
	Title  string

	Background string
	Foreground string
	FontFamily string

	// Colors is the fixed per-label lookup; labels not present fall
	// back to the cyclic Palette indexed by render order.
	Colors  map[string]string
	Palette []string

	// BarFill is the single bar color for bar charts.
	BarFill string

	// Footer, when set, is drawn at the bottom-left (used for the
	// "last updated" line on the activity card).
	Footer string

	// EmptyMessage replaces the chart when the series has no data.
	EmptyMessage string
}

func (c Config) fontFamily() string {
	if c.FontFamily == "" {
		return "Segoe UI, system-ui"
	}
	return c.FontFamily
}

func (c Config) emptyMessage() string {
	if c.EmptyMessage == "" {
		return "No data"
	}
	return c.EmptyMessage
}

// Render produces the SVG document for the series. An empty series, or
// one whose values are all zero, yields the no-data card; this branch
// never fails.
func Render(cfg Config, data []Datum) string {
	if displayedTotal(data) <= 0 {
		return renderEmpty(cfg)
	}
	switch cfg.Kind {
	case KindBar:
		return renderBars(cfg, data)
	default:
		return renderDonut(cfg, data)
	}
}

func displayedTotal(data []Datum) float64 {
	var total float64
	for _, d := range data {
		if d.Value > 0 {
			total += d.Value
		}
	}
	return total
}

// renderEmpty is the fixed-size no-data card: background plus one
// centered message.
func renderEmpty(cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n",
		cfg.Width, cfg.Height)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s" rx="8"/>`+"\n", cfg.Background)
	fmt.Fprintf(&b, `<text x="50%%" y="50%%" text-anchor="middle" fill="%s" font-size="16" font-family="%s">%s</text>`+"\n",
		cfg.Foreground, cfg.fontFamily(), escape(cfg.emptyMessage()))
	b.WriteString("</svg>\n")
	return b.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return xmlEscaper.Replace(s)
}
