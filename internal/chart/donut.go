package chart

import (
	"fmt"
	"math"
	"strings"
)

// Donut layout for the 500x260 card: legend on the left, ring on the
// right.
const (
	donutOuterRadius = 80
	donutInnerRadius = 45

	legendX          = 40
	legendYStart     = 70
	legendLineHeight = 22
)

// fullCircle is the tolerance below which a sweep counts as the whole
// ring and must be split into two arcs (an SVG arc whose start and end
// coincide renders as nothing).
const fullCircleEps = 1e-9

// Arc is one donut slice: a clockwise angular sweep starting at Start
// radians in the 0-at-3-o'clock convention.
type Arc struct {
	Label string
	Value float64
	Color string
	Start float64
	Sweep float64
}

// DonutArcs assigns each positive-value datum a proportional sweep of
// the full circle, in order, starting at 12 o'clock (-π/2) and running
// clockwise. Zero-value data are skipped. The sweeps of the returned
// arcs always sum to 2π.
func DonutArcs(cfg Config, data []Datum) []Arc {
	total := displayedTotal(data)
	if total <= 0 {
		return nil
	}

	arcs := make([]Arc, 0, len(data))
	angle := -math.Pi / 2
	for i, d := range data {
		if d.Value <= 0 {
			continue
		}
		sweep := 2 * math.Pi * (d.Value / total)
		arcs = append(arcs, Arc{
			Label: d.Label,
			Value: d.Value,
			Color: cfg.color(d.Label, i),
			Start: angle,
			Sweep: sweep,
		})
		angle += sweep
	}
	return arcs
}

// ringSector returns the path data for one ring sector between two
// angles: outer arc forward, radial line in, inner arc back, close.
func ringSector(cx, cy, start, end float64) string {
	rOut := float64(donutOuterRadius)
	rIn := float64(donutInnerRadius)

	x0 := cx + rOut*math.Cos(start)
	y0 := cy + rOut*math.Sin(start)
	x1 := cx + rOut*math.Cos(end)
	y1 := cy + rOut*math.Sin(end)

	x2 := cx + rIn*math.Cos(end)
	y2 := cy + rIn*math.Sin(end)
	x3 := cx + rIn*math.Cos(start)
	y3 := cy + rIn*math.Sin(start)

	largeArc := 0
	if end-start > math.Pi {
		largeArc = 1
	}

	return fmt.Sprintf(
		"M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z",
		x0, y0, rOut, rOut, largeArc, x1, y1, x2, y2, rIn, rIn, largeArc, x3, y3)
}

// slicePaths returns the path data for an arc. A full-circle sweep is
// split into two half rings so the path start and end points differ.
func slicePaths(cx, cy float64, a Arc) []string {
	if a.Sweep >= 2*math.Pi-fullCircleEps {
		mid := a.Start + a.Sweep/2
		return []string{
			ringSector(cx, cy, a.Start, mid),
			ringSector(cx, cy, mid, a.Start+a.Sweep),
		}
	}
	return []string{ringSector(cx, cy, a.Start, a.Start+a.Sweep)}
}

func renderDonut(cfg Config, data []Datum) string {
	total := displayedTotal(data)
	cx := float64(cfg.Width) - 170
	cy := float64(cfg.Height)/2 + 15
	font := cfg.fontFamily()

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" role="img" aria-labelledby="title desc">`+"\n",
		cfg.Width, cfg.Height)
	fmt.Fprintf(&b, `<title id="title">%s</title>`+"\n", escape(cfg.Title))
	fmt.Fprintf(&b, `<desc id="desc">Donut chart of %s.</desc>`+"\n", escape(cfg.Title))
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s" rx="8"/>`+"\n", cfg.Background)
	fmt.Fprintf(&b, `<text x="32" y="40" fill="%s" font-size="20" font-family="%s">%s</text>`+"\n",
		cfg.Foreground, font, escape(cfg.Title))

	// Legend, one swatch and label per slice.
	for i, d := range data {
		if d.Value <= 0 {
			continue
		}
		y := legendYStart + i*legendLineHeight
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="14" height="14" fill="%s" rx="2"/>`+"\n",
			legendX, y-12, cfg.color(d.Label, i))
		label := fmt.Sprintf("%s (%.1f%%)", d.Label, d.Value/total*100)
		fmt.Fprintf(&b, `<text x="%d" y="%d" fill="%s" font-size="13" font-family="%s">%s</text>`+"\n",
			legendX+22, y, cfg.Foreground, font, escape(label))
	}

	for _, a := range DonutArcs(cfg, data) {
		for _, d := range slicePaths(cx, cy, a) {
			fmt.Fprintf(&b, `<path d="%s" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
				d, a.Color, cfg.Background)
		}
	}

	fmt.Fprintf(&b, `<text x="%.0f" y="%.0f" text-anchor="middle" fill="%s" font-size="12" font-family="%s">Lang Stats</text>`+"\n",
		cx, cy+5, cfg.Foreground, font)
	b.WriteString("</svg>\n")
	return b.String()
}
