package chart

// GitHub-style language colors for the legend.
var DefaultColors = map[string]string{
	"Python":     "#3572A5",
	"Shell":      "#89e051",
	"HTML":       "#e34c26",
	"Dockerfile": "#384d54",
	"Makefile":   "#427819",
}

// DefaultPalette cycles for labels without a fixed color.
var DefaultPalette = []string{
	"#4C78A8",
	"#F58518",
	"#E45756",
	"#72B7B2",
	"#54A24B",
	"#EECA3B",
	"#B279A2",
}

// color picks the color for a label: fixed lookup first, then the
// cyclic palette indexed by render order. Deterministic for a given
// ordered series.
func (c Config) color(label string, index int) string {
	if col, ok := c.Colors[label]; ok {
		return col
	}
	palette := c.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[index%len(palette)]
}
