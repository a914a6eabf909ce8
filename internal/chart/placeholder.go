package chart

import (
	"fmt"
	"strings"
)

// Placeholder renders a small fixed-size card with a title and a
// subtitle line, used for cards whose data source is not wired yet.
func Placeholder(cfg Config, subtitle string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n",
		cfg.Width, cfg.Height)
	fmt.Fprintf(&b,
		"<style>.title{font:bold 16px sans-serif;fill:%s;}.subtitle{font:12px sans-serif;fill:%s;}</style>\n",
		cfg.Foreground, cfg.Foreground)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s" rx="8" ry="8"/>`+"\n", cfg.Background)
	fmt.Fprintf(&b, `<text x="20" y="30" class="title">%s</text>`+"\n", escape(cfg.Title))
	fmt.Fprintf(&b, `<text x="20" y="55" class="subtitle">%s</text>`+"\n", escape(subtitle))
	b.WriteString("</svg>\n")
	return b.String()
}
