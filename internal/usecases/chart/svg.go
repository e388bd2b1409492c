package chart

import (
	"bytes"
	"fmt"
	"html"
)

// RenderSVG отрисовывает диаграмму в SVG (viewBox 300x300)
func RenderSVG(d Diagram) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" data-testid="north-indian-chart">`, d.Size, d.Size)
	b.WriteByte('\n')

	fmt.Fprintf(&b, `  <polygon points="%d,%d %d,%d %d,%d %d,%d" fill="none" stroke="currentColor" stroke-width="2"/>`,
		d.Outline[0].X, d.Outline[0].Y, d.Outline[1].X, d.Outline[1].Y,
		d.Outline[2].X, d.Outline[2].Y, d.Outline[3].X, d.Outline[3].Y)
	b.WriteByte('\n')

	for _, l := range d.Lines {
		fmt.Fprintf(&b, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="currentColor" stroke-width="1.5"/>`,
			l.From.X, l.From.Y, l.To.X, l.To.Y)
		b.WriteByte('\n')
	}

	for _, slot := range d.Slots {
		fmt.Fprintf(&b, `  <g data-house="%d">`, slot.HouseNum)
		fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="currentColor" fill-opacity="0.2"/>`,
			slot.Position.X, slot.Position.Y, HouseMarkerRadius)
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" font-size="12" font-weight="bold">%d</text>`,
			slot.Position.X, slot.Position.Y+4, slot.HouseNum)
		for _, g := range slot.Occupants {
			fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" font-size="10" font-weight="600" fill="#d97706" data-planet="%s">%s</text>`,
				g.At.X, g.At.Y, html.EscapeString(g.Planet), html.EscapeString(g.Label))
		}
		b.WriteString("</g>\n")
	}

	b.WriteString("</svg>\n")
	return b.Bytes()
}
