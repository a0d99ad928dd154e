package charts

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/lake-extent-dashboard/internal/view"
)

func classDrawingColor(i int) drawing.Color {
	return drawing.ColorFromHex(view.ClassColor(i))
}

func namedColor(name string) drawing.Color {
	switch name {
	case "green":
		return drawing.ColorFromHex("2ca02c")
	case "red":
		return drawing.ColorFromHex("d62728")
	case "":
		return drawing.ColorFromHex("1f77b4")
	default:
		return drawing.ColorFromHex(name)
	}
}

func toRGBA(c drawing.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// blues is a white-to-navy sequential palette for water frequency.
type blues struct {
	n int
}

func (b blues) Colors() []color.Color {
	light := color.RGBA{R: 247, G: 251, B: 255, A: 255}
	dark := color.RGBA{R: 8, G: 48, B: 107, A: 255}
	out := make([]color.Color, b.n)
	for i := range out {
		t := float64(i) / float64(max(b.n-1, 1))
		out[i] = color.RGBA{
			R: lerp(light.R, dark.R, t),
			G: lerp(light.G, dark.G, t),
			B: lerp(light.B, dark.B, t),
			A: 255,
		}
	}
	return out
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
