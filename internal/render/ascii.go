package render

import "strings"

const shades = " .:-=+*#%@"

// ASCII renders a w*h byte heightmap as text at most cols characters wide,
// sampling the nearest cell. Rows are halved since glyphs are roughly twice as
// tall as they are wide.
func ASCII(cells []uint8, w, h, cols int) string {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return ""
	}
	if cols <= 0 || cols > w {
		cols = w
	}
	rows := h * cols / w / 2
	if rows < 1 {
		rows = 1
	}

	var b strings.Builder
	b.Grow((cols + 1) * rows)
	for r := 0; r < rows; r++ {
		y := r * h / rows
		for c := 0; c < cols; c++ {
			x := c * w / cols
			v := int(cells[y*w+x])
			b.WriteByte(shades[v*(len(shades)-1)/255])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
