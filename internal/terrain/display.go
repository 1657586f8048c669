package terrain

import "mapgen/internal/heightmap"

// settle refreshes the display after an edit. A normalized map whose edit
// left [0, 255] is normalized again first.
func (w *World) settle() {
	if w.cfg.Params.Normalize {
		if lo, hi := w.grid.Bounds(); lo < 0 || hi > heightmap.NormalizedMax {
			w.grid.Normalize()
		}
	}
	w.rebuildDisplay()
}

// rebuildDisplay refreshes the byte raster from the heights. Normalized maps
// are copied as-is; raw maps are stretched over their current range.
func (w *World) rebuildDisplay() {
	if w.grid == nil {
		w.display.Clear()
		return
	}
	heights := w.grid.Cells()
	if w.cfg.Params.Normalize {
		w.display.FillFloat(heights)
		return
	}

	lo, hi := w.grid.Bounds()
	span := hi - lo
	cells := w.display.Cells()
	if span <= 0 {
		for i := range cells {
			cells[i] = 0
		}
		return
	}
	for i, h := range heights {
		cells[i] = uint8((h - lo) * heightmap.NormalizedMax / span)
	}
}
