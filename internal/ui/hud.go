//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"mapgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type footprintProvider interface {
	SectorSide() int
}

// HUD lists the terrain's parameter groups in a panel to the right of the map.
// Parameters with a matching control get -/+ buttons; the rest are read-only.
// A footer reports the map size, the seed to reproduce it and the sector
// footprint a click would regenerate.
type HUD struct {
	terrain core.Terrain
	width   int
	title   string

	controls    map[string]core.ParameterControl
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	rows   []hudRow
	footer []string

	panel *ebiten.Image
	pixel *ebiten.Image
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	headerColor = color.RGBA{R: 140, G: 190, B: 120, A: 255}
	ruleColor   = color.RGBA{R: 48, G: 52, B: 60, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

// NewHUD constructs a HUD for the provided terrain. A width of zero or less
// disables the panel and returns nil; a nil HUD ignores every call.
func NewHUD(t core.Terrain, width int) *HUD {
	if width <= 0 || t == nil {
		return nil
	}
	h := &HUD{
		terrain:  t,
		width:    width,
		title:    cases.Title(language.English).String(t.Name()),
		controls: map[string]core.ParameterControl{},
		pixel:    ebiten.NewImage(1, 1),
	}
	h.pixel.Fill(color.White)
	if provider, ok := t.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls[ctrl.Key] = ctrl
		}
	}
	h.intSetter, _ = t.(core.IntParameterSetter)
	h.floatSetter, _ = t.(core.FloatParameterSetter)
	return h
}

// Update rebuilds the rows from the terrain's current parameters and applies
// button clicks. offsetX is the panel's left edge in screen coordinates.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	if provider, ok := h.terrain.(core.ParameterControlsProvider); ok {
		// Bounds may depend on other settings, such as normalization.
		for _, ctrl := range provider.ParameterControls() {
			h.controls[ctrl.Key] = ctrl
		}
	}
	var snapshot core.ParameterSnapshot
	if provider, ok := h.terrain.(parameterProvider); ok {
		snapshot = provider.Parameters()
	}
	h.rows = layoutRows(h.rows[:0], snapshot, h.controls, h.width)
	h.footer = h.footerLines()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= offsetX {
			h.click(image.Pt(mx-offsetX, my))
		}
	}
}

func (h *HUD) footerLines() []string {
	size := h.terrain.Size()
	lines := []string{
		fmt.Sprintf("Map %dx%d", size.W, size.H),
		fmt.Sprintf("Seed %d", h.terrain.Seed()),
	}
	if fp, ok := h.terrain.(footprintProvider); ok {
		side := fp.SectorSide()
		lines = append(lines, fmt.Sprintf("Click raises %dx%d", side, side))
	}
	return append(lines, "R same seed  S new seed", "G gray  F footprint  Q quit")
}

func (h *HUD) click(p image.Point) {
	for _, row := range h.rows {
		if !row.adjustable {
			continue
		}
		switch {
		case p.In(row.minus):
			h.adjust(row, -1)
			return
		case p.In(row.plus):
			h.adjust(row, 1)
			return
		}
	}
}

func (h *HUD) adjust(row hudRow, direction int) {
	if !h.canAdjust(row, direction) {
		return
	}
	target := row.stepped(direction)
	// The next Update reads the applied value back from the terrain.
	switch row.ctrl.Type {
	case core.ParamTypeInt:
		h.intSetter.SetIntParameter(row.ctrl.Key, int(math.Round(target)))
	case core.ParamTypeFloat:
		h.floatSetter.SetFloatParameter(row.ctrl.Key, target)
	}
}

func (h *HUD) canAdjust(row hudRow, direction int) bool {
	switch row.ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return false
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return false
		}
	default:
		return false
	}
	return row.canStep(direction)
}

// Draw paints the panel with its left edge at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.terrain.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+textBaseline, titleColor)
	for _, row := range h.rows {
		h.drawRow(row)
	}
	y := height - panelPadding - len(h.footer)*footerLine + textBaseline
	for _, line := range h.footer {
		text.Draw(h.panel, line, face, panelPadding, y, mutedColor)
		y += footerLine
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRow(row hudRow) {
	face := basicfont.Face7x13
	if row.header != "" {
		text.Draw(h.panel, strings.ToUpper(row.header), face, panelPadding, row.top+textBaseline+4, headerColor)
		h.fillRect(image.Rect(panelPadding, row.top+headerHeight-3, h.width-panelPadding, row.top+headerHeight-2), ruleColor)
		return
	}

	baseline := row.top + (rowHeight+textBaseline)/2
	text.Draw(h.panel, row.param.Label, face, panelPadding+rowIndent, baseline, labelColor)

	right := h.width - panelPadding
	valueColor := mutedColor
	if row.adjustable {
		right = row.minus.Min.X - buttonGap
		valueColor = labelColor
	}
	value := formatValue(row)
	text.Draw(h.panel, value, face, right-text.BoundString(face, value).Dx(), baseline, valueColor)

	if row.adjustable {
		h.drawButton(row.minus, "-", h.canAdjust(row, -1))
		h.drawButton(row.plus, "+", h.canAdjust(row, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()+bounds.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(rect image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}
