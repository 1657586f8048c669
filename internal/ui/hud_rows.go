package ui

import (
	"image"
	"strconv"

	"mapgen/internal/core"
)

const (
	panelPadding = 12
	textBaseline = 11
	titleHeight  = 34
	headerHeight = 24
	rowHeight    = 30
	rowIndent    = 6
	buttonSize   = 22
	buttonGap    = 6
	footerLine   = 16
)

// hudRow is either a group header or one parameter line.
type hudRow struct {
	header string
	top    int

	param      core.Parameter
	ctrl       core.ParameterControl
	adjustable bool
	minus      image.Rectangle
	plus       image.Rectangle
}

// layoutRows stacks a header per parameter group followed by its parameters,
// placing -/+ buttons against the right edge of a panel of the given width for
// parameters that have a control. rows is reused as backing storage.
func layoutRows(rows []hudRow, snapshot core.ParameterSnapshot, controls map[string]core.ParameterControl, width int) []hudRow {
	top := titleHeight
	for _, group := range snapshot.Groups {
		rows = append(rows, hudRow{header: group.Name, top: top})
		top += headerHeight
		for _, p := range group.Params {
			row := hudRow{param: p, top: top}
			if ctrl, ok := controls[p.Key]; ok {
				y := top + (rowHeight-buttonSize)/2
				row.ctrl = ctrl
				row.adjustable = true
				row.plus = image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
				row.minus = row.plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			}
			rows = append(rows, row)
			top += rowHeight
		}
	}
	return rows
}

func defaultStep(t core.ParamType) float64 {
	if t == core.ParamTypeInt {
		return 1
	}
	return 0.05
}

// stepped returns the row's value moved one step in direction, clamped to the
// control bounds.
func (r hudRow) stepped(direction int) float64 {
	current, _ := strconv.ParseFloat(r.param.Value, 64)
	return r.ctrl.Clamp(current + float64(direction)*r.ctrl.StepOr(defaultStep(r.ctrl.Type)))
}

// canStep reports whether the value can still move in direction.
func (r hudRow) canStep(direction int) bool {
	current, err := strconv.ParseFloat(r.param.Value, 64)
	if err != nil || !r.adjustable {
		return false
	}
	if direction < 0 {
		return !r.ctrl.HasMin || current > r.ctrl.Min
	}
	return !r.ctrl.HasMax || current < r.ctrl.Max
}

// formatValue renders floats with as many decimals as the control's step
// needs and booleans as on/off.
func formatValue(row hudRow) string {
	switch row.param.Type {
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(row.param.Value, 64)
		if err != nil {
			return row.param.Value
		}
		decimals := 0
		for s := row.ctrl.StepOr(0.05); s < 1 && decimals < 4; s *= 10 {
			decimals++
		}
		return strconv.FormatFloat(v, 'f', decimals, 64)
	case core.ParamTypeBool:
		if row.param.Value == "true" {
			return "on"
		}
		return "off"
	}
	return row.param.Value
}
