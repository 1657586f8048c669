package ui

import (
	"image"
	"testing"

	"mapgen/internal/core"
)

func sampleSnapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Map", Params: []core.Parameter{
			{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: "42"},
			{Key: "roughness", Label: "Roughness", Type: core.ParamTypeFloat, Value: "0.5"},
		}},
		{Name: "Sector", Params: []core.Parameter{
			{Key: "sector_lod", Label: "Sector LOD", Type: core.ParamTypeInt, Value: "4"},
		}},
	}}
}

func sampleControls() map[string]core.ParameterControl {
	return map[string]core.ParameterControl{
		"roughness":  {Key: "roughness", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, Max: 3, HasMin: true, HasMax: true},
		"sector_lod": {Key: "sector_lod", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 4, HasMin: true, HasMax: true},
	}
}

func TestLayoutRowsGroupsParameters(t *testing.T) {
	rows := layoutRows(nil, sampleSnapshot(), sampleControls(), 240)
	if len(rows) != 5 {
		t.Fatalf("expected 2 headers and 3 parameters, got %d rows", len(rows))
	}
	if rows[0].header != "Map" || rows[3].header != "Sector" {
		t.Fatalf("headers misplaced: %q, %q", rows[0].header, rows[3].header)
	}
	if rows[1].adjustable {
		t.Fatal("seed has no control and should be read-only")
	}
	r := rows[2]
	if !r.adjustable || r.param.Key != "roughness" {
		t.Fatalf("roughness row = %+v", r)
	}
	if r.plus.Max.X != 240-panelPadding {
		t.Fatalf("plus button should sit against the padding, got %v", r.plus)
	}
	if r.minus.Max.X != r.plus.Min.X-buttonGap || r.minus.Dy() != buttonSize {
		t.Fatalf("minus button %v misplaced next to %v", r.minus, r.plus)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].top <= rows[i-1].top {
			t.Fatalf("row %d does not stack below row %d", i, i-1)
		}
	}
	if !image.Pt(r.plus.Min.X+1, r.plus.Min.Y+1).In(r.plus) {
		t.Fatal("button rectangle should be non-empty")
	}
}

func TestRowStepping(t *testing.T) {
	rows := layoutRows(nil, sampleSnapshot(), sampleControls(), 240)
	rough, lod := rows[2], rows[4]

	if got := rough.stepped(1); got != 0.75 {
		t.Fatalf("roughness step up = %v", got)
	}
	if !lod.canStep(-1) || lod.canStep(1) {
		t.Fatal("sector lod at its maximum should only step down")
	}
	if got := lod.stepped(1); got != 4 {
		t.Fatalf("stepping past the maximum should clamp, got %v", got)
	}
	if rows[1].canStep(1) {
		t.Fatal("read-only rows cannot step")
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		row  hudRow
		want string
	}{
		{hudRow{param: core.Parameter{Type: core.ParamTypeFloat, Value: "0.7"}, ctrl: core.ParameterControl{Step: 0.05}}, "0.70"},
		{hudRow{param: core.Parameter{Type: core.ParamTypeFloat, Value: "230"}, ctrl: core.ParameterControl{Step: 5}}, "230"},
		{hudRow{param: core.Parameter{Type: core.ParamTypeBool, Value: "true"}}, "on"},
		{hudRow{param: core.Parameter{Type: core.ParamTypeBool, Value: "false"}}, "off"},
		{hudRow{param: core.Parameter{Type: core.ParamTypeInt, Value: "-12"}}, "-12"},
	}
	for _, c := range cases {
		if got := formatValue(c.row); got != c.want {
			t.Fatalf("formatValue(%+v) = %q, expected %q", c.row.param, got, c.want)
		}
	}
}
