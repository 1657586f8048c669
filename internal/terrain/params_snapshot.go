package terrain

import (
	"strconv"

	"mapgen/internal/core"
	"mapgen/internal/heightmap"
)

// Parameters reports the map and sector settings, grouped as the HUD shows
// them.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("detail", "Detail", w.cfg.Detail),
				int64Param("seed", "Seed", w.Seed()),
				floatParam("roughness", "Roughness", params.Roughness),
				boolParam("normalize", "Normalize", params.Normalize),
			},
		},
		{
			Name: "Sector",
			Params: []core.Parameter{
				intParam("sector_lod", "Sector LOD", params.SectorLOD),
				floatParam("sector_roughness", "Sector roughness", params.SectorRoughness),
				floatParam("sector_height", "Sector height", params.SectorHeight),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables. On a normalized map
// the sector height is limited to the normalized range.
func (w *World) ParameterControls() []core.ParameterControl {
	heightMin, heightMax := -float64(heightmap.NormalizedMax), 2*float64(heightmap.NormalizedMax)
	if w.cfg.Params.Normalize {
		heightMin, heightMax = 0, heightmap.NormalizedMax
	}
	return []core.ParameterControl{
		{Key: "roughness", Label: "Roughness", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 3, HasMin: true, HasMax: true},
		{Key: "sector_lod", Label: "Sector LOD", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: float64(w.cfg.Detail), HasMin: true, HasMax: true},
		{Key: "sector_roughness", Label: "Sector rough", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 3, HasMin: true, HasMax: true},
		{Key: "sector_height", Label: "Sector height", Type: core.ParamTypeFloat, Step: 5, Min: heightMin, Max: heightMax, HasMin: true, HasMax: true},
	}
}

func (w *World) control(key string) (core.ParameterControl, bool) {
	for _, c := range w.ParameterControls() {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetFloatParameter updates a floating point tunable, clamping it to the
// control bounds. Changing the roughness regenerates the map with its seed.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := w.control(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	value = ctrl.Clamp(value)
	switch key {
	case "roughness":
		w.cfg.Params.Roughness = value
		if w.grid != nil {
			if err := w.regenerate(w.grid.Seed()); err != nil {
				return false
			}
		}
	case "sector_roughness":
		w.cfg.Params.SectorRoughness = value
	case "sector_height":
		w.cfg.Params.SectorHeight = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable, clamping it to the control bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := w.control(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	value = int(ctrl.Clamp(float64(value)))
	switch key {
	case "sector_lod":
		w.cfg.Params.SectorLOD = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
