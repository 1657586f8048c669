package terrain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SectorEdit describes one sector regeneration in an edit script.
type SectorEdit struct {
	X             int     `yaml:"x"`
	Y             int     `yaml:"y"`
	LOD           int     `yaml:"lod"`
	Roughness     float64 `yaml:"roughness"`
	CentralHeight float64 `yaml:"central_height"`
	Note          string  `yaml:"note"`
}

func (e SectorEdit) String() string {
	s := fmt.Sprintf("origin=(%d,%d) lod=%d roughness=%g height=%g", e.X, e.Y, e.LOD, e.Roughness, e.CentralHeight)
	if e.Note != "" {
		s += " " + e.Note
	}
	return s
}

// LoadEdits reads a YAML list of sector edits.
func LoadEdits(path string) ([]SectorEdit, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sector edits: %w", err)
	}
	edits, err := parseEdits(raw)
	if err != nil {
		return nil, fmt.Errorf("parse sector edits %s: %w", path, err)
	}
	return edits, nil
}

func parseEdits(raw []byte) ([]SectorEdit, error) {
	var edits []SectorEdit
	if err := yaml.Unmarshal(raw, &edits); err != nil {
		return nil, err
	}
	for i, e := range edits {
		if e.LOD < 1 {
			return nil, fmt.Errorf("edit %d: lod must be >= 1, got %d", i, e.LOD)
		}
	}
	return edits, nil
}
