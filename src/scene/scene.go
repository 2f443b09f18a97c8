// Package scene loads named-segment scene descriptions for the inspection
// tools. Scenes are plain YAML or JSON files; the geometry kernel itself
// never sees them.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"kantarion/src/geometry"
)

var (
	// ErrNoSegments is returned for a scene file that defines no segments.
	ErrNoSegments = errors.New("scene: no segments")

	// ErrDuplicateName is returned when two segments share a name.
	ErrDuplicateName = errors.New("scene: duplicate segment name")
)

// SegmentDef is one named segment as written in a scene file. An empty
// name is filled in as "segment-N" (1-based) on load.
type SegmentDef struct {
	Name  string     `json:"name,omitempty" yaml:"name,omitempty"`
	Start [3]float64 `json:"start" yaml:"start,flow"`
	End   [3]float64 `json:"end" yaml:"end,flow"`
}

// Segment converts the definition to a kernel segment.
func (d SegmentDef) Segment() geometry.Segment {
	return geometry.NewSegment(
		geometry.NewVector3(d.Start[0], d.Start[1], d.Start[2]),
		geometry.NewVector3(d.End[0], d.End[1], d.End[2]),
	)
}

// Scene is a named collection of segments.
type Scene struct {
	Name     string       `json:"name,omitempty" yaml:"name,omitempty"`
	Segments []SegmentDef `json:"segments" yaml:"segments"`
}

// Load reads a YAML scene.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: decode yaml: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadJSON reads a JSON scene.
func LoadJSON(r io.Reader) (*Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: decode json: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile opens path and dispatches on the extension: .json loads JSON,
// everything else loads YAML.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(f)
	}
	return Load(f)
}

// validate fills in auto-names and rejects duplicates.
func (s *Scene) validate() error {
	if len(s.Segments) == 0 {
		return ErrNoSegments
	}
	seen := make(map[string]struct{}, len(s.Segments))
	for i := range s.Segments {
		if s.Segments[i].Name == "" {
			s.Segments[i].Name = fmt.Sprintf("segment-%d", i+1)
		}
		name := s.Segments[i].Name
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
