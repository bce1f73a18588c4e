package script

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileScript is the YAML wire shape of a script document.
type fileScript struct {
	Name  string     `yaml:"name"`
	Steps []fileStep `yaml:"steps"`
}

type fileStep struct {
	ID           string `yaml:"id"`
	Chapter      string `yaml:"chapter"`
	Tab          string `yaml:"tab"`
	Narration    string `yaml:"narration"`
	Subtext      string `yaml:"subtext,omitempty"`
	DurationMs   int    `yaml:"duration_ms,omitempty"`
	Action       string `yaml:"action,omitempty"`
	ScrollTarget string `yaml:"scroll_target,omitempty"`
	Final        bool   `yaml:"final,omitempty"`
}

// ParseYAML decodes and validates a script from YAML bytes. A malformed step
// action never fails the load: the step keeps a no-op action and the problem
// is reported in the returned warnings.
func ParseYAML(data []byte) (*Script, []string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, fmt.Errorf("script: payload is empty")
	}
	var file fileScript
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("script: decode: %w", err)
	}
	steps := make([]Step, 0, len(file.Steps))
	var warnings []string
	for _, fs := range file.Steps {
		step := Step{
			ID:           fs.ID,
			Chapter:      fs.Chapter,
			Tab:          fs.Tab,
			Narration:    fs.Narration,
			Subtext:      fs.Subtext,
			Duration:     time.Duration(fs.DurationMs) * time.Millisecond,
			ScrollTarget: fs.ScrollTarget,
			Final:        fs.Final,
		}
		action, err := ParseAction(fs.Action)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("step %s: %v", fs.ID, err))
		} else {
			step.Action = action
		}
		steps = append(steps, step)
	}
	s, err := New(file.Name, steps)
	if err != nil {
		return nil, warnings, err
	}
	return s, warnings, nil
}

// LoadReader reads script data from an io.Reader.
func LoadReader(r io.Reader) (*Script, []string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("script: read: %w", err)
	}
	return ParseYAML(content)
}

// LoadFile loads a script from an explicit file path.
func LoadFile(path string) (*Script, []string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	s, warnings, parseErr := ParseYAML(content)
	if parseErr != nil {
		return nil, warnings, fmt.Errorf("script: %s: %w", path, parseErr)
	}
	return s, warnings, nil
}
