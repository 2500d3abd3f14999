// Package sim replays scroll scripts against an in-memory surface and
// reports how much work the engine did for each step.
package sim

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Step is one trigger. Exactly one field is set.
type Step struct {
	Scroll  *int `yaml:"scroll,omitempty"`
	Index   *int `yaml:"index,omitempty"`
	Resize  *int `yaml:"resize,omitempty"`
	Records *int `yaml:"records,omitempty"`
	Margin  *int `yaml:"margin,omitempty"`
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// String describes the step, e.g. "scroll 40".
func (s Step) String() string {
	switch {
	case s.Scroll != nil:
		return fmt.Sprintf("scroll %d", *s.Scroll)
	case s.Index != nil:
		return fmt.Sprintf("index %d", *s.Index)
	case s.Resize != nil:
		return fmt.Sprintf("resize %d", *s.Resize)
	case s.Records != nil:
		return fmt.Sprintf("records %d", *s.Records)
	case s.Margin != nil:
		return fmt.Sprintf("margin %d", *s.Margin)
	}
	return "empty"
}

func (s Step) validate() error {
	set := 0
	for _, v := range []*int{s.Scroll, s.Index, s.Resize, s.Records, s.Margin} {
		if v != nil {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("step must set exactly one of scroll, index, resize, records, margin (got %d)", set)
	}
	if s.Resize != nil && *s.Resize < 0 {
		return errors.New("resize must not be negative")
	}
	if s.Records != nil && *s.Records < 0 {
		return errors.New("records must not be negative")
	}
	return nil
}

// ParseScript decodes and validates a YAML script.
func ParseScript(r io.Reader) (*Script, error) {
	var script Script
	if err := yaml.NewDecoder(r).Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("script is empty")
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, step := range script.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &script, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return ParseScript(f)
}

func intp(v int) *int { return &v }

// DefaultScript exercises small scrolls, a jump to the end and back, a
// resize, a shrinking data set and a margin change.
func DefaultScript(items, viewport, itemExtent int) *Script {
	steps := []Step{}
	for off := itemExtent; off <= 6*itemExtent; off += itemExtent {
		steps = append(steps, Step{Scroll: intp(off)})
	}
	steps = append(steps,
		Step{Index: intp(items - 1)},
		Step{Scroll: intp((items - 2) * itemExtent)},
		Step{Index: intp(0)},
		Step{Resize: intp(viewport * 2)},
		Step{Scroll: intp(items / 2 * itemExtent)},
		Step{Records: intp(items / 4)},
		Step{Margin: intp(2)},
		Step{Scroll: intp(0)},
	)
	return &Script{Steps: steps}
}
