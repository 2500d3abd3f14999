// Package source loads the records shown by the viewer and the simulator.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is one list entry.
type Record struct {
	Title  string `yaml:"title"`
	Detail string `yaml:"detail,omitempty"`
}

// UnmarshalYAML accepts either a plain scalar or a {title, detail} mapping.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		r.Title = node.Value
		r.Detail = ""
		return nil
	}
	type plain Record
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = Record(p)
	return nil
}

// Load reads records from path. YAML and JSON files hold a sequence; any
// other file is read one record per line. A path of "-" reads stdin.
func Load(path string) ([]Record, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return Decode(f)
	}
	return Read(f)
}

// Decode parses a YAML (or JSON) sequence of records.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse records: %w", err)
	}
	return records, nil
}

// Read returns one record per line. Trailing blank lines are dropped.
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		records = append(records, Record{Title: strings.TrimRight(scanner.Text(), "\r")})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	for len(records) > 0 && strings.TrimSpace(records[len(records)-1].Title) == "" {
		records = records[:len(records)-1]
	}
	return records, nil
}

// Generate returns n synthetic records.
func Generate(n int) []Record {
	if n < 0 {
		n = 0
	}
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			Title:  fmt.Sprintf("item %d", i),
			Detail: fmt.Sprintf("row %d of %d", i+1, n),
		}
	}
	return records
}

// Matches reports whether the record contains query, case-insensitively.
// An empty query matches everything.
func Matches(r Record, query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), query) ||
		strings.Contains(strings.ToLower(r.Detail), query)
}
