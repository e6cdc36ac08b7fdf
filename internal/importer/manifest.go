// Package importer reads YAML manifests describing filter rules in bulk,
// so a whole set of filters can be applied in one run.
package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one filter definition from a manifest.
type Entry struct {
	Rule   string `yaml:"rule"`
	Field  string `yaml:"field"`
	Value  string `yaml:"value"`
	Folder string `yaml:"folder"`
}

// Manifest is the top-level YAML document:
//
//	version: "1"
//	filters:
//	  - rule: Newsletters
//	    field: from
//	    value: news@example.com
//	    folder: imap://user@host/Newsletters
type Manifest struct {
	Version string  `yaml:"version"`
	Filters []Entry `yaml:"filters"`
}

// Read loads and validates a manifest file, returning its entries in
// manifest order.
func Read(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if len(m.Filters) == 0 {
		return nil, fmt.Errorf("manifest %s: no filters defined", path)
	}

	for i, e := range m.Filters {
		if e.Rule == "" {
			return nil, fmt.Errorf("manifest %s: filters[%d]: rule name is required", path, i)
		}
		if e.Field == "" {
			return nil, fmt.Errorf("manifest %s: filters[%d] (%s): field is required", path, i, e.Rule)
		}
		if e.Value == "" {
			return nil, fmt.Errorf("manifest %s: filters[%d] (%s): value is required", path, i, e.Rule)
		}
	}

	return m.Filters, nil
}
