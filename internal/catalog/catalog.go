// Package catalog holds the fixed list of language toolchains the report
// probes for.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Toolchain is one cataloged language runtime: its display name, the binary
// looked up on PATH, and the argv that makes it print its version.
type Toolchain struct {
	Name        string   `yaml:"name"`
	Bin         string   `yaml:"bin"`
	VersionArgs []string `yaml:"version_args"`
}

// Load parses the embedded catalog and returns the entries sorted by display
// name, ascending. The returned slice is fresh on every call; callers may
// not mutate shared state through it.
func Load() ([]Toolchain, error) {
	var doc struct {
		Toolchains []Toolchain `yaml:"toolchains"`
	}
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse toolchain catalog: %w", err)
	}
	entries := doc.Toolchains
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// MustLoad panics on a malformed embedded catalog. The catalog ships inside
// the binary, so a parse failure is a build defect, not a runtime condition.
func MustLoad() []Toolchain {
	entries, err := Load()
	if err != nil {
		panic(err)
	}
	return entries
}
