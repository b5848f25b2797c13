package report

import (
	"encoding/json"
	"os"
)

// writeReport writes through a temp file and renames, so a crash mid-write
// never leaves a truncated report behind.
func writeReport(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// manifest describes one report run, not the system itself; the report body
// stays plain text.
type manifest struct {
	RunID     string          `json:"run_id"`
	CreatedAt string          `json:"created_at"`
	Output    string          `json:"output"`
	Sections  []SectionResult `json:"sections"`
}

func writeManifest(path string, m manifest) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
