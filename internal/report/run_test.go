package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headings(content string) []string {
	var hs []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "=== ") {
			hs = append(hs, line)
		}
	}
	return hs
}

func TestRunAllProbesAbsent(t *testing.T) {
	out := filepath.Join(t.TempDir(), "system_info.txt")

	res, err := Run(context.Background(), Options{
		Output: out,
		Runner: fakeRunner{},
		Ticker: errTicker{},
	})
	require.NoError(t, err)
	assert.Equal(t, out, res.Path)
	assert.NotEmpty(t, res.RunID)
	require.Len(t, res.Sections, 4)
	assert.Equal(t, "hardware", res.Sections[0].Name)
	assert.Equal(t, "os_network", res.Sections[1].Name)
	assert.Equal(t, "toolchains", res.Sections[2].Name)
	assert.Equal(t, "locale", res.Sections[3].Name)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(b)

	assert.True(t, strings.HasSuffix(content, "\n"))
	assert.Equal(t, []string{
		"=== Hardware Information ===",
		"=== OS and Network Information ===",
		"=== Programming Languages Environment ===",
		"=== Locale and Encoding Information ===",
	}, headings(content))

	assert.Contains(t, content, "wmic command not found or failed.")
	assert.Contains(t, content, "Total System RAM: Unknown (wmic OS call failed)")
	assert.Contains(t, content, "System Uptime: Unknown")
	assert.Contains(t, content, "Default Locale: Not available")
	assert.Contains(t, content, "Preferred Encoding: Not available")
	// No toolchain made it into the report.
	assert.NotContains(t, content, "  Path:")
}

func TestRunSectionOrderFixed(t *testing.T) {
	out := filepath.Join(t.TempDir(), "system_info.txt")

	_, err := Run(context.Background(), Options{Output: out, Runner: fakeRunner{}, Ticker: fixedTicker{}})
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(b)

	hw := strings.Index(content, "=== Hardware Information ===")
	osnet := strings.Index(content, "=== OS and Network Information ===")
	tools := strings.Index(content, "=== Programming Languages Environment ===")
	locale := strings.Index(content, "=== Locale and Encoding Information ===")
	assert.True(t, hw >= 0 && hw < osnet && osnet < tools && tools < locale)
}

func TestRunOverwritesPreviousReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "system_info.txt")
	require.NoError(t, os.WriteFile(out, []byte("stale report contents"), 0o644))

	_, err := Run(context.Background(), Options{Output: out, Runner: fakeRunner{}, Ticker: errTicker{}})
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "stale report contents")
}

func TestRunManifest(t *testing.T) {
	out := filepath.Join(t.TempDir(), "system_info.txt")

	res, err := Run(context.Background(), Options{
		Output:        out,
		WriteManifest: true,
		Runner:        fakeRunner{},
		Ticker:        errTicker{},
	})
	require.NoError(t, err)

	b, err := os.ReadFile(out + ".manifest.json")
	require.NoError(t, err)

	var m struct {
		RunID     string          `json:"run_id"`
		CreatedAt string          `json:"created_at"`
		Output    string          `json:"output"`
		Sections  []SectionResult `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, res.RunID, m.RunID)
	assert.Equal(t, out, m.Output)
	assert.NotEmpty(t, m.CreatedAt)
	assert.Len(t, m.Sections, 4)
}

func TestRunSwallowsWriteFailure(t *testing.T) {
	// A directory that does not exist makes both the temp write and the
	// rename fail; the run must still succeed silently.
	out := filepath.Join(t.TempDir(), "missing", "nested", "system_info.txt")

	_, err := Run(context.Background(), Options{Output: out, Runner: fakeRunner{}, Ticker: errTicker{}})
	require.NoError(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAssembleTerminatesEveryLine(t *testing.T) {
	assert.Equal(t, "a\nb\n", string(assemble([]string{"a", "b"})))
}
