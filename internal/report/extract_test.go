package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanFieldsEncounterOrder(t *testing.T) {
	text := "B=2\r\nA=1\r\nB=3"
	rules := []fieldRule{
		{key: "A", label: "Alpha"},
		{key: "B", label: "Beta"},
	}
	// One line per recognized key, in encounter order; repeated keys repeat.
	assert.Equal(t, []string{"Beta: 2", "Alpha: 1", "Beta: 3"}, scanFields(text, rules))
}

func TestScanFieldsTrimsLines(t *testing.T) {
	lines := scanFields("   Name=Intel Core\r\n", []fieldRule{{key: "Name", label: "CPU Name"}})
	assert.Equal(t, []string{"CPU Name: Intel Core"}, lines)
}

func TestScanFieldsSuffix(t *testing.T) {
	lines := scanFields("MaxClockSpeed=3600", []fieldRule{{key: "MaxClockSpeed", label: "Base Speed", suffix: " MHz"}})
	assert.Equal(t, []string{"Base Speed: 3600 MHz"}, lines)
}

func TestScanFieldsKBToMB(t *testing.T) {
	rules := []fieldRule{{key: "L2CacheSize", label: "L2 cache", kind: fieldKBToMB}}

	assert.Equal(t, []string{"L2 cache: 1.0 MB"}, scanFields("L2CacheSize=1024", rules))
	assert.Equal(t, []string{"L2 cache: 1.5 MB"}, scanFields("L2CacheSize=1536", rules))

	// Unparseable numeric fields drop silently, no placeholder.
	assert.Empty(t, scanFields("L2CacheSize=garbage", rules))
}

func TestFieldValue(t *testing.T) {
	text := "Other=x\r\nTotalVisibleMemorySize=16777216\r\nTotalVisibleMemorySize=1"

	v, ok := fieldValue(text, "TotalVisibleMemorySize")
	assert.True(t, ok)
	assert.Equal(t, "16777216", v)

	_, ok = fieldValue(text, "Missing")
	assert.False(t, ok)
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one", firstLine("one\ntwo"))
	assert.Equal(t, "only", firstLine("only"))
}
