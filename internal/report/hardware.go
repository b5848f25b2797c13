package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"sysreport/internal/probe"
)

// HardwareSection reports CPU and memory facts from the structured wmic
// processor and OS probes.
type HardwareSection struct {
	runner probe.Runner
}

func NewHardwareSection(r probe.Runner) *HardwareSection {
	return &HardwareSection{runner: r}
}

func (s *HardwareSection) Name() string { return "hardware" }

var cpuFields = []fieldRule{
	{key: "Name", label: "CPU Name"},
	{key: "MaxClockSpeed", label: "Base Speed", suffix: " MHz"},
	{key: "NumberOfCores", label: "Cores"},
	{key: "NumberOfLogicalProcessors", label: "Logical processors"},
	{key: "L2CacheSize", label: "L2 cache", kind: fieldKBToMB},
	{key: "L3CacheSize", label: "L3 cache", kind: fieldKBToMB},
}

func (s *HardwareSection) Build(ctx context.Context) []string {
	lines := []string{"", "=== Hardware Information ==="}

	res := s.runner.Run(ctx, "wmic",
		"cpu", "get",
		"Name,NumberOfCores,NumberOfLogicalProcessors,MaxClockSpeed,L2CacheSize,L3CacheSize,VirtualizationFirmwareEnabled",
		"/format:list")
	if res.OK {
		lines = append(lines, scanFields(res.Text, cpuFields)...)
		v, found := fieldValue(res.Text, "VirtualizationFirmwareEnabled")
		if found && strings.EqualFold(v, "true") {
			lines = append(lines, "Virtualization: Enabled (BIOS/firmware)")
		} else {
			lines = append(lines, "Virtualization: Not reported as enabled")
		}
	} else {
		lines = append(lines, "wmic command not found or failed.")
	}

	if mb, ok := s.memoryMB(ctx); ok {
		lines = append(lines, fmt.Sprintf("Total System RAM: %.1f MB", mb))
	} else {
		lines = append(lines, "Total System RAM: Unknown (wmic OS call failed)")
	}
	return lines
}

// memoryMB reads TotalVisibleMemorySize (KB) and converts to MB.
func (s *HardwareSection) memoryMB(ctx context.Context) (float64, bool) {
	res := s.runner.Run(ctx, "wmic", "OS", "get", "TotalVisibleMemorySize", "/format:list")
	if !res.OK {
		return 0, false
	}
	v, ok := fieldValue(res.Text, "TotalVisibleMemorySize")
	if !ok {
		return 0, false
	}
	kb, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return kb / 1024.0, true
}
