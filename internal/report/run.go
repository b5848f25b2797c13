// Package report builds the system information report: four sections in a
// fixed order, each degrading to placeholder lines when its probes fail,
// assembled into one buffer and written best-effort to a single file.
package report

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"sysreport/internal/catalog"
	"sysreport/internal/probe"
)

// DefaultOutput is the fixed report filename, created in the working
// directory.
const DefaultOutput = "system_info.txt"

// Supported reports whether the collection pipeline can run on this host.
// Callers skip the run entirely elsewhere; nothing is written off-platform.
func Supported() bool { return runtime.GOOS == "windows" }

// Section builds one ordered group of report lines. The first lines are
// always a blank separator and the section heading, even when every probe
// behind the section failed.
type Section interface {
	Name() string
	Build(ctx context.Context) []string
}

type Options struct {
	// Output is the destination path; DefaultOutput when empty.
	Output string
	// WriteManifest additionally writes <Output>.manifest.json describing
	// the run.
	WriteManifest bool
	// Runner and Ticker default to the real implementations; tests swap in
	// doubles.
	Runner probe.Runner
	Ticker Ticker
}

type SectionResult struct {
	Name  string `json:"name"`
	Lines int    `json:"lines"`
}

type Result struct {
	RunID    string
	Path     string
	Lines    int
	Sections []SectionResult
}

// Run executes every section in fixed order, assembles the report, and
// writes it. Probe failures never surface here: worst case the report is
// headings and placeholders. The file write itself is best-effort and its
// failure is swallowed, as there is no remaining channel to report through.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Output == "" {
		opts.Output = DefaultOutput
	}
	if opts.Runner == nil {
		opts.Runner = probe.NewExecRunner()
	}
	if opts.Ticker == nil {
		opts.Ticker = sysTicker{}
	}

	sections := []Section{
		NewHardwareSection(opts.Runner),
		NewSystemSection(opts.Runner, opts.Ticker),
		NewToolchainSection(opts.Runner, catalog.MustLoad()),
		NewLocaleSection(opts.Runner),
	}

	res := Result{RunID: uuid.NewString(), Path: opts.Output}
	var buf []string
	for _, s := range sections {
		lines := s.Build(ctx)
		buf = append(buf, lines...)
		res.Sections = append(res.Sections, SectionResult{Name: s.Name(), Lines: len(lines)})
	}
	res.Lines = len(buf)

	_ = writeReport(opts.Output, assemble(buf))

	if opts.WriteManifest {
		_ = writeManifest(opts.Output+".manifest.json", manifest{
			RunID:     res.RunID,
			CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
			Output:    opts.Output,
			Sections:  res.Sections,
		})
	}
	return res, nil
}

// assemble terminates every line with a line break.
func assemble(lines []string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}
