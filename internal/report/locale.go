package report

import (
	"context"

	"sysreport/internal/probe"
)

// LocaleSection reports the UI locale and the console code page. The two
// probes degrade independently.
type LocaleSection struct {
	runner probe.Runner
}

func NewLocaleSection(r probe.Runner) *LocaleSection {
	return &LocaleSection{runner: r}
}

func (s *LocaleSection) Name() string { return "locale" }

func (s *LocaleSection) Build(ctx context.Context) []string {
	locale := "Not available"
	if res := s.runner.Run(ctx, "powershell", "-Command", "(Get-UICulture).Name"); res.OK {
		locale = res.Text
	}

	encoding := "Not available"
	if res := s.runner.Run(ctx, "chcp"); res.OK {
		encoding = res.Text
	}

	return []string{
		"",
		"=== Locale and Encoding Information ===",
		"Default Locale: " + locale,
		"Preferred Encoding: " + encoding,
	}
}
