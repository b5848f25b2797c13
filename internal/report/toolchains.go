package report

import (
	"context"
	"strings"

	"sysreport/internal/catalog"
	"sysreport/internal/probe"
)

// ToolchainStatus is one catalog entry's install state on this host.
type ToolchainStatus struct {
	Installed bool
	Path      string
	Version   string // empty when the version probe yielded nothing
}

// LookupToolchain resolves a toolchain binary with "where" and, when found,
// asks it for its version. A failed lookup means not installed; a failed
// version probe still counts as installed.
func LookupToolchain(ctx context.Context, r probe.Runner, tc catalog.Toolchain) ToolchainStatus {
	look := r.Run(ctx, "where", tc.Bin)
	if !look.OK {
		return ToolchainStatus{}
	}
	path := strings.TrimSpace(firstLine(look.Text))
	if path == "" {
		return ToolchainStatus{}
	}

	st := ToolchainStatus{Installed: true, Path: path}
	if ver := r.Run(ctx, tc.Bin, tc.VersionArgs...); ver.OK {
		st.Version = strings.TrimSpace(firstLine(ver.Text))
	}
	return st
}

// ToolchainSection reports installed language runtimes from the catalog.
// Entries that are not installed are omitted entirely: a missing dev tool is
// not an error worth a placeholder, unlike the other sections.
type ToolchainSection struct {
	runner  probe.Runner
	entries []catalog.Toolchain
}

// NewToolchainSection expects entries already sorted by display name, as
// catalog.Load returns them.
func NewToolchainSection(r probe.Runner, entries []catalog.Toolchain) *ToolchainSection {
	return &ToolchainSection{runner: r, entries: entries}
}

func (s *ToolchainSection) Name() string { return "toolchains" }

func (s *ToolchainSection) Build(ctx context.Context) []string {
	lines := []string{"", "=== Programming Languages Environment ==="}
	for _, tc := range s.entries {
		st := LookupToolchain(ctx, s.runner, tc)
		if !st.Installed {
			continue
		}
		lines = append(lines, "", tc.Name+":")
		if st.Version != "" {
			lines = append(lines, "  Version: "+st.Version)
		} else {
			lines = append(lines, "  Version: Not available")
		}
		lines = append(lines, "  Path: "+st.Path)
	}
	return lines
}
