package report

import (
	"fmt"
	"strconv"
	"strings"
)

type fieldKind int

const (
	// fieldVerbatim renders "<label>: <value><suffix>".
	fieldVerbatim fieldKind = iota
	// fieldKBToMB parses the value as KB and renders "<label>: <mb:.1f> MB".
	// A value that does not parse drops the line entirely, with no
	// placeholder. That asymmetry with the "Unknown" fallbacks elsewhere is
	// kept on purpose.
	fieldKBToMB
)

type fieldRule struct {
	key    string // matches a trimmed line starting with "<key>="
	label  string
	suffix string
	kind   fieldKind
}

// scanFields walks the probe text line by line and emits one report line per
// recognized key, in encounter order. It is not first-match-wins: a key
// appearing on several lines contributes several lines.
func scanFields(text string, rules []fieldRule) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		for _, r := range rules {
			prefix := r.key + "="
			if !strings.HasPrefix(line, prefix) {
				continue
			}
			val := line[len(prefix):]
			switch r.kind {
			case fieldVerbatim:
				lines = append(lines, r.label+": "+val+r.suffix)
			case fieldKBToMB:
				kb, err := strconv.ParseFloat(val, 64)
				if err != nil {
					continue
				}
				lines = append(lines, fmt.Sprintf("%s: %.1f MB", r.label, kb/1024.0))
			}
		}
	}
	return lines
}

// fieldValue returns the value of the first "<key>=" line in the probe text.
func fieldValue(text, key string) (string, bool) {
	prefix := key + "="
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, prefix) {
			return line[len(prefix):], true
		}
	}
	return "", false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
