package report

import (
	"context"
	"errors"

	"sysreport/internal/probe"
)

// fakeRunner answers probes from a closure; the zero value answers every
// probe as absent.
type fakeRunner struct {
	fn func(name string, args ...string) probe.Result
}

func (f fakeRunner) Run(_ context.Context, name string, args ...string) probe.Result {
	if f.fn == nil {
		return probe.Result{}
	}
	return f.fn(name, args...)
}

func present(text string) probe.Result { return probe.Result{OK: true, Text: text} }

type fixedTicker struct{ ms uint64 }

func (t fixedTicker) TickCount() (uint64, error) { return t.ms, nil }

type errTicker struct{}

func (errTicker) TickCount() (uint64, error) { return 0, errors.New("no tick source") }

func noEnv(string) (string, bool) { return "", false }

func noIP() (string, bool) { return "", false }
