// Package testapi runs the headless automated test suite against a
// theme file. The suite exercises the theme pipeline end to end (load,
// structure, colors, fonts, serialization round-trip, performance)
// without a GUI.
//
// Collaborator components may be unavailable in constrained CI
// environments; their construction failures are an explicit Skipped
// outcome, never a suite failure.
package testapi

// Status classifies a test step outcome.
type Status int

const (
	// StatusPassed means the step ran and succeeded.
	StatusPassed Status = iota

	// StatusSkipped means the step could not run because a collaborator
	// dependency was unavailable. Skips never fail the suite.
	StatusSkipped

	// StatusFailed means the step ran and found a problem.
	StatusFailed
)

// String returns the lowercase status name used in JSON results.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler for JSON results.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is the result of a single test step. Reason is set for
// skipped and failed outcomes.
type Outcome struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Passed returns a passing outcome.
func Passed() Outcome {
	return Outcome{Status: StatusPassed}
}

// Skipped returns a skipped outcome with the given reason.
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason}
}

// Failed returns a failing outcome with the given reason.
func Failed(reason string) Outcome {
	return Outcome{Status: StatusFailed, Reason: reason}
}
