package spritelint

import "fmt"

// Status is the outcome of checking a single sheet
type Status int

const (
	// Missing means the file could not be found
	Missing Status = iota
	// Fail means the file was read but broke at least one rule
	Fail
	// OK means the file passed every rule
	OK
)

func (s Status) String() string {
	switch s {
	case Missing:
		return "MISSING"
	case Fail:
		return "FAIL"
	case OK:
		return "OK"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the verdict for one file
type Result struct {
	Status Status

	// Reasons lists every failure found, in the order the rules ran. Only
	// the first is reported.
	Reasons []string

	// Summary describes a passing sheet
	Summary string
}

func missing() Result {
	return Result{Status: Missing}
}

func failed(reasons ...string) Result {
	return Result{Status: Fail, Reasons: reasons}
}

func ok(summary string) Result {
	return Result{Status: OK, Summary: summary}
}

// Passed reports whether the sheet was found and passed every rule
func (r Result) Passed() bool {
	return r.Status == OK
}

// String returns the description printed after the filename in the report,
// e.g. "OK size=1024x256 ..." or "FAIL wrong size ...".
func (r Result) String() string {
	switch r.Status {
	case OK:
		return "OK " + r.Summary
	case Fail:
		if len(r.Reasons) == 0 {
			return "FAIL"
		}
		return "FAIL " + r.Reasons[0]
	}
	return r.Status.String()
}

// Line returns the full report line for filename
func (r Result) Line(filename string) string {
	if r.Status == Missing {
		return fmt.Sprintf("%s %s", Missing, filename)
	}
	return filename + ": " + r.String()
}
