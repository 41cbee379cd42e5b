package organize

// Outcome describes the terminal state of one file's move decision.
type Outcome int

const (
	// OutcomeMoved means the file was placed at its original name.
	OutcomeMoved Outcome = iota
	// OutcomeRenamed means the file was placed under a synthesized unique name.
	OutcomeRenamed
	// OutcomeSkippedDuplicate means an identical copy already existed at the
	// destination; neither file was touched.
	OutcomeSkippedDuplicate
	// OutcomeSkippedError means a hash or move failure aborted this file.
	OutcomeSkippedError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeRenamed:
		return "renamed"
	case OutcomeSkippedDuplicate:
		return "skipped-duplicate"
	case OutcomeSkippedError:
		return "skipped-error"
	default:
		return "unknown"
	}
}

// Placement reports where a file ended up and why.
type Placement struct {
	Outcome Outcome
	// Target is the destination path the file was (or would be) moved to.
	// Empty for skips.
	Target string
	// Err carries the failure behind OutcomeSkippedError.
	Err error
}
