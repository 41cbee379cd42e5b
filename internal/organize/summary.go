package organize

// Summary reports the counters of one organize run. Counters are owned
// exclusively by the Runner that produced them.
type Summary struct {
	// DryRun records which mode produced these tallies.
	DryRun bool
	// Scanned counts every regular file the walk yielded.
	Scanned int
	// Ignored counts files with no extension or an unmapped one.
	Ignored int
	// Considered counts files that passed classification.
	Considered int
	// Moved counts files moved or renamed into the destination (or, in a
	// dry run, files that would have been).
	Moved int
	// Duplicates counts identical files skipped without touching either copy.
	Duplicates int
	// Errors counts files abandoned by hash or move failures, or lost
	// before processing began.
	Errors int
}

// Unaccounted reports files that passed classification but landed in neither
// the moved nor the duplicate tally, typically lost to mid-run errors.
func (s Summary) Unaccounted() int {
	return s.Considered - s.Moved - s.Duplicates
}

func (s *Summary) record(p Placement) {
	switch p.Outcome {
	case OutcomeMoved, OutcomeRenamed:
		s.Moved++
	case OutcomeSkippedDuplicate:
		s.Duplicates++
	case OutcomeSkippedError:
		s.Errors++
	}
}
