package domain

// Outcome is the per-task result of one synchronization decision.
type Outcome int

const (
	// OutcomeCopied means the destination was (or would be) written.
	OutcomeCopied Outcome = iota
	// OutcomeSkippedExists means the destination already exists and the
	// category's overwrite policy left it untouched.
	OutcomeSkippedExists
	// OutcomeSkippedMissingSource means the template source is absent.
	// Template drift is expected and never blocks the run.
	OutcomeSkippedMissingSource
)

// String returns a log-friendly name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeSkippedExists:
		return "skipped-exists"
	case OutcomeSkippedMissingSource:
		return "skipped-missing-source"
	default:
		return "unknown"
	}
}

// Result pairs a task with its outcome. Results are collected per run and
// drive the report layer instead of being printed inline.
type Result struct {
	Task    SyncTask
	Outcome Outcome
}

// Report aggregates the results of one run plus the advisory audit findings.
type Report struct {
	Results   []Result
	AuditHits []string
}

// Copied returns the number of tasks that wrote (or would write) their destination.
func (r *Report) Copied() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == OutcomeCopied {
			n++
		}
	}
	return n
}

// Skipped returns the number of tasks that left the destination untouched.
func (r *Report) Skipped() int {
	return len(r.Results) - r.Copied()
}

// Outcomes returns the outcome sequence in decision order. Dry runs must
// produce the same sequence as real runs over an identical starting tree.
func (r *Report) Outcomes() []Outcome {
	out := make([]Outcome, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Outcome
	}
	return out
}
