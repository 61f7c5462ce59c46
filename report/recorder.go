package report

import "sync"

// Recorder captures outcomes for later inspection, mainly by tests and
// embedding callers that map the final tally to an exit status.
type Recorder struct {
	mu       sync.Mutex
	outcomes []Outcome
	summary  *Summary
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) CaseFinished(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func (r *Recorder) RunFinished(s Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := s
	r.summary = &cp
}

// Outcomes returns the recorded outcomes in completion order.
func (r *Recorder) Outcomes() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Outcome(nil), r.outcomes...)
}

// Summary returns the final tally; ok is false while the run has not
// finished.
func (r *Recorder) Summary() (sum Summary, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.summary == nil {
		return Summary{}, false
	}
	return *r.summary, true
}
