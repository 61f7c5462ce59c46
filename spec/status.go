package spec

import "fmt"

// CaseStatus tracks a case through its lifecycle.
type CaseStatus string

const (
	CaseStatusPending CaseStatus = "pending"
	CaseStatusRunning CaseStatus = "running"
	CaseStatusPassed  CaseStatus = "passed"
	CaseStatusFailed  CaseStatus = "failed"
)

var terminalCaseStatuses = map[CaseStatus]bool{
	CaseStatusPassed: true,
	CaseStatusFailed: true,
}

// Case lifecycle: pending → running → passed|failed
var validCaseTransitions = map[CaseStatus]map[CaseStatus]bool{
	CaseStatusPending: {
		CaseStatusRunning: true,
	},
	CaseStatusRunning: {
		CaseStatusPassed: true,
		CaseStatusFailed: true,
	},
}

func IsTerminal(s CaseStatus) bool {
	return terminalCaseStatuses[s]
}

// ValidateCaseTransition rejects transitions outside the case lifecycle.
// A rejected transition out of a terminal status is how a duplicate
// completion signal gets dropped.
func ValidateCaseTransition(from, to CaseStatus) error {
	if IsTerminal(from) {
		return fmt.Errorf("cannot transition from terminal case status %q", from)
	}
	allowed, ok := validCaseTransitions[from]
	if !ok {
		return fmt.Errorf("unknown case status %q", from)
	}
	if !allowed[to] {
		return fmt.Errorf("invalid case transition: %q → %q", from, to)
	}
	return nil
}
