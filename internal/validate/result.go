package validate

// Severity ranks a validation finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// per-severity score deduction
func (s Severity) deduction() float64 {
	switch s {
	case SeverityCritical:
		return 0.2
	case SeverityError:
		return 0.1
	case SeverityWarning:
		return 0.05
	case SeverityInfo:
		return 0.01
	default:
		return 0
	}
}

// Issue is a single validation finding. Findings are data, never errors;
// callers decide whether to block on them.
type Issue struct {
	Severity   Severity
	Category   string
	Message    string
	Location   string
	Suggestion string
}

// Result is the outcome of one validation pass. IsValid is true iff no
// issue has Error or Critical severity.
type Result struct {
	IsValid  bool
	Issues   []Issue
	Score    float64
	Metadata map[string]any
}

// newResult computes the score from a base value minus per-issue
// deductions, clamped to [0, 1], and derives validity from the issues.
func newResult(issues []Issue, baseScore float64, metadata map[string]any) Result {
	score := baseScore
	valid := true
	for _, issue := range issues {
		score -= issue.Severity.deduction()
		if issue.Severity >= SeverityError {
			valid = false
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return Result{
		IsValid:  valid,
		Issues:   issues,
		Score:    score,
		Metadata: metadata,
	}
}
