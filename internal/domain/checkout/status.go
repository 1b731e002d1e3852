package checkout

type Status string

const (
	StatusDraft                   Status = "draft"
	StatusAwaitingAccountDecision Status = "awaiting_account_decision"
	StatusReady                   Status = "ready"
	StatusSubmitting              Status = "submitting"
	StatusCompleted               Status = "completed"
)

// validTransitions encodes the checkout flow. Validation failures never
// transition: a blocked submit leaves the draft where it was.
var validTransitions = map[Status][]Status{
	StatusDraft:                   {StatusAwaitingAccountDecision, StatusReady},
	StatusAwaitingAccountDecision: {StatusReady, StatusDraft},
	StatusReady:                   {StatusSubmitting},
	StatusSubmitting:              {StatusCompleted},
	StatusCompleted:               {StatusDraft},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}
