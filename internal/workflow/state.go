package workflow

// State tracks where a generation run currently is. Transitions are strictly
// ordered; Failed is reachable from any state and is terminal for the run.
type State int

const (
	StateIdle State = iota
	StateReadingEvidence
	StateClassifying
	StateCheckingCompleteness
	StateAssembling
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReadingEvidence:
		return "reading evidence"
	case StateClassifying:
		return "classifying documents"
	case StateCheckingCompleteness:
		return "checking completeness"
	case StateAssembling:
		return "assembling draft"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
