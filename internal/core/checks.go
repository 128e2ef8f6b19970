package core

// Conclusions that do not fail a completed check run.
var passingConclusions = map[string]struct{}{
	"SUCCESS": {},
	"NEUTRAL": {},
	"SKIPPED": {},
}

// AggregateCI reduces a heterogeneous list of check records to one CIState.
//
// The scan starts optimistic and downgrades as it goes: an unfinished check
// run or a pending status context moves the running verdict to pending but
// the scan continues, while any failed check short-circuits the whole
// aggregate to failing. Failing trumps pending trumps passing; only failing
// stops the evaluation. No checks at all means passing.
func AggregateCI(checks []CheckRecord) CIState {
	state := CIPassing
	for _, c := range checks {
		switch c.Kind {
		case CheckKindRun:
			if c.Status != "COMPLETED" {
				state = CIPending
			} else if _, ok := passingConclusions[c.Conclusion]; !ok {
				return CIFailing
			}
		case CheckKindStatusContext:
			if c.State == "PENDING" {
				state = CIPending
			} else if c.State != "SUCCESS" {
				return CIFailing
			}
		}
	}
	return state
}
