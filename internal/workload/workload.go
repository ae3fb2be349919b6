// Package workload parses and writes the textual workload description
// and result listing. It is one of the spec's deliberately external
// collaborators; internal/sched never imports it.
package workload

import (
	"fmt"

	"github.com/arnavsharma/procsim/internal/sched"
)

// Workload is the fully parsed input: a policy selection plus the
// ordered list of process entries as they appeared in the source.
type Workload struct {
	Policy  sched.Policy
	Entries []*sched.ProcessEntry
}

// ErrMalformed reports a workload that failed validation: unknown
// policy token, wrong field count, or a negative arrival/burst value.
// Per the malformed-workload error taxonomy, the caller treats this as
// fatal.
var ErrMalformed = fmt.Errorf("workload: malformed input")

func validatePolicy(tok string) (sched.Policy, error) {
	switch sched.Policy(tok) {
	case sched.FIFO, sched.RR, sched.SJF, sched.PSJF:
		return sched.Policy(tok), nil
	default:
		return "", fmt.Errorf("%w: unknown policy %q", ErrMalformed, tok)
	}
}
