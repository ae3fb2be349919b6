package workload

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arnavsharma/procsim/internal/sched"
)

// Write prints the final `<name> <pid>` listing in input order, one
// line per entry, flushing before returning.
func Write(w io.Writer, entries []*sched.ProcessEntry) error {
	bw := bufio.NewWriter(w)
	for _, p := range entries {
		if _, err := fmt.Fprintf(bw, "%s %d\n", p.Name, p.OSPid); err != nil {
			return err
		}
	}
	return bw.Flush()
}
