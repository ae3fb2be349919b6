package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arnavsharma/procsim/internal/sched"
)

// Parse reads the textual workload format from r:
//
//	<POLICY>
//	<N>
//	<name_1> <arrival_1> <burst_1>
//	...
//	<name_N> <arrival_N> <burst_N>
//
// Malformed input (unknown policy, bad field count, negative values)
// returns an error wrapping ErrMalformed.
func Parse(r io.Reader) (*Workload, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing policy line", ErrMalformed)
	}
	policy, err := validatePolicy(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, err
	}

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing process count", ErrMalformed)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: bad process count %q", ErrMalformed, sc.Text())
	}

	entries := make([]*sched.ProcessEntry, 0, n)
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d process lines, got %d", ErrMalformed, n, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: process line %d: want 3 fields, got %d", ErrMalformed, i, len(fields))
		}
		name := fields[0]
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate process name %q", ErrMalformed, name)
		}
		arrival, err := strconv.Atoi(fields[1])
		if err != nil || arrival < 0 {
			return nil, fmt.Errorf("%w: process %q: bad arrival_offset %q", ErrMalformed, name, fields[1])
		}
		burst, err := strconv.Atoi(fields[2])
		if err != nil || burst < 0 {
			return nil, fmt.Errorf("%w: process %q: bad burst_length %q", ErrMalformed, name, fields[2])
		}
		seen[name] = true
		entries = append(entries, sched.NewProcessEntry(name, arrival, burst, i))
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &Workload{Policy: policy, Entries: entries}, nil
}
