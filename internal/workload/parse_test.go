package workload

import (
	"strings"
	"testing"

	"github.com/arnavsharma/procsim/internal/sched"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidWorkload(t *testing.T) {
	in := "FIFO\n2\nA 0 3\nB 0 2\n"
	wl, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, sched.FIFO, wl.Policy)
	require.Len(t, wl.Entries, 2)
	assert.Equal(t, "A", wl.Entries[0].Name)
	assert.Equal(t, 0, wl.Entries[0].ArrivalOffset)
	assert.Equal(t, 3, wl.Entries[0].BurstLength)
	assert.Equal(t, 3, wl.Entries[0].Remaining)
	assert.Equal(t, "B", wl.Entries[1].Name)
}

func TestParse_ZeroProcesses(t *testing.T) {
	wl, err := Parse(strings.NewReader("RR\n0\n"))
	require.NoError(t, err)
	assert.Empty(t, wl.Entries)
}

func TestParse_UnknownPolicy(t *testing.T) {
	_, err := Parse(strings.NewReader("BOGUS\n0\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParse_WrongFieldCount(t *testing.T) {
	_, err := Parse(strings.NewReader("FIFO\n1\nA 0\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParse_NegativeBurst(t *testing.T) {
	_, err := Parse(strings.NewReader("SJF\n1\nA 0 -3\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParse_DuplicateName(t *testing.T) {
	_, err := Parse(strings.NewReader("PSJF\n2\nA 0 1\nA 1 1\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParse_TruncatedInput(t *testing.T) {
	_, err := Parse(strings.NewReader("FIFO\n2\nA 0 1\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}
