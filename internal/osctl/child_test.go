//go:build linux

package osctl

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain intercepts the case where this test binary has itself been
// re-exec'd as a Controller.Spawn child (childBurstEnv set): it behaves
// as a minimal child and exits, instead of running the test suite
// again. This is the same GO_WANT_HELPER_PROCESS pattern the standard
// library's own os/exec tests use for testing re-exec behavior safely.
func TestMain(m *testing.M) {
	if _, ok := ChildBurst(); ok {
		time.Sleep(2 * time.Second)
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// TestController_SpawnSuspendResumeReap mirrors the original's
// fork_block_test intent: a freshly spawned child is immediately
// stopped, SIGCONT resumes it, and it is eventually reaped cleanly.
func TestController_SpawnSuspendResumeReap(t *testing.T) {
	c := NewController(time.Millisecond, nil)

	pid, err := c.Spawn(1)
	require.NoError(t, err)
	require.Greater(t, pid, 0)

	assert.NoError(t, syscall.Kill(pid, syscall.Sig(0)), "child must exist and be stoppable/queryable")

	require.NoError(t, c.Resume(pid))

	deadline := time.Now().Add(5 * time.Second)
	var reaped bool
	for time.Now().Before(deadline) {
		_, ok, err := c.ReapNonBlocking()
		require.NoError(t, err)
		if ok {
			reaped = true
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, reaped, "child must eventually terminate and be reaped")
}

func TestController_ReapNonBlockingIsFalseWhenNothingExited(t *testing.T) {
	c := NewController(time.Millisecond, nil)
	_, ok, err := c.ReapNonBlocking()
	assert.NoError(t, err)
	assert.False(t, ok)
}
