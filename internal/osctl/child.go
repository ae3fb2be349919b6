//go:build linux

package osctl

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"syscall"
	"time"

	"github.com/arnavsharma/procsim/internal/sched"
)

// childBurstEnv is set in a re-exec'd child's environment to tell it how
// many units of work to run before exiting. Go has no raw fork() without
// cgo; re-executing the same binary with this marker is the idiomatic
// stand-in used throughout the ecosystem for "spawn a plain child that
// runs a bounded chunk of work and exits".
const childBurstEnv = "PROCSIM_CHILD_BURST"

// ChildBurst reports the burst length requested of this process via
// childBurstEnv, if this process was re-exec'd as a scheduler child.
func ChildBurst() (units int, ok bool) {
	v, present := os.LookupEnv(childBurstEnv)
	if !present {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Controller forks (via re-exec) and controls scheduler children. It
// implements sched.OSController.
type Controller struct {
	unit   time.Duration
	logger *slog.Logger

	procs    map[int]*os.Process
	spawned  map[int]time.Time
	expected map[int]time.Duration
	jitter   *burstJitterEMA
}

// NewController returns a Controller with no children yet spawned. unit
// is the calibrated time-unit duration, used only to compute the
// scheduling-jitter diagnostic logged on reap; logger defaults to
// slog.Default() when nil.
func NewController(unit time.Duration, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		unit:     unit,
		logger:   logger,
		procs:    make(map[int]*os.Process),
		spawned:  make(map[int]time.Time),
		expected: make(map[int]time.Duration),
		jitter:   newBurstJitterEMA(0.3),
	}
}

// Spawn re-execs the current binary with childBurstEnv set to
// burstLength, then immediately suspends it so it cannot race the
// dispatcher before the ready-set strategy has a chance to schedule it.
func (c *Controller) Spawn(burstLength int) (int, error) {
	self, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("osctl: resolve self: %w", err)
	}
	cmd := exec.Command(self)
	cmd.Env = append(os.Environ(), fmt.Sprintf("%s=%d", childBurstEnv, burstLength))
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("osctl: spawn child: %w", err)
	}
	pid := cmd.Process.Pid
	c.procs[pid] = cmd.Process
	c.spawned[pid] = time.Now()
	c.expected[pid] = time.Duration(burstLength) * c.unit
	if err := c.Suspend(pid); err != nil {
		return 0, fmt.Errorf("osctl: suspend freshly-spawned child %d: %w", pid, err)
	}
	return pid, nil
}

// Suspend stops pid via SIGSTOP.
func (c *Controller) Suspend(pid int) error {
	if err := syscall.Kill(pid, syscall.SIGSTOP); err != nil {
		return fmt.Errorf("osctl: SIGSTOP %d: %w", pid, err)
	}
	return nil
}

// Resume continues pid via SIGCONT.
func (c *Controller) Resume(pid int) error {
	if err := syscall.Kill(pid, syscall.SIGCONT); err != nil {
		return fmt.Errorf("osctl: SIGCONT %d: %w", pid, err)
	}
	return nil
}

// ReapNonBlocking performs a single non-blocking wait for any terminated
// child and returns its pid, or ok=false if none has exited yet. Callers
// loop on this until it returns ok=false to drain a coalesced SIGCHLD.
func (c *Controller) ReapNonBlocking() (pid int, ok bool, err error) {
	var ws syscall.WaitStatus
	p, e := syscall.Wait4(-1, &ws, syscall.WNOHANG, nil)
	switch {
	case e == syscall.ECHILD:
		return 0, false, nil
	case e != nil:
		return 0, false, fmt.Errorf("osctl: wait4: %w", e)
	case p <= 0:
		return 0, false, nil
	}
	delete(c.procs, p)
	c.recordJitter(p)
	if !ws.Exited() || ws.ExitStatus() != 0 {
		return p, true, fmt.Errorf("osctl: pid %d: %w (status %v)", p, sched.ErrUnexpectedChildState, ws)
	}
	return p, true, nil
}

// recordJitter logs how far pid's actual lifetime diverged from its
// expected burstLength*unit, smoothed across the run via an EMA so a
// single outlier reschedule doesn't dominate the signal.
func (c *Controller) recordJitter(pid int) {
	start, ok := c.spawned[pid]
	if !ok {
		return
	}
	expected := c.expected[pid]
	delete(c.spawned, pid)
	delete(c.expected, pid)
	if expected <= 0 {
		return
	}
	actual := time.Since(start)
	ratio := c.jitter.next(float64(actual) / float64(expected))
	c.logger.Debug("child scheduling jitter", "pid", pid, "expected", expected, "actual", actual, "ema_ratio", ratio)
}
