//go:build linux

package osctl

import (
	"log/slog"
	"os"
)

// BusyUnit is the concrete UnitOfWork primitive both the calibrator and
// every child burst run: a small fixed amount of integer arithmetic,
// cheap enough to repeat thousands of times during calibration yet
// coarse enough that scheduling jitter from SIGSTOP/SIGCONT stays small
// relative to it.
type BusyUnit struct {
	spins int
}

// NewBusyUnit returns a BusyUnit that iterates spins times per call
// (spins <= 0 defaults to 20000, enough to dominate syscall
// overhead without making a single unit noticeably long).
func NewBusyUnit(spins int) *BusyUnit {
	if spins <= 0 {
		spins = 20000
	}
	return &BusyUnit{spins: spins}
}

// RunSingleUnit implements sched.UnitOfWork.
func (b *BusyUnit) RunSingleUnit() {
	x := 0
	for i := 0; i < b.spins; i++ {
		x += i ^ (i << 1)
	}
	sinkInt = x
}

// sinkInt defeats dead-code elimination of the busy loop above.
var sinkInt int

// RunChild is the entire body of a re-exec'd child: run burstLength
// calls of work, then exit zero. SIGSTOP/SIGCONT from the parent pause
// and resume this naturally — a stopped process simply isn't scheduled,
// so no manual remaining-time bookkeeping is needed on this side.
//
// The original recorded burst start/end via two custom syscalls invoked
// from inside the child; slog Debug records here stand in for that logging,
// since syscalls 335/336 do not exist outside the original kernel.
func RunChild(work BusyUnit, burstLength int) {
	logger := slog.Default().With("pid", os.Getpid())
	logger.Debug("burst started", "burst_length", burstLength)
	for i := 0; i < burstLength; i++ {
		work.RunSingleUnit()
	}
	logger.Debug("burst finished")
}
