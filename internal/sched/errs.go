package sched

import "errors"

var (
	// ErrSetup indicates a fatal failure standing up the scheduler
	// (timer creation, timer arming, or forking any child). The
	// caller is expected to tear down the process group and exit
	// non-zero.
	ErrSetup = errors.New("sched: setup failed")

	// ErrUnexpectedChildState indicates a child exited in a way the
	// state machine does not model (children are only ever expected to
	// exit voluntarily after their burst completes). Unreachable by
	// construction; treated as fatal if observed.
	ErrUnexpectedChildState = errors.New("sched: unexpected child exit state")
)
