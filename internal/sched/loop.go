package sched

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Engine ties the Arrival Queue, a ReadySet strategy, and the
// Dual-Deadline Timer together into the event loop described in spec
// §4.E. It is single-threaded: Run must be called from one goroutine,
// and all mutation of scheduler state happens synchronously inside the
// select loop, between blocking reads — never from another goroutine.
type Engine struct {
	policy   Policy
	arrivals *ArrivalQueue
	ready    ReadySet
	timer    *DualDeadlineTimer
	ctrl     OSController
	sink     TimeSink
	pinner   PriorityPinner
	logger   *slog.Logger

	entries []*ProcessEntry
	byPID   map[int]*ProcessEntry
}

// NewEngine constructs an Engine for the given policy and workload.
// unit is the calibrated time-unit duration (component A); quantumUnits
// overrides DefaultQuantumUnits when > 0.
func NewEngine(policy Policy, entries []*ProcessEntry, unit time.Duration, quantumUnits int, ctrl OSController, sink TimeSink, pinner PriorityPinner, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		policy:   policy,
		arrivals: NewArrivalQueue(entries),
		ready:    NewReadySet(policy),
		timer:    NewDualDeadlineTimer(unit, quantumUnits),
		ctrl:     ctrl,
		sink:     sink,
		pinner:   pinner,
		logger:   logger,
		entries:  entries,
		byPID:    make(map[int]*ProcessEntry, len(entries)),
	}
}

// Run drives the event loop to completion: ArrivalQueue empty and
// ReadySet empty. childTerm must deliver the PID of each child as it is
// reaped; the caller owns watching SIGCHLD and performing the
// non-blocking wait (spec keeps that OS-primitive outside the core).
func (e *Engine) Run(ctx context.Context, childTerm <-chan int) error {
	if e.pinner != nil {
		if err := e.pinner.PinSelf(); err != nil {
			e.logger.Warn("priority pinning failed; continuing without real-time priority", "err", err)
		}
	}

	if e.arrivals.IsEmpty() {
		return nil
	}

	e.timer.ReloadArrival(e.arrivals.PeekGap())
	timerCh := e.timer.Arm()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-timerCh:
			if err := e.handleTimerFire(); err != nil {
				return err
			}

		case pid := <-childTerm:
			e.handleChildTerminated(pid)
		}

		if e.arrivals.IsEmpty() && e.ready.IsEmpty() {
			return nil
		}

		e.contextSwitch()
		timerCh = e.timer.Arm()
	}
}

func (e *Engine) handleTimerFire() error {
	kind := e.timer.ClassifyFire()
	e.timer.Debit(kind)

	switch kind {
	case TimesliceOver:
		e.ready.TimesliceOver()
		e.timer.ReloadTimeslice()

	case ProcessArrival:
		wasEmpty := e.ready.IsEmpty()
		if err := e.admit(e.arrivals.Pop()); err != nil {
			return err
		}
		gap := 0
		for !e.arrivals.IsEmpty() {
			gap = e.arrivals.PeekGap()
			if gap != 0 {
				break
			}
			if err := e.admit(e.arrivals.Pop()); err != nil {
				return err
			}
		}
		if e.arrivals.IsEmpty() {
			e.timer.ClearArrival()
		} else {
			e.timer.ReloadArrival(gap)
		}
		if e.policy == RR && wasEmpty && !e.ready.IsEmpty() {
			e.timer.ReloadTimeslice()
		}
	}
	return nil
}

// admit forks (and immediately suspends) the child for p, then hands p
// to the ready-set strategy. Spawn failure is a fatal setup error.
func (e *Engine) admit(p *ProcessEntry) error {
	pid, err := e.ctrl.Spawn(p.BurstLength)
	if err != nil {
		return fmt.Errorf("%w: spawn %s: %v", ErrSetup, p.Name, err)
	}
	p.OSPid = pid
	p.Status = Ready
	e.byPID[pid] = p
	if e.sink != nil {
		e.sink.RecordAdmit(pid, p.Name)
	}
	e.ready.Add(p)
	return nil
}

func (e *Engine) handleChildTerminated(pid int) {
	p, ok := e.byPID[pid]
	if !ok {
		e.logger.Error("reaped unknown pid", "pid", pid)
		return
	}
	delete(e.byPID, pid)
	p.Status = Terminated
	if e.sink != nil {
		e.sink.RecordReap(pid, p.Name)
	}
	e.ready.RemoveCurrent()
	if e.policy == RR && e.ready.IsEmpty() {
		e.timer.ClearTimeslice()
	}
}

func (e *Engine) contextSwitch() {
	prev, curr := e.ready.ContextSwitch()
	if prev != nil {
		if err := e.ctrl.Suspend(prev.OSPid); err != nil {
			e.logger.Warn("suspend failed", "pid", prev.OSPid, "err", err)
		}
		prev.Status = Ready
	}
	if curr != nil && curr.Status != Running {
		if err := e.ctrl.Resume(curr.OSPid); err != nil {
			e.logger.Warn("resume failed", "pid", curr.OSPid, "err", err)
		}
		curr.Status = Running
	}
}

// Entries returns every ProcessEntry in original input order, for final
// reporting once Run has returned.
func (e *Engine) Entries() []*ProcessEntry {
	return e.entries
}
