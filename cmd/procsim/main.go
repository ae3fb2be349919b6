//go:build linux

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arnavsharma/procsim/internal/config"
	"github.com/arnavsharma/procsim/internal/osctl"
	"github.com/arnavsharma/procsim/internal/sched"
	"github.com/arnavsharma/procsim/internal/workload"
)

type opts struct {
	inputPath  string
	configPath string
	format     string

	quantumUnits int
	calibReps    int
	pinPriority  bool
	logLevel     string
}

func main() {
	if burst, ok := osctl.ChildBurst(); ok {
		runChild(burst)
		return
	}

	var o opts

	root := &cobra.Command{
		Use:   "procsim [workload-file]",
		Short: "Single-CPU process scheduler simulator",
		Long: `procsim drives a small workload of synthetic processes through one of four
scheduling policies (FIFO, RR, SJF, PSJF), forking a real OS child per
process and suspending/resuming it to simulate dispatch decisions.

Reads the workload description from a file argument, or stdin if omitted.
Prints "<name> <pid>" for each process, in input order, once the run
completes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.inputPath = args[0]
			}
			return run(cmd.Context(), o)
		},
	}

	root.Flags().StringVar(&o.configPath, "config", "", "optional TOML overrides file")
	root.Flags().StringVar(&o.format, "format", "text", "workload input format: text or yaml")
	root.Flags().IntVar(&o.quantumUnits, "quantum", 0, "RR timeslice in time units (0 = use default/config)")
	root.Flags().IntVar(&o.calibReps, "calibration-reps", 0, "time-unit calibration repetitions (0 = use default/config)")
	root.Flags().BoolVar(&o.pinPriority, "pin-priority", true, "pin scheduler process to SCHED_FIFO real-time priority")
	root.Flags().StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// runChild is the entire body of a re-exec'd child process. It pins
// itself one real-time priority level below the parent before running
// its burst; a pinning failure is logged but does not abort the burst,
// matching the parent's own tolerance of an unavailable pinner in run.
func runChild(burstLength int) {
	if p, err := osctl.NewPinner(); err != nil {
		slog.Warn("child priority pinner unavailable", "err", err)
	} else if err := p.Pin(0, osctl.LevelChildBelowParent); err != nil {
		slog.Warn("child priority pin failed", "err", err)
	}

	unit := osctl.NewBusyUnit(0)
	osctl.RunChild(*unit, burstLength)
}

func run(ctx context.Context, o opts) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	logLevel := o.logLevel
	if cfg.LogLevel != nil {
		logLevel = *cfg.LogLevel
	}

	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	})).With("run_id", runID)
	slog.SetDefault(logger)

	quantumUnits := o.quantumUnits
	if quantumUnits == 0 && cfg.QuantumUnits != nil {
		quantumUnits = *cfg.QuantumUnits
	}
	calibReps := o.calibReps
	if calibReps == 0 && cfg.CalibrationReps != nil {
		calibReps = *cfg.CalibrationReps
	}
	pinPriority := o.pinPriority
	if cfg.PinPriority != nil {
		pinPriority = *cfg.PinPriority
	}

	var wl *workload.Workload
	var unit time.Duration

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		f := os.Stdin
		if o.inputPath != "" {
			opened, err := os.Open(o.inputPath)
			if err != nil {
				return fmt.Errorf("open workload: %w", err)
			}
			defer opened.Close()
			f = opened
		}
		var parsed *workload.Workload
		var err error
		switch o.format {
		case "yaml":
			parsed, err = workload.ParseYAML(f)
		default:
			parsed, err = workload.Parse(f)
		}
		if err != nil {
			return err
		}
		wl = parsed
		return nil
	})
	g.Go(func() error {
		busy := osctl.NewBusyUnit(0)
		unit = sched.CalibrateUnit(busy, calibReps)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("workload parsed", "policy", wl.Policy, "n", len(wl.Entries), "unit", unit)

	if len(wl.Entries) == 0 {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctrl := osctl.NewController(unit, logger)
	sink := osctl.NewSlogSink(logger)

	var pinner sched.PriorityPinner
	if pinPriority {
		p, err := osctl.NewPinner()
		if err != nil {
			logger.Warn("priority pinner unavailable", "err", err)
		} else {
			pinner = p
		}
	}

	engine := sched.NewEngine(wl.Policy, wl.Entries, unit, quantumUnits, ctrl, sink, pinner, logger)

	childTerm := watchChildren(ctx, ctrl, logger)

	if err := engine.Run(ctx, childTerm); err != nil {
		return err
	}

	return workload.Write(os.Stdout, engine.Entries())
}

// watchChildren listens for SIGCHLD and forwards each reaped child's pid
// onto the returned channel, draining every exited child per signal
// (SIGCHLD coalesces multiple terminations into one delivery).
func watchChildren(ctx context.Context, ctrl *osctl.Controller, logger *slog.Logger) <-chan int {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGCHLD)

	out := make(chan int)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				signal.Stop(sigCh)
				return
			case <-sigCh:
				for {
					pid, ok, err := ctrl.ReapNonBlocking()
					if err != nil {
						logger.Error("reap failed", "err", err)
					}
					if !ok {
						break
					}
					select {
					case out <- pid:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()
	return out
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
