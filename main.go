package main

import (
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/aswild/yall/logger"
)

// Example demonstrating the backend with a small CLI.
// Usage: ./yall [-v|-q ...] [-l N] [-F] [--color auto|always|never]
//
//	./yall perftest 100000 2>/dev/null
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	verbose      int
	quiet        int
	level        int
	fullFilename bool
	color        string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "yall",
		Short:        "yall example",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config(cmd.Flags().Changed("level"))
			if err != nil {
				return err
			}
			return logger.TryInit(cfg)
		},
		Run: func(*cobra.Command, []string) {
			demo()
			flush()
		},
	}

	f := cmd.PersistentFlags()
	f.CountVarP(&opts.verbose, "verbose", "v", "be more verbose")
	f.CountVarP(&opts.quiet, "quiet", "q", "be more quiet")
	f.IntVarP(&opts.level, "level", "l", int(logger.InfoLevel.Verbosity()), "set the numeric level, from 0=off to 5=trace")
	f.BoolVarP(&opts.fullFilename, "full-filename", "F", false, "show the full non-abbreviated filename in debug/trace logs")
	f.StringVar(&opts.color, "color", logger.ColorAuto.String(), "colorize output: auto, always or never")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.MarkFlagsMutuallyExclusive("level", "verbose")
	cmd.MarkFlagsMutuallyExclusive("level", "quiet")

	cmd.AddCommand(newPerftestCmd())
	return cmd
}

func newPerftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "perftest [count]",
		Short: "log count info lines as fast as possible",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			count := 100
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.Wrapf(err, "invalid count %q", args[0])
				}
				count = n
			}
			for i := 1; i <= count; i++ {
				logger.Infof("info log %d", i)
			}
			flush()
			return nil
		},
	}
}

// config builds the backend configuration. An explicit level wins over
// -v/-q adjustments, which are applied to the Info default.
func (o *options) config(levelSet bool) (logger.Config, error) {
	cfg := logger.DefaultConfig()
	cfg.FullFilename = o.fullFilename

	switch o.color {
	case "auto":
		cfg.Color = logger.ColorAuto
	case "always":
		cfg.Color = logger.ColorAlways
	case "never":
		cfg.Color = logger.ColorNever
	default:
		return cfg, errors.Errorf("invalid color mode %q", o.color)
	}

	if levelSet {
		if o.level < 0 {
			return cfg, errors.Errorf("invalid level number %d", o.level)
		}
		cfg.Level = logger.LevelFromVerbosity(clampUint8(o.level))
		return cfg, nil
	}
	cfg.Level = cfg.Level.Louder(clampUint8(o.verbose)).Quieter(clampUint8(o.quiet))
	return cfg, nil
}

func clampUint8(n int) uint8 {
	if n > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(n)
}

func demo() {
	logger.Tracef("loud noises")
	logger.Debugf("squash these bugs")
	logger.Infof("some normal information")
	logger.Warnf("oh deer")
	logger.Errorf("gosh heckie")
	slog.Debug("log/slog records go through the same backend")
}

// flush ignores errors: syncing a terminal fails on some platforms.
func flush() {
	if b := logger.Default(); b != nil {
		_ = b.Flush()
	}
}
