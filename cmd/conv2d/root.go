package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-conv2d/conv2d"
	"github.com/cwbudde/algo-conv2d/internal/job"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loggerFactory builds the logger used by every subcommand.
type loggerFactory func(verbose bool) (*zap.Logger, error)

type app struct {
	newLogger loggerFactory
	logger    *zap.Logger
	verbose   bool
}

type runFlags struct {
	kernel  string
	padding float64
	stride  []int
	workers int
	compact bool
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	a := &app{newLogger: newLogger, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "conv2d",
		Short:        "Single-channel 2D convolution",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.newRunCmd(), a.newKernelsCmd())
	return root
}

func (a *app) newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run [job.yaml]",
		Short: "Convolve a job's input and print the output matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j := job.Demo()
			if len(args) == 1 {
				loaded, err := job.Load(args[0])
				if err != nil {
					a.logger.Error("load job", zap.String("path", args[0]), zap.Error(err))
					return err
				}
				j = loaded
				a.logger.Debug("loaded job", zap.String("path", args[0]), zap.Int("rows", len(j.Input)))
			} else {
				a.logger.Debug("no job file, using demo job")
			}

			applyRunFlags(cmd, j, f)

			start := time.Now()
			out, err := j.Run(cmd.Context())
			if err != nil {
				a.logger.Error("convolve", zap.Error(err))
				return err
			}
			a.logger.Debug("convolved",
				zap.Int("rows", len(out)),
				zap.Ints("stride", j.Stride),
				zap.String("layout", j.Layout),
				zap.Int("workers", j.Workers),
				zap.Duration("elapsed", time.Since(start)))

			return conv2d.Fprint(cmd.OutOrStdout(), out)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.kernel, "kernel", "k", "", "named kernel, replaces the job's kernel (see 'conv2d kernels')")
	flags.Float64VarP(&f.padding, "padding", "p", 0, "value used for reads outside the input")
	flags.IntSliceVarP(&f.stride, "stride", "s", nil, "row,col stride; a single value applies to both")
	flags.IntVarP(&f.workers, "workers", "w", 1, "number of row workers")
	flags.BoolVar(&f.compact, "compact", false, "drop cells skipped by the stride")

	return cmd
}

// applyRunFlags overrides job fields with every flag set on the command line.
func applyRunFlags(cmd *cobra.Command, j *job.Job, f runFlags) {
	flags := cmd.Flags()
	if flags.Changed("kernel") {
		j.KernelName = f.kernel
		j.Kernel = nil
	}
	if flags.Changed("padding") {
		j.Padding = f.padding
	}
	if flags.Changed("stride") {
		j.Stride = f.stride
	}
	if flags.Changed("workers") {
		j.Workers = f.workers
	}
	if flags.Changed("compact") {
		if f.compact {
			j.Layout = conv2d.LayoutCompact.String()
		} else {
			j.Layout = conv2d.LayoutSparse.String()
		}
	}
}

func (a *app) newKernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List named kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range conv2d.KernelNames() {
				fmt.Fprintf(w, "%s\t%s\n", name, conv2d.KernelDescription(name))
			}
			return w.Flush()
		},
	}
}
