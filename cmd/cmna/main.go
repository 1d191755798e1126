package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/edp1096/cmna"
	"github.com/edp1096/cmna/netlist"
)

const version = "0.1.0"

// Exit code for a network without a unique operating point
const exitSingular = 2

type options struct {
	configFile  string
	verbose     bool
	printMatrix bool
	annotate    int
	check       bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		if cmna.IsSingular(err) {
			os.Exit(exitSingular)
		}
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "cmna <netlist>",
		Short:        "Compact modified nodal analysis of DC networks",
		Long:         `cmna reads a netlist of resistors, current sources, transconductors and ideal op-amps, folds the op-amps into the node numbering and solves the DC operating point.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out, args[0], opts)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.configFile, "config", "c", "", "TOML file with limits and tolerance")
	root.Flags().BoolVarP(&opts.printMatrix, "print-matrix", "p", false, "print the assembled matrix before solving")
	root.Flags().IntVarP(&opts.annotate, "annotate", "a", -1, "pivot annotation level (0, 1, 2), overrides the configuration")
	root.Flags().BoolVar(&opts.check, "check", false, "report the residual of the solution")

	return root
}

func run(ctx context.Context, out io.Writer, filename string, opts *options) error {
	logger := loggerFromContext(ctx)

	config := cmna.DefaultConfiguration()
	if opts.configFile != "" {
		var err error
		if config, err = cmna.LoadConfiguration(opts.configFile); err != nil {
			return err
		}
		logger.Debug("configuration loaded", "file", opts.configFile)
	}
	if opts.annotate >= 0 {
		config.Annotate = opts.annotate
		if err := config.Validate(); err != nil {
			return err
		}
	}
	config.Output = out

	n, err := netlist.ParseFile(filename)
	if err != nil {
		return err
	}
	logger.Info("netlist read", "file", filename, "title", n.Title, "elements", len(n.Elements))
	if t := n.Transient; t != nil {
		logger.Warn("transient analysis is not implemented, control line ignored",
			"stop", t.Stop, "step", t.Step, "method", t.Method, "theta", t.Theta, "points", t.PointsPerStep)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	ckt := cmna.New(n.Title, config)
	ckt.Logger = logger
	if err := ckt.LoadNetlist(n); err != nil {
		return err
	}
	if err := ckt.Assemble(); err != nil {
		return err
	}
	logger.Info("system assembled", "nodes", ckt.Nodes.Count(), "equations", ckt.Matrix.Size)

	if opts.printMatrix {
		ckt.Matrix.Print(true, true, true)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	result, err := ckt.Solve()
	if err != nil {
		if cmna.IsSingular(err) {
			return fmt.Errorf("circuit has no unique operating point: %w", err)
		}
		return err
	}

	writeReport(out, result)

	if opts.check {
		residual, err := ckt.Residual()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nResidual |Ax-b| = %.3g\n", residual)
	}

	return nil
}
