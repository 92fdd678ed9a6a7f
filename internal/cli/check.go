package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/calebcase/sd59x18/internal/vectors"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [FILE]",
		Short: "Run multiplication conformance vectors",
		Long: `Run a YAML vector file through both entry points in both operand orders.
Without FILE the built in boundary suite is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, args)
		},
	}

	cmd.Flags().Int("workers", 0, "vectors evaluated at once (0 uses GOMAXPROCS)")

	return cmd
}

func runCheck(cmd *cobra.Command, root *RootOptions, args []string) error {
	var (
		cases []vectors.Case
		err   error
	)

	if len(args) == 1 {
		cases, err = vectors.LoadFile(args[0])
	} else {
		cases, err = vectors.Default()
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load vectors", err)
	}

	workers := root.Viper.GetInt("workers")
	root.Logger.Debug("running vectors", "count", len(cases), "workers", workers)

	report, err := vectors.Run(cmd.Context(), cases, vectors.Options{
		Workers: workers,
		Logger:  root.Logger,
	})
	if err != nil {
		return WrapExitError(ExitFailure, "check interrupted", err)
	}

	root.Logger.Info("checked vectors", "passed", report.Passed, "failed", report.Failed)

	out := root.Output(cmd)
	text := func(w io.Writer) error {
		return writeReport(w, report)
	}

	if report.OK() {
		return out.Success(report, text)
	}

	message := fmt.Sprintf("%d vector(s) failed", report.Failed)
	if out.Format == "json" {
		err = out.Failure("vectors", message, report)
	} else {
		err = text(out.Writer)
	}
	if err != nil {
		return err
	}

	return NewExitError(ExitFailure, message)
}

func writeReport(w io.Writer, report *vectors.Report) error {
	failures := report.Failures()
	if len(failures) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Name", "Expected", "Got", "Reason"})
		for _, res := range failures {
			table.Append([]string{res.Name, res.Expected, res.Got, res.Reason})
		}
		table.Render()
	}

	_, err := fmt.Fprintf(w, "passed: %d\nfailed: %d\n", report.Passed, report.Failed)
	return err
}
