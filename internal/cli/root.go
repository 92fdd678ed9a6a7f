// Package cli implements the sd59x18 command line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/calebcase/sd59x18/internal/log"
)

// Error is the error class for this package.
var Error = errs.Class("cli")

// EnvPrefix prefixes the environment variables read for every flag.
const EnvPrefix = "SD59X18"

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// RootOptions holds the resolved global settings for all commands.
type RootOptions struct {
	Format    string
	LogLevel  string
	LogFormat string

	Viper  *viper.Viper
	Logger *slog.Logger
}

// Output returns a formatter for cmd's output stream.
func (o *RootOptions) Output(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Viper: viper.New()}

	cmd := &cobra.Command{
		Use:   "sd59x18",
		Short: "Signed 59.18-decimal fixed point arithmetic",
		Long: `Signed 59.18-decimal fixed point arithmetic on 256-bit two's complement
integers. Values are raw / 10^18.

Every flag can also be set through the environment (SD59X18_FORMAT,
SD59X18_LOG_LEVEL, ...) or a YAML file given with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := opts.load(cmd.Flags(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			opts.Logger.Debug("loaded configuration", "format", opts.Format, "config", opts.Viper.ConfigFileUsed())

			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("format", "text", "output format (json|text)")
	pf.String("log-level", "info", "log level (debug|info|warn|error)")
	pf.String("log-format", "text", "log format (text|json|logfmt)")
	pf.String("config", "", "YAML configuration file")

	cmd.AddCommand(NewMulCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewConstantsCommand(opts))

	return cmd
}

// load resolves settings from flags, the environment and the config file,
// in that order of precedence, and builds the logger writing to w.
func (o *RootOptions) load(fs *pflag.FlagSet, w io.Writer) error {
	v := o.Viper

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.BindPFlags(fs)
	if err != nil {
		return Error.Wrap(err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		err = v.ReadInConfig()
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read config", err)
		}
	}

	o.Format = v.GetString("format")
	o.LogLevel = v.GetString("log-level")
	o.LogFormat = v.GetString("log-format")

	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	o.Logger, err = log.New(w, log.Options{
		Format:  o.LogFormat,
		Level:   o.LogLevel,
		NoColor: !log.IsTerminal(w),
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid logging configuration", err)
	}

	return nil
}

// Execute runs the command line with args and returns the exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || !exitErr.Reported {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return GetExitCode(err)
}
