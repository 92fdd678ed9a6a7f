package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calebcase/sd59x18/integer"
	"github.com/calebcase/sd59x18/sd59x18"
)

// MulResult is the output of the mul command.
type MulResult struct {
	X       string `json:"x"`
	Y       string `json:"y"`
	Product string `json:"product"`
}

// NewMulCommand creates the mul command.
func NewMulCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mul X Y",
		Short: "Multiply two values",
		Long: `Multiply two values, rounding toward zero.

Operands are decimal literals ("-12983.989", "1e-18") or named constants
(PI, -E, MAX, ...). With --raw they are raw integers and the product is
printed raw. Separate negative operands from the flags with "--".`,
		Example: `  sd59x18 mul -- -12983.989 782.99
  sd59x18 mul --raw 1000000000000000000 -2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMul(cmd, root, args[0], args[1])
		},
	}

	cmd.Flags().Bool("raw", false, "read operands and print the product as raw integers")

	return cmd
}

func runMul(cmd *cobra.Command, root *RootOptions, xs, ys string) error {
	raw := root.Viper.GetBool("raw")

	x, y, err := parseOperands(xs, ys, raw)
	if err != nil {
		return err
	}

	root.Logger.Debug("mul", "x", x, "y", y, "raw", raw)

	out := root.Output(cmd)

	var z sd59x18.SD59x18
	if raw {
		var r integer.Int
		r, err = sd59x18.Mul(x.Unwrap(), y.Unwrap())
		z = sd59x18.Wrap(r)
	} else {
		z, err = x.Mul(y)
	}
	if err != nil {
		kind, ok := sd59x18.KindOf(err)
		if !ok {
			return WrapExitError(ExitFailure, "mul", err)
		}

		root.Logger.Debug("mul failed", "kind", kind)

		err = out.Failure(kind.String(), err.Error(), nil)
		if err != nil {
			return err
		}

		return &ExitError{Code: ExitFailure, Message: kind.String(), Reported: true}
	}

	res := MulResult{X: x.String(), Y: y.String(), Product: z.String()}
	if raw {
		res = MulResult{X: x.Unwrap().String(), Y: y.Unwrap().String(), Product: z.Unwrap().String()}
	}

	return out.Success(res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, res.Product)
		return err
	})
}

func parseOperands(xs, ys string, raw bool) (x, y sd59x18.SD59x18, err error) {
	parse := sd59x18.Parse
	if raw {
		parse = func(s string) (sd59x18.SD59x18, error) {
			r, err := integer.Parse(s)
			return sd59x18.Wrap(r), err
		}
	}

	x, err = parse(xs)
	if err != nil {
		return x, y, WrapExitError(ExitCommandError, "invalid operand X", err)
	}

	y, err = parse(ys)
	if err != nil {
		return x, y, WrapExitError(ExitCommandError, "invalid operand Y", err)
	}

	return x, y, nil
}
