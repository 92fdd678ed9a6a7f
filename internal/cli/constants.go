package cli

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/calebcase/sd59x18/sd59x18"
)

// ConstantResult is one row of the constants command.
type ConstantResult struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

// NewConstantsCommand creates the constants command.
func NewConstantsCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the named constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]ConstantResult, 0, len(sd59x18.Constants))
			for _, c := range sd59x18.Constants {
				rows = append(rows, ConstantResult{
					Name:  c.Name,
					Value: c.Value.String(),
					Raw:   c.Value.Unwrap().String(),
				})
			}

			return root.Output(cmd).Success(rows, func(w io.Writer) error {
				table := tablewriter.NewWriter(w)
				table.SetHeader([]string{"Name", "Value"})
				for _, r := range rows {
					table.Append([]string{r.Name, r.Value})
				}
				table.Render()

				return nil
			})
		},
	}
}
