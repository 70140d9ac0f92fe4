package cli

import (
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command
func NewInfoCmd(opts *clientOptions) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "info <package>",
		Short: "Show package and ownership information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient(false)
			if err != nil {
				return err
			}
			payload, err := c.PackageInfo(cmd.Context(), args[0], branch)
			if err != nil {
				return err
			}
			return printPayload(payload)
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Restrict the information to this branch, e.g. F-20 or devel")

	return cmd
}
