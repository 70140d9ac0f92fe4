package cli

import (
	"github.com/spf13/cobra"
)

// NewOwnersCmd creates the owners command
func NewOwnersCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owners <package> [collection] [version]",
		Short: "Show who owns a package",
		Long: `Retrieves the ownership information for a package, optionally
limited to a collection like "Fedora" or "Fedora EPEL" and, if a
collection is given, to one of its versions.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var collection, version string
			if len(args) > 1 {
				collection = args[1]
			}
			if len(args) > 2 {
				version = args[2]
			}
			c, err := opts.newClient(false)
			if err != nil {
				return err
			}
			payload, err := c.Owners(cmd.Context(), args[0], collection, version)
			if err != nil {
				return err
			}
			return printPayload(payload)
		},
	}

	return cmd
}
