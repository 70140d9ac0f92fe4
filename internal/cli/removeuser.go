package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRemoveUserCmd creates the remove-user command
func NewRemoveUserCmd(opts *clientOptions) *cobra.Command {
	var collections []string

	cmd := &cobra.Command{
		Use:   "remove-user <username> <package>",
		Short: "Remove a user from a package",
		Long: `Removes the user's association with the package. Without
--collection the user is removed from every collection associated with
the package.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient(true)
			if err != nil {
				return err
			}
			username, pkg := args[0], args[1]
			if _, err := c.RemoveUser(cmd.Context(), username, pkg, collections); err != nil {
				return err
			}
			logrus.Infof("Removed %s from %s", username, pkg)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&collections, "collection", nil, "Branch tokens to remove the user from, e.g. F-10 or devel")

	return cmd
}
