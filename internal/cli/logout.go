package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the cached session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient(false)
			if err != nil {
				return err
			}
			if err := c.Logout(cmd.Context()); err != nil {
				return err
			}
			logrus.Info("Logged out")
			return nil
		},
	}

	return cmd
}
