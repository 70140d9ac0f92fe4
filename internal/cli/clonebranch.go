package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewCloneBranchCmd creates the clone-branch command
func NewCloneBranchCmd(opts *clientOptions) *cobra.Command {
	var noEmailLog bool

	cmd := &cobra.Command{
		Use:   "clone-branch <package> <branch> <master>",
		Short: "Copy branch permissions from an existing branch",
		Long: `Sets the permissions of a new branch by cloning them from a
pre-existing master branch, e.g. clone F-20 from devel.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient(true)
			if err != nil {
				return err
			}
			pkg, branch, master := args[0], args[1], args[2]
			if _, err := c.CloneBranch(cmd.Context(), pkg, branch, master, !noEmailLog); err != nil {
				return err
			}
			logrus.Infof("Cloned %s branch %s from %s", pkg, branch, master)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noEmailLog, "no-email-log", false, "Do not email a copy of the log")

	return cmd
}
