package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fedora-infra/go-pkgdb/pkgdb/client"
)

// NewAddEditCmd creates the add-edit command
func NewAddEditCmd(opts *clientOptions) *cobra.Command {
	var edits client.PackageEdits

	cmd := &cobra.Command{
		Use:   "add-edit <package>",
		Short: "Add a package to the database or edit an existing one",
		Long: `Adds the package if it does not exist yet, then applies the given
changes. Creating a package requires at least --owner; new packages
always get a devel branch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient(true)
			if err != nil {
				return err
			}
			if err := c.AddEditPackage(cmd.Context(), args[0], edits); err != nil {
				return err
			}
			logrus.Infof("Saved %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&edits.Owner, "owner", "", "Owner of the package's branches")
	cmd.Flags().StringVar(&edits.Description, "description", "", "Package summary")
	cmd.Flags().StringSliceVar(&edits.Branches, "branch", nil, "Branch tokens to operate on, e.g. F-20")
	cmd.Flags().StringSliceVar(&edits.CCList, "cc", nil, "Usernames to watch the package")
	cmd.Flags().StringSliceVar(&edits.Comaintainers, "comaintainer", nil, "Usernames to comaintain the package")
	cmd.Flags().StringSliceVar(&edits.Groups, "group", nil, "Groups that can commit to the package")

	return cmd
}
