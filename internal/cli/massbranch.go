package cli

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fedora-infra/go-pkgdb/pkgdb"
)

// NewMassBranchCmd creates the mass-branch command
func NewMassBranchCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mass-branch <branch>",
		Short: "Branch all unblocked packages for a new release",
		Long: `Branches every unblocked package from the devel branch into the
given release branch. When only part of the packages could be branched,
the ones left out are listed so they can be retried.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient(true)
			if err != nil {
				return err
			}
			_, err = c.MassBranch(cmd.Context(), args[0])
			var srvErr pkgdb.ErrServer
			if errors.As(err, &srvErr) && len(srvErr.Extras) != 0 {
				logrus.Warnf("Packages left unbranched: %v", srvErr.Extras)
			}
			if err != nil {
				return err
			}
			logrus.Infof("Mass branching into %s started", args[0])
			return nil
		},
	}

	return cmd
}
