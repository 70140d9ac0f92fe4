package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &clientOptions{}

	rootCmd := &cobra.Command{
		Use:   "pkgdb-client",
		Short: "Query and administer the Fedora Package Database",
		Long: `pkgdb-client talks to the Fedora Package Database web service.

It can look up package and ownership information, clone branch
permissions, mass branch a new release, add or edit packages and
remove users from packages.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
			return opts.load()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&opts.BaseURL, "url", "u", "", "Base URL of the PackageDB server")
	rootCmd.PersistentFlags().StringVar(&opts.Username, "username", "", "Username for authenticated requests")
	rootCmd.PersistentFlags().BoolVar(&opts.CacheSession, "cache-session", false, "Cache the session between runs")
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Log every request sent to the server")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "Path to the client configuration file")

	// Add subcommands
	rootCmd.AddCommand(NewInfoCmd(opts))
	rootCmd.AddCommand(NewOwnersCmd(opts))
	rootCmd.AddCommand(NewCloneBranchCmd(opts))
	rootCmd.AddCommand(NewMassBranchCmd(opts))
	rootCmd.AddCommand(NewAddEditCmd(opts))
	rootCmd.AddCommand(NewRemoveUserCmd(opts))
	rootCmd.AddCommand(NewLogoutCmd(opts))

	return rootCmd
}
