package cli

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the tf2schema CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "tf2schema",
		Short: "Team Fortress 2 item schema tools",
		Long: `tf2schema downloads the TF2 item schema from the Steam Web API and
answers lookups against a local copy: items by defindex or name, and
conversion between SKUs ("160;3;u4") and display names
("Vintage Community Sparkle Lugermorph").`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(log.WarnLevel)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}
