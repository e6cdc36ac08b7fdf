// Package cli wires the cobra command tree for the filteradd tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hal-eisen/thunderbird-msgFilterRules-builder/internal/config"
	"github.com/hal-eisen/thunderbird-msgFilterRules-builder/internal/logging"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "filteradd",
		Short: "Edit Thunderbird message filter rules from the command line",
		Long: `filteradd adds match conditions to Thunderbird's msgFilterRules.dat.

If the named rule already exists the condition is merged into it (repeat
runs are harmless); otherwise a new move-to-folder rule is appended. A
timestamped backup is made next to the file before every edit.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase log verbosity (repeat for debug output)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a filteradd config file")

	rootCmd.AddCommand(newAddCmd(&configPath))
	rootCmd.AddCommand(newImportCmd(&configPath))
	rootCmd.AddCommand(newListCmd(&configPath))

	return rootCmd
}

func loadConfig(configPath *string) (*config.Config, error) {
	path := ""
	if configPath != nil {
		path = *configPath
	}
	return config.Load(path)
}
