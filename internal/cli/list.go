package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hal-eisen/thunderbird-msgFilterRules-builder/internal/app"
)

func newListCmd(configPath *string) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the rules in a msgFilterRules.dat without modifying it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			doc, err := app.ListRules(cfg, path)
			if err != nil {
				return err
			}

			if doc.Version != "" {
				fmt.Printf("version: %s\n", doc.Version)
			}
			if doc.Logging != "" {
				fmt.Printf("logging: %s\n", doc.Logging)
			}
			for i, r := range doc.Rules {
				fmt.Printf("%2d. %s (enabled=%s)\n", i+1, r.Name, r.Enabled)
				fmt.Printf("    condition: %s\n", r.Condition)
				fmt.Printf("    move to:   %s\n", r.ActionValue)
			}
			fmt.Printf("%d rule(s)\n", len(doc.Rules))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "file", "",
		"path to msgFilterRules.dat (default: Thunderbird profile location)")

	return cmd
}
