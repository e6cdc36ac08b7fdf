package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hal-eisen/thunderbird-msgFilterRules-builder/internal/app"
)

func newAddCmd(configPath *string) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or extend one filter rule",
		Example: `  filteradd add --rule-name Newsletters --header-field from \
      --value newsletter@example.com \
      --dest-folder "imap://user@host.com/Newsletters"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			if err := app.ProcessRule(cfg, opts); err != nil {
				return fmt.Errorf("processing filter rule %q: %w", opts.RuleName, err)
			}

			fmt.Printf("Successfully processed filter rule %q\n", opts.RuleName)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.RuleName, "rule-name", "", "name of the filter rule")
	cmd.Flags().StringVar(&opts.HeaderField, "header-field", "",
		"email header field to match, one of: "+strings.Join(app.ValidHeaderFields, ", "))
	cmd.Flags().StringVar(&opts.Value, "value", "", "value to match in the header field")
	cmd.Flags().StringVar(&opts.DestFolder, "dest-folder", "",
		"destination folder URI for moving messages")
	cmd.Flags().StringVar(&opts.Path, "file", "",
		"path to msgFilterRules.dat (default: Thunderbird profile location)")

	_ = cmd.MarkFlagRequired("rule-name")
	_ = cmd.MarkFlagRequired("header-field")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("dest-folder")

	return cmd
}
