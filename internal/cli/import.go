package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hal-eisen/thunderbird-msgFilterRules-builder/internal/app"
)

func newImportCmd(configPath *string) *cobra.Command {
	var (
		manifest string
		path     string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Apply a YAML manifest of filter rules in one run",
		Long: `import reads a YAML manifest and applies every entry with the same
find-or-create logic as "add", taking a single backup before the batch:

  version: "1"
  filters:
    - rule: Newsletters
      field: from
      value: news@example.com
      folder: imap://user@host.com/Newsletters`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			if err := app.ProcessManifest(cfg, manifest, path); err != nil {
				return fmt.Errorf("importing %s: %w", manifest, err)
			}

			fmt.Printf("Successfully imported filters from %s\n", manifest)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifest, "from", "", "path to the YAML filter manifest")
	cmd.Flags().StringVar(&path, "file", "",
		"path to msgFilterRules.dat (default: Thunderbird profile location)")

	_ = cmd.MarkFlagRequired("from")

	return cmd
}
