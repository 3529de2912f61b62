package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kendru/doccmd/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a doccmd YAML defaults file",
	Long:  `Loads the file passed to --config and reports any invalid field values without running any tests.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile == "" {
			return fmt.Errorf("validate requires --config")
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := config.Validate(cfg); err != nil {
			return err
		}

		fmt.Printf("%s is valid.\n", cfgFile)
		return nil
	},
}
