package main

import (
	"github.com/spf13/cobra"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after the config search path,
--difficulty and audio environment overrides are applied.

Save the output to ~/.recycle/configs/recycle.yaml to customize it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rules, _, err := loadRules()
		if err != nil {
			return err
		}
		data, err := config.Marshal(rules)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
