package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/minnow-browser/minnow/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSchemaCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			manager, err := config.NewManager()
			if err != nil {
				return err
			}
			if err := manager.Load(); err != nil {
				return err
			}

			data, err := yaml.Marshal(manager.Get())
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			if file := manager.GetConfigFile(); file != "" {
				fmt.Printf("# %s\n", file)
			}
			fmt.Print(string(data))
			return nil
		},
	}
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Generate the JSON schema for the config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return config.GenerateSchemaFile()
		},
	}
}
