package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"papervault/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}

			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote sample config to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetPath, "path", "", "Target path for the sample config")

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var configFlag string

	cmd := &cobra.Command{
		Use:         "show",
		Short:       "Print the resolved configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(strings.TrimSpace(configFlag))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if exists {
				fmt.Fprintf(out, "config file:    %s\n", path)
			} else {
				fmt.Fprintf(out, "config file:    %s (not present, showing defaults)\n", path)
			}
			fmt.Fprintf(out, "repository_dir: %s\n", cfg.Paths.RepositoryDir)
			fmt.Fprintf(out, "intake_dir:     %s\n", cfg.Paths.IntakeDir)
			fmt.Fprintf(out, "log_dir:        %s\n", cfg.Paths.LogDir)
			fmt.Fprintf(out, "juicer:         enabled=%t image=%s timeout=%ds\n",
				cfg.Juicer.Enabled, cfg.Juicer.Image, cfg.Juicer.TimeoutSeconds)
			fmt.Fprintf(out, "intake poll:    %ds\n", cfg.Intake.PollSeconds)
			fmt.Fprintf(out, "logging:        %s/%s\n", cfg.Logging.Format, cfg.Logging.Level)
			return nil
		},
	}

	cmd.Flags().StringVar(&configFlag, "config-path", "", "Configuration file to inspect")

	return cmd
}
