package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"papervault/internal/intake"
	"papervault/internal/juicer"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var noExtract bool

	cmd := &cobra.Command{
		Use:   "ingest <file>...",
		Short: "Ingest files as new inbox bundles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := ctx.openRepository()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			var engine juicer.Juicer
			if !noExtract {
				engine, err = ctx.engine()
				if err != nil {
					return err
				}
			}

			for _, path := range args {
				bundle, err := intake.Ingest(cmd.Context(), repo, engine, path, logger)
				if err != nil {
					return fmt.Errorf("ingest %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", bundle.ID(), path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noExtract, "no-extract", false, "Skip the extraction engine")

	return cmd
}
