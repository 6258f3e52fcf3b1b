package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"papervault/internal/docid"
	"papervault/internal/repository"
)

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Finalize an inbox bundle into the archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := docid.Parse(args[0])
			if err != nil {
				return err
			}

			repo, err := ctx.openRepository()
			if err != nil {
				return err
			}

			bundle, err := repo.Inbox().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if bundle == nil {
				return fmt.Errorf("bundle %s not found in inbox", id)
			}

			// Stamp the archived timestamp when metadata exists; a bundle
			// that was never reviewed archives without it.
			md, err := bundle.ReadMetadata(cmd.Context())
			switch {
			case err == nil:
				now := time.Now().UTC()
				md.Archived = &now
				if err := bundle.WriteMetadata(cmd.Context(), md); err != nil {
					return err
				}
			case errors.Is(err, repository.ErrMissingFragment):
			default:
				return err
			}

			archived, err := bundle.Archive(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "archived %s\n", archived.ID())
			return nil
		},
	}
}
