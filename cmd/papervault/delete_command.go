package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"papervault/internal/docid"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an inbox bundle and all its fragments",
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

			if err := bundle.Delete(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			return nil
		},
	}
}
