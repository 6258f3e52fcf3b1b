package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"papervault/internal/docid"
	"papervault/internal/metadata"
	"papervault/internal/repository"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a bundle from the inbox or archive",
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

			out := cmd.OutOrStdout()

			if bundle, err := repo.Inbox().Get(cmd.Context(), id); err != nil {
				return err
			} else if bundle != nil {
				fmt.Fprintf(out, "id:        %s\n", bundle.ID())
				fmt.Fprintf(out, "stage:     inbox\n")
				fmt.Fprintf(out, "fragments: %s\n", strings.Join(fragmentNames(bundle.Path()), ", "))
				md, err := bundle.ReadMetadata(cmd.Context())
				return printMetadata(cmd, md, err)
			}

			if bundle, err := repo.Archive().Get(cmd.Context(), id); err != nil {
				return err
			} else if bundle != nil {
				fmt.Fprintf(out, "id:        %s\n", bundle.ID())
				fmt.Fprintf(out, "stage:     archive\n")
				fmt.Fprintf(out, "fragments: %s\n", strings.Join(fragmentNames(bundle.Path()), ", "))
				md, err := bundle.ReadMetadata(cmd.Context())
				return printMetadata(cmd, md, err)
			}

			return fmt.Errorf("bundle %s not found in inbox or archive", id)
		},
	}
}

func printMetadata(cmd *cobra.Command, md *metadata.Metadata, err error) error {
	out := cmd.OutOrStdout()
	if err != nil {
		if errors.Is(err, repository.ErrMissingFragment) {
			fmt.Fprintln(out, "metadata:  (none)")
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "uploaded:  %s\n", md.Uploaded.UTC().Format("2006-01-02 15:04:05"))
	if md.Archived != nil {
		fmt.Fprintf(out, "archived:  %s\n", md.Archived.UTC().Format("2006-01-02 15:04:05"))
	}
	if md.Title != nil {
		fmt.Fprintf(out, "title:     %s\n", *md.Title)
	}
	fmt.Fprintf(out, "pages:     %d\n", md.Pages)
	if len(md.Labels) > 0 {
		fmt.Fprintf(out, "labels:    %s\n", strings.Join(md.Labels.Slice(), ", "))
	}
	for key, value := range md.Properties {
		fmt.Fprintf(out, "property:  %s=%s\n", key, value)
	}
	return nil
}
