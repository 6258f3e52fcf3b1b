package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"papervault/internal/repository"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List inbox bundles awaiting review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := ctx.openRepository()
			if err != nil {
				return err
			}

			bundles, err := repo.Inbox().List(cmd.Context())
			if err != nil {
				return err
			}
			if len(bundles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "inbox is empty")
				return nil
			}

			rows := make([][]string, 0, len(bundles))
			for _, bundle := range bundles {
				modified := ""
				if info, err := os.Stat(bundle.Path()); err == nil {
					modified = info.ModTime().UTC().Format(time.RFC3339)
				}

				title, pages := "", ""
				md, err := bundle.ReadMetadata(cmd.Context())
				switch {
				case err == nil:
					if md.Title != nil {
						title = *md.Title
					}
					pages = strconv.FormatUint(uint64(md.Pages), 10)
				case errors.Is(err, repository.ErrMissingFragment):
					// Not reviewed yet; leave the columns blank.
				default:
					return err
				}

				rows = append(rows, []string{bundle.ID().String(), modified, title, pages, fragmentSummary(bundle.Path())})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Modified", "Title", "Pages", "Fragments"}, rows))
			return nil
		},
	}
}

// fragmentSummary counts the files inside a bundle directory.
func fragmentSummary(path string) string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return "?"
	}
	return strconv.Itoa(len(entries))
}

// fragmentNames lists the files inside a bundle directory.
func fragmentNames(path string) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, filepath.Base(entry.Name()))
	}
	return names
}
