package app

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/docbuilder/gitmeta/pkg/git"
)

var tagsCmd = &cobra.Command{
	Use:   "tags <directory>",
	Short: "List the tags of a repository with their resolved commits",
	Args:  cobra.ExactArgs(1),
	RunE:  runTags,
}

func runTags(_ *cobra.Command, args []string) error {
	repo, err := git.Open(args[0])
	if err != nil {
		return err
	}

	tags, err := repo.Tags()
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header("TAG", "KIND", "TAG SHA", "COMMIT SHA")

	for _, tag := range tags {
		peeled, err := repo.Peel(tag)
		if err != nil {
			return fmt.Errorf("failed to peel tag %s: %w", tag.Name, err)
		}
		if err := table.Append(tag.Name.Short(), peeled.Kind.String(), tag.Hash.String(), peeled.Commit.String()); err != nil {
			return fmt.Errorf("failed to render tag row: %w", err)
		}
	}

	return table.Render()
}
