package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	site "github.com/goliatone/go-content-site"
)

func exercisesCmd() *cobra.Command {
	var term string
	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "List the exercise catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := module.Exercises().List(cmd.Context())
			if err != nil {
				return err
			}
			for _, entry := range site.FilterExercises(entries, term) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d files\n", entry.ID, entry.Title, len(entry.Files))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&term, "term", "", "filter by text in title or description")
	return cmd
}

func exerciseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exercise <id>",
		Short: "Fetch an exercise and all of its files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := module.Exercises().Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s", result.Error)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}
