package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"suggestion-app/src/domain"
	"suggestion-app/src/infrastructure/repository"
	"suggestion-app/src/logger"
	"suggestion-app/src/usecase"

	"github.com/spf13/cobra"
)

// ErrNotFound is returned by show when the identifier does not resolve
var ErrNotFound = errors.New("suggestion not found")

func newListCommand() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the suggestion catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.NewCatalogRepository(logger.Log)
			if err != nil {
				return err
			}

			suggestions, err := usecase.NewSuggestionUsecase(repo).ListSuggestions(cmd.Context(), search)
			if err != nil {
				return err
			}

			return printSuggestions(cmd.OutOrStdout(), suggestions)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by title or category (case-insensitive)")
	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print one suggestion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.NewCatalogRepository(logger.Log)
			if err != nil {
				return err
			}

			view := usecase.NewDetailView(repo)
			if err := view.ActivateFromParam(cmd.Context(), args[0]); err != nil {
				return err
			}
			if !view.Found() {
				return fmt.Errorf("%w: %s", ErrNotFound, args[0])
			}

			printSuggestion(cmd.OutOrStdout(), *view.Suggestion())
			return nil
		},
	}
}

func printSuggestions(out io.Writer, suggestions []domain.Suggestion) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDATE\tSTATUS\tLIKES")
	for _, s := range suggestions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n",
			s.ID, s.Title, s.Category, domain.FormatDate(s.Date), s.Status.Label(), s.Likes)
	}
	return w.Flush()
}

func printSuggestion(out io.Writer, s domain.Suggestion) {
	fmt.Fprintf(out, "#%d %s\n", s.ID, s.Title)
	fmt.Fprintf(out, "Catégorie: %s\n", s.Category)
	fmt.Fprintf(out, "Date: %s\n", domain.FormatDate(s.Date))
	fmt.Fprintf(out, "Statut: %s\n", s.Status.Label())
	fmt.Fprintf(out, "Likes: %d\n", s.Likes)
	fmt.Fprintf(out, "\n%s\n", s.Description)
}
