package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/f3rmion/morph/internal/history"
	"github.com/f3rmion/morph/internal/morph"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List recorded morphs",
	Long: `List the morphs recorded by the TUI and by 'morph align --record',
newest first. With an id, print the slot table of that morph.

Example:
  morph history --limit 5
  morph history 42
  morph history --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "number of entries to list (0 for all)")
	historyCmd.Flags().Bool("clear", false, "delete all recorded morphs")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	clearAll, _ := cmd.Flags().GetBool("clear")

	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.store == nil {
		return fmt.Errorf("history is disabled in %s", getConfigDir())
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if clearAll {
		if err := s.store.Clear(ctx); err != nil {
			return err
		}
		s.logger.Info("history cleared")
		fmt.Fprintln(out, "History cleared.")
		return nil
	}

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		e, err := s.store.Get(ctx, id)
		if err != nil {
			return err
		}
		t := e.Transition()
		fmt.Fprintf(out, "#%d  %q → %q  (%s)\n", e.ID, e.Old, e.New, e.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintln(out, morph.FormatTable(morph.Describe(t.Old, t.New, t.Result)))
		fmt.Fprintln(out, t.Summary())
		return nil
	}

	entries, err := s.store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No morphs recorded yet.")
		return nil
	}
	fmt.Fprintln(out, formatEntries(entries))
	return nil
}

func formatEntries(entries []history.Entry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "OLD", "NEW", "UNITS", "SUMMARY", "WHEN")
	for _, e := range entries {
		t.Row(
			strconv.FormatInt(e.ID, 10),
			strconv.Quote(e.Old),
			strconv.Quote(e.New),
			e.Units,
			e.Summary.String(),
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return t.String()
}
