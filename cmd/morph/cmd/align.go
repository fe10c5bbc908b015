package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/f3rmion/morph/internal/align"
	"github.com/f3rmion/morph/internal/glyph"
	"github.com/f3rmion/morph/internal/history"
	"github.com/f3rmion/morph/internal/morph"
	"github.com/spf13/cobra"
)

var alignCmd = &cobra.Command{
	Use:   "align <old> <new>",
	Short: "Show how the glyphs of one label map onto another",
	Long: `Align two labels and print, for every slot, what happens to the old glyph
at that slot and what fills the slot in the new label.

ORIGIN describes the old glyph: Reuse(offset) when it is carried over and
travels offset slots to the right (negative: to the left), or Discard when
it fades out. CURRENT describes the new label at the slot: Old when it is
filled by a carried-over glyph, New when a fresh glyph fades in, and None
for slots past the end of the new label.

With --stats the summary is followed by the Levenshtein edit distance and
a minimal inline diff ([-deleted-] {+inserted+}) for comparison.

Example:
  morph align abc bca
  morph align --json hello yellow
  morph align --check --stats kitten sitting`,
	Args: cobra.ExactArgs(2),
	RunE: runAlign,
}

func init() {
	rootCmd.AddCommand(alignCmd)
	alignCmd.Flags().Bool("json", false, "print the slots as JSON")
	alignCmd.Flags().Bool("check", false, "verify the alignment invariants")
	alignCmd.Flags().Bool("stats", false, "print a summary and the reference edit distance")
	alignCmd.Flags().Bool("record", false, "record the alignment in history")
}

// alignOutput is the --json document.
type alignOutput struct {
	Old     []string      `json:"old"`
	New     []string      `json:"new"`
	Units   glyph.Mode    `json:"units"`
	Slots   align.Result  `json:"slots"`
	Summary *alignSummary `json:"summary,omitempty"`
}

type alignSummary struct {
	align.Summary
	EditDistance int    `json:"edit_distance"`
	Diff         string `json:"diff"`
}

func runAlign(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	check, _ := cmd.Flags().GetBool("check")
	stats, _ := cmd.Flags().GetBool("stats")
	record, _ := cmd.Flags().GetBool("record")

	s, err := openSession(record)
	if err != nil {
		return err
	}
	defer s.Close()

	units := s.cfg.Units()
	t := morph.New(args[0], args[1], units)
	s.logger.Debug("aligned", "old", args[0], "new", args[1], "units", units, "slots", t.Slots())

	if check {
		if err := t.Result.Validate(len(t.Old), len(t.New)); err != nil {
			return fmt.Errorf("alignment check failed: %w", err)
		}
	}

	if record && s.store != nil {
		id, err := s.store.Record(cmd.Context(), history.Entry{
			Old:     args[0],
			New:     args[1],
			Units:   string(units),
			Result:  t.Result,
			Summary: t.Summary(),
		})
		if err != nil {
			return fmt.Errorf("recording alignment: %w", err)
		}
		s.logger.Info("alignment recorded", "id", id)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeAlignJSON(out, t, units, stats)
	}

	fmt.Fprintln(out, morph.FormatTable(morph.Describe(t.Old, t.New, t.Result)))
	if check {
		fmt.Fprintln(out, "invariants hold")
	}
	if stats {
		fmt.Fprintf(out, "%s\n", t.Summary())
		fmt.Fprintf(out, "edit distance: %d\n", morph.EditDistance(t.Old, t.New))
		fmt.Fprintf(out, "diff: %s\n", morph.InlineDiff(t.Old, t.New))
	}
	return nil
}

func writeAlignJSON(w io.Writer, t morph.Transition, units glyph.Mode, stats bool) error {
	doc := alignOutput{
		Old:   nonNil(t.Old),
		New:   nonNil(t.New),
		Units: units,
		Slots: t.Result,
	}
	if doc.Slots == nil {
		doc.Slots = align.Result{}
	}
	if stats {
		doc.Summary = &alignSummary{
			Summary:      t.Summary(),
			EditDistance: morph.EditDistance(t.Old, t.New),
			Diff:         morph.InlineDiff(t.Old, t.New),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding alignment: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
