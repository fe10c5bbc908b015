package morph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/f3rmion/morph/internal/align"
)

// Row describes one slot of an alignment for people.
type Row struct {
	Slot    int
	Old     string // Old unit at this index, or "" beyond the old label.
	New     string // New unit at this index, or "" beyond the new label.
	Origin  align.OriginAction
	Current align.CurrentAction
	Note    string
}

// Describe explains every slot of res, an alignment of old to new.
func Describe(old, new []string, res align.Result) []Row {
	rows := make([]Row, len(res))
	for i, s := range res {
		row := Row{Slot: i, Origin: s.Origin, Current: s.Current}
		var notes []string

		if i < len(old) {
			row.Old = old[i]
			switch {
			case !s.Origin.IsReuse():
				notes = append(notes, fmt.Sprintf("%q is discarded", old[i]))
			case s.Origin.Offset == 0:
				notes = append(notes, fmt.Sprintf("%q stays", old[i]))
			default:
				notes = append(notes, fmt.Sprintf("%q moves %s to slot %d", old[i], signed(s.Origin.Offset), i+s.Origin.Offset))
			}
		}

		if i < len(new) {
			row.New = new[i]
			if s.Current == align.CurrentNew {
				notes = append(notes, fmt.Sprintf("%q is new", new[i]))
			}
		}

		row.Note = strings.Join(notes, "; ")
		rows[i] = row
	}
	return rows
}

// FormatTable renders rows as a bordered table.
func FormatTable(rows []Row) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("SLOT", "OLD", "NEW", "ORIGIN", "CURRENT", "NOTE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		t.Row(strconv.Itoa(r.Slot), r.Old, r.New, r.Origin.String(), r.Current.String(), r.Note)
	}

	return t.Render()
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
