package align

import (
	"fmt"
	"strconv"
	"strings"
)

// OriginKind is the kind of an OriginAction.
type OriginKind int

const (
	OriginDiscard OriginKind = iota // The old unit has no counterpart and fades out.
	OriginReuse                     // The old unit survives and moves by Offset slots.
)

// OriginAction describes what happens to the old unit at a slot.
type OriginAction struct {
	Kind   OriginKind
	Offset int // new index - old index; only meaningful for OriginReuse.
}

// Reuse returns an OriginAction that keeps the old unit and moves it by offset slots.
func Reuse(offset int) OriginAction {
	return OriginAction{Kind: OriginReuse, Offset: offset}
}

// Discard returns an OriginAction that removes the old unit.
func Discard() OriginAction {
	return OriginAction{Kind: OriginDiscard}
}

// IsReuse reports whether a is a Reuse action.
func (a OriginAction) IsReuse() bool {
	return a.Kind == OriginReuse
}

// String renders a as "Reuse(<offset>)" or "Discard".
func (a OriginAction) String() string {
	if a.Kind == OriginReuse {
		return "Reuse(" + strconv.Itoa(a.Offset) + ")"
	}
	return "Discard"
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (a OriginAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses the String form of an OriginAction.
func (a *OriginAction) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "Discard" {
		*a = Discard()
		return nil
	}
	if strings.HasPrefix(s, "Reuse(") && strings.HasSuffix(s, ")") {
		off, err := strconv.Atoi(s[len("Reuse(") : len(s)-1])
		if err != nil {
			return fmt.Errorf("parsing reuse offset %q: %w", s, err)
		}
		*a = Reuse(off)
		return nil
	}
	return fmt.Errorf("unknown origin action %q", s)
}

// CurrentAction describes what fills the new position at a slot.
type CurrentAction int

const (
	CurrentNew  CurrentAction = iota // A freshly appearing unit.
	CurrentOld                       // A unit carried over from the old sequence.
	CurrentNone                      // No new unit exists at this index (new sequence is shorter).
)

var currentNames = [...]string{
	CurrentNew:  "New",
	CurrentOld:  "Old",
	CurrentNone: "None",
}

func (c CurrentAction) String() string {
	if c >= 0 && int(c) < len(currentNames) {
		return currentNames[c]
	}
	return "CurrentAction(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (c CurrentAction) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(currentNames) {
		return nil, fmt.Errorf("invalid current action %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CurrentAction) UnmarshalText(text []byte) error {
	for i, name := range currentNames {
		if name == string(text) {
			*c = CurrentAction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown current action %q", string(text))
}

// Slot pairs the fate of old[i] with the content of new[i] for one index i.
type Slot struct {
	Origin  OriginAction  `json:"origin"`
	Current CurrentAction `json:"current"`
}

func (s Slot) String() string {
	return s.Origin.String() + "/" + s.Current.String()
}

// Result is an alignment: one Slot per index in [0, max(len(old), len(new))).
type Result []Slot
