package align

import "fmt"

// Validate checks that r is a well-formed alignment of an old sequence of length oldLen and a new sequence of length newLen.
// It returns nil if valid, or an error describing the first violation:
//   - len(r) == max(oldLen, newLen)
//   - slots at or beyond newLen are CurrentNone, and no slot before newLen is
//   - slots at or beyond oldLen are Discard
//   - every Reuse targets an index in [0, newLen) whose slot is CurrentOld
//   - no two Reuse actions target the same index
//   - every CurrentOld slot is the target of exactly one Reuse
func (r Result) Validate(oldLen, newLen int) error {
	if oldLen < 0 || newLen < 0 {
		return fmt.Errorf("negative length: old=%d new=%d", oldLen, newLen)
	}
	if len(r) != max(oldLen, newLen) {
		return fmt.Errorf("result has %d slots, want %d", len(r), max(oldLen, newLen))
	}

	claimedBy := make([]int, len(r))
	for j := range claimedBy {
		claimedBy[j] = -1
	}

	for i, s := range r {
		if i >= newLen && s.Current != CurrentNone {
			return fmt.Errorf("slot %d is beyond new length %d but has current action %v", i, newLen, s.Current)
		}
		if i < newLen && s.Current == CurrentNone {
			return fmt.Errorf("slot %d is within new length %d but has current action None", i, newLen)
		}
		if !s.Origin.IsReuse() {
			continue
		}
		if i >= oldLen {
			return fmt.Errorf("slot %d is beyond old length %d but has origin action %v", i, oldLen, s.Origin)
		}
		j := i + s.Origin.Offset
		if j < 0 || j >= newLen {
			return fmt.Errorf("slot %d: %v targets index %d outside new sequence of length %d", i, s.Origin, j, newLen)
		}
		if claimedBy[j] != -1 {
			return fmt.Errorf("slots %d and %d both reuse into index %d", claimedBy[j], i, j)
		}
		claimedBy[j] = i
		if r[j].Current != CurrentOld {
			return fmt.Errorf("slot %d: %v targets index %d whose current action is %v", i, s.Origin, j, r[j].Current)
		}
	}

	for j, s := range r {
		if s.Current == CurrentOld && claimedBy[j] == -1 {
			return fmt.Errorf("slot %d has current action Old but no reuse targets it", j)
		}
	}

	return nil
}
