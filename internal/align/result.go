package align

import "fmt"

// Sources returns, for each slot j, the old index whose unit is reused into new position j, or -1 if nothing is reused there.
func (r Result) Sources() []int {
	src := make([]int, len(r))
	for j := range src {
		src[j] = -1
	}
	for i, s := range r {
		if s.Origin.IsReuse() {
			if j := i + s.Origin.Offset; j >= 0 && j < len(r) {
				src[j] = i
			}
		}
	}
	return src
}

// Summary counts the kinds of change in a Result.
type Summary struct {
	Stationary int `json:"stationary"` // Old units reused at the same index.
	Moved      int `json:"moved"`      // Old units reused at a different index.
	Discarded  int `json:"discarded"`  // Old units with no counterpart.
	Added      int `json:"added"`      // New positions filled with fresh units.
}

// Reused is the number of old units carried over, moved or not.
func (s Summary) Reused() int {
	return s.Stationary + s.Moved
}

func (s Summary) String() string {
	return fmt.Sprintf("%d stationary, %d moved, %d discarded, %d added", s.Stationary, s.Moved, s.Discarded, s.Added)
}

// Summarize counts the changes in r for sequences of length oldLen and newLen.
//
// oldLen and newLen are needed because slots beyond an input's length carry default actions that are not changes.
func (r Result) Summarize(oldLen, newLen int) Summary {
	var sum Summary
	for i, s := range r {
		if i < oldLen {
			switch {
			case !s.Origin.IsReuse():
				sum.Discarded++
			case s.Origin.Offset == 0:
				sum.Stationary++
			default:
				sum.Moved++
			}
		}
		if i < newLen && s.Current == CurrentNew {
			sum.Added++
		}
	}
	return sum
}
