package align

// Align aligns old to new. Each old unit, scanned left to right, reuses the leftmost equal unit of new that no earlier old
// unit has reused.
//
// The returned Result has length max(len(old), len(new)). Slots default to Discard/CurrentNew; slots at or beyond len(new)
// are CurrentNone. A nil slice is an empty sequence.
func Align[T comparable](old, new []T) Result {
	res := newResult(len(old), len(new))

	// Unit -> ascending new indices not yet consumed. Only the queue for a unit can consume that unit's indices, so its head is
	// always the leftmost unconsumed match.
	pending := make(map[T][]int, len(new))
	for j, u := range new {
		pending[u] = append(pending[u], j)
	}

	for i, u := range old {
		q := pending[u]
		if len(q) == 0 {
			continue
		}
		j := q[0]
		pending[u] = q[1:]
		res.reuse(i, j)
	}

	return res
}

// AlignFunc is like Align but compares units with eq. It scans new for every old unit, so it costs O(len(old)*len(new)).
func AlignFunc[T any](old, new []T, eq func(a, b T) bool) Result {
	res := newResult(len(old), len(new))
	consumed := make([]bool, len(new))

	for i := range old {
		for j := range new {
			if consumed[j] || !eq(old[i], new[j]) {
				continue
			}
			consumed[j] = true
			res.reuse(i, j)
			break
		}
	}

	return res
}

// newResult allocates a result for sequences of length l (old) and r (new), with defaults applied.
func newResult(l, r int) Result {
	res := make(Result, max(l, r))
	for i := range res {
		res[i] = Slot{Origin: Discard(), Current: CurrentNew}
	}
	for i := r; i < l; i++ {
		res[i].Current = CurrentNone
	}
	return res
}

// reuse records old[i] being carried into new[j].
func (r Result) reuse(i, j int) {
	r[i].Origin = Reuse(j - i)
	r[j].Current = CurrentOld
}
