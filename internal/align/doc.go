// Package align computes a per-slot alignment between an old and a new sequence of units, for driving position-based text
// morph animations.
//
// The alignment is greedy and single-pass: each old unit, in order, claims the leftmost not-yet-claimed equal unit of the new
// sequence. It is not a minimal edit script. Duplicates are matched in input order, and a claimed new index is never claimed
// twice.
//
// A Result has one Slot per index in [0, max(len(old), len(new))). Index i refers simultaneously to old[i] (when i < len(old))
// and to new[i] (when i < len(new)):
//   - Slot.Origin says what happens to old[i]: it is reused and travels Offset slots, or it is discarded.
//   - Slot.Current says what fills new position i: a carried-over old unit (CurrentOld), a fresh unit (CurrentNew), or
//     nothing because the new sequence is shorter (CurrentNone).
//
// Example: aligning "abc" to "bca" yields
//
//	slot 0: Reuse(2)  Old   ('a' moves right by two; new[0] is the old 'b')
//	slot 1: Reuse(-1) Old   ('b' moves left by one; new[1] is the old 'c')
//	slot 2: Reuse(-1) Old   ('c' moves left by one; new[2] is the old 'a')
//
// Align and AlignFunc are pure and safe to call concurrently.
package align
