// Package combo walks every k-element subset of a w-bit universe, encoded
// as a uint64 with exactly k bits set.
//
// What:
//
//   - Next steps a subset to the lexicographically next one with the same
//     popcount (Gosper's hack) and returns 0 once the universe is exhausted.
//   - Lexicographic walks subsets with First and Next.
//   - Indexed walks the index combinations produced by gonum's
//     stat/combin generator and packs each into a bit set.
//   - Count is the binomial coefficient C(w, k).
//
// Both generators visit each of the C(w, k) subsets exactly once.
//
// Complexity:
//
//   - Next: O(1).
//   - Lexicographic.Walk: O(C(w,k)).
//   - Indexed.Walk: O(k·C(w,k)).
//
// Errors:
//
//   - ErrUnknownGenerator: ParseGenerator got an unrecognized name.
package combo
