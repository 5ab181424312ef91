// Package reconcile provides the multiset comparison engine used to reconcile
// two independently formatted identifier spaces, plus a small TTL cache for
// expensive reconciliation results.
//
// # Engine
//
// Both sides of a reconciliation are reduced to a Multiset of Pair values
// (traffic id, connection number). Compare classifies the observed side
// against the reference side:
//
//   - OutcomeMatch: the multisets are equal.
//   - OutcomeSurplus: the observed side is larger in total. Extra holds the
//     multiset difference observed − reference.
//   - OutcomeDivergent: equal totals, different content. Divergent holds the
//     distinct keys found on only one side. Multiplicity is ignored.
//   - OutcomeShortfall: the reference side is larger in total.
//
// # Cache
//
// Cache keys results by an arbitrary string (typically a content digest) and
// uses singleflight so concurrent misses share one build.
//
// # Usage Example
//
//	ref := reconcile.NewMultiset(reconcile.NewPair("0x00000005", "0x0000000a"))
//	obs := reconcile.NewMultiset(
//	    reconcile.NewPair("0x00000005", "0x0000000a"),
//	    reconcile.NewPair("0x00000099", "0x00000001"),
//	)
//	cmp := reconcile.Compare(ref, obs) // OutcomeSurplus, Extra = [0x00000099/0x00000001]
package reconcile
