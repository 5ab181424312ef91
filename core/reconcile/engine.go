package reconcile

// Compare classifies observed against reference.
//
// Equal multisets match. When the observed side is larger in total, the
// surplus is the multiset difference observed − reference. When both totals
// are equal but the content differs, only the distinct keys found on a single
// side are reported, so a table that differs by one pair is not flagged as a
// whole. A larger reference side is a shortfall and carries no pairs.
func Compare(reference, observed *Multiset) Comparison {
	switch {
	case reference.Equal(observed):
		return Comparison{Outcome: OutcomeMatch}
	case observed.Len() > reference.Len():
		return Comparison{
			Outcome: OutcomeSurplus,
			Extra:   observed.Subtract(reference),
		}
	case observed.Len() == reference.Len():
		return Comparison{
			Outcome:   OutcomeDivergent,
			Divergent: reference.SymmetricKeyDifference(observed),
		}
	default:
		return Comparison{Outcome: OutcomeShortfall}
	}
}
