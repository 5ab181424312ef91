package reconcile

import "strings"

// Pair is one comparable identifier: a traffic id and a connection number,
// both in 0x%08x form.
type Pair struct {
	// Traffic is the traffic identifier hex.
	Traffic string `json:"traffic"`

	// Conn is the connection number hex.
	Conn string `json:"conn"`
}

// NewPair builds a Pair with both fields trimmed and lower-cased.
func NewPair(traffic, conn string) Pair {
	return Pair{
		Traffic: strings.ToLower(strings.TrimSpace(traffic)),
		Conn:    strings.ToLower(strings.TrimSpace(conn)),
	}
}

// String returns "traffic/conn".
func (p Pair) String() string {
	return p.Traffic + "/" + p.Conn
}

// Outcome classifies how the observed multiset relates to the reference one.
type Outcome string

const (
	// OutcomeMatch means both multisets are equal.
	OutcomeMatch Outcome = "match"
	// OutcomeSurplus means the observed side holds more entries in total.
	OutcomeSurplus Outcome = "surplus"
	// OutcomeDivergent means both sides hold the same number of entries
	// but their content differs.
	OutcomeDivergent Outcome = "divergent"
	// OutcomeShortfall means the reference side holds more entries in total.
	OutcomeShortfall Outcome = "shortfall"
)

// Comparison is the result of comparing a reference multiset against an
// observed multiset.
type Comparison struct {
	// Outcome is the classification.
	Outcome Outcome `json:"outcome"`

	// Extra lists the distinct pairs of observed − reference.
	// Only populated for OutcomeSurplus.
	Extra []Pair `json:"extra,omitempty"`

	// Divergent lists the distinct keys present on exactly one side.
	// Only populated for OutcomeDivergent.
	Divergent []Pair `json:"divergent,omitempty"`
}
