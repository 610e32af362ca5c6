package models

// BorrowerStats holds a borrower's return counters, keyed by display name in
// the stats collection. Updated exactly once per return transition.
type BorrowerStats struct {
	ReturnsOnTime int `json:"returnsOnTime"`
	ReturnsLate   int `json:"returnsLate"`
}

// BorrowerRank is one row of the reliability ranking.
type BorrowerRank struct {
	Name          string
	ReturnsOnTime int
	ReturnsLate   int
	Total         int

	// Score is the on-time percentage, rounded. A borrower with no history
	// scores 100: no-history defaults to maximal trust.
	Score int
}
