package models

// Snapshot is the full export document: all three collections in one nested
// object, for backup and inspection. Not meant for partial import.
type Snapshot struct {
	Records  []LoanRecord             `json:"records"`
	Stats    map[string]BorrowerStats `json:"stats"`
	Settings Settings                 `json:"settings"`
}
