package domain

// WarningKind names a category of non-fatal data-quality issue.
type WarningKind string

const (
	WarningMalformedRow      WarningKind = "MalformedRow"
	WarningUnparseableAmount WarningKind = "UnparseableAmount"
	WarningUnparseableDate   WarningKind = "UnparseableDate"
)

// Source identifies which extract a warning came from.
type Source string

const (
	SourceLedger     Source = "ledger"
	SourceSettlement Source = "settlement"
)

// Warning describes input that was degraded to a default instead of failing
// the run. For parse warnings Row is the zero-based row in the tokenized file
// (the header is row 0); for date warnings raised during matching it is the
// entry's position in the parsed slice.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Source  Source      `json:"source"`
	Row     int         `json:"row"`
	Value   string      `json:"value,omitempty"`
	Message string      `json:"message"`
}
