package domain

import "github.com/shopspring/decimal"

// Status classifies a reconciliation outcome.
type Status string

const (
	StatusMatched        Status = "MATCHED"
	StatusAmountMismatch Status = "AMOUNT_MISMATCH"
	StatusIDMismatch     Status = "ID_MISMATCH"
	StatusMissingInBank  Status = "MISSING_IN_BANK"
	StatusMissingInBook  Status = "MISSING_IN_BOOK"
)

// Rank returns the severity rank used to order outcomes. Lower ranks sort first.
func Rank(s Status) int {
	switch s {
	case StatusAmountMismatch, StatusIDMismatch:
		return 0
	case StatusMissingInBank, StatusMissingInBook:
		return 2
	default:
		return 3
	}
}

// Anomaly is a heuristic label explaining why a mismatch likely happened.
type Anomaly string

const (
	AnomalyNone          Anomaly = ""
	AnomalyTransposition Anomaly = "Transposition"
	AnomalyTypo          Anomaly = "Typo"
	AnomalyWrongInvoice  Anomaly = "Wrong Invoice"
)

// Outcome is one reconciliation result. The concrete type determines which
// sides are present: Matched, AmountMismatch and IDMismatch carry both,
// MissingInBank only the ledger side and MissingInBook only the settlement side.
type Outcome interface {
	Status() Status
	Confidence() int
	// Difference reports the absolute amount difference, if the kind has one.
	Difference() (decimal.Decimal, bool)
	Anomaly() Anomaly
	Remediation() string
	LedgerSide() (LedgerEntry, bool)
	SettlementSide() (SettlementEntry, bool)

	outcome()
}

// Matched pairs two entries whose reference and amount agree.
type Matched struct {
	Ledger     LedgerEntry
	Settlement SettlementEntry
}

func (Matched) Status() Status                            { return StatusMatched }
func (Matched) Confidence() int                           { return 100 }
func (Matched) Difference() (decimal.Decimal, bool)       { return decimal.Zero, true }
func (Matched) Anomaly() Anomaly                          { return AnomalyNone }
func (Matched) Remediation() string                       { return "" }
func (m Matched) LedgerSide() (LedgerEntry, bool)         { return m.Ledger, true }
func (m Matched) SettlementSide() (SettlementEntry, bool) { return m.Settlement, true }
func (Matched) outcome()                                  {}

// AmountMismatch pairs two entries sharing a reference whose amounts differ
// by at least one minor unit.
type AmountMismatch struct {
	Ledger       LedgerEntry
	Settlement   SettlementEntry
	Diff         decimal.Decimal
	Kind         Anomaly // Transposition or Typo
	SuggestedFix string
}

func (AmountMismatch) Status() Status                            { return StatusAmountMismatch }
func (AmountMismatch) Confidence() int                           { return 90 }
func (a AmountMismatch) Difference() (decimal.Decimal, bool)     { return a.Diff, true }
func (a AmountMismatch) Anomaly() Anomaly                        { return a.Kind }
func (a AmountMismatch) Remediation() string                     { return a.SuggestedFix }
func (a AmountMismatch) LedgerSide() (LedgerEntry, bool)         { return a.Ledger, true }
func (a AmountMismatch) SettlementSide() (SettlementEntry, bool) { return a.Settlement, true }
func (AmountMismatch) outcome()                                  {}

// IDMismatch pairs two entries with equal amounts but different references.
type IDMismatch struct {
	Ledger       LedgerEntry
	Settlement   SettlementEntry
	SuggestedFix string
}

func (IDMismatch) Status() Status                            { return StatusIDMismatch }
func (IDMismatch) Confidence() int                           { return 75 }
func (IDMismatch) Difference() (decimal.Decimal, bool)       { return decimal.Zero, true }
func (IDMismatch) Anomaly() Anomaly                          { return AnomalyWrongInvoice }
func (i IDMismatch) Remediation() string                     { return i.SuggestedFix }
func (i IDMismatch) LedgerSide() (LedgerEntry, bool)         { return i.Ledger, true }
func (i IDMismatch) SettlementSide() (SettlementEntry, bool) { return i.Settlement, true }
func (IDMismatch) outcome()                                  {}

// MissingInBank is a ledger entry with no settlement counterpart.
type MissingInBank struct {
	Ledger       LedgerEntry
	SuggestedFix string
}

func (MissingInBank) Status() Status                          { return StatusMissingInBank }
func (MissingInBank) Confidence() int                         { return 0 }
func (MissingInBank) Difference() (decimal.Decimal, bool)     { return decimal.Decimal{}, false }
func (MissingInBank) Anomaly() Anomaly                        { return AnomalyNone }
func (m MissingInBank) Remediation() string                   { return m.SuggestedFix }
func (m MissingInBank) LedgerSide() (LedgerEntry, bool)       { return m.Ledger, true }
func (MissingInBank) SettlementSide() (SettlementEntry, bool) { return SettlementEntry{}, false }
func (MissingInBank) outcome()                                {}

// MissingInBook is a settlement entry with no ledger counterpart.
type MissingInBook struct {
	Settlement   SettlementEntry
	SuggestedFix string
}

func (MissingInBook) Status() Status                            { return StatusMissingInBook }
func (MissingInBook) Confidence() int                           { return 0 }
func (MissingInBook) Difference() (decimal.Decimal, bool)       { return decimal.Decimal{}, false }
func (MissingInBook) Anomaly() Anomaly                          { return AnomalyNone }
func (m MissingInBook) Remediation() string                     { return m.SuggestedFix }
func (MissingInBook) LedgerSide() (LedgerEntry, bool)           { return LedgerEntry{}, false }
func (m MissingInBook) SettlementSide() (SettlementEntry, bool) { return m.Settlement, true }
func (MissingInBook) outcome()                                  {}
