package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownFilter is returned by ParseFilter for names it does not recognise.
var ErrUnknownFilter = errors.New("unknown outcome filter")

// OutcomeRecord is the flat JSON view of an Outcome handed to presentation.
type OutcomeRecord struct {
	Ledger       *LedgerEntry     `json:"book_record"`
	Settlement   *SettlementEntry `json:"bank_record"`
	Status       Status           `json:"status"`
	Confidence   int              `json:"confidence"`
	Difference   *decimal.Decimal `json:"difference,omitempty"`
	Anomaly      Anomaly          `json:"anomaly_type,omitempty"`
	SuggestedFix string           `json:"suggested_fix,omitempty"`
}

// NewOutcomeRecord flattens an outcome.
func NewOutcomeRecord(o Outcome) OutcomeRecord {
	rec := OutcomeRecord{
		Status:       o.Status(),
		Confidence:   o.Confidence(),
		Anomaly:      o.Anomaly(),
		SuggestedFix: o.Remediation(),
	}
	if l, ok := o.LedgerSide(); ok {
		rec.Ledger = &l
	}
	if s, ok := o.SettlementSide(); ok {
		rec.Settlement = &s
	}
	if d, ok := o.Difference(); ok {
		rec.Difference = &d
	}
	return rec
}

// Accept marks the record as MATCHED and clears its anomaly and suggested fix.
// It is a display override only; the engine never sees it.
func (r *OutcomeRecord) Accept() {
	r.Status = StatusMatched
	r.Anomaly = AnomalyNone
	r.SuggestedFix = ""
}

// Filter selects a subset of outcomes for display.
type Filter string

const (
	FilterAll       Filter = "ALL"
	FilterAnomalies Filter = "ANOMALIES"
	FilterMatched   Filter = "MATCHED"
	FilterUnmatched Filter = "UNMATCHED"
)

// ParseFilter resolves a case-insensitive filter name. An empty name means ALL.
func ParseFilter(name string) (Filter, error) {
	switch f := Filter(strings.ToUpper(strings.TrimSpace(name))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterAnomalies, FilterMatched, FilterUnmatched:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}

// Includes reports whether a status passes the filter.
func (f Filter) Includes(s Status) bool {
	switch f {
	case FilterAnomalies:
		return s == StatusAmountMismatch || s == StatusIDMismatch
	case FilterMatched:
		return s == StatusMatched
	case FilterUnmatched:
		return s == StatusMissingInBank || s == StatusMissingInBook
	default:
		return true
	}
}

// FilterRecords returns the records passing f, preserving order.
func FilterRecords(records []OutcomeRecord, f Filter) []OutcomeRecord {
	filtered := make([]OutcomeRecord, 0, len(records))
	for _, r := range records {
		if f.Includes(r.Status) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Summary provides per-status counts of a reconciliation run.
type Summary struct {
	TotalLedgerEntriesProcessed     int `json:"total_ledger_entries_processed"`
	TotalSettlementEntriesProcessed int `json:"total_settlement_entries_processed"`
	Matched                         int `json:"matched"`
	Anomalies                       int `json:"anomalies"`
	AmountMismatch                  int `json:"amount_mismatch"`
	IDMismatch                      int `json:"id_mismatch"`
	Unmatched                       int `json:"unmatched"`
	MissingInBank                   int `json:"missing_in_bank"`
	MissingInBook                   int `json:"missing_in_book"`
}

// Summarize counts records by status.
func Summarize(records []OutcomeRecord) Summary {
	var s Summary
	for _, r := range records {
		switch r.Status {
		case StatusMatched:
			s.Matched++
		case StatusAmountMismatch:
			s.AmountMismatch++
		case StatusIDMismatch:
			s.IDMismatch++
		case StatusMissingInBank:
			s.MissingInBank++
		case StatusMissingInBook:
			s.MissingInBook++
		}
	}
	s.Anomalies = s.AmountMismatch + s.IDMismatch
	s.Unmatched = s.MissingInBank + s.MissingInBook
	return s
}

// ReconciliationReport is the top-level structure for the final JSON output.
type ReconciliationReport struct {
	RunID    string          `json:"run_id"`
	Summary  Summary         `json:"reconciliation_summary"`
	Outcomes []OutcomeRecord `json:"outcomes"`
	Warnings []Warning       `json:"warnings"`
}
