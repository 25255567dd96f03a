package gateway

import (
	"fmt"
	"strings"

	"settlement-reconciliation/internal/domain"

	"github.com/shopspring/decimal"
)

// Minimum column counts; shorter rows are dropped.
const (
	ledgerMinColumns     = 4
	settlementMinColumns = 15
)

// Ledger column positions.
const (
	ledgerColDocumentNo = 0
	ledgerColPosting    = 1
	ledgerColReference  = 2
	ledgerColAmount     = 3
)

// Settlement column positions.
const (
	settlementColAccount = 0
	settlementColDate    = 2
	settlementColTime    = 3
	settlementColInvoice = 4
	settlementColTotal   = 10
	settlementColBrand   = 14
)

var amountCleaner = strings.NewReplacer(`"`, "", "'", "", ",", "")

// ParseLedger maps the book export into ledger entries. The first row is a
// header. Rows with fewer than four columns are dropped and an amount that
// does not parse becomes zero; both are reported as warnings.
func ParseLedger(text string) ([]domain.LedgerEntry, []domain.Warning) {
	var (
		entries  []domain.LedgerEntry
		warnings []domain.Warning
	)
	rows := Tokenize(text)
	for row := 1; row < len(rows); row++ {
		record := rows[row]
		if len(record) < ledgerMinColumns {
			warnings = append(warnings, malformedRow(domain.SourceLedger, row, len(record), ledgerMinColumns))
			continue
		}

		raw := record[ledgerColAmount]
		amount, ok := parseAmount(raw)
		if !ok {
			warnings = append(warnings, unparseableAmount(domain.SourceLedger, row, raw))
		}

		entries = append(entries, domain.LedgerEntry{
			Index:        len(entries),
			DocumentNo:   record[ledgerColDocumentNo],
			PostingDate:  record[ledgerColPosting],
			ReferenceKey: strings.TrimSpace(record[ledgerColReference]),
			Amount:       amount,
			RawAmount:    raw,
		})
	}
	return entries, warnings
}

// ParseSettlement maps the bank export into settlement entries. The first row
// is a header and rows with fewer than fifteen columns are dropped.
func ParseSettlement(text string) ([]domain.SettlementEntry, []domain.Warning) {
	var (
		entries  []domain.SettlementEntry
		warnings []domain.Warning
	)
	rows := Tokenize(text)
	for row := 1; row < len(rows); row++ {
		record := rows[row]
		if len(record) < settlementMinColumns {
			warnings = append(warnings, malformedRow(domain.SourceSettlement, row, len(record), settlementMinColumns))
			continue
		}

		raw := record[settlementColTotal]
		amount, ok := parseAmount(raw)
		if !ok {
			warnings = append(warnings, unparseableAmount(domain.SourceSettlement, row, raw))
		}

		entries = append(entries, domain.SettlementEntry{
			Index:           len(entries),
			AccountNo:       record[settlementColAccount],
			TransactionDate: record[settlementColDate],
			TransactionTime: record[settlementColTime],
			InvoiceNumber:   strings.TrimSpace(record[settlementColInvoice]),
			Brand:           record[settlementColBrand],
			TotalAmount:     amount,
		})
	}
	return entries, warnings
}

// parseAmount strips quotes and thousands separators and parses the rest.
// On failure it returns zero and false; callers keep the row.
func parseAmount(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(amountCleaner.Replace(raw)))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func malformedRow(src domain.Source, row, got, want int) domain.Warning {
	return domain.Warning{
		Kind:    domain.WarningMalformedRow,
		Source:  src,
		Row:     row,
		Message: fmt.Sprintf("row has %d columns, need at least %d; dropped", got, want),
	}
}

func unparseableAmount(src domain.Source, row int, raw string) domain.Warning {
	return domain.Warning{
		Kind:    domain.WarningUnparseableAmount,
		Source:  src,
		Row:     row,
		Value:   raw,
		Message: "amount could not be parsed; using 0",
	}
}
