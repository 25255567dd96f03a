package usecase

import (
	"fmt"
	"sync"
	"testing"

	"settlement-reconciliation/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerEntries(rows ...domain.LedgerEntry) []domain.LedgerEntry {
	for i := range rows {
		rows[i].Index = i
	}
	return rows
}

func settlementEntries(rows ...domain.SettlementEntry) []domain.SettlementEntry {
	for i := range rows {
		rows[i].Index = i
	}
	return rows
}

func book(ref, amount, date string) domain.LedgerEntry {
	return domain.LedgerEntry{
		DocumentNo:   "DOC-" + ref,
		PostingDate:  date,
		ReferenceKey: ref,
		Amount:       decimal.RequireFromString(amount),
		RawAmount:    amount,
	}
}

func bank(invoice, amount, date string) domain.SettlementEntry {
	return domain.SettlementEntry{
		AccountNo:       "ACC",
		TransactionDate: date,
		TransactionTime: "10:00",
		InvoiceNumber:   invoice,
		TotalAmount:     decimal.RequireFromString(amount),
	}
}

func statuses(outcomes []domain.Outcome) []domain.Status {
	out := make([]domain.Status, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, o.Status())
	}
	return out
}

func TestReconcile_ExactMatch(t *testing.T) {
	outcomes := Reconcile(
		ledgerEntries(book("INV1", "100.00", "1/3/2024")),
		settlementEntries(bank("INV1", "100.00", "1/3/2024")),
	)

	require.Len(t, outcomes, 1)
	m, ok := outcomes[0].(domain.Matched)
	require.True(t, ok, "got %T", outcomes[0])
	assert.Equal(t, 100, m.Confidence())
	diff, ok := m.Difference()
	assert.True(t, ok)
	assert.True(t, diff.IsZero())
	assert.Equal(t, domain.AnomalyNone, m.Anomaly())
	assert.Empty(t, m.Remediation())
	assert.Equal(t, "INV1", m.Ledger.ReferenceKey)
	assert.Equal(t, "INV1", m.Settlement.InvoiceNumber)
}

func TestReconcile_AmountMismatch(t *testing.T) {
	tests := []struct {
		name        string
		bookAmount  string
		bankAmount  string
		wantDiff    string
		wantAnomaly domain.Anomaly
	}{
		{name: "difference of 9.00 is a transposition", bookAmount: "100.00", bankAmount: "109.00", wantDiff: "9", wantAnomaly: domain.AnomalyTransposition},
		{name: "swapped digits 12.34 vs 12.43", bookAmount: "12.34", bankAmount: "12.43", wantDiff: "0.09", wantAnomaly: domain.AnomalyTransposition},
		{name: "difference of 0.50 is a typo", bookAmount: "100.00", bankAmount: "100.50", wantDiff: "0.5", wantAnomaly: domain.AnomalyTypo},
		{name: "bank lower than book", bookAmount: "1500.00", bankAmount: "1499.99", wantDiff: "0.01", wantAnomaly: domain.AnomalyTypo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcomes := Reconcile(
				ledgerEntries(book("INV1", tt.bookAmount, "1/3/2024")),
				settlementEntries(bank("INV1", tt.bankAmount, "1/3/2024")),
			)

			require.Len(t, outcomes, 1)
			am, ok := outcomes[0].(domain.AmountMismatch)
			require.True(t, ok, "got %T", outcomes[0])
			assert.Equal(t, 90, am.Confidence())
			assert.Equal(t, tt.wantDiff, am.Diff.String())
			assert.Equal(t, tt.wantAnomaly, am.Anomaly())
			assert.Contains(t, am.Remediation(), formatAmount(am.Ledger.Amount))
			assert.Contains(t, am.Remediation(), formatAmount(am.Settlement.TotalAmount))
		})
	}
}

func TestReconcile_WrongInvoice(t *testing.T) {
	outcomes := Reconcile(
		ledgerEntries(book("INV1", "100.00", "1/3/2024")),
		settlementEntries(bank("INV2", "100.00", "1/3/2024")),
	)

	require.Len(t, outcomes, 1)
	idm, ok := outcomes[0].(domain.IDMismatch)
	require.True(t, ok, "got %T", outcomes[0])
	assert.Equal(t, 75, idm.Confidence())
	assert.Equal(t, domain.AnomalyWrongInvoice, idm.Anomaly())
	diff, _ := idm.Difference()
	assert.True(t, diff.IsZero())
	assert.Contains(t, idm.Remediation(), `"INV1"`)
	assert.Contains(t, idm.Remediation(), `"INV2"`)
}

func TestReconcile_Missing(t *testing.T) {
	outcomes := Reconcile(
		ledgerEntries(book("INV1", "100.00", "1/3/2024")),
		settlementEntries(bank("INV9", "2500.00", "1/3/2024")),
	)

	require.Equal(t, []domain.Status{domain.StatusMissingInBank, domain.StatusMissingInBook}, statuses(outcomes))

	inBank := outcomes[0].(domain.MissingInBank)
	assert.Equal(t, 0, inBank.Confidence())
	_, hasSettlement := inBank.SettlementSide()
	assert.False(t, hasSettlement)
	_, hasDiff := inBank.Difference()
	assert.False(t, hasDiff)
	assert.NotEmpty(t, inBank.Remediation())

	inBook := outcomes[1].(domain.MissingInBook)
	assert.Equal(t, 0, inBook.Confidence())
	_, hasLedger := inBook.LedgerSide()
	assert.False(t, hasLedger)
	assert.Contains(t, inBook.Remediation(), "2,500.00")
	assert.Contains(t, inBook.Remediation(), "INV9")
}

func TestReconcile_DateTieBreak(t *testing.T) {
	t.Run("closest date wins", func(t *testing.T) {
		outcomes := Reconcile(
			ledgerEntries(book("INV1", "100.00", "10/3/2024")),
			settlementEntries(
				bank("X5", "100.00", "15/3/2024"),
				bank("X2", "100.00", "8/3/2024"),
			),
		)

		require.Equal(t, []domain.Status{domain.StatusIDMismatch, domain.StatusMissingInBook}, statuses(outcomes))
		assert.Equal(t, "X2", outcomes[0].(domain.IDMismatch).Settlement.InvoiceNumber)
		assert.Equal(t, "X5", outcomes[1].(domain.MissingInBook).Settlement.InvoiceNumber)
	})

	t.Run("equal distance keeps input order", func(t *testing.T) {
		outcomes := Reconcile(
			ledgerEntries(book("INV1", "100.00", "10/3/2024")),
			settlementEntries(
				bank("AFTER", "100.00", "13/3/2024"),
				bank("BEFORE", "100.00", "7/3/2024"),
			),
		)

		assert.Equal(t, "AFTER", outcomes[0].(domain.IDMismatch).Settlement.InvoiceNumber)
	})

	t.Run("unparseable candidate date ranks last", func(t *testing.T) {
		outcomes, warnings := ReconcileWithWarnings(
			ledgerEntries(book("INV1", "100.00", "10/3/2024")),
			settlementEntries(
				bank("BAD", "100.00", "2024-03-10"),
				bank("FAR", "100.00", "10/6/2024"),
			),
		)

		assert.Equal(t, "FAR", outcomes[0].(domain.IDMismatch).Settlement.InvoiceNumber)
		require.Len(t, warnings, 1)
		assert.Equal(t, domain.WarningUnparseableDate, warnings[0].Kind)
		assert.Equal(t, domain.SourceSettlement, warnings[0].Source)
		assert.Equal(t, 0, warnings[0].Row)
		assert.Equal(t, "2024-03-10", warnings[0].Value)
	})

	t.Run("unparseable ledger date falls back to first candidate", func(t *testing.T) {
		outcomes, warnings := ReconcileWithWarnings(
			ledgerEntries(book("INV1", "100.00", "")),
			settlementEntries(
				bank("FIRST", "100.00", "1/1/2024"),
				bank("SECOND", "100.00", "2/1/2024"),
			),
		)

		assert.Equal(t, "FIRST", outcomes[0].(domain.IDMismatch).Settlement.InvoiceNumber)
		require.Len(t, warnings, 1)
		assert.Equal(t, domain.SourceLedger, warnings[0].Source)
	})

	t.Run("single candidate skips date parsing", func(t *testing.T) {
		outcomes, warnings := ReconcileWithWarnings(
			ledgerEntries(book("INV1", "100.00", "garbage")),
			settlementEntries(bank("ONLY", "100.00", "garbage")),
		)

		assert.Equal(t, []domain.Status{domain.StatusIDMismatch}, statuses(outcomes))
		assert.Empty(t, warnings)
	})
}

func TestReconcile_ReferencePassRunsBeforeAmountPass(t *testing.T) {
	// The first ledger entry could take S0 by amount, but the second entry
	// claims it by reference in the first pass.
	outcomes := Reconcile(
		ledgerEntries(
			book("NOPE", "100.00", "1/3/2024"),
			book("INV1", "100.00", "1/3/2024"),
		),
		settlementEntries(bank("INV1", "100.00", "1/3/2024")),
	)

	require.Equal(t, []domain.Status{domain.StatusMissingInBank, domain.StatusMatched}, statuses(outcomes))
	assert.Equal(t, "NOPE", outcomes[0].(domain.MissingInBank).Ledger.ReferenceKey)
}

func TestReconcile_ReferenceComparisonIsCaseSensitive(t *testing.T) {
	outcomes := Reconcile(
		ledgerEntries(book("inv1", "100.00", "1/3/2024")),
		settlementEntries(bank("INV1", "100.00", "1/3/2024")),
	)

	assert.Equal(t, []domain.Status{domain.StatusIDMismatch}, statuses(outcomes))
}

func TestReconcile_SettlementUsedOnce(t *testing.T) {
	outcomes := Reconcile(
		ledgerEntries(
			book("INV1", "100.00", "1/3/2024"),
			book("INV1", "100.00", "1/3/2024"),
		),
		settlementEntries(bank("INV1", "100.00", "1/3/2024")),
	)

	require.Equal(t, []domain.Status{domain.StatusMissingInBank, domain.StatusMatched}, statuses(outcomes))
	assert.Equal(t, 1, outcomes[0].(domain.MissingInBank).Ledger.Index)
	assert.Equal(t, 0, outcomes[1].(domain.Matched).Ledger.Index)
}

func TestReconcile_EmptyInput(t *testing.T) {
	assert.Empty(t, Reconcile(nil, nil))

	onlyLedger := Reconcile(ledgerEntries(book("INV1", "1.00", "1/1/2024")), nil)
	assert.Equal(t, []domain.Status{domain.StatusMissingInBank}, statuses(onlyLedger))

	onlyBank := Reconcile(nil, settlementEntries(bank("INV1", "1.00", "1/1/2024")))
	assert.Equal(t, []domain.Status{domain.StatusMissingInBook}, statuses(onlyBank))
}

func mixedFixture() ([]domain.LedgerEntry, []domain.SettlementEntry) {
	ledger := ledgerEntries(
		book("INV1", "100.00", "1/3/2024"), // matched
		book("INV2", "100.00", "2/3/2024"), // amount mismatch
		book("INV3", "55.00", "3/3/2024"),  // wrong invoice
		book("INV4", "77.00", "4/3/2024"),  // missing in bank
		book("INV6", "10.00", "6/3/2024"),  // matched
	)
	settlement := settlementEntries(
		bank("INV1", "100.00", "1/3/2024"),
		bank("INV2", "109.00", "2/3/2024"),
		bank("INVX", "55.00", "3/3/2024"),
		bank("INV5", "88.00", "5/3/2024"), // missing in book
		bank("INV6", "10.00", "6/3/2024"),
	)
	return ledger, settlement
}

func TestReconcile_Ordering(t *testing.T) {
	ledger, settlement := mixedFixture()
	outcomes := Reconcile(ledger, settlement)

	assert.Equal(t, []domain.Status{
		domain.StatusAmountMismatch,
		domain.StatusIDMismatch,
		domain.StatusMissingInBank,
		domain.StatusMissingInBook,
		domain.StatusMatched,
		domain.StatusMatched,
	}, statuses(outcomes))

	// Equal ranks keep the order they were produced in.
	assert.Equal(t, "INV1", outcomes[4].(domain.Matched).Ledger.ReferenceKey)
	assert.Equal(t, "INV6", outcomes[5].(domain.Matched).Ledger.ReferenceKey)

	for i := 1; i < len(outcomes); i++ {
		assert.LessOrEqual(t, domain.Rank(outcomes[i-1].Status()), domain.Rank(outcomes[i].Status()))
	}
}

func TestReconcile_Invariants(t *testing.T) {
	ledger, settlement := mixedFixture()
	outcomes := Reconcile(ledger, settlement)

	ledgerSeen := make(map[int]int)
	settlementSeen := make(map[int]int)
	for _, o := range outcomes {
		l, hasLedger := o.LedgerSide()
		s, hasSettlement := o.SettlementSide()
		require.True(t, hasLedger || hasSettlement, "outcome with no sides")
		if hasLedger {
			ledgerSeen[l.Index]++
		}
		if hasSettlement {
			settlementSeen[s.Index]++
		}

		switch v := o.(type) {
		case domain.Matched:
			assert.True(t, v.Ledger.Amount.Sub(v.Settlement.TotalAmount).Abs().LessThan(epsilon))
			assert.Equal(t, v.Ledger.ReferenceKey, v.Settlement.InvoiceNumber)
		case domain.AmountMismatch:
			assert.Equal(t, v.Ledger.ReferenceKey, v.Settlement.InvoiceNumber)
			assert.True(t, v.Diff.GreaterThanOrEqual(epsilon))
		case domain.IDMismatch:
			assert.True(t, v.Ledger.Amount.Sub(v.Settlement.TotalAmount).Abs().LessThan(epsilon))
			assert.NotEqual(t, v.Ledger.ReferenceKey, v.Settlement.InvoiceNumber)
		}
	}

	for i := range ledger {
		assert.Equal(t, 1, ledgerSeen[i], "ledger entry %d", i)
	}
	for i := range settlement {
		assert.Equal(t, 1, settlementSeen[i], "settlement entry %d", i)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	ledger, settlement := mixedFixture()
	assert.Equal(t, Reconcile(ledger, settlement), Reconcile(ledger, settlement))
}

func TestReconcile_ConcurrentCalls(t *testing.T) {
	ledger, settlement := mixedFixture()
	want := Reconcile(ledger, settlement)

	var wg sync.WaitGroup
	results := make([][]domain.Outcome, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Reconcile(ledger, settlement)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestClassifyAmountDifference(t *testing.T) {
	tests := []struct {
		diff string
		want domain.Anomaly
	}{
		{diff: "9", want: domain.AnomalyTransposition},
		{diff: "0.27", want: domain.AnomalyTransposition},
		{diff: "0.01", want: domain.AnomalyTypo},
		{diff: "0.5", want: domain.AnomalyTypo},
		{diff: "0.004", want: domain.AnomalyTypo},
	}

	for _, tt := range tests {
		t.Run(tt.diff, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyAmountDifference(decimal.RequireFromString(tt.diff)))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"0":           "0.00",
		"5.5":         "5.50",
		"999":         "999.00",
		"1000":        "1,000.00",
		"1234567.891": "1,234,567.89",
		"-2500":       "-2,500.00",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, formatAmount(decimal.RequireFromString(in)))
		})
	}
}

func BenchmarkReconcile(b *testing.B) {
	var ledger []domain.LedgerEntry
	var settlement []domain.SettlementEntry
	for i := 0; i < 500; i++ {
		ref := fmt.Sprintf("INV%04d", i)
		ledger = append(ledger, book(ref, "100.00", "1/3/2024"))
		settlement = append(settlement, bank(ref+"X", "100.00", "2/3/2024"))
	}
	ledger = ledgerEntries(ledger...)
	settlement = settlementEntries(settlement...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Reconcile(ledger, settlement)
	}
}
