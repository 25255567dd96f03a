package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"settlement-reconciliation/internal/domain"

	"github.com/shopspring/decimal"
)

// epsilon is the currency tolerance below which two amounts are equal.
var epsilon = decimal.New(1, -2)

var minorUnits = decimal.NewFromInt(100)

// Reconcile pairs ledger and settlement entries and returns the outcomes
// ordered by severity. It never fails: empty input yields residual outcomes
// only, or none.
func Reconcile(ledger []domain.LedgerEntry, settlement []domain.SettlementEntry) []domain.Outcome {
	outcomes, _ := ReconcileWithWarnings(ledger, settlement)
	return outcomes
}

// ReconcileWithWarnings is Reconcile plus the data-quality warnings raised
// while matching, currently unparseable dates met during the tie-break.
//
// Matching runs three greedy passes over the unconsumed entries, each in
// input order: reference key, then amount, then residuals. Consumption is
// tracked per call, so concurrent calls on independent inputs are safe.
func ReconcileWithWarnings(ledger []domain.LedgerEntry, settlement []domain.SettlementEntry) ([]domain.Outcome, []domain.Warning) {
	m := &matcher{
		ledger:         ledger,
		settlement:     settlement,
		usedLedger:     make([]bool, len(ledger)),
		usedSettlement: make([]bool, len(settlement)),
		dateWarned:     make(map[dateKey]bool),
	}

	m.matchByReference()
	m.matchByAmount()
	m.collectResiduals()

	sort.SliceStable(m.outcomes, func(i, j int) bool {
		return domain.Rank(m.outcomes[i].Status()) < domain.Rank(m.outcomes[j].Status())
	})
	return m.outcomes, m.warnings
}

type dateKey struct {
	source domain.Source
	index  int
}

// matcher holds the state of a single reconciliation call. Consumption is
// tracked by position in the input slices, not by the entries' Index field.
type matcher struct {
	ledger         []domain.LedgerEntry
	settlement     []domain.SettlementEntry
	usedLedger     []bool
	usedSettlement []bool

	outcomes   []domain.Outcome
	warnings   []domain.Warning
	dateWarned map[dateKey]bool
}

// Pass 1: exact, case-sensitive reference key against invoice number.
func (m *matcher) matchByReference() {
	for li, l := range m.ledger {
		for si, s := range m.settlement {
			if m.usedSettlement[si] || s.InvoiceNumber != l.ReferenceKey {
				continue
			}
			m.usedLedger[li] = true
			m.usedSettlement[si] = true

			diff := l.Amount.Sub(s.TotalAmount).Abs()
			if diff.LessThan(epsilon) {
				m.outcomes = append(m.outcomes, domain.Matched{Ledger: l, Settlement: s})
			} else {
				m.outcomes = append(m.outcomes, domain.AmountMismatch{
					Ledger:     l,
					Settlement: s,
					Diff:       diff,
					Kind:       classifyAmountDifference(diff),
					SuggestedFix: fmt.Sprintf("Adjust book amount from %s to %s (invoice matches but amount differs)",
						formatAmount(l.Amount), formatAmount(s.TotalAmount)),
				})
			}
			break
		}
	}
}

// Pass 2: equal amount, closest date wins among several candidates.
func (m *matcher) matchByAmount() {
	for li, l := range m.ledger {
		if m.usedLedger[li] {
			continue
		}

		var candidates []int
		for si, s := range m.settlement {
			if !m.usedSettlement[si] && l.Amount.Sub(s.TotalAmount).Abs().LessThan(epsilon) {
				candidates = append(candidates, si)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		if len(candidates) > 1 {
			best = m.closestByDate(li, candidates)
		}

		s := m.settlement[best]
		m.usedLedger[li] = true
		m.usedSettlement[best] = true
		m.outcomes = append(m.outcomes, domain.IDMismatch{
			Ledger:     l,
			Settlement: s,
			SuggestedFix: fmt.Sprintf("Change book invoice reference from %q to %q (amounts match at %s)",
				l.ReferenceKey, s.InvoiceNumber, formatAmount(s.TotalAmount)),
		})
	}
}

// closestByDate returns the candidate nearest in days to the ledger posting
// date. Ties go to the earliest candidate.
func (m *matcher) closestByDate(li int, candidates []int) int {
	ledgerDate, ledgerOK := m.parseDate(domain.SourceLedger, li, m.ledger[li].PostingDate)

	best, bestDistance := candidates[0], -1
	for _, si := range candidates {
		distance := unparseableDistance
		if d, ok := m.parseDate(domain.SourceSettlement, si, m.settlement[si].TransactionDate); ok && ledgerOK {
			distance = daysBetween(ledgerDate, d)
		}
		if bestDistance < 0 || distance < bestDistance {
			best, bestDistance = si, distance
		}
	}
	return best
}

// parseDate parses a date and records a warning the first time an entry's
// date fails.
func (m *matcher) parseDate(src domain.Source, index int, value string) (time.Time, bool) {
	t, ok := parseSlashDate(value)
	if !ok {
		key := dateKey{source: src, index: index}
		if !m.dateWarned[key] {
			m.dateWarned[key] = true
			m.warnings = append(m.warnings, domain.Warning{
				Kind:    domain.WarningUnparseableDate,
				Source:  src,
				Row:     index,
				Value:   value,
				Message: fmt.Sprintf("date could not be parsed; ranked at distance %d", unparseableDistance),
			})
		}
	}
	return t, ok
}

// Pass 3: whatever is left on either side.
func (m *matcher) collectResiduals() {
	for li, l := range m.ledger {
		if m.usedLedger[li] {
			continue
		}
		m.outcomes = append(m.outcomes, domain.MissingInBank{
			Ledger:       l,
			SuggestedFix: "Check the source documents: no bank entry matches this invoice or amount",
		})
	}
	for si, s := range m.settlement {
		if m.usedSettlement[si] {
			continue
		}
		m.outcomes = append(m.outcomes, domain.MissingInBook{
			Settlement: s,
			SuggestedFix: fmt.Sprintf("Record the missing book entry: amount %s (invoice %s)",
				formatAmount(s.TotalAmount), s.InvoiceNumber),
		})
	}
}

// classifyAmountDifference labels a non-zero difference. A difference whose
// minor-unit value is a multiple of 9 is the usual signature of two swapped
// digits; this is a heuristic, not a proof.
func classifyAmountDifference(diff decimal.Decimal) domain.Anomaly {
	cents := diff.Mul(minorUnits).Round(0).IntPart()
	if cents > 0 && cents%9 == 0 {
		return domain.AnomalyTransposition
	}
	return domain.AnomalyTypo
}

// formatAmount renders an amount with two decimals and comma grouping,
// e.g. 1,234.50.
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	return sign + b.String() + "." + frac
}
