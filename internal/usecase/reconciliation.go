package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"settlement-reconciliation/internal/domain"

	"github.com/google/uuid"
)

// ReconciliationUseCase orchestrates the reconciliation process.
type ReconciliationUseCase struct {
	repo   EntryRepository
	logger *slog.Logger
	newID  func() string
}

// NewReconciliationUseCase creates a new instance of the usecase. A nil
// logger discards output.
func NewReconciliationUseCase(repo EntryRepository, logger *slog.Logger) *ReconciliationUseCase {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ReconciliationUseCase{
		repo:   repo,
		logger: logger.With("component", "usecase"),
		newID:  uuid.NewString,
	}
}

// Reconcile loads both extracts and reconciles them. Only repository
// failures are returned as errors; bad rows, amounts and dates end up in
// the report's warnings.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, ledgerPath, settlementPath string) (*domain.ReconciliationReport, error) {
	runID := uc.newID()
	logger := uc.logger.With("run_id", runID)

	// Step 1: Data Ingestion
	ledger, ledgerWarnings, err := uc.repo.GetLedgerEntries(ctx, ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("could not get ledger entries: %w", err)
	}

	settlement, settlementWarnings, err := uc.repo.GetSettlementEntries(ctx, settlementPath)
	if err != nil {
		return nil, fmt.Errorf("could not get settlement entries: %w", err)
	}

	// Step 2: Matching
	outcomes, matchWarnings := ReconcileWithWarnings(ledger, settlement)

	// Step 3: Report
	records := make([]domain.OutcomeRecord, 0, len(outcomes))
	for _, o := range outcomes {
		records = append(records, domain.NewOutcomeRecord(o))
	}

	warnings := make([]domain.Warning, 0, len(ledgerWarnings)+len(settlementWarnings)+len(matchWarnings))
	warnings = append(warnings, ledgerWarnings...)
	warnings = append(warnings, settlementWarnings...)
	warnings = append(warnings, matchWarnings...)

	summary := domain.Summarize(records)
	summary.TotalLedgerEntriesProcessed = len(ledger)
	summary.TotalSettlementEntriesProcessed = len(settlement)

	logger.InfoContext(ctx, "reconciliation finished",
		"ledger_entries", summary.TotalLedgerEntriesProcessed,
		"settlement_entries", summary.TotalSettlementEntriesProcessed,
		"matched", summary.Matched,
		"anomalies", summary.Anomalies,
		"unmatched", summary.Unmatched,
		"warnings", len(warnings),
	)
	if len(warnings) > 0 {
		logger.WarnContext(ctx, "input contained data-quality issues", "count", len(warnings))
	}

	return &domain.ReconciliationReport{
		RunID:    runID,
		Summary:  summary,
		Outcomes: records,
		Warnings: warnings,
	}, nil
}
