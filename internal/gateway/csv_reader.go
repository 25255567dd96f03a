package gateway

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"settlement-reconciliation/internal/domain"
)

// CSVEntryRepository implements the EntryRepository interface for CSV files.
type CSVEntryRepository struct {
	logger *slog.Logger
}

// NewCSVEntryRepository creates a new repository instance. A nil logger
// discards output.
func NewCSVEntryRepository(logger *slog.Logger) *CSVEntryRepository {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CSVEntryRepository{logger: logger.With("component", "gateway")}
}

// GetLedgerEntries reads and parses the book export file.
func (r *CSVEntryRepository) GetLedgerEntries(ctx context.Context, path string) ([]domain.LedgerEntry, []domain.Warning, error) {
	text, err := r.read(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read ledger file %s: %w", path, err)
	}

	entries, warnings := ParseLedger(text)
	r.logWarnings(ctx, path, warnings)
	r.logger.DebugContext(ctx, "parsed ledger file", "path", path, "entries", len(entries))
	return entries, warnings, nil
}

// GetSettlementEntries reads and parses the bank settlement file.
func (r *CSVEntryRepository) GetSettlementEntries(ctx context.Context, path string) ([]domain.SettlementEntry, []domain.Warning, error) {
	text, err := r.read(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read settlement file %s: %w", path, err)
	}

	entries, warnings := ParseSettlement(text)
	r.logWarnings(ctx, path, warnings)
	r.logger.DebugContext(ctx, "parsed settlement file", "path", path, "entries", len(entries))
	return entries, warnings, nil
}

func (r *CSVEntryRepository) read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *CSVEntryRepository) logWarnings(ctx context.Context, path string, warnings []domain.Warning) {
	for _, w := range warnings {
		r.logger.DebugContext(ctx, w.Message,
			"path", path,
			"kind", w.Kind,
			"row", w.Row,
			"value", w.Value,
		)
	}
}
