package usecase

import (
	"context"

	"settlement-reconciliation/internal/domain"
)

// EntryRepository defines the interface for fetching ledger and settlement entries.
// The usecase layer depends on this interface, not on a concrete implementation.
// Data-quality problems come back as warnings; the error is reserved for I/O.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go EntryRepository
type EntryRepository interface {
	GetLedgerEntries(ctx context.Context, path string) ([]domain.LedgerEntry, []domain.Warning, error)
	GetSettlementEntries(ctx context.Context, path string) ([]domain.SettlementEntry, []domain.Warning, error)
}
