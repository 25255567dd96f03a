package domain

import "github.com/shopspring/decimal"

// LedgerEntry represents a row from the internal accounting (book) export.
type LedgerEntry struct {
	// Index is the entry's position in the parsed ledger slice.
	Index        int             `json:"index"`
	DocumentNo   string          `json:"document_no"`
	PostingDate  string          `json:"posting_date"`  // d/m/yyyy
	ReferenceKey string          `json:"reference_key"` // used as the invoice number
	Amount       decimal.Decimal `json:"amount"`
	RawAmount    string          `json:"original_amount"`
}

// SettlementEntry represents a row from the bank settlement export.
type SettlementEntry struct {
	Index           int             `json:"index"`
	AccountNo       string          `json:"account_no"`
	TransactionDate string          `json:"transaction_date"` // d/m/yyyy
	TransactionTime string          `json:"transaction_time"`
	InvoiceNumber   string          `json:"invoice_number"`
	Brand           string          `json:"brand"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}
