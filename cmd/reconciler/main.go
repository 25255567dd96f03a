package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"settlement-reconciliation/internal/config"
	"settlement-reconciliation/internal/domain"
	"settlement-reconciliation/internal/gateway"
	"settlement-reconciliation/internal/logging"
	"settlement-reconciliation/internal/usecase"
)

func main() {
	// Define command-line flags
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file (optional; falls back to environment)")
	ledgerFile := flag.String("ledger", "", "Path to the ledger (book) export CSV file")
	settlementFile := flag.String("settlement", "", "Path to the bank settlement export CSV file")
	filterName := flag.String("filter", "", "Outcome filter: ALL, ANOMALIES, MATCHED or UNMATCHED")
	flag.Parse()

	cfg := config.LoadOrEnvWithPath(*configPath)

	// Flags take precedence over config
	if *ledgerFile != "" {
		cfg.Input.LedgerPath = *ledgerFile
	}
	if *settlementFile != "" {
		cfg.Input.SettlementPath = *settlementFile
	}
	if *filterName != "" {
		cfg.Report.Filter = *filterName
	}

	if cfg.Input.LedgerPath == "" || cfg.Input.SettlementPath == "" {
		fmt.Println("Error: a ledger and a settlement file are required (-ledger, -settlement or config).")
		flag.Usage()
		os.Exit(1)
	}

	filter, err := domain.ParseFilter(cfg.Report.Filter)
	if err != nil {
		log.Fatalf("Invalid filter: %v", err)
	}

	// Logs go to stderr so stdout carries only the report
	logger := logging.NewLogger(cfg.Observability.Logging, os.Stderr)

	// --- Dependency Injection ---
	csvRepo := gateway.NewCSVEntryRepository(logger)
	reconciliationUseCase := usecase.NewReconciliationUseCase(csvRepo, logger)

	// --- Execute the Usecase ---
	report, err := reconciliationUseCase.Reconcile(context.Background(), cfg.Input.LedgerPath, cfg.Input.SettlementPath)
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	// --- Present the Output ---
	// The summary always covers the whole run; only the outcome list is filtered.
	report.Outcomes = domain.FilterRecords(report.Outcomes, filter)

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON report: %v", err)
	}

	fmt.Println(string(output))
}
