// Package main scores wallets by their Compound V2 activity.
// Reads a wallet list, fetches transfers from Alchemy and writes wallet_id,score CSV.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"compound-risk-lab/internal/alchemy"
	"compound-risk-lab/internal/config"
	"compound-risk-lab/internal/domain"
	"compound-risk-lab/internal/idhash"
	"compound-risk-lab/internal/ingestion"
	"compound-risk-lab/internal/observability"
	"compound-risk-lab/internal/pipeline"
	"compound-risk-lab/internal/reporting"
	"compound-risk-lab/internal/storage/memory"
	"compound-risk-lab/internal/wallets"
)

func main() {
	// Parse flags
	walletsPath := flag.String("wallets", "data/wallets.txt", "Wallet list, one address per line")
	outputPath := flag.String("output", reporting.DefaultScoresPath, "Output CSV path")
	summaryPath := flag.String("summary", "", "Optional Markdown run summary path")
	topN := flag.Int("top", 10, "Wallets listed in the summary")
	envFile := flag.String("env", ".env", "Env file with ALCHEMY_API_KEY (optional)")
	timeout := flag.Duration("timeout", alchemy.DefaultTimeout, "HTTP timeout per Alchemy request")
	maxRetries := flag.Int("max-retries", alchemy.DefaultMaxRetries, "Retries for 429/5xx/transport errors")
	maxPages := flag.Int("max-pages", 1, "Transfer pages fetched per wallet")
	metricsAddr := flag.String("metrics-addr", "", "Prometheus metrics HTTP address (empty disables)")
	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "[score] ", log.LstdFlags|log.Lshortfile)

	// Validate flags
	if *maxRetries < 0 {
		logger.Fatalf("--max-retries must be >= 0, got %d", *maxRetries)
	}
	if *maxPages < 1 {
		logger.Fatalf("--max-pages must be >= 1, got %d", *maxPages)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	walletList, err := wallets.ReadFile(*walletsPath)
	if err != nil {
		logger.Fatalf("Failed to read wallets: %v", err)
	}
	runID := idhash.ComputeRunID(walletList, domain.ContractAddresses(domain.CompoundContracts), *maxPages)
	logger.Printf("Loaded %d wallets from %s (run %s)", len(walletList), *walletsPath, idhash.ShortID(runID))

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, stopping after current wallet...", sig)
		cancel()
	}()

	if *metricsAddr != "" {
		srv := startMetricsServer(*metricsAddr, logger)
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	client := alchemy.NewHTTPClient(cfg.Endpoint(),
		alchemy.WithTimeout(*timeout),
		alchemy.WithMaxRetries(*maxRetries),
	)
	source := ingestion.NewCompoundSource(ingestion.CompoundSourceOptions{
		Client:   client,
		MaxPages: *maxPages,
		Logger:   logger,
	})
	store := memory.NewScoreStore()
	runner := pipeline.NewRunner(pipeline.RunnerOptions{
		Source: source,
		Store:  store,
		Logger: logger,
	})

	result, runErr := runner.Run(ctx, walletList)
	status := "success"
	if runErr != nil {
		status = "error"
		logger.Printf("Run stopped early: %v", runErr)
	}
	observability.RecordPipelineRun(status, result.Duration.Seconds(), time.Now().Unix())

	// Scores collected so far are written even when the run stopped early.
	scores, err := store.GetAll(context.Background())
	if err != nil {
		logger.Fatalf("Failed to read scores: %v", err)
	}
	if err := reporting.WriteScoresCSV(*outputPath, scores); err != nil {
		logger.Fatalf("Failed to write scores: %v", err)
	}
	logger.Printf("Wrote %d scores to %s", len(scores), *outputPath)

	if *summaryPath != "" {
		summary := reporting.BuildSummary(scores, *topN, time.Now())
		summary.RunID = runID
		if err := reporting.WriteSummaryMarkdown(*summaryPath, summary); err != nil {
			logger.Fatalf("Failed to write summary: %v", err)
		}
		logger.Printf("Wrote summary to %s", *summaryPath)
	}

	logger.Printf("Done: %d wallets in %v (%d fetch failures)",
		result.WalletsProcessed, result.Duration.Round(time.Millisecond), result.FetchFailures)

	if runErr != nil {
		os.Exit(1)
	}
}

// startMetricsServer serves /metrics and /health in the background.
func startMetricsServer(addr string, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", observability.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Printf("Starting metrics server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Printf("Metrics server error: %v", err)
		}
	}()
	return srv
}
