package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/vidhisaar/vidhisaar/internal/model"
	"github.com/vidhisaar/vidhisaar/internal/pipeline"
	"github.com/vidhisaar/vidhisaar/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchNoCache bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Resolve multiple grievance descriptions from a file in parallel",
	Long: `Batch resolves multiple descriptions concurrently:
- Read descriptions from the input file (one per line, # comments skipped)
- Resolve cases in parallel with a configurable worker count
- Write one JSON report per case to the output directory

Example:
  vidhisaar batch cases.txt
  vidhisaar batch cases.txt --concurrency 10 --output-dir ./reports
  vidhisaar batch cases.txt --providers openai --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./vidhisaar-reports", "output directory for case reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "disable result cache")

	// AI flags shared with analyze
	batchCmd.Flags().StringVar(&aiProviders, "providers", "", "comma-separated AI providers in priority order")
	batchCmd.Flags().StringVar(&aiModel, "model", "", "provider model name (default per provider)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !batchNoCache
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Verbose = verbose

	if aiProviders != "" {
		providers, err := buildProviderConfigs(aiProviders, aiModel)
		if err != nil {
			return err
		}
		cfg.Providers = providers
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, concurrency)

	fmt.Fprintf(os.Stderr, "Processing %s with %d workers...\n", file, concurrency)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.ID, result.Error)
			continue
		}

		successCount++

		raw, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			failureCount++
			successCount--
			fmt.Fprintf(os.Stderr, "FAIL %s: encode report: %v\n", result.ID, err)
			continue
		}

		reportPath := filepath.Join(outputDir, result.ID+".json")
		if err := os.WriteFile(reportPath, raw, 0644); err != nil {
			failureCount++
			successCount--
			fmt.Fprintf(os.Stderr, "FAIL %s: write report: %v\n", result.ID, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "OK   %s (%d sections, method %s)\n",
			result.ID, len(result.Resolution.Sections), result.Resolution.Method)
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d total, %d ok, %d failed, reports in %s\n",
		len(results), successCount, failureCount, outputDir)

	return nil
}
