package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vidhisaar/vidhisaar/internal/model"
	"github.com/vidhisaar/vidhisaar/internal/pipeline"
)

var (
	analyzeTimeout time.Duration
	analyzeNoCache bool
	analyzeOut     string
	aiProviders    string
	aiModel        string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <description>",
	Short: "Resolve a grievance description to statutory sections",
	Long: `Analyze runs the full resolution cascade on one description:
- Pre-classify the grievance (category, severity, criminal/civil)
- Match candidate statutory sections by keyword and asset context
- Optionally arbitrate with AI providers
- Validate and disqualify sections the facts cannot support

Example:
  vidhisaar analyze "My instagram account was hacked"
  vidhisaar analyze "He took my money" --providers openai
  vidhisaar analyze "..." --providers openai,anthropic --json result.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "overall resolution timeout")
	analyzeCmd.Flags().BoolVar(&analyzeNoCache, "no-cache", false, "disable result cache")
	analyzeCmd.Flags().StringVar(&analyzeOut, "json", "", "write result JSON to file instead of stdout")

	// AI flags
	analyzeCmd.Flags().StringVar(&aiProviders, "providers", "", "comma-separated AI providers in priority order (openai, deepseek, anthropic, gemini, ollama)")
	analyzeCmd.Flags().StringVar(&aiModel, "model", "", "provider model name (default per provider)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !analyzeNoCache
	cfg.Output.Verbose = verbose

	if aiProviders != "" {
		providers, err := buildProviderConfigs(aiProviders, aiModel)
		if err != nil {
			return err
		}
		cfg.Providers = providers
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	resolution, err := p.Resolve(ctx, description)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Category:   %s\n", resolution.Classification.Category)
		fmt.Fprintf(os.Stderr, "Method:     %s\n", resolution.Method)
		fmt.Fprintf(os.Stderr, "Sections:   %d\n", len(resolution.Sections))
		fmt.Fprintf(os.Stderr, "Confidence: %.2f\n", resolution.Confidence)
		fmt.Fprintln(os.Stderr)
	}

	raw, err := json.MarshalIndent(resolution, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if analyzeOut != "" {
		if err := os.WriteFile(analyzeOut, raw, 0644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", analyzeOut)
		return nil
	}

	fmt.Println(string(raw))
	return nil
}
