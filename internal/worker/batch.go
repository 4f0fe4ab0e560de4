package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

// Resolver defines the interface for resolving a single case description
type Resolver interface {
	Resolve(ctx context.Context, description string) (*model.Resolution, error)
}

// CaseJob represents one case description to resolve
type CaseJob struct {
	ID          string
	Description string
	Resolver    Resolver
}

// Execute executes the resolution job
func (j *CaseJob) Execute(ctx context.Context) Result {
	resolution, err := j.Resolver.Resolve(ctx, j.Description)
	return &CaseResult{
		ID:          j.ID,
		Description: j.Description,
		Resolution:  resolution,
		Error:       err,
	}
}

// CaseResult represents the result of a resolution job
type CaseResult struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Resolution  *model.Resolution `json:"resolution,omitempty"`
	Error       error             `json:"-"`
}

// GetError returns the error from the case result
func (r *CaseResult) GetError() error {
	return r.Error
}

// BatchProcessor resolves multiple case descriptions concurrently
type BatchProcessor struct {
	resolver    Resolver
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(resolver Resolver, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		resolver:    resolver,
		concurrency: concurrency,
	}
}

// ProcessDescriptions resolves multiple descriptions concurrently. Each
// case gets a generated ID so results can be correlated after the pool
// reorders them.
func (b *BatchProcessor) ProcessDescriptions(ctx context.Context, descriptions []string) []*CaseResult {
	if len(descriptions) == 0 {
		return []*CaseResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, desc := range descriptions {
		pool.Submit(&CaseJob{
			ID:          uuid.NewString(),
			Description: desc,
			Resolver:    b.resolver,
		})
	}

	results := pool.Wait()

	caseResults := make([]*CaseResult, len(results))
	for i, result := range results {
		caseResults[i] = result.(*CaseResult)
	}

	return caseResults
}

// ProcessFile reads case descriptions from a file (one per line) and
// resolves them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*CaseResult, error) {
	descriptions, err := ReadDescriptionsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read descriptions: %w", err)
	}

	return b.ProcessDescriptions(ctx, descriptions), nil
}

// ReadDescriptionsFromFile reads case descriptions from a file, one per
// line. Blank lines and #-comments are skipped; duplicate lines are
// kept, since distinct complainants can file identical text.
func ReadDescriptionsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var descriptions []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024) // long grievance lines
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		descriptions = append(descriptions, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return descriptions, nil
}
