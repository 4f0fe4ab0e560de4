package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

// stubResolver resolves every description with a fixed method tag
type stubResolver struct{}

func (s *stubResolver) Resolve(ctx context.Context, description string) (*model.Resolution, error) {
	if description == "fail" {
		return nil, fmt.Errorf("resolver failure")
	}
	return &model.Resolution{Method: model.MethodKeywordOnly}, nil
}

func TestBatchProcessor_ProcessDescriptions(t *testing.T) {
	b := NewBatchProcessor(&stubResolver{}, 3)

	descriptions := []string{
		"my account was hacked",
		"someone stole my phone",
		"fail",
	}
	results := b.ProcessDescriptions(context.Background(), descriptions)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	failures := 0
	ids := make(map[string]bool)
	for _, r := range results {
		if r.ID == "" {
			t.Error("result missing case ID")
		}
		if ids[r.ID] {
			t.Errorf("duplicate case ID %s", r.ID)
		}
		ids[r.ID] = true
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("got %d failures, want 1", failures)
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	b := NewBatchProcessor(&stubResolver{}, 2)
	results := b.ProcessDescriptions(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestReadDescriptionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.txt")
	content := `# batch of test cases
my instagram account was hacked

someone stole my phone
my instagram account was hacked
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	descriptions, err := ReadDescriptionsFromFile(path)
	if err != nil {
		t.Fatalf("ReadDescriptionsFromFile: %v", err)
	}
	// Comments and blanks skipped, duplicates kept.
	if len(descriptions) != 3 {
		t.Fatalf("got %d descriptions, want 3: %v", len(descriptions), descriptions)
	}
}

func TestReadDescriptionsFromFile_Missing(t *testing.T) {
	if _, err := ReadDescriptionsFromFile("/nonexistent/cases.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
