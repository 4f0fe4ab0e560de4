package catalog

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Len() < 30 {
		t.Errorf("Expected at least 30 statute records, got %d", c.Len())
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		code       string
		wantFound  bool
		bailable   bool
		cognizable bool
	}{
		{"IPC 420", true, false, true},
		{"IPC 379", true, true, true},
		{"IT Act 66C", true, true, true},
		{"IT Act 43", true, true, false},
		{"POCSO 7", true, false, true},
		{"IPC 999", false, false, false},
		{"", false, false, false},
	}

	for _, tt := range tests {
		rec, found := c.Lookup(tt.code)
		if found != tt.wantFound {
			t.Errorf("Lookup(%q) found = %v, want %v", tt.code, found, tt.wantFound)
			continue
		}
		if !found {
			continue
		}
		if rec.Code != tt.code {
			t.Errorf("Lookup(%q) returned code %q", tt.code, rec.Code)
		}
		if rec.Bailable != tt.bailable {
			t.Errorf("Lookup(%q) bailable = %v, want %v", tt.code, rec.Bailable, tt.bailable)
		}
		if rec.Cognizable != tt.cognizable {
			t.Errorf("Lookup(%q) cognizable = %v, want %v", tt.code, rec.Cognizable, tt.cognizable)
		}
	}
}

func TestCatalog_Search(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	results := c.Search("identity")
	if len(results) == 0 {
		t.Fatal("Expected results for 'identity'")
	}
	found := false
	for _, r := range results {
		if r.Code == "IT Act 66C" {
			found = true
		}
		if !strings.Contains(strings.ToLower(r.Title), "identity") &&
			!strings.Contains(strings.ToLower(r.Description), "identity") {
			t.Errorf("Search returned non-matching record: %s", r.Code)
		}
	}
	if !found {
		t.Error("Expected IT Act 66C in search results for 'identity'")
	}

	// Case-insensitive
	if len(c.Search("THEFT")) == 0 {
		t.Error("Expected case-insensitive search to match 'THEFT'")
	}

	// No match is an empty result, not an error
	if got := c.Search("zzzznothing"); len(got) != 0 {
		t.Errorf("Expected no results, got %d", len(got))
	}
}
