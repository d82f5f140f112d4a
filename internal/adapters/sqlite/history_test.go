package sqlite

import (
	"testing"
	"time"

	"diarist/internal/domain"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(t.TempDir())
	if err != nil {
		t.Fatalf("OpenHistory failed: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestHistory_RecordAndRecent(t *testing.T) {
	h := openTestHistory(t)

	base := time.Date(2025, 1, 12, 8, 0, 0, 0, time.UTC)
	writes := []domain.PageWrite{
		{Name: "2025-01-12", Path: "journals/2025-01-12.md", Created: true, WrittenAt: base},
		{Name: "2025/Week 02", Path: "journals/2025___Week 02.md", Created: true, WrittenAt: base.Add(time.Second)},
		{Name: "2025-01-13", Path: "journals/2025-01-13.md", Created: false, WrittenAt: base.Add(2 * time.Second)},
	}
	for _, w := range writes {
		if err := h.Record(w); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	recent, err := h.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(recent))
	}
	if recent[0].Name != "2025-01-13" {
		t.Errorf("expected newest first, got %q", recent[0].Name)
	}
	if recent[0].Created {
		t.Error("2025-01-13 was an update, not a creation")
	}
	if recent[2].Name != "2025-01-12" {
		t.Errorf("expected oldest last, got %q", recent[2].Name)
	}
	if !recent[2].WrittenAt.Equal(base) {
		t.Errorf("timestamp mismatch: %v", recent[2].WrittenAt)
	}
}

func TestHistory_RecentLimit(t *testing.T) {
	h := openTestHistory(t)

	base := time.Now()
	for i := 0; i < 5; i++ {
		w := domain.PageWrite{
			Name:      "2025-01-12",
			Path:      "journals/2025-01-12.md",
			WrittenAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := h.Record(w); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	recent, err := h.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 writes, got %d", len(recent))
	}
}

func TestHistory_EmptyDatabase(t *testing.T) {
	h := openTestHistory(t)
	recent, err := h.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("expected no writes, got %d", len(recent))
	}
}
