package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestVault(t *testing.T) *Vault {
	t.Helper()
	v, err := NewVault(t.TempDir())
	if err != nil {
		t.Fatalf("NewVault failed: %v", err)
	}
	return v
}

func TestJournalPath_FlattensIdentity(t *testing.T) {
	v := newTestVault(t)
	got := v.JournalPath("2025/Week 02")
	want := filepath.Join(v.Root(), "journals", "2025___Week 02.md")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNotePath_KeepsHierarchy(t *testing.T) {
	v := newTestVault(t)
	got := v.NotePath("events/recurring")
	want := filepath.Join(v.Root(), "events", "recurring.md")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestJournal_MissingPageIsEmpty(t *testing.T) {
	v := newTestVault(t)
	page, err := v.Journal("2025-01-12")
	if err != nil {
		t.Fatalf("Journal failed: %v", err)
	}
	if page.Exists() {
		t.Error("missing page should not exist")
	}
	if page.Name() != "2025-01-12" {
		t.Errorf("unexpected name %q", page.Name())
	}
}

func TestSaveJournal_RoundTrip(t *testing.T) {
	v := newTestVault(t)
	page, err := v.Journal("2025-01-12")
	if err != nil {
		t.Fatalf("Journal failed: %v", err)
	}
	page.InsertProperty("day", "Sunday")
	page.PrependLine("- [ ] water the plants")

	if err := v.SaveJournal(page); err != nil {
		t.Fatalf("SaveJournal failed: %v", err)
	}
	if page.Modified() {
		t.Error("save should clear the modified flag")
	}
	if !page.Exists() {
		t.Error("save should mark the page existing")
	}

	loaded, err := v.Journal("2025-01-12")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !loaded.Exists() {
		t.Error("reloaded page should exist")
	}
	if day, _ := loaded.Property("day"); day != "Sunday" {
		t.Errorf("expected day=Sunday, got %q", day)
	}
	if loaded.Render() != page.Render() {
		t.Errorf("round trip changed content:\n%q\n%q", page.Render(), loaded.Render())
	}
}

func TestJournal_ParseErrorIsFatal(t *testing.T) {
	v := newTestVault(t)
	path := v.JournalPath("2025-01-12")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("---\n- a list\n---\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := v.Journal("2025-01-12"); err == nil {
		t.Error("invalid front matter should fail")
	}
}

func TestNewVault_HonoursDailyNotesFolder(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".obsidian"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := `{"folder": "daily", "format": "YYYY-MM-DD"}`
	if err := os.WriteFile(filepath.Join(root, ".obsidian", "daily-notes.json"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	v, err := NewVault(root)
	if err != nil {
		t.Fatalf("NewVault failed: %v", err)
	}
	want := filepath.Join(root, "daily", "2025-01-12.md")
	if got := v.JournalPath("2025-01-12"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestEvents_SkipsMalformedBlocks(t *testing.T) {
	v := newTestVault(t)
	text := strings.Join([]string{
		"Recurring events live here.",
		"",
		"```toml",
		`frequency = "daily"`,
		`content = "- [ ] stretch"`,
		"```",
		"",
		"```toml",
		`frequency = "weekly"`,
		`content = "- [ ] missing weekdays"`,
		"```",
		"",
		"```sh",
		"echo not an event",
		"```",
		"",
	}, "\n")

	path := v.NotePath("events/recurring")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	events, err := v.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 valid event, got %d", len(events))
	}
	if events[0].Content != "- [ ] stretch" {
		t.Errorf("unexpected event content %q", events[0].Content)
	}
}

func TestEvents_MissingPage(t *testing.T) {
	v := newTestVault(t)
	events, err := v.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}
