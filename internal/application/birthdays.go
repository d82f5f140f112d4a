package application

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"diarist/internal/domain"
	"diarist/internal/logger"
)

// Birthday is one person found in the vault, resolved to their
// birthday occurrence in the target year.
type Birthday struct {
	Name string
	Page string // page identity, vault-relative without extension
	Born domain.Date
	Next domain.Date // the occurrence in the target year
}

// Reminder builds the once-event spec wishing the person a happy
// birthday.
func (b Birthday) Reminder() domain.EventSpec {
	who := fmt.Sprintf("[[%s|%s]]", b.Page, b.Name)
	years := b.Next.Year - b.Born.Year
	var content string
	if years > 0 {
		content = fmt.Sprintf("- [ ] %s is %d years old, wish them a happy birthday!", who, years)
	} else {
		content = fmt.Sprintf("- [ ] Wish %s a happy birthday", who)
	}
	return domain.OnceEventSpec(b.Next, content)
}

// ScanBirthdays walks the vault for pages carrying a birthday
// property and resolves each to its occurrence in year. Pages that
// cannot be read or decoded are skipped with a warning. February 29th
// birthdays fall on March 1st in non-leap years.
func ScanBirthdays(vaultPath string, year int) ([]Birthday, error) {
	var birthdays []Birthday
	err := filepath.WalkDir(vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != vaultPath {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}
		b, ok := scanPage(vaultPath, path, year)
		if ok {
			birthdays = append(birthdays, b)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", vaultPath, err)
	}
	sort.Slice(birthdays, func(i, j int) bool {
		if birthdays[i].Next != birthdays[j].Next {
			return birthdays[i].Next.Before(birthdays[j].Next)
		}
		return birthdays[i].Name < birthdays[j].Name
	})
	return birthdays, nil
}

func scanPage(vaultPath, path string, year int) (Birthday, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("reading %s: %v", path, err)
		return Birthday{}, false
	}
	meta := frontMatter(string(data))
	if meta == nil {
		return Birthday{}, false
	}

	raw, ok := meta["birthday"].(string)
	if !ok {
		return Birthday{}, false
	}
	born, err := domain.ParseDate(raw)
	if err != nil {
		logger.Warn("%s: bad birthday: %v", path, err)
		return Birthday{}, false
	}

	rel, err := filepath.Rel(vaultPath, path)
	if err != nil {
		rel = path
	}
	page := strings.TrimSuffix(filepath.ToSlash(rel), ".md")

	name := filepath.Base(page)
	if aliases, ok := meta["aliases"].([]any); ok && len(aliases) > 0 {
		if alias, ok := aliases[0].(string); ok && alias != "" {
			name = alias
		}
	}

	// NewDate normalizes Feb 29 to Mar 1 in non-leap years, matching
	// the same-ordinal-day fallback.
	next := domain.NewDate(year, born.Month, born.Day)
	return Birthday{Name: name, Page: page, Born: born, Next: next}, true
}

// frontMatter leniently extracts a page's front matter as a generic
// mapping. People pages often carry rich metadata (lists, nested
// maps) that the journal document model deliberately rejects, so the
// scan decodes on its own rather than through ParseContent.
func frontMatter(text string) map[string]any {
	rest, found := strings.CutPrefix(text, "---\n")
	if !found {
		return nil
	}
	body, _, found := strings.Cut(rest, "\n---")
	if !found {
		return nil
	}
	var meta map[string]any
	if err := yaml.Unmarshal([]byte(body), &meta); err != nil {
		return nil
	}
	return meta
}
