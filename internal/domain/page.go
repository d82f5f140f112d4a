package domain

import "time"

// Page is a named vault page with change tracking. It never touches
// the filesystem; adapters load and persist it.
type Page struct {
	name     string
	exists   bool
	modified bool
	content  *Content
}

// NewPage returns an empty page that does not exist in the vault yet.
func NewPage(name string) *Page {
	return &Page{name: name, content: &Content{}}
}

// LoadPage parses existing page text.
func LoadPage(name, text string) (*Page, error) {
	content, err := ParseContent(text)
	if err != nil {
		return nil, err
	}
	return &Page{name: name, exists: true, content: content}, nil
}

// Name returns the page identity, e.g. "2025-01-12" or "2025/Week 02".
func (p *Page) Name() string { return p.name }

// Exists reports whether the page was loaded from, or has been
// written to, the vault.
func (p *Page) Exists() bool { return p.exists }

// Modified reports whether the page changed since load or last save.
func (p *Page) Modified() bool { return p.modified }

// InsertProperty upserts a front-matter property.
func (p *Page) InsertProperty(key, value string) {
	if p.content.InsertProperty(key, value) {
		p.modified = true
	}
}

// Property returns the value of a front-matter property, if present.
func (p *Page) Property(key string) (string, bool) {
	return p.content.Property(key)
}

// PrependEntry puts an entry first unless already present.
func (p *Page) PrependEntry(e Entry) {
	if p.content.PrependEntry(e) {
		p.modified = true
	}
}

// PrependLine puts a plain line first unless already present.
func (p *Page) PrependLine(line string) {
	p.PrependEntry(Line(line))
}

// PrependLines prepends the lines as a block, preserving their order.
func (p *Page) PrependLines(lines []string) {
	for i := len(lines) - 1; i >= 0; i-- {
		p.PrependLine(lines[i])
	}
}

// Entries returns the page body in order.
func (p *Page) Entries() []Entry {
	return p.content.Entries()
}

// CodeBlocks returns the page's fenced blocks in order.
func (p *Page) CodeBlocks() []CodeBlock {
	return p.content.CodeBlocks()
}

// Render serializes the page to its on-disk text.
func (p *Page) Render() string {
	return p.content.Render()
}

// MarkSaved records a successful write: the page now exists and is
// unmodified. Adapters call this after persisting.
func (p *Page) MarkSaved() {
	p.exists = true
	p.modified = false
}

// PageWrite records one persisted page change, for the history index.
type PageWrite struct {
	Name      string
	Path      string
	Created   bool
	WrittenAt time.Time
}
