package domain

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

// Property is a single front-matter key/value pair. Values are kept
// as their decoded string form.
type Property struct {
	Key   string
	Value string
}

// Entry is one body element of a page: a plain line or a fenced code
// block. Both implementations are comparable, so entries can be
// checked for structural equality with ==.
type Entry interface {
	fmt.Stringer
	blank() bool
}

// Line is a single plain-text body line, without its newline.
type Line string

func (l Line) String() string { return string(l) }
func (l Line) blank() bool    { return l == "" }

// CodeBlock is a fenced code block. Kind is the text following the
// opening fence; Code is the block body with every line
// newline-terminated.
type CodeBlock struct {
	Kind string
	Code string
}

func (b CodeBlock) String() string {
	return "```" + b.Kind + "\n" + b.Code + "```"
}

func (b CodeBlock) blank() bool { return false }

// Content is the parsed form of a page: an ordered property mapping
// followed by an ordered entry sequence.
type Content struct {
	properties []Property
	entries    []Entry
}

// ParseContent parses page text. Front matter, when present, must be
// a single YAML document forming a flat mapping of scalar values.
// Fenced code blocks are captured atomically; blank lines before the
// first non-blank entry are dropped.
func ParseContent(text string) (*Content, error) {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	c := &Content{}
	i := 0
	if len(lines) > 0 && lines[0] == frontMatterDelim {
		i = 1
		var fm []string
		for ; i < len(lines); i++ {
			if lines[i] == frontMatterDelim {
				i++
				break
			}
			fm = append(fm, lines[i])
		}
		properties, err := parseFrontMatter(strings.Join(fm, "\n"))
		if err != nil {
			return nil, err
		}
		c.properties = properties
	}

	started := false
	for ; i < len(lines); i++ {
		var entry Entry
		if kind, ok := strings.CutPrefix(lines[i], "```"); ok {
			var code strings.Builder
			for i++; i < len(lines); i++ {
				if lines[i] == "```" {
					break
				}
				code.WriteString(lines[i])
				code.WriteByte('\n')
			}
			entry = CodeBlock{Kind: kind, Code: code.String()}
		} else {
			entry = Line(lines[i])
		}
		if !started {
			if entry.blank() {
				continue
			}
			started = true
		}
		c.entries = append(c.entries, entry)
	}
	return c, nil
}

// parseFrontMatter decodes the text between the delimiters. Anything
// that is not a single flat mapping of scalars is rejected.
func parseFrontMatter(src string) ([]Property, error) {
	dec := yaml.NewDecoder(strings.NewReader(src))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing page properties: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("multiple documents in page properties: %q", src)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("page properties are not a mapping: %q", src)
	}
	var properties []Property
	for k := 0; k+1 < len(mapping.Content); k += 2 {
		key, value := mapping.Content[k], mapping.Content[k+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("page property %q is not a scalar", key.Value)
		}
		properties = upsert(properties, key.Value, value.Value)
	}
	return properties, nil
}

func upsert(properties []Property, key, value string) []Property {
	for i, p := range properties {
		if p.Key == key {
			properties[i].Value = value
			return properties
		}
	}
	return append(properties, Property{Key: key, Value: value})
}

// Properties returns the front-matter pairs in order.
func (c *Content) Properties() []Property {
	return c.properties
}

// Property returns the value for the key, if present.
func (c *Content) Property(key string) (string, bool) {
	for _, p := range c.properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// InsertProperty sets key to value, overwriting an existing pair in
// place or appending a new one. It reports whether anything changed.
func (c *Content) InsertProperty(key, value string) bool {
	for i, p := range c.properties {
		if p.Key == key {
			if p.Value == value {
				return false
			}
			c.properties[i].Value = value
			return true
		}
	}
	c.properties = append(c.properties, Property{Key: key, Value: value})
	return true
}

// PrependEntry puts the entry first unless a structurally equal entry
// is already present anywhere in the body. It reports whether the
// entry was added.
func (c *Content) PrependEntry(e Entry) bool {
	if c.containsEntry(e) {
		return false
	}
	c.entries = append([]Entry{e}, c.entries...)
	return true
}

func (c *Content) containsEntry(e Entry) bool {
	for _, existing := range c.entries {
		if existing == e {
			return true
		}
	}
	return false
}

// Entries returns the body entries in order.
func (c *Content) Entries() []Entry {
	return c.entries
}

// CodeBlocks returns the body's fenced blocks in order.
func (c *Content) CodeBlocks() []CodeBlock {
	var blocks []CodeBlock
	for _, e := range c.entries {
		if b, ok := e.(CodeBlock); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Render serializes the content back to page text. Front matter is
// emitted only when properties exist, followed by one blank line.
// Rendering a parsed render reproduces it byte for byte.
func (c *Content) Render() string {
	var sb strings.Builder
	if len(c.properties) > 0 {
		sb.WriteString(frontMatterDelim)
		sb.WriteByte('\n')
		for _, p := range c.properties {
			sb.WriteString(p.Key)
			sb.WriteString(": ")
			sb.WriteString(quoteValue(p.Value))
			sb.WriteByte('\n')
		}
		sb.WriteString(frontMatterDelim)
		sb.WriteString("\n\n")
	}
	for _, e := range c.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// quoteValue returns the value in a YAML form that decodes back to
// the same string: plain when safe, double-quoted otherwise. Quoting
// depends only on the value, so re-rendering is stable.
func quoteValue(v string) string {
	if plainScalarSafe(v) {
		return v
	}
	return strconv.Quote(v)
}

func plainScalarSafe(v string) bool {
	if v == "" || v != strings.TrimSpace(v) {
		return false
	}
	switch v[0] {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*',
		'!', '|', '>', '\'', '"', '%', '@', '`':
		return false
	}
	if strings.ContainsAny(v, "\n\t") {
		return false
	}
	if strings.Contains(v, ": ") || strings.Contains(v, " #") {
		return false
	}
	return true
}

// MergeContent folds src into dst without mutating either: src
// properties win over dst properties, src entries are appended unless
// structurally present already.
func MergeContent(dst, src *Content) *Content {
	merged := &Content{
		properties: slices.Clone(dst.properties),
		entries:    slices.Clone(dst.entries),
	}
	for _, p := range src.properties {
		merged.InsertProperty(p.Key, p.Value)
	}
	for _, e := range src.entries {
		if !merged.containsEntry(e) {
			merged.entries = append(merged.entries, e)
		}
	}
	return merged
}
