package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, text string) *Content {
	t.Helper()
	c, err := ParseContent(text)
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}
	return c
}

func TestParseContent_FrontMatterAndBody(t *testing.T) {
	text := strings.Join([]string{
		"---",
		"day: Sunday",
		"week: \"[[2025/Week 02]]\"",
		"---",
		"",
		"- [ ] water the plants",
		"Some note",
		"",
	}, "\n")

	c := mustParse(t, text)

	wantProps := []Property{
		{Key: "day", Value: "Sunday"},
		{Key: "week", Value: "[[2025/Week 02]]"},
	}
	if diff := cmp.Diff(wantProps, c.Properties()); diff != "" {
		t.Errorf("properties mismatch (-want +got):\n%s", diff)
	}

	wantEntries := []Entry{
		Line("- [ ] water the plants"),
		Line("Some note"),
	}
	if diff := cmp.Diff(wantEntries, c.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseContent_NoFrontMatter(t *testing.T) {
	c := mustParse(t, "just a line\n")
	if len(c.Properties()) != 0 {
		t.Errorf("expected no properties, got %v", c.Properties())
	}
	if len(c.Entries()) != 1 || c.Entries()[0] != Line("just a line") {
		t.Errorf("unexpected entries %v", c.Entries())
	}
}

func TestParseContent_CodeBlock(t *testing.T) {
	text := strings.Join([]string{
		"before",
		"```toml",
		"frequency = \"daily\"",
		"content = \"- [ ] stretch\"",
		"```",
		"after",
		"",
	}, "\n")

	c := mustParse(t, text)
	blocks := c.CodeBlocks()
	if len(blocks) != 1 {
		t.Fatalf("expected 1 code block, got %d", len(blocks))
	}
	want := CodeBlock{
		Kind: "toml",
		Code: "frequency = \"daily\"\ncontent = \"- [ ] stretch\"\n",
	}
	if blocks[0] != want {
		t.Errorf("expected %#v, got %#v", want, blocks[0])
	}
	if len(c.Entries()) != 3 {
		t.Errorf("expected 3 entries, got %d", len(c.Entries()))
	}
}

func TestParseContent_UnterminatedCodeBlock(t *testing.T) {
	c := mustParse(t, "```sh\necho hi\n")
	blocks := c.CodeBlocks()
	if len(blocks) != 1 {
		t.Fatalf("expected 1 code block, got %d", len(blocks))
	}
	if blocks[0].Code != "echo hi\n" {
		t.Errorf("unexpected code %q", blocks[0].Code)
	}
}

func TestParseContent_DropsLeadingBlankLines(t *testing.T) {
	c := mustParse(t, "\n\nfirst\n\nsecond\n")
	want := []Entry{Line("first"), Line(""), Line("second")}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseContent_RejectsNestedMapping(t *testing.T) {
	text := "---\nouter:\n  inner: value\n---\n"
	if _, err := ParseContent(text); err == nil {
		t.Error("nested mappings should be rejected")
	}
}

func TestParseContent_RejectsSequenceValue(t *testing.T) {
	text := "---\ntags:\n  - a\n  - b\n---\n"
	if _, err := ParseContent(text); err == nil {
		t.Error("sequence values should be rejected")
	}
}

func TestParseContent_RejectsNonMappingFrontMatter(t *testing.T) {
	text := "---\n- just\n- a list\n---\n"
	_, err := ParseContent(text)
	if err == nil {
		t.Fatal("non-mapping front matter should be rejected")
	}
	if !strings.Contains(err.Error(), "not a mapping") {
		t.Errorf("error should name the problem, got %v", err)
	}
}

func TestParseContent_RejectsMultipleDocuments(t *testing.T) {
	// A bare "---" line would end the front matter, so the second
	// document starts on the marker line itself.
	text := "---\na: 1\n--- second\n---\n"
	if _, err := ParseContent(text); err == nil {
		t.Error("multiple YAML documents should be rejected")
	}
}

func TestParseContent_EmptyFrontMatter(t *testing.T) {
	c := mustParse(t, "---\n---\nbody\n")
	if len(c.Properties()) != 0 {
		t.Errorf("expected no properties, got %v", c.Properties())
	}
	if len(c.Entries()) != 1 || c.Entries()[0] != Line("body") {
		t.Errorf("unexpected entries %v", c.Entries())
	}
}

func TestRender_RoundTripStable(t *testing.T) {
	texts := []string{
		"---\nday: Sunday\n---\n\n- [ ] water the plants\n",
		"---\nweek: \"[[2025/Week 02]]\"\nnext: \"[[2025-01-13]]\"\n---\n\nnote\n\n```toml\nfrequency = \"daily\"\ncontent = \"x\"\n```\n",
		"plain body only\nsecond line\n",
	}
	for _, text := range texts {
		once := mustParse(t, text).Render()
		twice := mustParse(t, once).Render()
		if once != twice {
			t.Errorf("render not stable:\nfirst:  %q\nsecond: %q", once, twice)
		}
	}
}

func TestRender_BlankLineAfterFrontMatter(t *testing.T) {
	c := &Content{}
	c.InsertProperty("day", "Sunday")
	c.PrependEntry(Line("hello"))
	want := "---\nday: Sunday\n---\n\nhello\n"
	if got := c.Render(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_NoFrontMatterWhenEmpty(t *testing.T) {
	c := &Content{}
	c.PrependEntry(Line("hello"))
	if got := c.Render(); got != "hello\n" {
		t.Errorf("expected %q, got %q", "hello\n", got)
	}
}

func TestRender_QuotesLinkValues(t *testing.T) {
	c := &Content{}
	c.InsertProperty("week", "[[2024/September]]")
	c.InsertProperty("day", "Sunday")
	want := "---\nweek: \"[[2024/September]]\"\nday: Sunday\n---\n\n"
	if got := c.Render(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestInsertProperty_ReportsChange(t *testing.T) {
	c := &Content{}
	if !c.InsertProperty("day", "Sunday") {
		t.Error("first insert should report change")
	}
	if c.InsertProperty("day", "Sunday") {
		t.Error("same value should not report change")
	}
	if !c.InsertProperty("day", "Monday") {
		t.Error("new value should report change")
	}
	if v, _ := c.Property("day"); v != "Monday" {
		t.Errorf("expected Monday, got %s", v)
	}
	if len(c.Properties()) != 1 {
		t.Errorf("upsert should not duplicate keys: %v", c.Properties())
	}
}

func TestInsertProperty_PreservesOrder(t *testing.T) {
	c := &Content{}
	c.InsertProperty("a", "1")
	c.InsertProperty("b", "2")
	c.InsertProperty("a", "3")
	want := []Property{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}
	if diff := cmp.Diff(want, c.Properties()); diff != "" {
		t.Errorf("properties mismatch (-want +got):\n%s", diff)
	}
}

func TestPrependEntry_Unique(t *testing.T) {
	c := mustParse(t, "existing\n")
	if !c.PrependEntry(Line("new")) {
		t.Error("absent entry should be prepended")
	}
	if c.PrependEntry(Line("existing")) {
		t.Error("present entry should not be prepended")
	}
	if c.PrependEntry(Line("new")) {
		t.Error("freshly prepended entry should not be prepended again")
	}
	want := []Entry{Line("new"), Line("existing")}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestPrependEntry_CodeBlockEquality(t *testing.T) {
	block := CodeBlock{Kind: "toml", Code: "a = 1\n"}
	c := &Content{}
	if !c.PrependEntry(block) {
		t.Error("first prepend should report change")
	}
	if c.PrependEntry(CodeBlock{Kind: "toml", Code: "a = 1\n"}) {
		t.Error("structurally equal block should not be prepended")
	}
	if !c.PrependEntry(CodeBlock{Kind: "toml", Code: "a = 2\n"}) {
		t.Error("different block should be prepended")
	}
}

func TestMergeContent(t *testing.T) {
	dst := mustParse(t, "---\na: 1\nb: 2\n---\n\nshared\nonly dst\n")
	src := mustParse(t, "---\nb: 20\nc: 3\n---\n\nshared\nonly src\n")

	merged := MergeContent(dst, src)

	wantProps := []Property{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "20"},
		{Key: "c", Value: "3"},
	}
	if diff := cmp.Diff(wantProps, merged.Properties()); diff != "" {
		t.Errorf("properties mismatch (-want +got):\n%s", diff)
	}

	wantEntries := []Entry{
		Line("shared"),
		Line("only dst"),
		Line("only src"),
	}
	if diff := cmp.Diff(wantEntries, merged.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeContent_DoesNotMutateInputs(t *testing.T) {
	dst := mustParse(t, "---\na: 1\n---\n\nx\n")
	src := mustParse(t, "---\na: 2\n---\n\ny\n")
	dstBefore := dst.Render()
	srcBefore := src.Render()

	_ = MergeContent(dst, src)

	if dst.Render() != dstBefore {
		t.Error("merge mutated dst")
	}
	if src.Render() != srcBefore {
		t.Error("merge mutated src")
	}
}
