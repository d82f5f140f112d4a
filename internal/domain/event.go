package domain

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrNotTOMLBlock reports a fenced code block whose kind is not "toml".
	ErrNotTOMLBlock = errors.New("not a toml block")

	// ErrContentRequired reports an event block without reminder text.
	ErrContentRequired = errors.New("`content` must be specified")
)

// Event is a recurring reminder: a rule, the reminder text, an
// optional validity window and zero or more exception windows.
type Event struct {
	Recurrence Recurrence
	Content    string
	Validity   DateRange
	Exceptions []DateRange
}

// Matches reports whether the event's reminder is due on the date.
// The validity window is checked first, then the exceptions, then the
// recurrence rule.
func (e *Event) Matches(d Date) bool {
	if !e.Validity.Contains(d) {
		return false
	}
	for _, ex := range e.Exceptions {
		if ex.Contains(d) {
			return false
		}
	}
	return e.Recurrence.Matches(d)
}

// DateRangeSpec is the decodable form of a DateRange.
type DateRangeSpec struct {
	From string `toml:"from,omitempty"`
	To   string `toml:"to,omitempty"`
}

// DateRange validates and converts the spec's bounds.
func (s DateRangeSpec) DateRange() (DateRange, error) {
	var r DateRange
	if s.From != "" {
		d, err := ParseDate(s.From)
		if err != nil {
			return DateRange{}, err
		}
		r.From = &d
	}
	if s.To != "" {
		d, err := ParseDate(s.To)
		if err != nil {
			return DateRange{}, err
		}
		r.To = &d
	}
	return r, nil
}

// EventSpec is the decodable form of an event block.
type EventSpec struct {
	RecurrenceSpec
	Content    string          `toml:"content"`
	From       string          `toml:"from,omitempty"`
	To         string          `toml:"to,omitempty"`
	Exceptions []DateRangeSpec `toml:"exceptions,omitempty"`
}

// Event validates the spec and builds the event.
func (s EventSpec) Event() (*Event, error) {
	if s.Content == "" {
		return nil, ErrContentRequired
	}
	rec, err := s.RecurrenceSpec.Recurrence()
	if err != nil {
		return nil, err
	}
	validity, err := DateRangeSpec{From: s.From, To: s.To}.DateRange()
	if err != nil {
		return nil, err
	}
	var exceptions []DateRange
	for _, ex := range s.Exceptions {
		r, err := ex.DateRange()
		if err != nil {
			return nil, err
		}
		exceptions = append(exceptions, r)
	}
	return &Event{
		Recurrence: rec,
		Content:    s.Content,
		Validity:   validity,
		Exceptions: exceptions,
	}, nil
}

// ParseEvent decodes an event from a toml fenced code block.
func ParseEvent(block CodeBlock) (*Event, error) {
	if block.Kind != "toml" {
		return nil, fmt.Errorf("%w: %q", ErrNotTOMLBlock, block.Kind)
	}
	var spec EventSpec
	if err := toml.Unmarshal([]byte(block.Code), &spec); err != nil {
		return nil, fmt.Errorf("decoding event block: %w", err)
	}
	return spec.Event()
}

// OnceEventSpec builds the spec of a one-shot event, ready to be
// marshalled back into a toml block.
func OnceEventSpec(date Date, content string) EventSpec {
	return EventSpec{
		RecurrenceSpec: RecurrenceSpec{
			Frequency: "once",
			Dates:     []string{date.String()},
		},
		Content: content,
	}
}
