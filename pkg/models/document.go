package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DocumentID is the server-assigned identifier of a document. The API may
// send it as a JSON string or a JSON number; either way it is kept in its
// textual form.
type DocumentID string

// UnmarshalJSON accepts both string and numeric ids
func (id *DocumentID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DocumentID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid document id %s: %w", data, err)
	}
	*id = DocumentID(n.String())
	return nil
}

// MarshalJSON writes integer ids back as numbers so they keep their wire shape
func (id DocumentID) MarshalJSON() ([]byte, error) {
	s := string(id)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func (id DocumentID) String() string {
	return string(id)
}

// Timestamp wraps time.Time with a lenient ISO-8601 decoder. Servers differ
// on fractional seconds and zone suffixes.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses the ISO-8601 variants seen on the wire
func ParseTimestamp(value string) (Timestamp, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", value)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", data, err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}

// MarshalYAML renders the timestamp as RFC 3339 text
func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Format(time.RFC3339), nil
}

// Document is a snapshot of a server-side document.
type Document struct {
	ID        DocumentID `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Content   string     `json:"content" yaml:"content"`
	CreatedAt Timestamp  `json:"created_at" yaml:"created_at"`
	Size      float64    `json:"size" yaml:"size"` // KB
}

// DocumentList is the body of GET /api/documents
type DocumentList struct {
	Documents []Document `json:"documents"`
}

// DocumentInput is the body of POST /api/documents. The server assigns
// the id, creation time and size.
type DocumentInput struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Field names used in validation results
const (
	FieldName    = "name"
	FieldContent = "content"
)

// Validation messages shown next to the offending field
const (
	MsgNameRequired    = "Document name is required"
	MsgContentRequired = "Document content is required"
)

// FieldErrors returns the validation message for each invalid field.
// A field holding only whitespace counts as empty.
func (in DocumentInput) FieldErrors() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}
	if strings.TrimSpace(in.Content) == "" {
		errs[FieldContent] = MsgContentRequired
	}
	return errs
}

// Validate folds FieldErrors into a single error
func (in DocumentInput) Validate() error {
	errs := in.FieldErrors()
	if len(errs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, strings.ToLower(errs[field]))
	}
	return fmt.Errorf("invalid document: %s", strings.Join(msgs, "; "))
}
