package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDocumentIDUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DocumentID
		wantErr bool
	}{
		{name: "numeric id", input: `7`, want: "7"},
		{name: "string id", input: `"a1b2"`, want: "a1b2"},
		{name: "uuid id", input: `"6f1c1b7e-7d3c-4c1e-9b43-0d1f6f1f2a10"`, want: "6f1c1b7e-7d3c-4c1e-9b43-0d1f6f1f2a10"},
		{name: "null id", input: `null`, want: ""},
		{name: "object id", input: `{"x":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id DocumentID
			err := json.Unmarshal([]byte(tt.input), &id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && id != tt.want {
				t.Errorf("id = %q, want %q", id, tt.want)
			}
		})
	}
}

func TestDocumentIDMarshalKeepsNumbers(t *testing.T) {
	tests := []struct {
		id   DocumentID
		want string
	}{
		{"7", `7`},
		{"007", `"007"`},
		{"abc", `"abc"`},
	}

	for _, tt := range tests {
		got, err := json.Marshal(tt.id)
		if err != nil {
			t.Fatalf("Marshal(%q) error: %v", tt.id, err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%q) = %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestDocumentDecode(t *testing.T) {
	body := `{"id": 12, "name": "report.txt", "content": "hello", "created_at": "2024-03-01T10:15:00Z", "size": 1.5}`

	var doc Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if doc.ID != "12" {
		t.Errorf("ID = %q, want 12", doc.ID)
	}
	if doc.Name != "report.txt" {
		t.Errorf("Name = %q", doc.Name)
	}
	want := time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC)
	if !doc.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", doc.CreatedAt, want)
	}
	if doc.Size != 1.5 {
		t.Errorf("Size = %v, want 1.5", doc.Size)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2024-03-01T10:15:00Z", false},
		{"2024-03-01T10:15:00.123456+02:00", false},
		{"2024-03-01T10:15:00.123456", false},
		{"2024-03-01 10:15:00", false},
		{"2024-03-01", false},
		{"", false},
		{"yesterday", true},
	}

	for _, tt := range tests {
		_, err := ParseTimestamp(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimestamp(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestDocumentInputFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		input DocumentInput
		want  map[string]string
	}{
		{
			name:  "valid",
			input: DocumentInput{Name: "a", Content: "b"},
			want:  map[string]string{},
		},
		{
			name:  "missing both",
			input: DocumentInput{},
			want: map[string]string{
				FieldName:    MsgNameRequired,
				FieldContent: MsgContentRequired,
			},
		},
		{
			name:  "whitespace name",
			input: DocumentInput{Name: "   ", Content: "body"},
			want:  map[string]string{FieldName: MsgNameRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.FieldErrors()
			if len(got) != len(tt.want) {
				t.Fatalf("FieldErrors() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("FieldErrors()[%s] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestDocumentInputValidate(t *testing.T) {
	if err := (DocumentInput{Name: "n", Content: "c"}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	err := DocumentInput{}.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for empty input")
	}
	if !strings.Contains(err.Error(), "document content is required; document name is required") {
		t.Errorf("Validate() error = %q", err.Error())
	}
}
