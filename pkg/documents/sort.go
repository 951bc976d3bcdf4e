package documents

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/pluqqy/docdesk/pkg/models"
)

// SortColumn identifies a sortable list column
type SortColumn int

const (
	SortByName SortColumn = iota
	SortByCreated
	SortBySize
)

func (c SortColumn) String() string {
	switch c {
	case SortByName:
		return "name"
	case SortByCreated:
		return "created"
	case SortBySize:
		return "size"
	default:
		return fmt.Sprintf("column(%d)", int(c))
	}
}

// ParseSortColumn maps a column name to its SortColumn
func ParseSortColumn(s string) (SortColumn, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "":
		return SortByName, nil
	case "created", "created_at", "date":
		return SortByCreated, nil
	case "size":
		return SortBySize, nil
	default:
		return SortByName, fmt.Errorf("invalid sort column: %s (must be: name, created, or size)", s)
	}
}

// SortDirection is the order applied to a column
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// SortState is the active sort column and its direction
type SortState struct {
	Column    SortColumn
	Direction SortDirection
}

// DefaultSort sorts by name, ascending
func DefaultSort() SortState {
	return SortState{Column: SortByName, Direction: SortAsc}
}

// Toggle advances the sort for col. The same column cycles
// ascending -> descending -> none; a different column starts ascending.
func (s SortState) Toggle(col SortColumn) SortState {
	if col != s.Column {
		return SortState{Column: col, Direction: SortAsc}
	}
	switch s.Direction {
	case SortAsc:
		s.Direction = SortDesc
	case SortDesc:
		s.Direction = SortNone
	default:
		s.Direction = SortAsc
	}
	return s
}

// Sorted reports whether col is the active column with a direction set
func (s SortState) Sorted(col SortColumn) bool {
	return s.Column == col && s.Direction != SortNone
}

// Sort returns a copy of docs ordered by state. SortNone keeps the input
// order. Ties keep their input order.
func Sort(docs []models.Document, state SortState) []models.Document {
	out := make([]models.Document, len(docs))
	copy(out, docs)
	if state.Direction == SortNone {
		return out
	}

	less := lessFunc(state.Column)
	sort.SliceStable(out, func(i, j int) bool {
		if state.Direction == SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(col SortColumn) func(a, b models.Document) bool {
	switch col {
	case SortByCreated:
		return func(a, b models.Document) bool { return a.CreatedAt.Before(b.CreatedAt.Time) }
	case SortBySize:
		return func(a, b models.Document) bool { return a.Size < b.Size }
	default:
		return func(a, b models.Document) bool { return NaturalLess(a.Name, b.Name) }
	}
}

// NaturalLess compares names case-insensitively with embedded numbers
// ordered by value, so "doc-2" sorts before "doc-10".
func NaturalLess(a, b string) bool {
	if c := naturalCompare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c < 0
	}
	return a < b
}

func naturalCompare(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		if unicode.IsDigit(ra[i]) && unicode.IsDigit(rb[j]) {
			si := i
			for i < len(ra) && unicode.IsDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && unicode.IsDigit(rb[j]) {
				j++
			}
			if c := compareDigits(string(ra[si:i]), string(rb[sj:j])); c != 0 {
				return c
			}
			continue
		}
		if ra[i] != rb[j] {
			if ra[i] < rb[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case len(ra)-i < len(rb)-j:
		return -1
	case len(ra)-i > len(rb)-j:
		return 1
	}
	return 0
}

// compareDigits compares two digit runs by numeric value without
// overflowing on long runs
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
