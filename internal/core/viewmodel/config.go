package viewmodel

import (
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/export"
)

// Config describes one resource: its endpoint, form schema, default draft,
// filter field and export columns. The six resources of the console differ
// only in their Config.
type Config[T any] struct {
	// Resource is the REST collection name and URL segment, e.g. "ships".
	Resource string
	Title    string
	Noun     string

	NewDraft func() T
	ID       func(T) domain.ID
	// Label names a record in selects of other resources' forms.
	Label func(T) string

	// Active is nil for resources without soft deactivation.
	Active *ActiveField[T]
	Filter *Filter[T]
	Sort   *Sort[T]

	Columns []export.Column[T]
	Fields  []Field

	// Deletable marks resources whose gateway supports hard deletion.
	Deletable bool
	// EmptyNotice is shown instead of exporting zero rows.
	EmptyNotice string
	// EmptyList is the placeholder of an empty table.
	EmptyList string
}

// ActiveField reads and writes the is_active flag.
type ActiveField[T any] struct {
	Get func(T) bool
	Set func(T, bool) T
}

// Option is one choice of a select input or filter.
type Option struct {
	Value string
	Label string
}

// Filter is an equality filter on one field.
type Filter[T any] struct {
	Field   string
	Label   string
	Options []Option
	Value   func(T) string
}

type SortKind int

const (
	SortString SortKind = iota
	SortDate
)

// SortField is one sortable column. Column is the header it is attached to.
type SortField[T any] struct {
	Name   string
	Column string
	Kind   SortKind
	Value  func(T) string
}

// Sort lists the sortable columns and the default ordering.
type Sort[T any] struct {
	Fields  []SortField[T]
	Default string
}

// ForColumn returns the sort field attached to a column header.
func (s *Sort[T]) ForColumn(header string) (SortField[T], bool) {
	if s == nil {
		return SortField[T]{}, false
	}
	for _, f := range s.Fields {
		if f.Column == header {
			return f, true
		}
	}
	return SortField[T]{}, false
}

func (s *Sort[T]) field(name string) (SortField[T], bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return SortField[T]{}, false
}

type InputKind string

const (
	InputText     InputKind = "text"
	InputEmail    InputKind = "email"
	InputNumber   InputKind = "number"
	InputDate     InputKind = "date"
	InputSelect   InputKind = "select"
	InputCheckbox InputKind = "checkbox"
	InputTextarea InputKind = "textarea"
	// InputRef selects the id of a record of another resource.
	InputRef InputKind = "ref"
)

// Field is one input of the create/edit form.
type Field struct {
	Name     string
	Label    string
	Input    InputKind
	Options  []Option
	Required bool
	// Ref is the resource an InputRef field points at.
	Ref  string
	Step string
}

// ExportName is "<resource>_export.<format>".
func (c Config[T]) ExportName(f export.Format) string {
	return export.FileName(c.Resource, f)
}
