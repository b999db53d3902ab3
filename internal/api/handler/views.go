package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/globalcargo/cargo-console/internal/core/viewmodel"
)

// ListView is the content of a resource list page.
type ListView struct {
	Resource  string
	Title     string
	Noun      string
	Base      string
	Filter    *FilterView
	Headers   []HeaderView
	Rows      []RowView
	EmptyList string
	Toggle    bool
	Deletable bool
	Query     string
	CSVHref   string
	XLSXHref  string
	LoadError bool
}

type FilterView struct {
	Field    string
	Label    string
	Options  []viewmodel.Option
	Selected string
}

// HeaderView is a column header. Sortable headers link to the next order.
type HeaderView struct {
	Label string
	Href  string
	Arrow string
}

type RowView struct {
	ID          string
	Cells       []string
	Active      bool
	ToggleLabel string
}

// FormView is the content of a create or edit page.
type FormView struct {
	Title   string
	Action  string
	Cancel  string
	Editing bool
	Fields  []FieldView
}

type FieldView struct {
	viewmodel.Field
	Value   string
	Checked bool
	Choices []viewmodel.Option
}

// listQuery keeps the filter and sort of a list page across links.
func listQuery(filter, sort string, order viewmodel.Order) string {
	q := url.Values{}
	if filter != "" {
		q.Set("filter", filter)
	}
	if sort != "" {
		q.Set("sort", sort)
		q.Set("order", string(order))
	}
	return q.Encode()
}

func withQuery(path, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + query
}

func buildList[T any](m *viewmodel.Model[T], loadErr error) ListView {
	cfg := m.Config()
	admin := m.IsAdmin()
	sortField, order := m.SortState()
	filter := m.FilterValue()

	v := ListView{
		Resource:  cfg.Resource,
		Title:     cfg.Title,
		Noun:      cfg.Noun,
		Base:      "/" + cfg.Resource,
		EmptyList: cfg.EmptyList,
		Toggle:    admin && cfg.Active != nil,
		Deletable: admin && cfg.Deletable,
		Query:     listQuery(filter, sortField, order),
		LoadError: loadErr != nil,
	}
	v.CSVHref = withQuery(v.Base+"/export.csv", v.Query)
	v.XLSXHref = withQuery(v.Base+"/export.xlsx", v.Query)
	if cfg.Filter != nil {
		v.Filter = &FilterView{
			Field:    cfg.Filter.Field,
			Label:    cfg.Filter.Label,
			Options:  cfg.Filter.Options,
			Selected: filter,
		}
	}

	for _, col := range cfg.Columns {
		h := HeaderView{Label: col.Header}
		if f, ok := cfg.Sort.ForColumn(col.Header); ok {
			next := viewmodel.Asc
			if f.Name == sortField {
				next = viewmodel.NextOrder(order)
				h.Arrow = "↑"
				if order == viewmodel.Desc {
					h.Arrow = "↓"
				}
			}
			h.Href = withQuery(v.Base, listQuery(filter, f.Name, next))
		}
		v.Headers = append(v.Headers, h)
	}

	for row := range m.VisibleRows() {
		r := RowView{ID: cfg.ID(row).String()}
		for _, col := range cfg.Columns {
			r.Cells = append(r.Cells, col.Value(row))
		}
		if cfg.Active != nil {
			r.Active = cfg.Active.Get(row)
			r.ToggleLabel = m.ToggleLabel(row)
		}
		v.Rows = append(v.Rows, r)
	}
	return v
}

// formValues reads a draft's fields by their json names.
func formValues(draft any) (map[string]any, error) {
	b, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	values := map[string]any{}
	if err := dec.Decode(&values); err != nil {
		return nil, err
	}
	return values, nil
}

func buildForm[T any](m *viewmodel.Model[T], refs func(resource string) []viewmodel.Option) (FormView, error) {
	cfg := m.Config()
	draft := m.Draft()

	values, err := formValues(draft)
	if err != nil {
		return FormView{}, fmt.Errorf("form values: %w", err)
	}

	v := FormView{
		Title:   "Add " + cfg.Noun,
		Action:  "/" + cfg.Resource,
		Cancel:  "/" + cfg.Resource,
		Editing: m.Editing(),
	}
	if v.Editing {
		id := cfg.ID(draft).String()
		v.Title = "Edit " + cfg.Noun
		v.Action = "/" + cfg.Resource + "/" + url.PathEscape(id)
	}

	for _, f := range cfg.Fields {
		fv := FieldView{Field: f, Choices: f.Options}
		switch raw := values[f.Name].(type) {
		case nil:
		case bool:
			fv.Checked = raw
		default:
			fv.Value = fmt.Sprint(raw)
		}
		if f.Input == viewmodel.InputRef && refs != nil {
			fv.Choices = refs(f.Ref)
		}
		v.Fields = append(v.Fields, fv)
	}
	return v, nil
}
