// Package viewmodel holds the state and operations behind every management
// page: the fetched list, the filter and sort criteria, the edit form, and
// the rows a viewer may see.
package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/export"
	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/pkg/metrics"
)

// ErrUnmounted is returned when a result arrives after Unmount; the result
// is discarded.
var ErrUnmounted = errors.New("view unmounted")

// Validator checks a draft before it is submitted.
type Validator interface {
	Validate(i any) error
}

// NoticeError is a user-facing notice rather than a failure, such as an
// export of zero rows.
type NoticeError struct {
	Notice string
}

func (e *NoticeError) Error() string { return e.Notice }

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Model is the view model of one resource page. Its state is owned by one
// page instance; the mutex only serialises callbacks of in-flight requests.
type Model[T any] struct {
	cfg      Config[T]
	gw       ports.ResourceGateway[T]
	session  ports.SessionReader
	validate Validator
	log      zerolog.Logger

	mu          sync.Mutex
	initialized bool
	generation  uint64
	items       []T
	draft       T
	editing     bool
	formOpen    bool
	filter      string
	sortField   string
	sortOrder   Order
}

func New[T any](cfg Config[T], gw ports.ResourceGateway[T], session ports.SessionReader, v Validator, log zerolog.Logger) *Model[T] {
	m := &Model[T]{
		cfg:      cfg,
		gw:       gw,
		session:  session,
		validate: v,
		log:      log.With().Str("resource", cfg.Resource).Logger(),
		draft:    cfg.NewDraft(),
	}
	if cfg.Sort != nil {
		m.sortField, m.sortOrder = cfg.Sort.Default, Asc
	}
	return m
}

func (m *Model[T]) Config() Config[T] { return m.cfg }

// Initialize loads the list once per mount. Without a session it returns
// domain.ErrNoSession and loads nothing.
func (m *Model[T]) Initialize(ctx context.Context) error {
	if !m.session.Load(ctx).Authenticated() {
		return domain.ErrNoSession
	}

	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return domain.ErrAlreadyInitialized
	}
	m.initialized = true
	m.mu.Unlock()

	return m.Refresh(ctx)
}

// Refresh replaces the items with the server's list. On failure the error
// is logged and the previous items are kept.
func (m *Model[T]) Refresh(ctx context.Context) error {
	gen := m.currentGeneration()

	items, err := m.gw.List(ctx)
	if err != nil {
		m.log.Error().Err(err).Msg("list failed")
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation {
		return ErrUnmounted
	}
	m.items = items
	return nil
}

// Unmount discards the results of every request still in flight.
func (m *Model[T]) Unmount() {
	m.mu.Lock()
	m.generation++
	m.mu.Unlock()
}

func (m *Model[T]) currentGeneration() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation
}

// Items returns a copy of the fetched list, unfiltered.
func (m *Model[T]) Items() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items)
}

// IsAdmin reports whether the current session may mutate records.
func (m *Model[T]) IsAdmin() bool {
	return m.session.Load(context.Background()).IsAdmin()
}

// ── Form ─────────────────────────────────────────────────────────────────────

// StartCreate opens the form with the resource's default draft.
func (m *Model[T]) StartCreate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft, m.editing, m.formOpen = m.cfg.NewDraft(), false, true
}

// StartEdit opens the form with a copy of entity.
func (m *Model[T]) StartEdit(entity T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft, m.editing, m.formOpen = entity, true, true
}

// SetDraft replaces the form values, e.g. after binding a submitted form.
func (m *Model[T]) SetDraft(draft T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = draft
}

// Cancel closes the form and resets it.
func (m *Model[T]) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetForm()
}

func (m *Model[T]) resetForm() {
	m.draft, m.editing, m.formOpen = m.cfg.NewDraft(), false, false
}

func (m *Model[T]) Draft() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

func (m *Model[T]) Editing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editing
}

func (m *Model[T]) FormOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.formOpen
}

// Submit validates the draft and sends it: Update when editing, Create
// otherwise. On success the list is refreshed and the form reset; on
// failure the form stays open with its values.
func (m *Model[T]) Submit(ctx context.Context) error {
	if err := m.requireAdmin(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	draft, editing, gen := m.draft, m.editing, m.generation
	m.mu.Unlock()

	if m.validate != nil {
		if err := m.validate.Validate(draft); err != nil {
			return err
		}
	}

	var err error
	if editing {
		_, err = m.gw.Update(ctx, m.cfg.ID(draft), draft)
	} else {
		_, err = m.gw.Create(ctx, draft)
	}
	if err != nil {
		m.log.Error().Err(err).Bool("editing", editing).Msg("submit failed")
		return err
	}

	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		return ErrUnmounted
	}
	m.resetForm()
	m.mu.Unlock()

	_ = m.Refresh(ctx)
	return nil
}

// ── Row actions ──────────────────────────────────────────────────────────────

// ToggleActive sends entity with is_active flipped, then refreshes. The
// flip is computed from the caller's copy, so concurrent toggles by two
// viewers may overwrite each other.
func (m *Model[T]) ToggleActive(ctx context.Context, entity T) error {
	if m.cfg.Active == nil {
		return domain.ErrNotSupported
	}
	if err := m.requireAdmin(ctx); err != nil {
		return err
	}

	flipped := m.cfg.Active.Set(entity, !m.cfg.Active.Get(entity))
	if _, err := m.gw.Update(ctx, m.cfg.ID(entity), flipped); err != nil {
		m.log.Error().Err(err).Str("id", m.cfg.ID(entity).String()).Msg("toggle failed")
		return err
	}
	_ = m.Refresh(ctx)
	return nil
}

// Delete hard-deletes a record of a deletable resource.
func (m *Model[T]) Delete(ctx context.Context, id domain.ID) error {
	deleter, ok := m.gw.(ports.Deleter)
	if !m.cfg.Deletable || !ok {
		return domain.ErrNotSupported
	}
	if err := m.requireAdmin(ctx); err != nil {
		return err
	}

	if err := deleter.Delete(ctx, id); err != nil {
		m.log.Error().Err(err).Str("id", id.String()).Msg("delete failed")
		return err
	}
	_ = m.Refresh(ctx)
	return nil
}

// ToggleLabel is the caption of the toggle control: the inverse of the
// current state.
func (m *Model[T]) ToggleLabel(entity T) string {
	if m.cfg.Active != nil && m.cfg.Active.Get(entity) {
		return "Deactivate"
	}
	return "Activate"
}

// Find looks up a fetched record by id.
func (m *Model[T]) Find(id domain.ID) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if m.cfg.ID(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (m *Model[T]) requireAdmin(ctx context.Context) error {
	if !m.session.Load(ctx).IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// ── Filter & sort ────────────────────────────────────────────────────────────

// SetFilter selects the equality filter value; "" shows every row.
func (m *Model[T]) SetFilter(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter = value
}

func (m *Model[T]) FilterValue() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter
}

// SetSort selects a sort field and order. Unknown fields are ignored.
func (m *Model[T]) SetSort(field string, order Order) {
	if m.cfg.Sort == nil {
		return
	}
	if _, ok := m.cfg.Sort.field(field); !ok {
		return
	}
	if order != Desc {
		order = Asc
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sortField, m.sortOrder = field, order
}

// ToggleSort flips the order when field is already the sort field, and
// otherwise sorts ascending by field.
func (m *Model[T]) ToggleSort(field string) {
	m.mu.Lock()
	current, order := m.sortField, m.sortOrder
	m.mu.Unlock()

	if field == current {
		m.SetSort(field, NextOrder(order))
		return
	}
	m.SetSort(field, Asc)
}

// SortState returns the current sort field and order.
func (m *Model[T]) SortState() (string, Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortField, m.sortOrder
}

// NextOrder is the order a click on the current sort column selects.
func NextOrder(o Order) Order {
	if o == Asc {
		return Desc
	}
	return Asc
}

// VisibleRows yields the rows the viewer may see: inactive records are
// hidden from non-admins, the equality filter applies, and resources with a
// sort are ordered. The sequence is a snapshot and may be ranged repeatedly.
func (m *Model[T]) VisibleRows() iter.Seq[T] {
	rows := m.visible()
	return slices.Values(rows)
}

func (m *Model[T]) visible() []T {
	admin := m.IsAdmin()

	m.mu.Lock()
	items, filter := slices.Clone(m.items), m.filter
	sortField, order := m.sortField, m.sortOrder
	m.mu.Unlock()

	rows := items[:0]
	for _, it := range items {
		if !admin && m.cfg.Active != nil && !m.cfg.Active.Get(it) {
			continue
		}
		if filter != "" && m.cfg.Filter != nil && m.cfg.Filter.Value(it) != filter {
			continue
		}
		rows = append(rows, it)
	}

	if m.cfg.Sort != nil {
		if f, ok := m.cfg.Sort.field(sortField); ok {
			slices.SortStableFunc(rows, compareBy(f, order))
		}
	}
	return rows
}

func compareBy[T any](f SortField[T], order Order) func(a, b T) int {
	return func(a, b T) int {
		var c int
		switch f.Kind {
		case SortDate:
			c = parseDate(f.Value(a)).Compare(parseDate(f.Value(b)))
		default:
			c = strings.Compare(strings.ToLower(f.Value(a)), strings.ToLower(f.Value(b)))
		}
		if order == Desc {
			return -c
		}
		return c
	}
}

// parseDate accepts a date or an RFC 3339 timestamp; anything else sorts as
// the zero time.
func parseDate(s string) time.Time {
	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ── Export ───────────────────────────────────────────────────────────────────

// Export renders the visible rows. With no rows it returns a *NoticeError
// and no file.
func (m *Model[T]) Export(format export.Format) ([]byte, error) {
	rows := m.visible()

	var (
		b   []byte
		err error
	)
	switch format {
	case export.FormatCSV:
		b, err = export.CSV(rows, m.cfg.Columns)
	case export.FormatXLSX:
		b, err = export.Workbook(rows, m.cfg.Columns, m.cfg.Title)
	default:
		return nil, fmt.Errorf("export format %q: %w", format, domain.ErrNotSupported)
	}

	switch {
	case errors.Is(err, export.ErrNoRows):
		metrics.ExportsTotal.WithLabelValues(m.cfg.Resource, string(format), "empty").Inc()
		return nil, &NoticeError{Notice: m.cfg.EmptyNotice}
	case err != nil:
		metrics.ExportsTotal.WithLabelValues(m.cfg.Resource, string(format), "error").Inc()
		m.log.Error().Err(err).Str("format", string(format)).Msg("export failed")
		return nil, err
	}
	metrics.ExportsTotal.WithLabelValues(m.cfg.Resource, string(format), "ok").Inc()
	return b, nil
}
