// Package store keeps the bot's records as rows in named tables of a single
// spreadsheet.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Table string

const (
	Memory       Table = "Memory"
	Clients      Table = "Clients"
	Onboarding   Table = "Onboarding"
	Deliverables Table = "Deliverables"
	Updates      Table = "Updates"
)

const TimeLayout = "2006-01-02 15:04:05"

var headers = map[Table][]string{
	Memory:       {"Timestamp", "User", "Info"},
	Clients:      {"ID", "Name", "Contact", "Created By", "Created At"},
	Onboarding:   {"Client ID", "Client", "Step", "Status", "Updated By", "Updated At"},
	Deliverables: {"Timestamp", "Client", "File", "Link", "Delivered By"},
	Updates:      {"Timestamp", "Client", "User", "Note"},
}

var Tables = []Table{Memory, Clients, Onboarding, Deliverables, Updates}

var ErrNotFound = errors.New("not found")

func (t Table) Header() []string {
	return headers[t]
}

// Row is a table row as stored in the sheet; Index is its 1-based sheet row.
type Row struct {
	Index  int
	Values []string
}

func (r Row) Get(i int) string {
	if i < 0 || i >= len(r.Values) {
		return ""
	}
	return r.Values[i]
}

type Store struct {
	values Values
	now    func() time.Time
}

type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(values Values, opts ...Option) *Store {
	s := &Store{
		values: values,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) timestamp() string {
	return s.now().Format(TimeLayout)
}

// Read returns every data row of a table. A leading header row is skipped and
// short rows are padded to the header width.
func (s *Store) Read(ctx context.Context, t Table) ([]Row, error) {
	raw, err := s.values.Get(ctx, fmt.Sprintf("%s!A:Z", t))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t, err)
	}

	header := t.Header()
	rows := make([]Row, 0, len(raw))
	for i, r := range raw {
		values := make([]string, 0, len(header))
		for _, v := range r {
			values = append(values, fmt.Sprint(v))
		}
		for len(values) < len(header) {
			values = append(values, "")
		}
		if i == 0 && isHeader(values, header) {
			continue
		}
		rows = append(rows, Row{Index: i + 1, Values: values})
	}
	return rows, nil
}

func isHeader(values, header []string) bool {
	if len(header) == 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(values[0]), header[0])
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func (s *Store) Append(ctx context.Context, t Table, rows ...[]string) error {
	if len(rows) == 0 {
		return nil
	}
	cells := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, toCells(r))
	}
	if err := s.values.Append(ctx, fmt.Sprintf("%s!A:Z", t), cells); err != nil {
		return fmt.Errorf("append %s: %w", t, err)
	}
	return nil
}

// UpdateRow rewrites the sheet row at the given 1-based index.
func (s *Store) UpdateRow(ctx context.Context, t Table, index int, values []string) error {
	if index < 1 {
		return fmt.Errorf("update %s: invalid row %d", t, index)
	}
	rng := fmt.Sprintf("%s!A%d:Z%d", t, index, index)
	if err := s.values.Update(ctx, rng, [][]interface{}{toCells(values)}); err != nil {
		return fmt.Errorf("update %s: %w", t, err)
	}
	return nil
}

// EnsureHeaders writes the header row into every table that has no rows yet.
// It returns the tables it initialized.
func (s *Store) EnsureHeaders(ctx context.Context) ([]Table, error) {
	var initialized []Table
	for _, t := range Tables {
		raw, err := s.values.Get(ctx, fmt.Sprintf("%s!A1:Z1", t))
		if err != nil {
			return initialized, fmt.Errorf("read %s: %w", t, err)
		}
		if len(raw) > 0 {
			continue
		}
		if err := s.UpdateRow(ctx, t, 1, t.Header()); err != nil {
			return initialized, err
		}
		initialized = append(initialized, t)
	}
	return initialized, nil
}

func (s *Store) Check(ctx context.Context) (string, error) {
	title, err := s.values.Check(ctx)
	if err != nil {
		return "", fmt.Errorf("check spreadsheet: %w", err)
	}
	return title, nil
}
