// Package storetest provides an in-memory implementation of store.Values.
package storetest

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Values keeps tables in memory and understands the ranges the store issues:
// "T!A:Z", "T!A1:Z1" and "T!A<n>:Z<n>". Setting Err makes every call fail.
type Values struct {
	mu sync.Mutex

	Tables  map[string][][]interface{}
	Title   string
	Err     error
	Updates []string
}

func NewValues() *Values {
	return &Values{
		Tables: map[string][][]interface{}{},
		Title:  "Gilbert",
	}
}

func cells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Seed appends rows to a table.
func (v *Values) Seed(table string, rows ...[]string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, r := range rows {
		v.Tables[table] = append(v.Tables[table], cells(r))
	}
}

// Row returns the i-th (0-based) row of a table.
func (v *Values) Row(table string, i int) []interface{} {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Tables[table][i]
}

func splitRange(rng string) (string, string) {
	table, spec, _ := strings.Cut(rng, "!")
	return table, spec
}

func (v *Values) Get(_ context.Context, rng string) ([][]interface{}, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.Err != nil {
		return nil, v.Err
	}
	table, spec := splitRange(rng)
	rows := v.Tables[table]
	if spec == "A1:Z1" && len(rows) > 1 {
		return rows[:1], nil
	}
	return rows, nil
}

func (v *Values) Append(_ context.Context, rng string, rows [][]interface{}) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.Err != nil {
		return v.Err
	}
	table, _ := splitRange(rng)
	v.Tables[table] = append(v.Tables[table], rows...)
	return nil
}

func (v *Values) Update(_ context.Context, rng string, rows [][]interface{}) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.Err != nil {
		return v.Err
	}
	table, spec := splitRange(rng)
	var from, to int
	if _, err := fmt.Sscanf(spec, "A%d:Z%d", &from, &to); err != nil {
		return fmt.Errorf("unsupported range %q: %w", rng, err)
	}
	for len(v.Tables[table]) < from {
		v.Tables[table] = append(v.Tables[table], nil)
	}
	v.Tables[table][from-1] = rows[0]
	v.Updates = append(v.Updates, rng)
	return nil
}

func (v *Values) Check(context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.Err != nil {
		return "", v.Err
	}
	return v.Title, nil
}
