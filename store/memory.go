package store

import (
	"context"
	"strings"
)

type MemoryEntry struct {
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Info      string `json:"info"`
}

func memoryFromRow(r Row) MemoryEntry {
	return MemoryEntry{
		Timestamp: r.Get(0),
		User:      r.Get(1),
		Info:      r.Get(2),
	}
}

func (s *Store) Remember(ctx context.Context, user, info string) (MemoryEntry, error) {
	m := MemoryEntry{
		Timestamp: s.timestamp(),
		User:      user,
		Info:      info,
	}
	if err := s.Append(ctx, Memory, []string{m.Timestamp, m.User, m.Info}); err != nil {
		return MemoryEntry{}, err
	}
	return m, nil
}

// Recall returns the last limit memories whose info contains topic, ignoring
// case, oldest first.
func (s *Store) Recall(ctx context.Context, topic string, limit int) ([]MemoryEntry, error) {
	rows, err := s.Read(ctx, Memory)
	if err != nil {
		return nil, err
	}

	topic = strings.ToLower(strings.TrimSpace(topic))
	var matches []MemoryEntry
	for _, r := range rows {
		m := memoryFromRow(r)
		if strings.Contains(strings.ToLower(m.Info), topic) {
			matches = append(matches, m)
		}
	}
	return tail(matches, limit), nil
}

func (s *Store) RecentMemories(ctx context.Context, n int) ([]MemoryEntry, error) {
	rows, err := s.Read(ctx, Memory)
	if err != nil {
		return nil, err
	}

	memories := make([]MemoryEntry, 0, len(rows))
	for _, r := range rows {
		if m := memoryFromRow(r); m.Info != "" {
			memories = append(memories, m)
		}
	}
	return tail(memories, n), nil
}

func tail[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
