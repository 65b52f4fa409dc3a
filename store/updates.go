package store

import (
	"context"
	"strings"
)

type Update struct {
	Timestamp string `json:"timestamp"`
	Client    string `json:"client"`
	User      string `json:"user"`
	Note      string `json:"note"`
}

func (s *Store) AddUpdate(ctx context.Context, client, note, user string) (Update, error) {
	u := Update{
		Timestamp: s.timestamp(),
		Client:    strings.TrimSpace(client),
		User:      user,
		Note:      strings.TrimSpace(note),
	}
	if err := s.Append(ctx, Updates, []string{u.Timestamp, u.Client, u.User, u.Note}); err != nil {
		return Update{}, err
	}
	return u, nil
}

func (s *Store) Updates(ctx context.Context, client string, limit int) ([]Update, error) {
	rows, err := s.Read(ctx, Updates)
	if err != nil {
		return nil, err
	}

	var out []Update
	for _, r := range rows {
		if !strings.EqualFold(r.Get(1), strings.TrimSpace(client)) {
			continue
		}
		out = append(out, Update{
			Timestamp: r.Get(0),
			Client:    r.Get(1),
			User:      r.Get(2),
			Note:      r.Get(3),
		})
	}
	return tail(out, limit), nil
}
