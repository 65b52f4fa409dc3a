package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

func clientFromRow(r Row) Client {
	return Client{
		ID:        r.Get(0),
		Name:      r.Get(1),
		Contact:   r.Get(2),
		CreatedBy: r.Get(3),
		CreatedAt: r.Get(4),
	}
}

func (c Client) row() []string {
	return []string{c.ID, c.Name, c.Contact, c.CreatedBy, c.CreatedAt}
}

func (s *Store) Clients(ctx context.Context) ([]Client, error) {
	rows, err := s.Read(ctx, Clients)
	if err != nil {
		return nil, err
	}

	clients := make([]Client, 0, len(rows))
	for _, r := range rows {
		if c := clientFromRow(r); c.Name != "" {
			clients = append(clients, c)
		}
	}
	return clients, nil
}

// FindClient looks a client up by name, ignoring case.
func (s *Store) FindClient(ctx context.Context, name string) (Client, error) {
	clients, err := s.Clients(ctx)
	if err != nil {
		return Client{}, err
	}
	for _, c := range clients {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return Client{}, fmt.Errorf("client %q: %w", name, ErrNotFound)
}

func (s *Store) AddClient(ctx context.Context, name, contact, user string) (Client, error) {
	c := Client{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Contact:   strings.TrimSpace(contact),
		CreatedBy: user,
		CreatedAt: s.timestamp(),
	}
	if err := s.Append(ctx, Clients, c.row()); err != nil {
		return Client{}, err
	}
	return c, nil
}
