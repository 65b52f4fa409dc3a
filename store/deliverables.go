package store

import (
	"context"
	"strings"
)

type Deliverable struct {
	Timestamp   string `json:"timestamp"`
	Client      string `json:"client"`
	File        string `json:"file"`
	Link        string `json:"link"`
	DeliveredBy string `json:"delivered_by"`
}

func (s *Store) LogDelivery(ctx context.Context, client, file, link, user string) (Deliverable, error) {
	d := Deliverable{
		Timestamp:   s.timestamp(),
		Client:      strings.TrimSpace(client),
		File:        strings.TrimSpace(file),
		Link:        strings.TrimSpace(link),
		DeliveredBy: user,
	}
	if err := s.Append(ctx, Deliverables, []string{d.Timestamp, d.Client, d.File, d.Link, d.DeliveredBy}); err != nil {
		return Deliverable{}, err
	}
	return d, nil
}

func (s *Store) Deliveries(ctx context.Context, client string, limit int) ([]Deliverable, error) {
	rows, err := s.Read(ctx, Deliverables)
	if err != nil {
		return nil, err
	}

	var out []Deliverable
	for _, r := range rows {
		if !strings.EqualFold(r.Get(1), strings.TrimSpace(client)) {
			continue
		}
		out = append(out, Deliverable{
			Timestamp:   r.Get(0),
			Client:      r.Get(1),
			File:        r.Get(2),
			Link:        r.Get(3),
			DeliveredBy: r.Get(4),
		})
	}
	return tail(out, limit), nil
}
