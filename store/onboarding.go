package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	StatusPending = "pending"
	StatusDone    = "done"
)

var DefaultSteps = []string{"kickoff", "contract", "access", "brief"}

type OnboardingStep struct {
	ClientID  string `json:"client_id"`
	Client    string `json:"client"`
	Step      string `json:"step"`
	Status    string `json:"status"`
	UpdatedBy string `json:"updated_by"`
	UpdatedAt string `json:"updated_at"`

	row int
}

func stepFromRow(r Row) OnboardingStep {
	return OnboardingStep{
		ClientID:  r.Get(0),
		Client:    r.Get(1),
		Step:      r.Get(2),
		Status:    r.Get(3),
		UpdatedBy: r.Get(4),
		UpdatedAt: r.Get(5),
		row:       r.Index,
	}
}

func (o OnboardingStep) values() []string {
	return []string{o.ClientID, o.Client, o.Step, o.Status, o.UpdatedBy, o.UpdatedAt}
}

func (o OnboardingStep) Done() bool {
	return strings.EqualFold(o.Status, StatusDone)
}

// StartOnboarding registers the client when it is unknown and opens one
// pending row per default step. It reports whether the client was created.
func (s *Store) StartOnboarding(ctx context.Context, name, contact, user string) (Client, bool, error) {
	created := false
	c, err := s.FindClient(ctx, name)
	if errors.Is(err, ErrNotFound) {
		c, err = s.AddClient(ctx, name, contact, user)
		created = true
	}
	if err != nil {
		return Client{}, false, err
	}

	existing, err := s.Onboarding(ctx, c.Name)
	if err != nil {
		return Client{}, false, err
	}
	if len(existing) > 0 {
		return c, created, nil
	}

	ts := s.timestamp()
	rows := make([][]string, 0, len(DefaultSteps))
	for _, step := range DefaultSteps {
		rows = append(rows, OnboardingStep{
			ClientID:  c.ID,
			Client:    c.Name,
			Step:      step,
			Status:    StatusPending,
			UpdatedBy: user,
			UpdatedAt: ts,
		}.values())
	}
	if err := s.Append(ctx, Onboarding, rows...); err != nil {
		return Client{}, false, err
	}
	return c, created, nil
}

func (s *Store) Onboarding(ctx context.Context, client string) ([]OnboardingStep, error) {
	rows, err := s.Read(ctx, Onboarding)
	if err != nil {
		return nil, err
	}

	var steps []OnboardingStep
	for _, r := range rows {
		o := stepFromRow(r)
		if strings.EqualFold(o.Client, strings.TrimSpace(client)) {
			steps = append(steps, o)
		}
	}
	return steps, nil
}

// CompleteStep marks a client's onboarding step as done in place.
func (s *Store) CompleteStep(ctx context.Context, client, step, user string) (OnboardingStep, error) {
	steps, err := s.Onboarding(ctx, client)
	if err != nil {
		return OnboardingStep{}, err
	}
	for _, o := range steps {
		if !strings.EqualFold(o.Step, strings.TrimSpace(step)) {
			continue
		}
		o.Status = StatusDone
		o.UpdatedBy = user
		o.UpdatedAt = s.timestamp()
		if err := s.UpdateRow(ctx, Onboarding, o.row, o.values()); err != nil {
			return OnboardingStep{}, err
		}
		return o, nil
	}
	return OnboardingStep{}, fmt.Errorf("step %q for %q: %w", step, client, ErrNotFound)
}
