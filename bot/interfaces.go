package bot

import (
	"context"

	"github.com/slack-go/slack"

	"github.com/forgoes/gilbert/ai"
	"github.com/forgoes/gilbert/store"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Poster sends a message to a channel. *slack.Client implements it.
type Poster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Responder produces model answers. *ai.Responder implements it.
type Responder interface {
	Respond(ctx context.Context, prompt string, memories []string, history []ai.Turn) (string, error)
	Extract(ctx context.Context, text string) (string, error)
}

// Store is the part of the sheet store the intents use. *store.Store
// implements it.
type Store interface {
	Remember(ctx context.Context, user, info string) (store.MemoryEntry, error)
	Recall(ctx context.Context, topic string, limit int) ([]store.MemoryEntry, error)
	RecentMemories(ctx context.Context, n int) ([]store.MemoryEntry, error)
	Clients(ctx context.Context) ([]store.Client, error)
	StartOnboarding(ctx context.Context, name, contact, user string) (store.Client, bool, error)
	Onboarding(ctx context.Context, client string) ([]store.OnboardingStep, error)
	CompleteStep(ctx context.Context, client, step, user string) (store.OnboardingStep, error)
	LogDelivery(ctx context.Context, client, file, link, user string) (store.Deliverable, error)
	Deliveries(ctx context.Context, client string, limit int) ([]store.Deliverable, error)
	AddUpdate(ctx context.Context, client, note, user string) (store.Update, error)
	Updates(ctx context.Context, client string, limit int) ([]store.Update, error)
}

// Journal records handled messages and replies.
type Journal interface {
	// Record stores an incoming message and reports false when the event was
	// already recorded.
	Record(ctx context.Context, msg Message, intent Intent) (bool, error)
	RecordReply(ctx context.Context, channel, text, ts string) error
	// History returns up to n messages of a channel posted before ts, oldest
	// first.
	History(ctx context.Context, channel, ts string, n int) ([]ai.Turn, error)
}

var (
	_ Poster    = (*slack.Client)(nil)
	_ Responder = (*ai.Responder)(nil)
	_ Store     = (*store.Store)(nil)
)
