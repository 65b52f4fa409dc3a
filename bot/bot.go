// Package bot turns Slack messages into sheet store and model calls and posts
// the result back to the channel.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"
)

const (
	recallLimit  = 5
	contextSize  = 5
	listLimit    = 10
	historyLimit = 20
)

// Message is a Slack message addressed to, or overheard by, the bot.
type Message struct {
	EventID  string
	Channel  string
	User     string
	Text     string
	TS       string
	ThreadTS string
	// Direct is set for direct messages, Mentioned when the bot was @-mentioned.
	Direct    bool
	Mentioned bool
	FromBot   bool
}

func (m Message) addressed() bool {
	return m.Direct || m.Mentioned
}

type Bot struct {
	store   Store
	ai      Responder
	poster  Poster
	journal Journal
	metrics *Metrics
	logger  *slog.Logger
	history int
}

type Option func(*Bot)

func WithJournal(j Journal) Option {
	return func(b *Bot) {
		b.journal = j
	}
}

func WithMetrics(m *Metrics) Option {
	return func(b *Bot) {
		b.metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = l
	}
}

// WithHistory sets how many earlier channel messages are sent along with a
// question.
func WithHistory(n int) Option {
	return func(b *Bot) {
		b.history = n
	}
}

func New(store Store, responder Responder, poster Poster, opts ...Option) *Bot {
	b := &Bot{
		store:   store,
		ai:      responder,
		poster:  poster,
		journal: NopJournal{},
		logger:  slog.Default(),
		history: historyLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.metrics == nil {
		b.metrics = NewMetrics(nil)
	}
	return b
}

// Handle routes one message and posts exactly one reply for it. Messages from
// bots, messages that are not commands and redelivered events are dropped.
func (b *Bot) Handle(ctx context.Context, msg Message) error {
	if msg.FromBot {
		return nil
	}

	cmd := Route(msg.Text, msg.addressed())
	if cmd.Intent == IntentNone {
		return nil
	}

	log := b.logger.With("channel", msg.Channel, "user", msg.User, "intent", cmd.Intent)

	fresh, err := b.journal.Record(ctx, msg, cmd.Intent)
	if err != nil {
		log.Warn("record message", "error", err)
	} else if !fresh {
		log.Debug("duplicate event", "event_id", msg.EventID)
		return nil
	}

	b.metrics.Commands.WithLabelValues(string(cmd.Intent)).Inc()
	log.Info("handling command", "keyword", cmd.Keyword)

	reply := b.dispatch(ctx, log, msg, cmd)

	opts := []slack.MsgOption{slack.MsgOptionText(reply, false)}
	if msg.ThreadTS != "" {
		opts = append(opts, slack.MsgOptionTS(msg.ThreadTS))
	}
	_, ts, err := b.poster.PostMessageContext(ctx, msg.Channel, opts...)
	if err != nil {
		b.metrics.Failures.WithLabelValues(serviceSlack).Inc()
		return fmt.Errorf("post reply to %s: %w", msg.Channel, err)
	}

	if err := b.journal.RecordReply(ctx, msg.Channel, reply, ts); err != nil {
		log.Warn("record reply", "error", err)
	}
	return nil
}

func (b *Bot) dispatch(ctx context.Context, log *slog.Logger, msg Message, cmd Command) string {
	switch cmd.Intent {
	case IntentRemember:
		return b.remember(ctx, log, msg, cmd.Args)
	case IntentRecall:
		return b.recall(ctx, log, cmd.Args)
	case IntentOnboard:
		return b.onboard(ctx, log, msg, cmd.Args)
	case IntentAsk:
		return b.ask(ctx, log, msg, cmd.Args)
	case IntentDeliver:
		return b.deliver(ctx, log, msg, cmd)
	case IntentUpdate:
		return b.update(ctx, log, msg, cmd)
	case IntentClients:
		return b.clients(ctx, log)
	default:
		return helpText
	}
}

// fail logs an external failure and returns the apology shown in the channel.
func (b *Bot) fail(log *slog.Logger, service string, err error, apology string) string {
	b.metrics.Failures.WithLabelValues(service).Inc()
	log.Error("external call failed", "service", service, "error", err)
	return apology
}
