package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/forgoes/gilbert/store"
)

const helpText = "Here's what I can do:\n" +
	"• `remember <info>`: save something for later\n" +
	"• `recall <topic>`: look up what I remember about a topic\n" +
	"• `onboard <client> [| contact]`: add a client and start onboarding\n" +
	"• `onboard status <client>`: show the onboarding checklist\n" +
	"• `onboard done <client> | <step>`: mark an onboarding step as done\n" +
	"• `deliver <client> | <file> [| link]`: log a file delivery\n" +
	"• `deliveries <client>`: list recent deliveries\n" +
	"• `update <client> | <note>`: add a client update\n" +
	"• `updates <client>`: list recent updates\n" +
	"• `clients`: list clients\n" +
	"• `ask <question>`, or just mention me: ask me anything"

func (b *Bot) remember(ctx context.Context, log *slog.Logger, msg Message, args string) string {
	if args == "" {
		return "Tell me what to remember, e.g. `remember Acme prefers blue`."
	}
	if _, err := b.store.Remember(ctx, msg.User, args); err != nil {
		return b.fail(log, serviceSheets, err, "Sorry, I couldn't save that information. Please try again later.")
	}
	return "I've remembered that information! 📝"
}

func (b *Bot) recall(ctx context.Context, log *slog.Logger, topic string) string {
	if topic == "" {
		return "What should I recall? e.g. `recall Acme`."
	}
	memories, err := b.store.Recall(ctx, topic, recallLimit)
	if err != nil {
		return b.fail(log, serviceSheets, err, "Sorry, I encountered an error while trying to recall that information.")
	}
	if len(memories) == 0 {
		return "I don't have any memories about that topic yet."
	}

	var sb strings.Builder
	sb.WriteString("Here's what I remember about that:\n")
	for _, m := range memories {
		fmt.Fprintf(&sb, "• %s (from %s on %s)\n", m.Info, userRef(m.User), m.Timestamp)
	}
	return sb.String()
}

func (b *Bot) onboard(ctx context.Context, log *slog.Logger, msg Message, args string) string {
	sub, rest := args, ""
	if i := strings.IndexByte(args, ' '); i >= 0 {
		sub, rest = args[:i], strings.TrimSpace(args[i+1:])
	}

	switch strings.ToLower(sub) {
	case "status":
		if rest == "" {
			return "Which client? e.g. `onboard status Acme`."
		}
		return b.onboardingStatus(ctx, log, rest)
	case "done":
		parts := splitArgs(rest)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return "Usage: `onboard done <client> | <step>`."
		}
		return b.completeStep(ctx, log, msg, parts[0], parts[1])
	}

	parts := splitArgs(args)
	if len(parts) == 0 || parts[0] == "" {
		return "Which client should I onboard? e.g. `onboard Acme | jane@acme.com`."
	}
	contact := ""
	if len(parts) > 1 {
		contact = parts[1]
	}

	c, created, err := b.store.StartOnboarding(ctx, parts[0], contact, msg.User)
	if err != nil {
		return b.fail(log, serviceSheets, err, "Sorry, I couldn't start onboarding right now. Please try again later.")
	}

	var sb strings.Builder
	if created {
		fmt.Fprintf(&sb, "Added *%s* as a new client. ", c.Name)
	}
	fmt.Fprintf(&sb, "Onboarding checklist for *%s*: %s.\n", c.Name, strings.Join(store.DefaultSteps, ", "))
	fmt.Fprintf(&sb, "Mark steps with `onboard done %s | <step>`.", c.Name)
	return sb.String()
}

func (b *Bot) onboardingStatus(ctx context.Context, log *slog.Logger, client string) string {
	steps, err := b.store.Onboarding(ctx, client)
	if err != nil {
		return b.fail(log, serviceSheets, err, "Sorry, I couldn't read the onboarding sheet right now.")
	}
	if len(steps) == 0 {
		return fmt.Sprintf("No onboarding found for *%s*. Start one with `onboard %s`.", client, client)
	}

	var sb strings.Builder
	done := 0
	for _, s := range steps {
		mark := "⬜"
		if s.Done() {
			mark = "✅"
			done++
		}
		fmt.Fprintf(&sb, "%s %s\n", mark, s.Step)
	}
	return fmt.Sprintf("Onboarding for *%s* (%d/%d done):\n%s", steps[0].Client, done, len(steps), sb.String())
}

func (b *Bot) completeStep(ctx context.Context, log *slog.Logger, msg Message, client, step string) string {
	s, err := b.store.CompleteStep(ctx, client, step, msg.User)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Sprintf("I couldn't find the step *%s* for *%s*.", step, client)
	}
	if err != nil {
		return b.fail(log, serviceSheets, err, "Sorry, I couldn't update the onboarding sheet right now.")
	}
	return fmt.Sprintf("Marked *%s* as done for *%s*. ✅", s.Step, s.Client)
}

func (b *Bot) ask(ctx context.Context, log *slog.Logger, msg Message, prompt string) string {
	if prompt == "" {
		return helpText
	}

	var memories []string
	recent, err := b.store.RecentMemories(ctx, contextSize)
	if err != nil {
		b.metrics.Failures.WithLabelValues(serviceSheets).Inc()
		log.Warn("read memories for context", "error", err)
	}
	for _, m := range recent {
		memories = append(memories, m.Info)
	}

	history, err := b.journal.History(ctx, msg.Channel, msg.TS, b.history)
	if err != nil {
		log.Warn("read history", "error", err)
		history = nil
	}

	answer, err := b.ai.Respond(ctx, prompt, memories, history)
	if err != nil {
		return b.fail(log, serviceOpenAI, err, "I apologize, but I'm having trouble processing that request right now.")
	}
	if answer == "" {
		answer = "I'm not sure what to say to that."
	}

	b.rememberFacts(ctx, log, msg, prompt)

	return answer
}

// rememberFacts stores whatever the model considers worth keeping from prompt.
// Failures are only logged.
func (b *Bot) rememberFacts(ctx context.Context, log *slog.Logger, msg Message, prompt string) {
	facts, err := b.ai.Extract(ctx, prompt)
	if err != nil {
		b.metrics.Failures.WithLabelValues(serviceOpenAI).Inc()
		log.Warn("extract facts", "error", err)
		return
	}
	if facts == "" {
		return
	}
	if _, err := b.store.Remember(ctx, msg.User, facts); err != nil {
		b.metrics.Failures.WithLabelValues(serviceSheets).Inc()
		log.Warn("store facts", "error", err)
		return
	}
	log.Debug("stored facts", "facts", facts)
}

func (b *Bot) deliver(ctx context.Context, log *slog.Logger, msg Message, cmd Command) string {
	parts := splitArgs(cmd.Args)
	if len(parts) == 0 || parts[0] == "" {
		return "Usage: `deliver <client> | <file> [| link]` or `deliveries <client>`."
	}
	if cmd.Keyword == "deliveries" || len(parts) == 1 {
		return b.listDeliveries(ctx, log, parts[0])
	}

	link := ""
	if len(parts) > 2 {
		link = parts[2]
	}
	d, err := b.store.LogDelivery(ctx, parts[0], parts[1], link, msg.User)
	if err != nil {
		return b.fail(log, serviceSheets, err, "Sorry, I couldn't log that delivery. Please try again later.")
	}
	return fmt.Sprintf("Logged delivery of *%s* to *%s*. 📦", d.File, d.Client)
}

func (b *Bot) listDeliveries(ctx context.Context, log *slog.Logger, client string) string {
	ds, err := b.store.Deliveries(ctx, client, listLimit)
	if err != nil {
		return b.fail(log, serviceSheets, err, "Sorry, I couldn't read the deliverables sheet right now.")
	}
	if len(ds) == 0 {
		return fmt.Sprintf("No deliveries logged for *%s* yet.", client)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Deliveries for *%s*:\n", ds[0].Client)
	for _, d := range ds {
		if d.Link != "" {
			fmt.Fprintf(&sb, "• <%s|%s> on %s by %s\n", d.Link, d.File, d.Timestamp, userRef(d.DeliveredBy))
		} else {
			fmt.Fprintf(&sb, "• %s on %s by %s\n", d.File, d.Timestamp, userRef(d.DeliveredBy))
		}
	}
	return sb.String()
}

func (b *Bot) update(ctx context.Context, log *slog.Logger, msg Message, cmd Command) string {
	parts := splitArgs(cmd.Args)
	if len(parts) == 0 || parts[0] == "" {
		return "Usage: `update <client> | <note>` or `updates <client>`."
	}
	if cmd.Keyword == "updates" || len(parts) == 1 {
		return b.listUpdates(ctx, log, parts[0])
	}

	u, err := b.store.AddUpdate(ctx, parts[0], strings.Join(parts[1:], " | "), msg.User)
	if err != nil {
		return b.fail(log, serviceSheets, err, "Sorry, I couldn't save that update. Please try again later.")
	}
	return fmt.Sprintf("Noted the update for *%s*. 📝", u.Client)
}

func (b *Bot) listUpdates(ctx context.Context, log *slog.Logger, client string) string {
	us, err := b.store.Updates(ctx, client, recallLimit)
	if err != nil {
		return b.fail(log, serviceSheets, err, "Sorry, I couldn't read the updates sheet right now.")
	}
	if len(us) == 0 {
		return fmt.Sprintf("No updates for *%s* yet.", client)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Latest updates for *%s*:\n", us[0].Client)
	for _, u := range us {
		fmt.Fprintf(&sb, "• %s (%s, %s)\n", u.Note, userRef(u.User), u.Timestamp)
	}
	return sb.String()
}

func (b *Bot) clients(ctx context.Context, log *slog.Logger) string {
	cs, err := b.store.Clients(ctx)
	if err != nil {
		return b.fail(log, serviceSheets, err, "Sorry, I couldn't read the clients sheet right now.")
	}
	if len(cs) == 0 {
		return "No clients yet. Add one with `onboard <client>`."
	}

	var sb strings.Builder
	sb.WriteString("Clients:\n")
	for _, c := range cs {
		if c.Contact != "" {
			fmt.Fprintf(&sb, "• %s (%s)\n", c.Name, c.Contact)
		} else {
			fmt.Fprintf(&sb, "• %s\n", c.Name)
		}
	}
	return sb.String()
}

// userRef renders a Slack user id as a mention; other values pass through.
func userRef(user string) string {
	if strings.HasPrefix(user, "U") || strings.HasPrefix(user, "W") {
		return "<@" + user + ">"
	}
	return user
}
