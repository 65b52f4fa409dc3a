package bot

import (
	"regexp"
	"strings"
	"unicode"
)

type Intent string

const (
	IntentNone     Intent = ""
	IntentRemember Intent = "remember"
	IntentRecall   Intent = "recall"
	IntentOnboard  Intent = "onboard"
	IntentAsk      Intent = "ask"
	IntentDeliver  Intent = "deliver"
	IntentUpdate   Intent = "update"
	IntentClients  Intent = "clients"
	IntentHelp     Intent = "help"
)

var keywords = map[string]Intent{
	"remember":   IntentRemember,
	"recall":     IntentRecall,
	"onboard":    IntentOnboard,
	"ask":        IntentAsk,
	"deliver":    IntentDeliver,
	"deliveries": IntentDeliver,
	"update":     IntentUpdate,
	"updates":    IntentUpdate,
	"clients":    IntentClients,
	"help":       IntentHelp,
}

// overheard lists the commands taken from channel messages that do not
// address the bot.
var overheard = map[Intent]bool{
	IntentRemember: true,
	IntentRecall:   true,
}

// Command is a routed message: the intent, the keyword that selected it and
// the rest of the text.
type Command struct {
	Intent  Intent
	Keyword string
	Args    string
}

var mentionRe = regexp.MustCompile(`<@[A-Z0-9]+(\|[^>]*)?>`)

func StripMentions(text string) string {
	return strings.TrimSpace(mentionRe.ReplaceAllString(text, ""))
}

// Mentions reports whether text mentions the given user id.
func Mentions(text, userID string) bool {
	if userID == "" {
		return false
	}
	return strings.Contains(text, "<@"+userID+">") || strings.Contains(text, "<@"+userID+"|")
}

// Route picks the intent of a message by its first word. Unless the bot was
// addressed only remember and recall are taken. Other text is a question when
// the bot was addressed, and ignored otherwise.
func Route(text string, addressed bool) Command {
	clean := StripMentions(text)
	if clean == "" {
		if addressed {
			return Command{Intent: IntentHelp}
		}
		return Command{Intent: IntentNone}
	}

	word, rest := clean, ""
	if i := strings.IndexFunc(clean, unicode.IsSpace); i >= 0 {
		word, rest = clean[:i], clean[i:]
	}
	word = strings.ToLower(strings.TrimRight(word, ":,!?."))

	if intent, ok := keywords[word]; ok && (addressed || overheard[intent]) {
		return Command{
			Intent:  intent,
			Keyword: word,
			Args:    strings.TrimSpace(rest),
		}
	}
	if addressed {
		return Command{Intent: IntentAsk, Args: clean}
	}
	return Command{Intent: IntentNone}
}

// splitArgs splits "a | b | c" into trimmed fields, dropping empty trailing
// ones.
func splitArgs(args string) []string {
	parts := strings.Split(args, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
