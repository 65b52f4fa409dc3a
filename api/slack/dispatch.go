package slack

import (
	"context"
	"strings"
	"time"

	"github.com/slack-go/slack/slackevents"

	"github.com/forgoes/gilbert/bot"
	"github.com/forgoes/gilbert/runtime"
)

const handleTimeout = 60 * time.Second

// toMessage converts a callback event into a bot message. Message events that
// mention the bot are dropped since Slack also sends an app_mention for them.
func toMessage(ev slackevents.EventsAPIEvent, botUserID string) (bot.Message, bool) {
	eventID := ""
	if cb, ok := ev.Data.(*slackevents.EventsAPICallbackEvent); ok {
		eventID = cb.EventID
	}

	switch ie := ev.InnerEvent.Data.(type) {
	case *slackevents.AppMentionEvent:
		return bot.Message{
			EventID:   eventID,
			Channel:   ie.Channel,
			User:      ie.User,
			Text:      ie.Text,
			TS:        ie.TimeStamp,
			ThreadTS:  ie.ThreadTimeStamp,
			Mentioned: true,
			FromBot:   ie.BotID != "",
		}, true
	case *slackevents.MessageEvent:
		// edits, joins and other system messages carry a subtype
		if ie.SubType != "" || ie.BotID != "" || ie.User == botUserID {
			return bot.Message{}, false
		}
		direct := ie.ChannelType == "im" || strings.HasPrefix(ie.Channel, "D")
		if !direct && bot.Mentions(ie.Text, botUserID) {
			return bot.Message{}, false
		}
		return bot.Message{
			EventID:  eventID,
			Channel:  ie.Channel,
			User:     ie.User,
			Text:     ie.Text,
			TS:       ie.TimeStamp,
			ThreadTS: ie.ThreadTimeStamp,
			Direct:   direct,
		}, true
	default:
		return bot.Message{}, false
	}
}

// dispatch hands an event to the bot in the background so the transport can
// acknowledge Slack right away.
func dispatch(rt *runtime.Runtime, ev slackevents.EventsAPIEvent) bool {
	msg, ok := toMessage(ev, rt.Slack.UserID)
	if !ok {
		return false
	}

	rt.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
		defer cancel()

		if err := rt.Bot.Handle(ctx, msg); err != nil {
			rt.Logger.Error("failed to handle message", "channel", msg.Channel, "error", err)
		}
	})
	return true
}
