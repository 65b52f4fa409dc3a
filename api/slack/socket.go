package slack

import (
	"context"

	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"github.com/forgoes/gilbert/runtime"
)

// RunSocketMode receives events over a Socket Mode websocket until ctx is
// done. It needs the app-level token on the runtime's Slack client.
func RunSocketMode(ctx context.Context, rt *runtime.Runtime) error {
	client := socketmode.New(rt.Slack.Client)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-client.Events:
				if !ok {
					return
				}
				handleSocketEvent(rt, func(req socketmode.Request) { client.Ack(req) }, evt)
			}
		}
	}()

	return client.RunContext(ctx)
}

func handleSocketEvent(rt *runtime.Runtime, ack func(socketmode.Request), evt socketmode.Event) {
	log := rt.Logger.With("transport", "socketmode")

	switch evt.Type {
	case socketmode.EventTypeConnecting:
		log.Info("connecting to slack")
	case socketmode.EventTypeConnected:
		log.Info("connected to slack")
	case socketmode.EventTypeConnectionError:
		log.Warn("connection failed, retrying")
	case socketmode.EventTypeEventsAPI:
		ev, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			log.Warn("unexpected events api payload")
			return
		}
		if evt.Request != nil {
			ack(*evt.Request)
		}
		if ev.Type == slackevents.CallbackEvent {
			dispatch(rt, ev)
		}
	default:
		log.Debug("ignored event", "type", evt.Type)
	}
}
