package slack

import (
	"encoding/json"
	"io"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/forgoes/gilbert/api"
	"github.com/forgoes/gilbert/code"
)

func Events(c *api.Context) (interface{}, *api.Error) {
	// Signature Verification
	body, err := io.ReadAll(c.GinCtx.Request.Body)
	if err != nil {
		return nil, api.InternalServerError()
	}

	sVerifier, err := slack.NewSecretsVerifier(c.GinCtx.Request.Header, c.Runtime.Config.Slack.Secret)
	if err != nil {
		return nil, api.StatusUnauthorizedError(code.InvalidToken, "signature error")
	}
	if _, err := sVerifier.Write(body); err != nil {
		return nil, api.InternalServerError("verify error")
	}
	if err := sVerifier.Ensure(); err != nil {
		return nil, api.StatusUnauthorizedError(code.InvalidToken, "invalid signature")
	}

	eventsAPIEvent, err := slackevents.ParseEvent(
		body,
		slackevents.OptionNoVerifyToken(),
	)
	if err != nil {
		return nil, api.InvalidArgument(nil, err.Error())
	}

	switch eventsAPIEvent.Type {
	case slackevents.URLVerification:
		var r slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &r); err != nil {
			return nil, api.InvalidArgument(nil, err.Error())
		}
		return map[string]string{"challenge": r.Challenge}, nil
	case slackevents.CallbackEvent:
		if !dispatch(c.Runtime, eventsAPIEvent) {
			return map[string]string{"status": "ignored"}, nil
		}
		return map[string]string{"status": "accepted"}, nil
	default:
		return map[string]string{"status": "ignored"}, nil
	}
}
