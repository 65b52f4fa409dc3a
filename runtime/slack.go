package runtime

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

type Slack struct {
	*slack.Client
	// UserID is the bot's own user id, used to strip and detect mentions.
	UserID string
}

func initSlack(ctx context.Context, config *Config) (*Slack, error) {
	var opts []slack.Option
	if config.Slack.AppToken != "" {
		opts = append(opts, slack.OptionAppLevelToken(config.Slack.AppToken))
	}
	cli := slack.New(config.Slack.Token, opts...)

	userID := config.Slack.Bot
	if userID == "" {
		resp, err := cli.AuthTestContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("slack auth test: %w", err)
		}
		userID = resp.UserID
	}

	return &Slack{
		Client: cli,
		UserID: userID,
	}, nil
}
