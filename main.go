package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/forgoes/gilbert/runtime"
)

func newRootCmd() *cobra.Command {
	flags := &runtime.Flags{}

	root := &cobra.Command{
		Use:   "gilbert",
		Short: "Slack assistant backed by a Google spreadsheet and OpenAI",
		Long: `Gilbert relays Slack messages to a shared spreadsheet and a hosted
language model. Commands like "remember", "recall" and "onboard" read and
write rows in the spreadsheet; anything else addressed to the bot is answered
by the model.

Configuration comes from an optional TOML file, an optional .env file and the
environment (SLACK_BOT_TOKEN, SLACK_SIGNING_SECRET, SLACK_APP_TOKEN,
OPENAI_API_KEY, GOOGLE_SERVICE_ACCOUNT, SPREADSHEET_ID, ...).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), flags)
		},
	}
	flags.Bind(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(flags),
		newCheckCmd(flags),
		newTokenCmd(flags),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
