package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgoes/gilbert/runtime"
)

func newCheckCmd(flags *runtime.Flags) *cobra.Command {
	var initHeaders bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify Slack and Google Sheets credentials",
		Long: `Check authenticates against Slack and opens the configured spreadsheet.
With --init it also writes the header row into every empty table.`,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			rt, err := runtime.New(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, rt.Close(cmd.Context()))
			}()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "slack: authenticated as %s\n", rt.Slack.UserID)

			title, err := rt.Store.Check(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "sheets: connected to %q\n", title)

			if !initHeaders {
				return nil
			}
			tables, err := rt.Store.EnsureHeaders(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range tables {
				fmt.Fprintf(out, "sheets: wrote header row to %s\n", t)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&initHeaders, "init", false, "write header rows into empty tables")

	return cmd
}
