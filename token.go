package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgoes/gilbert/api"
	"github.com/forgoes/gilbert/runtime"
)

func newTokenCmd(flags *runtime.Flags) *cobra.Command {
	var (
		name   string
		role   string
		expire time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a token for the admin API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := runtime.Load(flags)
			if err != nil {
				return err
			}
			if rt.Config.Jwt.Key == "" {
				return errors.New("jwt key is not configured (JWT_KEY)")
			}
			if expire == 0 {
				expire = time.Duration(rt.Config.Jwt.Expire) * time.Second
			}

			token, err := api.IssueToken([]byte(rt.Config.Jwt.Key), name, role, expire)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "admin", "user name stored in the token")
	cmd.Flags().StringVar(&role, "role", "admin", "role stored in the token")
	cmd.Flags().DurationVar(&expire, "expire", 0, "token lifetime (defaults to the configured expiry)")

	return cmd
}
