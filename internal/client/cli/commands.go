package cli

import (
	"bufio"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/polkiloo/healthboard/internal/client"
	"github.com/polkiloo/healthboard/internal/pkg/auth"
)

func newLoginCommand(opts *options) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the issued token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.dashboard(cmd)
			if err != nil {
				return err
			}

			if username == "" {
				username, err = promptLine(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), "Username: ")
				if err != nil {
					return fmt.Errorf("read username: %w", err)
				}
			}
			password, err := promptPassword(cmd.OutOrStdout(), "Password: ")
			if err != nil {
				return err
			}

			if err := d.Login(cmd.Context(), username, password); err != nil {
				if errors.Is(err, client.ErrLoginFailed) {
					return errors.New(client.LoginFailureMessage)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Login username")
	return cmd
}

func newLogoutCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.store().Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newOpenCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "open [route]",
		Short:     "Render a view: dashboard, summary or reports",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"login", "dashboard", "summary", "reports"},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := string(client.RouteDashboard)
			if len(args) == 1 {
				raw = args[0]
			}
			d, err := opts.dashboard(cmd)
			if err != nil {
				return err
			}
			route, err := client.ResolvePath(d.HasToken(), raw)
			if err != nil {
				return err
			}
			view, err := d.Open(cmd.Context(), route)
			if err != nil {
				return err
			}
			return client.Render(cmd.OutOrStdout(), view)
		},
	}
}

func newStatusCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a token is stored and accepted by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.dashboard(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !d.HasToken() {
				fmt.Fprintln(out, "Not logged in")
				return nil
			}

			session, ok := d.IsAuthenticated(cmd.Context())
			if !ok {
				fmt.Fprintln(out, "Token stored but rejected by the server; run login again")
				return nil
			}
			fmt.Fprintf(out, "Logged in as %s until %s\n", session.Username, session.ExpiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}
}

func newHashPasswordCommand() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash suitable for APP_PASSWORD_HASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := promptPassword(cmd.ErrOrStderr(), "Password: ")
			if err != nil {
				return err
			}
			if password == "" {
				return errors.New("password must not be empty")
			}
			hash, err := auth.NewBcryptHasher(cost).Hash(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", 0, "bcrypt cost, 0 for the library default")
	return cmd
}
