// Package cli is the command tree of the dashboard terminal client.
package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/polkiloo/healthboard/internal/client"
)

const defaultServer = "http://localhost:3000"

type options struct {
	server     string
	sessionDir string
	verbose    bool
}

// NewRootCommand builds the healthboard-cli command tree.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "healthboard-cli",
		Short:         "Terminal client for the healthboard dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&opts.server, "server", envOr("HEALTHBOARD_SERVER", defaultServer), "Dashboard server base URL")
	root.PersistentFlags().StringVar(&opts.sessionDir, "session-dir", envOr("HEALTHBOARD_SESSION_DIR", defaultSessionDir()), "Directory holding the stored token")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newOpenCommand(opts),
		newStatusCommand(opts),
		newHashPasswordCommand(),
	)

	return root
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *options) store() *client.FileSessionStore {
	return client.NewFileSessionStore(o.sessionDir)
}

func (o *options) dashboard(cmd *cobra.Command) (*client.Dashboard, error) {
	logger := o.logger(cmd.ErrOrStderr())
	api, err := client.NewHTTPClient(o.server, logger)
	if err != nil {
		return nil, err
	}
	return client.NewDashboard(api, o.store(), logger), nil
}

func defaultSessionDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "healthboard")
	}
	return ".healthboard"
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
