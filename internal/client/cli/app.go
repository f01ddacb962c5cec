// Package cli is the interactive front-end of the TeamHub client: a small
// REPL over the session controller and the resource services.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/teamhub/teamhub-cli/internal/client/api"
	"github.com/teamhub/teamhub-cli/internal/client/client"
	"github.com/teamhub/teamhub-cli/internal/client/config"
	"github.com/teamhub/teamhub-cli/internal/client/credentials"
	"github.com/teamhub/teamhub-cli/internal/client/repositories/audit"
	"github.com/teamhub/teamhub-cli/internal/client/services"
	"github.com/teamhub/teamhub-cli/internal/client/session"
	"github.com/teamhub/teamhub-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	session *session.Manager
	tasks   services.TaskService
	sprints services.SprintService
	groups  services.GroupService
	audit   audit.Repository
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	store := credentials.NewStore(repos.Metadata)
	gateway := api.NewClient(c.APIBaseURL, c.RequestTimeout, store, log)
	auth := services.NewAuthService(gateway, store, log)

	return &App{
		config:  c,
		session: session.NewManager(auth, store, repos.Audit, log),
		tasks:   services.NewTaskService(gateway),
		sprints: services.NewSprintService(gateway),
		groups:  services.NewGroupService(gateway),
		audit:   repos.Audit,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if user := a.session.User(); user != nil {
		return "(" + user.Email + ")"
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	a.session.Initialize(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
