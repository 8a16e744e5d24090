package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/helpdesk/internal/client/api"
	"github.com/dmitrijs2005/helpdesk/internal/client/config"
	"github.com/dmitrijs2005/helpdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/helpdesk/internal/client/services"
	"github.com/dmitrijs2005/helpdesk/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config        *config.Config
	authService   services.AuthService
	ticketService services.TicketService
	log           logging.Logger
	db            *sql.DB
	reader        *bufio.Reader
	userName      string
	role          string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := credentials.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	creds := credentials.NewSQLiteRepository(db)
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, creds, log)

	return &App{
		config:        c,
		authService:   services.NewAuthService(apiClient, db),
		ticketService: services.NewTicketService(apiClient),
		log:           log,
		db:            db,
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// restoreSession picks up a previous session from the credential store.
// A token without a cached role or profile is treated as no session at all.
func (a *App) restoreSession(ctx context.Context) {
	role, err := a.authService.GetUserRole(ctx)
	if err != nil {
		return
	}
	profile, err := a.authService.GetUserData(ctx)
	if err != nil {
		return
	}
	a.userName, a.role = profile.Name, role
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf(" (%s %s)", a.userName, a.role)
}

// reportError prints a failure to the user. A session expiry additionally
// resets the in-memory session so the prompt reflects the logged-out state.
func (a *App) reportError(err error) {
	if errors.Is(err, api.ErrSessionExpired) {
		a.userName, a.role = "", ""
	}
	printlnFn("Error:", err.Error())
}

func (a *App) Run(ctx context.Context) {
	a.restoreSession(ctx)
	printlnFn("Helpdesk CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() error {
	return a.db.Close()
}
