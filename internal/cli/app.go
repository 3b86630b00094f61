package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/civicwatch/civicwatch/internal/cipherx"
	"github.com/civicwatch/civicwatch/internal/config"
	"github.com/civicwatch/civicwatch/internal/cookiejar"
	"github.com/civicwatch/civicwatch/internal/idgen"
	"github.com/civicwatch/civicwatch/internal/imagex"
	"github.com/civicwatch/civicwatch/internal/logging"
	"github.com/civicwatch/civicwatch/internal/storage"
	"github.com/civicwatch/civicwatch/internal/stores"

	_ "modernc.org/sqlite"
)

// KeyClientID is the durable key holding this installation's identifier.
const KeyClientID = "civicwatch_client_id"

// App wires the stores together behind a terminal REPL. It is the in-repo
// stand-in for the web pages and route guards that consume this core.
type App struct {
	cfg      *config.Config
	log      logging.Logger
	db       *sql.DB
	auth     *stores.Auth
	problems *stores.Problems
	comments *stores.Comments
	images   *stores.Images
	imgOpts  imagex.Options

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the application. When the local database cannot be opened
// the app still starts, degraded to an unavailable substrate: everything
// works in memory and nothing survives exit.
func NewApp(ctx context.Context, cfg *config.Config) *App {
	var log logging.Logger = logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var repo storage.Repository
	repo, db, err := storage.Open(ctx, cfg.DSN)
	if err != nil {
		log.Warn(ctx, "no durable storage, running in-memory only", "dsn", cfg.DSN, "error", err)
		repo = storage.Unavailable{}
		db = nil
	}

	store := storage.NewStore(repo, log)
	log = log.With("client_id", ensureClientID(ctx, store))

	codec := cipherx.NewCodec(cfg.ObfuscationKey)
	jar := cookiejar.NewJar(store, nil, log)

	auth := stores.NewAuth(jar, codec, nil, cfg.CookieName, cfg.CookieTTLDays, log)
	auth.Init(ctx)

	return &App{
		cfg:      cfg,
		log:      log,
		db:       db,
		auth:     auth,
		problems: stores.NewProblems(store, nil, nil, nil, log),
		comments: stores.NewComments(store, nil, nil, log),
		images:   stores.NewImages(ctx, store, log),
		imgOpts: imagex.Options{
			MaxWidth:  cfg.ImageMaxWidth,
			MaxHeight: cfg.ImageMaxHeight,
			Quality:   cfg.ImageQuality,
		},
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// ensureClientID returns the persistent installation id, minting one on
// first run.
func ensureClientID(ctx context.Context, store *storage.Store) string {
	var id string
	if store.Read(ctx, KeyClientID, &id) && id != "" {
		return id
	}
	id = idgen.UUID{}.NewID()
	store.Write(ctx, KeyClientID, id)
	return id
}

// Run loads the problem collection and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.problems.FetchAll(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner)
}

// Close releases the database handle, if any.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool { return a.auth.Authenticated() }

func (a *App) statusLine() string {
	u, ok := a.auth.CurrentUser()
	if !ok {
		return "anonymous"
	}
	if a.auth.IsAdmin() {
		return u.Username + " (admin)"
	}
	return u.Username
}
