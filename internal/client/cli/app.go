package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/memberdesk/internal/client/api"
	"github.com/dmitrijs2005/memberdesk/internal/client/blob"
	"github.com/dmitrijs2005/memberdesk/internal/client/config"
	"github.com/dmitrijs2005/memberdesk/internal/client/members"
	"github.com/dmitrijs2005/memberdesk/internal/client/repositories"
	"github.com/dmitrijs2005/memberdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/memberdesk/internal/client/session"
	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
	"github.com/dmitrijs2005/memberdesk/internal/filex"
	"github.com/dmitrijs2005/memberdesk/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

const dbFileName = "memberdesk.db"

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	creds   *metadata.Credentials
	metrics *prometheus.Registry

	api      *api.API
	session  *session.Store
	members  *members.Store
	uploader blob.Uploader
	nav      *Navigator

	reader *bufio.Reader
	out    io.Writer
}

// Options overrides the process streams; zero values use stdin/stdout/stderr.
type Options struct {
	In     io.Reader
	Out    io.Writer
	LogOut io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.LogOut == nil {
		opts.LogOut = os.Stderr
	}
	log := logging.New(opts.LogOut, cfg.LogLevel)

	dsn, err := filex.DataFile(cfg.DataDir, dbFileName)
	if err != nil {
		return nil, err
	}
	db, err := repositories.InitDatabase(ctx, dsn)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}
	creds := metadata.NewCredentials(db)

	reg := prometheus.NewRegistry()
	tc, err := transport.New(transport.Config{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.RequestTimeout,
		Tokens:     creds,
		Logger:     log,
		Registerer: reg,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	apis := api.New(tc)

	nav := NewNavigator(opts.Out)
	sess := session.NewStore(session.Config{
		Storage:   creds,
		Auth:      apis.Auth,
		Users:     apis.Core,
		Navigator: nav,
		Logger:    log,
	})
	list := members.NewStore(apis.Users, log)
	sess.AddInvalidator(list)
	tc.OnForbidden(sess.HandleForbidden)

	var uploader blob.Uploader = apis.Upload
	if cfg.S3.Bucket != "" {
		s3u, err := blob.NewS3Uploader(ctx, blob.S3Config{
			Region:        cfg.S3.Region,
			AccessKey:     cfg.S3.AccessKey,
			SecretKey:     cfg.S3.SecretKey,
			Endpoint:      cfg.S3.Endpoint,
			Bucket:        cfg.S3.Bucket,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("s3 uploader: %w", err)
		}
		uploader = s3u
	}

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		creds:    creds,
		metrics:  reg,
		api:      apis,
		session:  sess,
		members:  list,
		uploader: uploader,
		nav:      nav,
		reader:   bufio.NewReader(opts.In),
		out:      opts.Out,
	}, nil
}

// Run restores the previous session, if any, and blocks in the REPL until
// the user exits or the input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "memberdesk CLI (type 'help' for commands)")
	a.session.Initialize(ctx)
	if st := a.session.State(); st.IsAuthenticated {
		fmt.Fprintf(a.out, "Welcome back, %s\n", st.UserInfo.User.FullName())
	} else if st.Error != "" {
		fmt.Fprintf(a.out, "Session expired: %s\n", st.Error)
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

func (a *App) status() string {
	st := a.session.State()
	if !st.IsAuthenticated || st.UserInfo == nil {
		return "(anonymous)"
	}
	role := st.UserInfo.User.Role
	if role == "" {
		role = "member"
	}
	return fmt.Sprintf("(%s %s)", st.UserInfo.User.Email, role)
}

// requireAdmin applies the admin guard and reports a refusal to the user.
func (a *App) requireAdmin() bool {
	if a.session.RequireAdmin() {
		return true
	}
	fmt.Fprintln(a.out, "This command requires an administrator session.")
	return false
}
