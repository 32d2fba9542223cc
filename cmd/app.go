package main

import (
	"bufio"
	"context"
	"database/sql"
	"io"

	"watchlist/internal/config"
	"watchlist/internal/logger"
	"watchlist/internal/repository"
	"watchlist/internal/repository/db"
	"watchlist/internal/service"

	"github.com/urfave/cli/v3"
)

const configEnvVar = "WATCHLIST_CONFIG"

// runner holds the terminal the commands talk to.
type runner struct {
	in      *bufio.Reader
	out     io.Writer
	stdinFd int
}

func newRunner(in io.Reader, out io.Writer, stdinFd int) *runner {
	return &runner{in: bufio.NewReader(in), out: out, stdinFd: stdinFd}
}

func newApp(r *runner) *cli.Command {
	return &cli.Command{
		Name:   "watchlist",
		Usage:  "Personal movie watchlist",
		Writer: r.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (default configs/config.yml)",
				Sources: cli.EnvVars(configEnvVar),
			},
		},
		Action: r.serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the web server",
				Action: r.serve,
			},
			{
				Name:  "initdb",
				Usage: "Initialize the database",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "drop", Usage: "Drop all tables before creating them"},
				},
				Action: r.initDB,
			},
			{
				Name:   "forge",
				Usage:  "Generate a demo owner and movie list",
				Action: r.forge,
			},
			{
				Name:  "admin",
				Usage: "Create the owner account or reset its credentials",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Usage: "The username used to login"},
					&cli.StringFlag{Name: "password", Usage: "The password used to login"},
				},
				Action: r.admin,
			},
		},
	}
}

// env is what every command starts from: settings, a logger and a migrated
// database.
type env struct {
	cfg *config.Config
	log *logger.Logger
	db  *sql.DB
}

func (r *runner) open(ctx context.Context, cmd *cli.Command, drop bool) (*env, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.Log.Level)

	sqlDB, err := db.Open(cfg.DB.Path)
	if err != nil {
		return nil, err
	}
	res, err := db.Migrate(ctx, sqlDB, drop)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.Debugw("db_migrated",
		"path", cfg.DB.Path,
		"rolled_back", res.RolledBack,
		"applied", res.Applied,
		"version", res.Version,
	)
	return &env{cfg: cfg, log: log, db: sqlDB}, nil
}

func (e *env) services() *service.Service {
	return service.NewService(repository.NewRepository(e.db), service.Options{
		SecretKey:      e.cfg.SecretKey,
		SessionTTL:     e.cfg.Session.TTL,
		HashIterations: e.cfg.Password.Iterations,
	})
}

func (e *env) close() {
	if err := e.db.Close(); err != nil {
		e.log.Errorw("failed to close sqlite", "err", err)
	}
	e.log.Sync()
}
