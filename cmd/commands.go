package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"watchlist/internal/handlers"
	"watchlist/internal/logger"
	"watchlist/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func (r *runner) initDB(ctx context.Context, cmd *cli.Command) error {
	e, err := r.open(ctx, cmd, cmd.Bool("drop"))
	if err != nil {
		return err
	}
	defer e.close()

	fmt.Fprintln(r.out, "Initialized database.")
	return nil
}

func (r *runner) forge(ctx context.Context, cmd *cli.Command) error {
	e, err := r.open(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.services().Forge(ctx); err != nil {
		return fmt.Errorf("forge: %w", err)
	}
	fmt.Fprintln(r.out, "Done.")
	return nil
}

// admin prompts for whichever of --username and --password is missing.
func (r *runner) admin(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	if username == "" {
		var err error
		if username, err = promptLine(r.in, r.out, "Username"); err != nil {
			return err
		}
	}
	password := cmd.String("password")
	if password == "" {
		var err error
		if password, err = promptNewPassword(r.out, r.stdinFd); err != nil {
			return err
		}
	}

	e, err := r.open(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer e.close()

	created, err := e.services().UpsertAdmin(ctx, username, password)
	if err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	if created {
		fmt.Fprintln(r.out, "Creating user...")
	} else {
		fmt.Fprintln(r.out, "Updating user...")
	}
	fmt.Fprintln(r.out, "Done.")
	return nil
}

func (r *runner) serve(ctx context.Context, cmd *cli.Command) error {
	e, err := r.open(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer e.close()

	if e.cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	h := handlers.NewHandler(e.services(), e.log.Named("http"), handlers.Options{
		SessionTTL:   e.cfg.Session.TTL,
		CookieSecure: e.cfg.Session.Secure,
	})
	router, err := h.InitRoutes()
	if err != nil {
		return fmt.Errorf("init routes: %w", err)
	}

	srv := server.New(e.cfg.Port, router)
	runHTTPServer(srv, e.log)
	waitForShutdown(ctx, srv, e.log)
	return nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http_server_started", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until a termination signal or ctx ends, then
// stops the server gracefully.
func waitForShutdown(ctx context.Context, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case <-ctx.Done():
	}
	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
