package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	adapthttp "nutriplan/internal/adapter/http"
	adaptmcp "nutriplan/internal/adapter/mcp"
	"nutriplan/internal/adapter/memory"
	"nutriplan/internal/adapter/postgres"
	"nutriplan/internal/adapter/sqlite"
	"nutriplan/internal/app"
	"nutriplan/internal/catalog"
	"nutriplan/internal/config"
	"nutriplan/internal/domain"
)

const sessionPruneInterval = time.Hour

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides ADDR)")
	return cmd
}

// store bundles the repositories of one persistence backend.
type store struct {
	history  domain.HistoryRepository
	users    domain.UserRepository
	sessions domain.SessionRepository
	close    func() error
}

// openStore picks Postgres, then SQLite, then the in-memory store.
func openStore(cfg config.Config) (store, error) {
	switch {
	case cfg.DatabaseURL != "":
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return store{}, fmt.Errorf("db open: %w", err)
		}
		log.Print("using postgres store")
		return store{history: db, users: db, sessions: postgres.NewSessionRepo(db), close: db.Close}, nil

	case cfg.SQLitePath != "":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return store{}, fmt.Errorf("db open: %w", err)
		}
		log.Printf("using sqlite store at %s", cfg.SQLitePath)
		return store{history: db, users: db, sessions: sqlite.NewSessionRepo(db), close: db.Close}, nil

	default:
		db := memory.New()
		log.Print("no database configured, history is kept in memory")
		return store{history: db, users: db, sessions: db.NewSessionRepo(), close: func() error { return nil }}, nil
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.close() }()

	cat := catalog.New()
	recSvc := app.NewRecommendationService(cat, st.history)
	catalogSvc := app.NewCatalogService(cat)
	authSvc := app.NewAuthService(st.users, st.sessions)

	srv := adapthttp.New(recSvc, catalogSvc, authSvc, cfg.WebDir).
		WithCORS(cfg.CORSOrigins).
		WithTools(adaptmcp.New(recSvc, catalogSvc))
	if cfg.AuthDisabled {
		log.Print("authentication disabled")
		srv = srv.WithoutAuth()
	}
	if cfg.ForwardAuth {
		log.Print("trusting Remote-User header from proxy")
		srv = srv.WithForwardAuth()
	}
	if cfg.OIDC.Enabled() {
		oidcCfg, err := adapthttp.NewOIDCConfig(ctx, cfg.OIDC.Issuer, cfg.OIDC.ClientID, cfg.OIDC.ClientSecret, cfg.OIDC.RedirectURL)
		if err != nil {
			return err
		}
		srv = srv.WithOIDC(oidcCfg)
	}

	go pruneSessions(ctx, authSvc)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Print("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func pruneSessions(ctx context.Context, authSvc *app.AuthService) {
	ticker := time.NewTicker(sessionPruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := authSvc.PruneSessions(ctx); err != nil {
				log.Printf("prune sessions: %v", err)
			}
		}
	}
}
